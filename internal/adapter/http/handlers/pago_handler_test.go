package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taller_api/internal/adapter/http/handlers/mocks"
	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPagoHandler_CreatePago(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("id invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagoUseCase(ctrl)
		h := NewPagoHandler(uc)

		r := gin.New()
		r.POST("/pagos/:idReparacion", h.CreatePago)

		req := httptest.NewRequest(http.MethodPost, "/pagos/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reparacion no atendida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagoUseCase(ctrl)
		h := NewPagoHandler(uc)

		r := gin.New()
		r.POST("/pagos/:idReparacion", h.CreatePago)

		uc.EXPECT().CrearYCobrar(gomock.Any(), 3, gomock.Any()).Return(entities.Pago{}, usecase.ErrReparacionNoAtendida)

		req := httptest.NewRequest(http.MethodPost, "/pagos/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pasarela no configurada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagoUseCase(ctrl)
		h := NewPagoHandler(uc)

		r := gin.New()
		r.POST("/pagos/:idReparacion", h.CreatePago)

		uc.EXPECT().CrearYCobrar(gomock.Any(), 3, gomock.Any()).Return(entities.Pago{}, usecase.ErrPasarelaNoConfigurada)

		req := httptest.NewRequest(http.MethodPost, "/pagos/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagoUseCase(ctrl)
		h := NewPagoHandler(uc)

		r := gin.New()
		r.POST("/pagos/:idReparacion", h.CreatePago)

		uc.EXPECT().CrearYCobrar(gomock.Any(), 3, gomock.Any()).Return(entities.Pago{
			ID:           "mp-77",
			IDReparacion: 3,
			Fecha:        time.Date(2026, 1, 20, 15, 0, 0, 0, time.UTC),
			Monto:        1200.5,
			Estatus:      entities.EstatusPagoAprobado,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/pagos/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		pago, _ := body["pago"].(map[string]any)
		if pago["idPago"] != "mp-77" || pago["monto"] != float64(1200.5) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success with provider payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagoUseCase(ctrl)
		h := NewPagoHandler(uc)

		r := gin.New()
		r.POST("/pagos/:idReparacion", h.CreatePago)

		uc.EXPECT().CrearYCobrar(gomock.Any(), 3, gomock.Any()).DoAndReturn(
			func(_ context.Context, id int, payload json.RawMessage) (entities.Pago, error) {
				if !bytes.Contains(payload, []byte("visa")) {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.Pago{ID: "mp-78", IDReparacion: 3, Monto: 500, Estatus: entities.EstatusPagoAprobado}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/pagos/3", bytes.NewBufferString(`{"payload":{"metodo":"visa"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPagoHandler_GetPagoByReparacion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sin pagos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagoUseCase(ctrl)
		h := NewPagoHandler(uc)

		r := gin.New()
		r.GET("/pagos/:idReparacion", h.GetPagoByReparacion)

		uc.EXPECT().ObtenerPorReparacion(gomock.Any(), 3).Return(entities.Pago{}, usecase.ErrPagoNotFound)

		req := httptest.NewRequest(http.MethodGet, "/pagos/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagoUseCase(ctrl)
		h := NewPagoHandler(uc)

		r := gin.New()
		r.GET("/pagos/:idReparacion", h.GetPagoByReparacion)

		uc.EXPECT().ObtenerPorReparacion(gomock.Any(), 3).Return(entities.Pago{
			ID:           "mp-77",
			IDReparacion: 3,
			Monto:        1200.5,
			Estatus:      entities.EstatusPagoAprobado,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/pagos/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["idPago"] != "mp-77" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapPagoError(t *testing.T) {
	if got := mapPagoError(usecase.ErrReparacionNoAtendida); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPagoError(usecase.ErrReparacionSinCosto); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPagoError(usecase.ErrReparacionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPagoError(usecase.ErrPagoNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPagoError(usecase.ErrPasarelaNoConfigurada); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapPagoError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
