package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_api/internal/adapter/http/handlers/mocks"
	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRefaccionHandler_CreateRefaccion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefaccionUseCase(ctrl)
		h := NewRefaccionHandler(uc)

		r := gin.New()
		r.POST("/refacciones", h.CreateRefaccion)

		req := httptest.NewRequest(http.MethodPost, "/refacciones", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("id duplicado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefaccionUseCase(ctrl)
		h := NewRefaccionHandler(uc)

		r := gin.New()
		r.POST("/refacciones", h.CreateRefaccion)

		uc.EXPECT().Crear(gomock.Any(), gomock.Any()).Return(entities.Refaccion{}, usecase.ErrRefaccionYaExiste)

		body := `{"idRefaccion":9,"nombre":"Bateria","precio":350}`
		req := httptest.NewRequest(http.MethodPost, "/refacciones", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefaccionUseCase(ctrl)
		h := NewRefaccionHandler(uc)

		r := gin.New()
		r.POST("/refacciones", h.CreateRefaccion)

		expected := entities.Refaccion{ID: 9, Nombre: "Bateria", Cantidad: 10, Precio: 350}
		uc.EXPECT().Crear(gomock.Any(), expected).Return(expected, nil)

		body := `{"idRefaccion":9,"nombre":"Bateria","cantidad":10,"precio":350}`
		req := httptest.NewRequest(http.MethodPost, "/refacciones", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var respBody map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &respBody)
		refaccion, _ := respBody["refaccion"].(map[string]any)
		if refaccion["idRefaccion"] != float64(9) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRefaccionHandler_GetRefaccionByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("id invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefaccionUseCase(ctrl)
		h := NewRefaccionHandler(uc)

		r := gin.New()
		r.GET("/refacciones/:id", h.GetRefaccionByID)

		req := httptest.NewRequest(http.MethodGet, "/refacciones/cero", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefaccionUseCase(ctrl)
		h := NewRefaccionHandler(uc)

		r := gin.New()
		r.GET("/refacciones/:id", h.GetRefaccionByID)

		uc.EXPECT().Obtener(gomock.Any(), 9).Return(entities.Refaccion{}, usecase.ErrRefaccionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/refacciones/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRefaccionHandler_ListRefacciones(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRefaccionUseCase(ctrl)
	h := NewRefaccionHandler(uc)

	r := gin.New()
	r.GET("/refacciones", h.ListRefacciones)

	uc.EXPECT().Listar(gomock.Any()).Return([]entities.Refaccion{
		{ID: 9, Nombre: "Bateria", Precio: 350},
		{ID: 12, Nombre: "Pantalla", Precio: 1200},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/refacciones", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	refacciones, _ := body["refacciones"].([]any)
	if len(refacciones) != 2 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapRefaccionError(t *testing.T) {
	if got := mapRefaccionError(usecase.ErrRefaccionIDInvalido); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRefaccionError(usecase.ErrRefaccionSinCambios); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRefaccionError(usecase.ErrRefaccionYaExiste); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRefaccionError(usecase.ErrRefaccionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapRefaccionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
