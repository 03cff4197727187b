package handlers

import (
	"bytes"
	"context"
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

func TestUsuarioHandler_CreateUsuario(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("correo invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsuarioUseCase(ctrl)
		h := NewUsuarioHandler(uc)

		r := gin.New()
		r.POST("/usuarios", h.CreateUsuario)

		body := `{"id":4,"nombre":"Ana","correo":"no-es-correo","contrasena":"secreta"}`
		req := httptest.NewRequest(http.MethodPost, "/usuarios", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIUsuarioUseCase(ctrl)
		h := NewUsuarioHandler(uc)

		r := gin.New()
		r.POST("/usuarios", h.CreateUsuario)

		uc.EXPECT().Registrar(gomock.Any(), gomock.Any(), "secreta").Return(entities.Usuario{}, usecase.ErrUsuarioYaExiste)

		body := `{"id":4,"nombre":"Ana","correo":"ana@taller.mx","contrasena":"secreta"}`
		req := httptest.NewRequest(http.MethodPost, "/usuarios", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success nunca expone contrasena", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsuarioUseCase(ctrl)
		h := NewUsuarioHandler(uc)

		r := gin.New()
		r.POST("/usuarios", h.CreateUsuario)

		uc.EXPECT().Registrar(gomock.Any(), gomock.Any(), "secreta").DoAndReturn(
			func(_ context.Context, u entities.Usuario, _ string) (entities.Usuario, error) {
				u.Contrasena = "$2a$10$hash"
				u.Rol = entities.RolCliente
				return u, nil
			},
		)

		body := `{"id":4,"nombre":"Ana","apellidos":"Lopez","correo":"ana@taller.mx","contrasena":"secreta"}`
		req := httptest.NewRequest(http.MethodPost, "/usuarios", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("hash")) || bytes.Contains(w.Body.Bytes(), []byte("contrasena")) {
			t.Fatalf("response leaks credentials: %s", w.Body.String())
		}
		var respBody map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &respBody)
		usuario, _ := respBody["usuario"].(map[string]any)
		if usuario["correo"] != "ana@taller.mx" || usuario["rol"] != "cliente" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestUsuarioHandler_ValidateCredenciales(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("correo no registrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsuarioUseCase(ctrl)
		h := NewUsuarioHandler(uc)

		r := gin.New()
		r.POST("/usuarios/validar", h.ValidateCredenciales)

		uc.EXPECT().Validar(gomock.Any(), "nadie@taller.mx", "x").Return(entities.Usuario{}, usecase.ErrCorreoNoRegistrado)

		body := `{"correo":"nadie@taller.mx","contrasena":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/usuarios/validar", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("contrasena incorrecta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsuarioUseCase(ctrl)
		h := NewUsuarioHandler(uc)

		r := gin.New()
		r.POST("/usuarios/validar", h.ValidateCredenciales)

		uc.EXPECT().Validar(gomock.Any(), "ana@taller.mx", "mala").Return(entities.Usuario{}, usecase.ErrContrasenaIncorrecta)

		body := `{"correo":"ana@taller.mx","contrasena":"mala"}`
		req := httptest.NewRequest(http.MethodPost, "/usuarios/validar", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIUsuarioUseCase(ctrl)
		h := NewUsuarioHandler(uc)

		r := gin.New()
		r.POST("/usuarios/validar", h.ValidateCredenciales)

		uc.EXPECT().Validar(gomock.Any(), "ana@taller.mx", "secreta").Return(entities.Usuario{
			ID:     4,
			Nombre: "Ana",
			Correo: "ana@taller.mx",
			Rol:    entities.RolCliente,
		}, nil)

		body := `{"correo":"ana@taller.mx","contrasena":"secreta"}`
		req := httptest.NewRequest(http.MethodPost, "/usuarios/validar", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var respBody map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &respBody)
		if respBody["mensaje"] != "Credenciales validas" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapUsuarioError(t *testing.T) {
	if got := mapUsuarioError(usecase.ErrUsuarioIDInvalido); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapUsuarioError(usecase.ErrRolInvalido); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapUsuarioError(usecase.ErrUsuarioYaExiste); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapUsuarioError(usecase.ErrUsuarioNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapUsuarioError(usecase.ErrCorreoNoRegistrado); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapUsuarioError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
