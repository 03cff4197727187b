package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_api/internal/domain/entities"
	mock_interfaces "taller_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUsuarioUseCase_Registrar(t *testing.T) {
	t.Run("id invalido", func(t *testing.T) {
		uc := NewUsuarioUseCase(nil)
		_, err := uc.Registrar(context.Background(), entities.Usuario{}, "secreta")
		if !errors.Is(err, ErrUsuarioIDInvalido) {
			t.Fatalf("expected ErrUsuarioIDInvalido, got %v", err)
		}
	})

	t.Run("contrasena vacia", func(t *testing.T) {
		uc := NewUsuarioUseCase(nil)
		_, err := uc.Registrar(context.Background(), entities.Usuario{ID: 1}, "   ")
		if !errors.Is(err, ErrContrasenaRequerida) {
			t.Fatalf("expected ErrContrasenaRequerida, got %v", err)
		}
	})

	t.Run("rol desconocido", func(t *testing.T) {
		uc := NewUsuarioUseCase(nil)
		_, err := uc.Registrar(context.Background(), entities.Usuario{ID: 1, Rol: "gerente"}, "secreta")
		if !errors.Is(err, ErrRolInvalido) {
			t.Fatalf("expected ErrRolInvalido, got %v", err)
		}
	})

	t.Run("guarda hash y aplica rol por omision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewUsuarioUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.Usuario) (entities.Usuario, error) {
				if u.Rol != entities.RolCliente {
					t.Fatalf("expected default rol cliente, got %s", u.Rol)
				}
				if u.Contrasena == "secreta" || u.Contrasena == "" {
					t.Fatalf("raw credential must never reach the store")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte("secreta")); err != nil {
					t.Fatalf("stored hash does not match: %v", err)
				}
				return u, nil
			},
		)

		u, err := uc.Registrar(context.Background(), entities.Usuario{ID: 1, Nombre: "Ana", Correo: "ana@taller.mx"}, "secreta")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != 1 {
			t.Fatalf("unexpected usuario: %+v", u)
		}
	})

	t.Run("id duplicado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewUsuarioUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Usuario{}, nil)

		_, err := uc.Registrar(context.Background(), entities.Usuario{ID: 1}, "secreta")
		if !errors.Is(err, ErrUsuarioYaExiste) {
			t.Fatalf("expected ErrUsuarioYaExiste, got %v", err)
		}
	})
}

func TestUsuarioUseCase_Actualizar(t *testing.T) {
	t.Run("patch vacio", func(t *testing.T) {
		uc := NewUsuarioUseCase(nil)
		_, err := uc.Actualizar(context.Background(), 1, map[string]interface{}{})
		if !errors.Is(err, ErrUsuarioSinCambios) {
			t.Fatalf("expected ErrUsuarioSinCambios, got %v", err)
		}
	})

	t.Run("re-hashea la contrasena nueva", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewUsuarioUseCase(repo)

		repo.EXPECT().UpdateCampos(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, id int, campos map[string]interface{}) (entities.Usuario, error) {
				hash, _ := campos["contrasena"].(string)
				if hash == "nueva" {
					t.Fatalf("raw credential must never reach the store")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("nueva")); err != nil {
					t.Fatalf("stored hash does not match: %v", err)
				}
				return entities.Usuario{ID: 1}, nil
			},
		)

		if _, err := uc.Actualizar(context.Background(), 1, map[string]interface{}{"contrasena": "nueva"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rol desconocido", func(t *testing.T) {
		uc := NewUsuarioUseCase(nil)
		_, err := uc.Actualizar(context.Background(), 1, map[string]interface{}{"rol": "gerente"})
		if !errors.Is(err, ErrRolInvalido) {
			t.Fatalf("expected ErrRolInvalido, got %v", err)
		}
	})

	t.Run("no encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewUsuarioUseCase(repo)

		repo.EXPECT().UpdateCampos(gomock.Any(), 1, gomock.Any()).Return(entities.Usuario{}, nil)

		_, err := uc.Actualizar(context.Background(), 1, map[string]interface{}{"nombre": "Ana"})
		if !errors.Is(err, ErrUsuarioNotFound) {
			t.Fatalf("expected ErrUsuarioNotFound, got %v", err)
		}
	})
}

func TestUsuarioUseCase_Validar(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash setup: %v", err)
	}

	t.Run("correo no registrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewUsuarioUseCase(repo)

		repo.EXPECT().GetByCorreo(gomock.Any(), "nadie@taller.mx").Return(entities.Usuario{}, nil)

		_, err := uc.Validar(context.Background(), "nadie@taller.mx", "secreta")
		if !errors.Is(err, ErrCorreoNoRegistrado) {
			t.Fatalf("expected ErrCorreoNoRegistrado, got %v", err)
		}
	})

	t.Run("contrasena incorrecta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewUsuarioUseCase(repo)

		repo.EXPECT().GetByCorreo(gomock.Any(), "ana@taller.mx").
			Return(entities.Usuario{ID: 1, Correo: "ana@taller.mx", Contrasena: string(hash)}, nil)

		_, err := uc.Validar(context.Background(), "ana@taller.mx", "otra")
		if !errors.Is(err, ErrContrasenaIncorrecta) {
			t.Fatalf("expected ErrContrasenaIncorrecta, got %v", err)
		}
	})

	t.Run("credenciales validas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewUsuarioUseCase(repo)

		repo.EXPECT().GetByCorreo(gomock.Any(), "ana@taller.mx").
			Return(entities.Usuario{ID: 1, Correo: "ana@taller.mx", Contrasena: string(hash)}, nil)

		u, err := uc.Validar(context.Background(), " ana@taller.mx ", "secreta")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != 1 {
			t.Fatalf("unexpected usuario: %+v", u)
		}
	})
}
