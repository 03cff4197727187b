package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_api/internal/domain/entities"
	mock_interfaces "taller_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRefaccionUseCase_Crear(t *testing.T) {
	t.Run("id invalido", func(t *testing.T) {
		uc := NewRefaccionUseCase(nil)
		_, err := uc.Crear(context.Background(), entities.Refaccion{})
		if !errors.Is(err, ErrRefaccionIDInvalido) {
			t.Fatalf("expected ErrRefaccionIDInvalido, got %v", err)
		}
	})

	t.Run("id duplicado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRefaccionRepository(ctrl)
		uc := NewRefaccionUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Refaccion{}, nil)

		_, err := uc.Crear(context.Background(), entities.Refaccion{ID: 11, Nombre: "Pantalla"})
		if !errors.Is(err, ErrRefaccionYaExiste) {
			t.Fatalf("expected ErrRefaccionYaExiste, got %v", err)
		}
	})

	t.Run("crea exitoso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRefaccionRepository(ctrl)
		uc := NewRefaccionUseCase(repo)

		expected := entities.Refaccion{ID: 11, Nombre: "Pantalla", Precio: 850}
		repo.EXPECT().Create(gomock.Any(), expected).Return(expected, nil)

		r, err := uc.Crear(context.Background(), expected)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID != 11 {
			t.Fatalf("unexpected refaccion: %+v", r)
		}
	})
}

func TestRefaccionUseCase_Actualizar(t *testing.T) {
	t.Run("patch vacio", func(t *testing.T) {
		uc := NewRefaccionUseCase(nil)
		_, err := uc.Actualizar(context.Background(), 11, map[string]interface{}{"desconocido": 1})
		if !errors.Is(err, ErrRefaccionSinCambios) {
			t.Fatalf("expected ErrRefaccionSinCambios, got %v", err)
		}
	})

	t.Run("no encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRefaccionRepository(ctrl)
		uc := NewRefaccionUseCase(repo)

		repo.EXPECT().UpdateCampos(gomock.Any(), 11, gomock.Any()).Return(entities.Refaccion{}, nil)

		_, err := uc.Actualizar(context.Background(), 11, map[string]interface{}{"precio": 900.0})
		if !errors.Is(err, ErrRefaccionNotFound) {
			t.Fatalf("expected ErrRefaccionNotFound, got %v", err)
		}
	})

	t.Run("actualiza solo campos permitidos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRefaccionRepository(ctrl)
		uc := NewRefaccionUseCase(repo)

		repo.EXPECT().UpdateCampos(gomock.Any(), 11, gomock.Any()).DoAndReturn(
			func(_ context.Context, id int, campos map[string]interface{}) (entities.Refaccion, error) {
				if _, ok := campos["id"]; ok {
					t.Fatalf("id must be filtered out")
				}
				if campos["precio"] != 900.0 {
					t.Fatalf("unexpected precio %v", campos["precio"])
				}
				return entities.Refaccion{ID: 11, Precio: 900}, nil
			},
		)

		r, err := uc.Actualizar(context.Background(), 11, map[string]interface{}{"id": 99, "precio": 900.0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Precio != 900 {
			t.Fatalf("unexpected refaccion: %+v", r)
		}
	})
}

func TestRefaccionUseCase_Eliminar(t *testing.T) {
	t.Run("no encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRefaccionRepository(ctrl)
		uc := NewRefaccionUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), 11).Return(false, nil)

		if err := uc.Eliminar(context.Background(), 11); !errors.Is(err, ErrRefaccionNotFound) {
			t.Fatalf("expected ErrRefaccionNotFound, got %v", err)
		}
	})

	t.Run("elimina exitoso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRefaccionRepository(ctrl)
		uc := NewRefaccionUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), 11).Return(true, nil)

		if err := uc.Eliminar(context.Background(), 11); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
