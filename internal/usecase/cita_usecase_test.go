package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taller_api/internal/domain/entities"
	mock_interfaces "taller_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCitaUseCase_Crear(t *testing.T) {
	t.Run("cliente inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		usuarioRepo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewCitaUseCase(repo, usuarioRepo)

		usuarioRepo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Usuario{}, nil)

		_, _, err := uc.Crear(context.Background(), entities.Cita{Motivo: "pantalla rota", IDUsuarioC: 7})
		if !errors.Is(err, ErrClienteCitaNotFound) {
			t.Fatalf("expected ErrClienteCitaNotFound, got %v", err)
		}
	})

	t.Run("usuario repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		usuarioRepo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewCitaUseCase(repo, usuarioRepo)

		usuarioRepo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Usuario{}, errors.New("db"))

		_, _, err := uc.Crear(context.Background(), entities.Cita{IDUsuarioC: 7})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("asigna id consecutivo y fechas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		usuarioRepo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewCitaUseCase(repo, usuarioRepo)

		usuarioRepo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Usuario{ID: 7, Nombre: "Ana", Apellidos: "Lopez"}, nil)
		repo.EXPECT().UltimoID(gomock.Any()).Return(5, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Cita{})).DoAndReturn(
			func(_ context.Context, c entities.Cita) (entities.Cita, error) {
				if c.ID != 6 {
					t.Fatalf("expected id 6, got %d", c.ID)
				}
				if c.Estatus != entities.EstatusCitaPendiente {
					t.Fatalf("expected Pendiente, got %s", c.Estatus)
				}
				entrega := c.FechaRegistro.AddDate(0, 0, 3)
				if !c.FechaEntrega.Equal(entrega) {
					t.Fatalf("expected entrega %v, got %v", entrega, c.FechaEntrega)
				}
				return c, nil
			},
		)

		creada, nombre, err := uc.Crear(context.Background(), entities.Cita{Motivo: "pantalla rota", Hora: "10:00", IDUsuarioC: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creada.ID != 6 {
			t.Fatalf("expected id 6, got %d", creada.ID)
		}
		if nombre != "Ana Lopez" {
			t.Fatalf("expected cliente Ana Lopez, got %q", nombre)
		}
	})

	t.Run("coleccion vacia asigna 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		usuarioRepo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewCitaUseCase(repo, usuarioRepo)

		usuarioRepo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Usuario{ID: 7}, nil)
		repo.EXPECT().UltimoID(gomock.Any()).Return(0, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cita) (entities.Cita, error) {
				if c.ID != 1 {
					t.Fatalf("expected id 1, got %d", c.ID)
				}
				return c, nil
			},
		)

		if _, _, err := uc.Crear(context.Background(), entities.Cita{IDUsuarioC: 7}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reintenta cuando pierde el id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		usuarioRepo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewCitaUseCase(repo, usuarioRepo)

		usuarioRepo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Usuario{ID: 7}, nil)
		gomock.InOrder(
			repo.EXPECT().UltimoID(gomock.Any()).Return(3, nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Cita{}, nil),
			repo.EXPECT().UltimoID(gomock.Any()).Return(4, nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, c entities.Cita) (entities.Cita, error) {
					if c.ID != 5 {
						t.Fatalf("expected retry with id 5, got %d", c.ID)
					}
					return c, nil
				},
			),
		)

		creada, _, err := uc.Crear(context.Background(), entities.Cita{IDUsuarioC: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creada.ID != 5 {
			t.Fatalf("expected id 5, got %d", creada.ID)
		}
	})

	t.Run("agota reintentos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		usuarioRepo := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		uc := NewCitaUseCase(repo, usuarioRepo)

		usuarioRepo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Usuario{ID: 7}, nil)
		repo.EXPECT().UltimoID(gomock.Any()).Return(3, nil).Times(crearMaxIntentos)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Cita{}, nil).Times(crearMaxIntentos)

		_, _, err := uc.Crear(context.Background(), entities.Cita{IDUsuarioC: 7})
		if !errors.Is(err, ErrCitaConflictoID) {
			t.Fatalf("expected ErrCitaConflictoID, got %v", err)
		}
	})
}

func TestCitaUseCase_Transiciones(t *testing.T) {
	t.Run("id invalido", func(t *testing.T) {
		uc := NewCitaUseCase(nil, nil)
		_, _, err := uc.Confirmar(context.Background(), 0)
		if !errors.Is(err, ErrCitaIDInvalido) {
			t.Fatalf("expected ErrCitaIDInvalido, got %v", err)
		}
	})

	t.Run("no encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Cita{}, nil)

		_, _, err := uc.Confirmar(context.Background(), 9)
		if !errors.Is(err, ErrCitaNotFound) {
			t.Fatalf("expected ErrCitaNotFound, got %v", err)
		}
	})

	t.Run("ya confirmada es no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Cita{ID: 9, Estatus: entities.EstatusCitaConfirmada}, nil)

		c, yaEstaba, err := uc.Confirmar(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !yaEstaba {
			t.Fatalf("expected no-op flag")
		}
		if c.Estatus != entities.EstatusCitaConfirmada {
			t.Fatalf("unexpected estatus %s", c.Estatus)
		}
	})

	t.Run("confirmar exitoso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Cita{ID: 9, Estatus: entities.EstatusCitaPendiente}, nil)
		repo.EXPECT().UpdateEstatus(gomock.Any(), 9, entities.EstatusCitaConfirmada).
			Return(entities.Cita{ID: 9, Estatus: entities.EstatusCitaConfirmada}, nil)

		c, yaEstaba, err := uc.Confirmar(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if yaEstaba {
			t.Fatalf("did not expect no-op flag")
		}
		if c.Estatus != entities.EstatusCitaConfirmada {
			t.Fatalf("unexpected estatus %s", c.Estatus)
		}
	})

	t.Run("carrera perdida se reporta como no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Cita{ID: 9, Estatus: entities.EstatusCitaPendiente}, nil),
			repo.EXPECT().UpdateEstatus(gomock.Any(), 9, entities.EstatusCitaCancelada).Return(entities.Cita{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Cita{ID: 9, Estatus: entities.EstatusCitaCancelada}, nil),
		)

		c, yaEstaba, err := uc.Cancelar(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !yaEstaba {
			t.Fatalf("expected no-op flag")
		}
		if c.Estatus != entities.EstatusCitaCancelada {
			t.Fatalf("unexpected estatus %s", c.Estatus)
		}
	})

	t.Run("eliminada durante la transicion reporta no encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Cita{ID: 9, Estatus: entities.EstatusCitaPendiente}, nil),
			repo.EXPECT().UpdateEstatus(gomock.Any(), 9, entities.EstatusCitaCancelada).Return(entities.Cita{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Cita{}, nil),
		)

		_, _, err := uc.Cancelar(context.Background(), 9)
		if !errors.Is(err, ErrCitaNotFound) {
			t.Fatalf("expected ErrCitaNotFound, got %v", err)
		}
	})

	t.Run("finalizar cancelada es no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Cita{ID: 9, Estatus: entities.EstatusCitaCancelada}, nil)

		c, yaEstaba, err := uc.Finalizar(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !yaEstaba {
			t.Fatalf("expected no-op flag")
		}
		if c.Estatus != entities.EstatusCitaCancelada {
			t.Fatalf("cancelled status must not change, got %s", c.Estatus)
		}
	})
}

func TestCitaUseCase_ObtenerYEliminar(t *testing.T) {
	t.Run("obtener no encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), 2).Return(entities.Cita{}, nil)

		if _, err := uc.Obtener(context.Background(), 2); !errors.Is(err, ErrCitaNotFound) {
			t.Fatalf("expected ErrCitaNotFound, got %v", err)
		}
	})

	t.Run("obtener exitoso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		expected := entities.Cita{ID: 2, Motivo: "bateria", FechaRegistro: time.Now()}
		repo.EXPECT().GetByID(gomock.Any(), 2).Return(expected, nil)

		c, err := uc.Obtener(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 2 || c.Motivo != "bateria" {
			t.Fatalf("unexpected cita: %+v", c)
		}
	})

	t.Run("eliminar no encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), 2).Return(false, nil)

		if err := uc.Eliminar(context.Background(), 2); !errors.Is(err, ErrCitaNotFound) {
			t.Fatalf("expected ErrCitaNotFound, got %v", err)
		}
	})

	t.Run("eliminar exitoso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICitaRepository(ctrl)
		uc := NewCitaUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), 2).Return(true, nil)

		if err := uc.Eliminar(context.Background(), 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
