package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"taller_api/internal/domain/entities"
	mock_interfaces "taller_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPagoUseCase_CrearYCobrar(t *testing.T) {
	t.Run("pasarela no configurada", func(t *testing.T) {
		uc := NewPagoUseCase(nil, nil, nil)
		_, err := uc.CrearYCobrar(context.Background(), 3, nil)
		if !errors.Is(err, ErrPasarelaNoConfigurada) {
			t.Fatalf("expected ErrPasarelaNoConfigurada, got %v", err)
		}
	})

	t.Run("reparacion no encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reparacionRepo := mock_interfaces.NewMockIReparacionRepository(ctrl)
		pasarela := mock_interfaces.NewMockIPasarelaPagos(ctrl)
		uc := NewPagoUseCase(nil, reparacionRepo, pasarela)

		reparacionRepo.EXPECT().GetByID(gomock.Any(), 3).Return(entities.Reparacion{}, nil)

		_, err := uc.CrearYCobrar(context.Background(), 3, nil)
		if !errors.Is(err, ErrReparacionNotFound) {
			t.Fatalf("expected ErrReparacionNotFound, got %v", err)
		}
	})

	t.Run("reparacion no atendida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reparacionRepo := mock_interfaces.NewMockIReparacionRepository(ctrl)
		pasarela := mock_interfaces.NewMockIPasarelaPagos(ctrl)
		uc := NewPagoUseCase(nil, reparacionRepo, pasarela)

		reparacionRepo.EXPECT().GetByID(gomock.Any(), 3).
			Return(entities.Reparacion{ID: 3, Estatus: entities.EstatusReparacionEnProceso, CostoTotal: 1200}, nil)

		_, err := uc.CrearYCobrar(context.Background(), 3, nil)
		if !errors.Is(err, ErrReparacionNoAtendida) {
			t.Fatalf("expected ErrReparacionNoAtendida, got %v", err)
		}
	})

	t.Run("reparacion sin costo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reparacionRepo := mock_interfaces.NewMockIReparacionRepository(ctrl)
		pasarela := mock_interfaces.NewMockIPasarelaPagos(ctrl)
		uc := NewPagoUseCase(nil, reparacionRepo, pasarela)

		reparacionRepo.EXPECT().GetByID(gomock.Any(), 3).
			Return(entities.Reparacion{ID: 3, Estatus: entities.EstatusReparacionAtendida}, nil)

		_, err := uc.CrearYCobrar(context.Background(), 3, nil)
		if !errors.Is(err, ErrReparacionSinCosto) {
			t.Fatalf("expected ErrReparacionSinCosto, got %v", err)
		}
	})

	t.Run("cobra el costo almacenado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagoRepository(ctrl)
		reparacionRepo := mock_interfaces.NewMockIReparacionRepository(ctrl)
		pasarela := mock_interfaces.NewMockIPasarelaPagos(ctrl)
		uc := NewPagoUseCase(repo, reparacionRepo, pasarela)

		reparacionRepo.EXPECT().GetByID(gomock.Any(), 3).
			Return(entities.Reparacion{ID: 3, Estatus: entities.EstatusReparacionAtendida, CostoTotal: 1200.5}, nil)
		pasarela.EXPECT().CobrarPago(gomock.Any(), 1200.5, "Reparacion 3", gomock.Any()).
			Return("mp-77", "approved", json.RawMessage(`{"id":77}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Pago) (entities.Pago, error) {
				if p.ID != "mp-77" || p.IDReparacion != 3 || p.Monto != 1200.5 {
					t.Fatalf("unexpected pago: %+v", p)
				}
				if p.Estatus != entities.EstatusPagoAprobado {
					t.Fatalf("expected aprobado, got %s", p.Estatus)
				}
				return p, nil
			},
		)

		p, err := uc.CrearYCobrar(context.Background(), 3, json.RawMessage(`{"payment_method_id":"visa"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "mp-77" {
			t.Fatalf("unexpected pago: %+v", p)
		}
	})

	t.Run("persiste el estatus del proveedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagoRepository(ctrl)
		reparacionRepo := mock_interfaces.NewMockIReparacionRepository(ctrl)
		pasarela := mock_interfaces.NewMockIPasarelaPagos(ctrl)
		uc := NewPagoUseCase(repo, reparacionRepo, pasarela)

		reparacionRepo.EXPECT().GetByID(gomock.Any(), 3).
			Return(entities.Reparacion{ID: 3, Estatus: entities.EstatusReparacionAtendida, CostoTotal: 1200}, nil)
		pasarela.EXPECT().CobrarPago(gomock.Any(), 1200.0, "Reparacion 3", gomock.Any()).
			Return("mp-78", "rejected", json.RawMessage(`{"id":78}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Pago) (entities.Pago, error) {
				if p.Estatus != entities.EstatusPagoRechazado {
					t.Fatalf("expected rechazado, got %s", p.Estatus)
				}
				return p, nil
			},
		)

		p, err := uc.CrearYCobrar(context.Background(), 3, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Estatus != entities.EstatusPagoRechazado {
			t.Fatalf("expected rechazado, got %s", p.Estatus)
		}
	})

	t.Run("pasarela falla", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reparacionRepo := mock_interfaces.NewMockIReparacionRepository(ctrl)
		pasarela := mock_interfaces.NewMockIPasarelaPagos(ctrl)
		uc := NewPagoUseCase(nil, reparacionRepo, pasarela)

		reparacionRepo.EXPECT().GetByID(gomock.Any(), 3).
			Return(entities.Reparacion{ID: 3, Estatus: entities.EstatusReparacionAtendida, CostoTotal: 1200}, nil)
		pasarela.EXPECT().CobrarPago(gomock.Any(), 1200.0, "Reparacion 3", gomock.Any()).
			Return("", "", nil, errors.New("gateway down"))

		_, err := uc.CrearYCobrar(context.Background(), 3, nil)
		if err == nil || err.Error() != "gateway down" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}

func TestEstatusDesdeProveedor(t *testing.T) {
	casos := map[string]entities.EstatusPago{
		"approved":     entities.EstatusPagoAprobado,
		"authorized":   entities.EstatusPagoAprobado,
		"rejected":     entities.EstatusPagoRechazado,
		"cancelled":    entities.EstatusPagoRechazado,
		"charged_back": entities.EstatusPagoRechazado,
		"in_process":   entities.EstatusPagoPendiente,
		"pending":      entities.EstatusPagoPendiente,
		"":             entities.EstatusPagoPendiente,
	}
	for estatus, esperado := range casos {
		if got := estatusDesdeProveedor(estatus); got != esperado {
			t.Fatalf("estatus %q: expected %s, got %s", estatus, esperado, got)
		}
	}
}

func TestPagoUseCase_ObtenerPorReparacion(t *testing.T) {
	t.Run("sin pagos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagoRepository(ctrl)
		uc := NewPagoUseCase(repo, nil, nil)

		repo.EXPECT().ListByReparacionID(gomock.Any(), 3).Return(nil, nil)

		_, err := uc.ObtenerPorReparacion(context.Background(), 3)
		if !errors.Is(err, ErrPagoNotFound) {
			t.Fatalf("expected ErrPagoNotFound, got %v", err)
		}
	})

	t.Run("regresa el mas reciente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagoRepository(ctrl)
		uc := NewPagoUseCase(repo, nil, nil)

		antes := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		despues := antes.Add(48 * time.Hour)
		repo.EXPECT().ListByReparacionID(gomock.Any(), 3).Return([]entities.Pago{
			{ID: "mp-1", IDReparacion: 3, Fecha: antes},
			{ID: "mp-2", IDReparacion: 3, Fecha: despues},
		}, nil)

		p, err := uc.ObtenerPorReparacion(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "mp-2" {
			t.Fatalf("expected latest pago, got %+v", p)
		}
	})
}
