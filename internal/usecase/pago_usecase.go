package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPagoNotFound          = errors.New("pago no encontrado")
	ErrReparacionNoAtendida  = errors.New("la reparacion no esta atendida")
	ErrReparacionSinCosto    = errors.New("la reparacion no tiene costo total")
	ErrPasarelaNoConfigurada = errors.New("pasarela de pagos no configurada")
)

// IPagoUseCase encapsulates the "charge a finalized repair" behavior.

type IPagoUseCase interface {
	CrearYCobrar(ctx context.Context, idReparacion int, payload json.RawMessage) (entities.Pago, error)
	ObtenerPorReparacion(ctx context.Context, idReparacion int) (entities.Pago, error)
}

type PagoUseCase struct {
	repo           interfaces.IPagoRepository
	reparacionRepo interfaces.IReparacionRepository
	pasarela       interfaces.IPasarelaPagos
}

var _ IPagoUseCase = (*PagoUseCase)(nil)

func NewPagoUseCase(repo interfaces.IPagoRepository, reparacionRepo interfaces.IReparacionRepository, pasarela interfaces.IPasarelaPagos) *PagoUseCase {
	return &PagoUseCase{repo: repo, reparacionRepo: reparacionRepo, pasarela: pasarela}
}

// CrearYCobrar charges the repair's total through the payment gateway and
// persists the payment with the status the provider reported. Only repairs
// already marked Atendida can be charged; the amount always comes from the
// stored costoTotal, never from the caller.
func (u *PagoUseCase) CrearYCobrar(ctx context.Context, idReparacion int, payload json.RawMessage) (entities.Pago, error) {
	if idReparacion <= 0 {
		return entities.Pago{}, ErrReparacionIDInvalido
	}
	if u.pasarela == nil {
		return entities.Pago{}, ErrPasarelaNoConfigurada
	}

	r, err := u.reparacionRepo.GetByID(ctx, idReparacion)
	if err != nil {
		return entities.Pago{}, err
	}
	if r.ID == 0 {
		return entities.Pago{}, ErrReparacionNotFound
	}
	if r.Estatus != entities.EstatusReparacionAtendida {
		return entities.Pago{}, ErrReparacionNoAtendida
	}
	if r.CostoTotal <= 0 {
		return entities.Pago{}, ErrReparacionSinCosto
	}

	if len(payload) == 0 || !json.Valid(payload) {
		payload = json.RawMessage("{}")
	}

	descripcion := fmt.Sprintf("Reparacion %d", r.ID)
	idProveedor, estatusProveedor, respuesta, err := u.pasarela.CobrarPago(ctx, r.CostoTotal, descripcion, payload)
	if err != nil {
		log.Printf("[pago][usecase] pasarela fallo id_reparacion=%d err=%v", idReparacion, err)
		return entities.Pago{}, err
	}
	if idProveedor == "" {
		idProveedor = uuid.NewString()
	}
	log.Printf("[pago][usecase] cobro exitoso id_reparacion=%d id_pago=%s estatus_proveedor=%s", idReparacion, idProveedor, estatusProveedor)

	p := entities.Pago{
		ID:               idProveedor,
		IDReparacion:     idReparacion,
		Fecha:            time.Now().UTC(),
		Monto:            r.CostoTotal,
		Estatus:          estatusDesdeProveedor(estatusProveedor),
		PayloadProveedor: respuesta,
	}
	return u.repo.Create(ctx, p)
}

// estatusDesdeProveedor collapses Mercado Pago's status vocabulary onto the
// stored enum. A nil-error charge can still come back rejected or in process;
// anything not clearly terminal stays pendiente.
func estatusDesdeProveedor(estatus string) entities.EstatusPago {
	switch estatus {
	case "approved", "authorized":
		return entities.EstatusPagoAprobado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.EstatusPagoRechazado
	default:
		return entities.EstatusPagoPendiente
	}
}

// ObtenerPorReparacion returns the latest payment collected for a repair.
func (u *PagoUseCase) ObtenerPorReparacion(ctx context.Context, idReparacion int) (entities.Pago, error) {
	if idReparacion <= 0 {
		return entities.Pago{}, ErrReparacionIDInvalido
	}

	pagos, err := u.repo.ListByReparacionID(ctx, idReparacion)
	if err != nil {
		return entities.Pago{}, err
	}
	if len(pagos) == 0 {
		return entities.Pago{}, ErrPagoNotFound
	}

	ultimo := pagos[0]
	for _, p := range pagos[1:] {
		if p.Fecha.After(ultimo.Fecha) {
			ultimo = p
		}
	}
	return ultimo, nil
}
