package usecase

import (
	"context"
	"errors"
	"time"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"
)

var (
	ErrCitaNotFound        = errors.New("cita no encontrada")
	ErrCitaIDInvalido      = errors.New("id de cita invalido")
	ErrClienteCitaNotFound = errors.New("usuario cliente de la cita no encontrado")
	ErrCitaConflictoID     = errors.New("conflicto al asignar id de cita")
)

// diasEntrega is the fixed delivery window: delivery date = registration
// date + 3 calendar days.
const diasEntrega = 3

// crearMaxIntentos bounds the insert-with-retry loop used when a concurrent
// creator wins the allocated id.
const crearMaxIntentos = 3

// ICitaUseCase owns the appointment status state machine.
//
// Transition results carry a yaEstaba flag: a transition the appointment
// already satisfies is reported as a successful no-op, never an error.

type ICitaUseCase interface {
	Crear(ctx context.Context, c entities.Cita) (entities.Cita, string, error)
	Confirmar(ctx context.Context, id int) (entities.Cita, bool, error)
	Cancelar(ctx context.Context, id int) (entities.Cita, bool, error)
	Finalizar(ctx context.Context, id int) (entities.Cita, bool, error)
	Obtener(ctx context.Context, id int) (entities.Cita, error)
	Listar(ctx context.Context) ([]entities.Cita, error)
	Eliminar(ctx context.Context, id int) error
}

type CitaUseCase struct {
	repo        interfaces.ICitaRepository
	usuarioRepo interfaces.IUsuarioRepository
}

var _ ICitaUseCase = (*CitaUseCase)(nil)

func NewCitaUseCase(repo interfaces.ICitaRepository, usuarioRepo interfaces.IUsuarioRepository) *CitaUseCase {
	return &CitaUseCase{repo: repo, usuarioRepo: usuarioRepo}
}

// Crear registers an appointment for an existing client and returns it along
// with the client's display name. The caller never picks the id or the
// status: the allocator assigns the id and every new appointment starts as
// Pendiente.
func (u *CitaUseCase) Crear(ctx context.Context, c entities.Cita) (entities.Cita, string, error) {
	cliente, err := u.usuarioRepo.GetByID(ctx, c.IDUsuarioC)
	if err != nil {
		return entities.Cita{}, "", err
	}
	if cliente.ID == 0 {
		return entities.Cita{}, "", ErrClienteCitaNotFound
	}

	ahora := time.Now().UTC()
	c.FechaRegistro = ahora
	c.FechaEntrega = ahora.AddDate(0, 0, diasEntrega)
	c.Estatus = entities.EstatusCitaPendiente
	if c.Dispositivos == nil {
		c.Dispositivos = []entities.DispositivoCita{}
	}

	for intento := 0; intento < crearMaxIntentos; intento++ {
		id, err := asignarID(ctx, u.repo)
		if err != nil {
			return entities.Cita{}, "", err
		}
		c.ID = id

		creada, err := u.repo.Create(ctx, c)
		if err != nil {
			return entities.Cita{}, "", err
		}
		if creada.ID != 0 {
			return creada, cliente.NombreCompleto(), nil
		}
		// Lost the id to a concurrent creator; re-allocate and retry.
	}
	return entities.Cita{}, "", ErrCitaConflictoID
}

func (u *CitaUseCase) Confirmar(ctx context.Context, id int) (entities.Cita, bool, error) {
	return u.transicionar(ctx, id, entities.EstatusCitaConfirmada, nil)
}

func (u *CitaUseCase) Cancelar(ctx context.Context, id int) (entities.Cita, bool, error) {
	return u.transicionar(ctx, id, entities.EstatusCitaCancelada, nil)
}

// Finalizar marks the appointment attended. Appointments already cancelled or
// attended short-circuit with an informational no-op.
func (u *CitaUseCase) Finalizar(ctx context.Context, id int) (entities.Cita, bool, error) {
	return u.transicionar(ctx, id, entities.EstatusCitaAtendida,
		[]entities.EstatusCita{entities.EstatusCitaCancelada, entities.EstatusCitaAtendida})
}

// transicionar applies the shared NotFound / no-op / conditional-update
// pattern. terminales lists statuses beyond the target itself that also
// short-circuit.
func (u *CitaUseCase) transicionar(ctx context.Context, id int, objetivo entities.EstatusCita, terminales []entities.EstatusCita) (entities.Cita, bool, error) {
	if id <= 0 {
		return entities.Cita{}, false, ErrCitaIDInvalido
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cita{}, false, err
	}
	if c.ID == 0 {
		return entities.Cita{}, false, ErrCitaNotFound
	}
	if c.Estatus == objetivo {
		return c, true, nil
	}
	for _, t := range terminales {
		if c.Estatus == t {
			return c, true, nil
		}
	}

	actualizada, err := u.repo.UpdateEstatus(ctx, id, objetivo)
	if err != nil {
		return entities.Cita{}, false, err
	}
	if actualizada.ID == 0 {
		// The conditional write lost: either a concurrent caller moved the
		// status first or the appointment was deleted in between. Re-read to
		// tell the two apart.
		c, err = u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Cita{}, false, err
		}
		if c.ID == 0 {
			return entities.Cita{}, false, ErrCitaNotFound
		}
		return c, true, nil
	}
	return actualizada, false, nil
}

func (u *CitaUseCase) Obtener(ctx context.Context, id int) (entities.Cita, error) {
	if id <= 0 {
		return entities.Cita{}, ErrCitaIDInvalido
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cita{}, err
	}
	if c.ID == 0 {
		return entities.Cita{}, ErrCitaNotFound
	}
	return c, nil
}

func (u *CitaUseCase) Listar(ctx context.Context) ([]entities.Cita, error) {
	return u.repo.List(ctx)
}

// Eliminar removes the appointment. Repairs referencing it keep their idCita;
// the dangling reference is an accepted risk of the data model.
func (u *CitaUseCase) Eliminar(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrCitaIDInvalido
	}
	eliminada, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !eliminada {
		return ErrCitaNotFound
	}
	return nil
}
