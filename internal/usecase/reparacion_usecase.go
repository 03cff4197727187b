package usecase

import (
	"context"
	"errors"
	"time"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"
)

var (
	ErrReparacionNotFound        = errors.New("reparacion no encontrada")
	ErrReparacionIDInvalido      = errors.New("id de reparacion invalido")
	ErrCitaReparacionNotFound    = errors.New("cita referenciada por la reparacion no encontrada")
	ErrReparacionSinCambios      = errors.New("ningun campo para actualizar")
	ErrEstatusReparacionInvalido = errors.New("estatus de reparacion no reconocido")
	ErrReparacionConflictoID     = errors.New("conflicto al asignar id de reparacion")
	ErrRefaccionDuplicada        = errors.New("la refaccion ya esta registrada en la reparacion")
	ErrRefaccionNoCatalogo       = errors.New("refaccion no existe en el catalogo")
	ErrRefaccionUsadaNotFound    = errors.New("refaccion no registrada en la reparacion")
)

// formatoFecha is the fixed layout every repair date is normalized to before
// persisting.
const formatoFecha = "2006-01-02"

// layouts accepted from callers; anything else is a validation failure.
var formatosFechaEntrada = []string{formatoFecha, time.RFC3339, "02/01/2006"}

var ErrFechaInvalida = errors.New("fecha de reparacion invalida")

// IReparacionUseCase owns the repair lifecycle and its embedded spare-part
// usage entries.
type IReparacionUseCase interface {
	Crear(ctx context.Context, r entities.Reparacion) (entities.Reparacion, error)
	Listar(ctx context.Context, soloConRefacciones bool) ([]entities.Reparacion, error)
	Obtener(ctx context.Context, id int) (entities.Reparacion, error)
	ActualizarParcial(ctx context.Context, id int, campos map[string]interface{}) (entities.Reparacion, error)
	Cancelar(ctx context.Context, id int) (entities.Reparacion, bool, error)
	Finalizar(ctx context.Context, id int) (entities.Reparacion, bool, error)
	AgregarRefaccion(ctx context.Context, idReparacion int, uso entities.RefaccionUsada) (entities.Reparacion, error)
	ActualizarRefaccion(ctx context.Context, idReparacion, idRefaccion int, nombre string, cantidad int, precio float64) (entities.Reparacion, error)
}

type ReparacionUseCase struct {
	repo          interfaces.IReparacionRepository
	citaRepo      interfaces.ICitaRepository
	refaccionRepo interfaces.IRefaccionRepository
}

var _ IReparacionUseCase = (*ReparacionUseCase)(nil)

func NewReparacionUseCase(repo interfaces.IReparacionRepository, citaRepo interfaces.ICitaRepository, refaccionRepo interfaces.IRefaccionRepository) *ReparacionUseCase {
	return &ReparacionUseCase{repo: repo, citaRepo: citaRepo, refaccionRepo: refaccionRepo}
}

// Crear allocates the repair id (max existing + 1), requires the referenced
// appointment to exist and normalizes the date fields. Caller-supplied usage
// entries are validated against the catalog and must not repeat a refaccion.
func (u *ReparacionUseCase) Crear(ctx context.Context, r entities.Reparacion) (entities.Reparacion, error) {
	cita, err := u.citaRepo.GetByID(ctx, r.IDCita)
	if err != nil {
		return entities.Reparacion{}, err
	}
	if cita.ID == 0 {
		return entities.Reparacion{}, ErrCitaReparacionNotFound
	}

	if r.Estatus == "" {
		r.Estatus = entities.EstatusReparacionPendiente
	}
	if !r.Estatus.EsValido() {
		return entities.Reparacion{}, ErrEstatusReparacionInvalido
	}

	if r.FechaInicio, err = normalizarFecha(r.FechaInicio); err != nil {
		return entities.Reparacion{}, err
	}
	if r.FechaFin, err = normalizarFecha(r.FechaFin); err != nil {
		return entities.Reparacion{}, err
	}

	if r.Refacciones == nil {
		r.Refacciones = map[int]entities.RefaccionUsada{}
	}
	for id, uso := range r.Refacciones {
		uso.IDRefaccion = id
		completada, err := u.completarUso(ctx, uso)
		if err != nil {
			return entities.Reparacion{}, err
		}
		r.Refacciones[id] = completada
	}

	for intento := 0; intento < crearMaxIntentos; intento++ {
		id, err := asignarID(ctx, u.repo)
		if err != nil {
			return entities.Reparacion{}, err
		}
		r.ID = id

		creada, err := u.repo.Create(ctx, r)
		if err != nil {
			return entities.Reparacion{}, err
		}
		if creada.ID != 0 {
			return creada, nil
		}
	}
	return entities.Reparacion{}, ErrReparacionConflictoID
}

func (u *ReparacionUseCase) Listar(ctx context.Context, soloConRefacciones bool) ([]entities.Reparacion, error) {
	return u.repo.List(ctx, soloConRefacciones)
}

func (u *ReparacionUseCase) Obtener(ctx context.Context, id int) (entities.Reparacion, error) {
	if id <= 0 {
		return entities.Reparacion{}, ErrReparacionIDInvalido
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Reparacion{}, err
	}
	if r.ID == 0 {
		return entities.Reparacion{}, ErrReparacionNotFound
	}
	return r, nil
}

// camposActualizables whitelists the attributes a partial update may touch;
// anything else in the patch is ignored.
var camposActualizables = map[string]bool{
	"id_usuario_t":   true,
	"id_dispositivo": true,
	"tipo":           true,
	"detalles":       true,
	"estatus":        true,
	"costo_servicio": true,
	"costo_total":    true,
	"fecha_inicio":   true,
	"fecha_fin":      true,
}

// ActualizarParcial overwrites only the supplied fields. An empty patch after
// filtering is rejected; an unrecognized estatus never reaches the store.
func (u *ReparacionUseCase) ActualizarParcial(ctx context.Context, id int, campos map[string]interface{}) (entities.Reparacion, error) {
	if id <= 0 {
		return entities.Reparacion{}, ErrReparacionIDInvalido
	}

	filtrados := make(map[string]interface{}, len(campos))
	for k, v := range campos {
		if !camposActualizables[k] || v == nil {
			continue
		}
		filtrados[k] = v
	}
	if len(filtrados) == 0 {
		return entities.Reparacion{}, ErrReparacionSinCambios
	}

	if v, ok := filtrados["estatus"]; ok {
		s, _ := v.(string)
		if !entities.EstatusReparacion(s).EsValido() {
			return entities.Reparacion{}, ErrEstatusReparacionInvalido
		}
	}
	for _, campo := range []string{"fecha_inicio", "fecha_fin"} {
		v, ok := filtrados[campo]
		if !ok {
			continue
		}
		s, _ := v.(string)
		normalizada, err := normalizarFecha(s)
		if err != nil {
			return entities.Reparacion{}, err
		}
		filtrados[campo] = normalizada
	}

	actualizada, err := u.repo.UpdateCampos(ctx, id, filtrados)
	if err != nil {
		return entities.Reparacion{}, err
	}
	if actualizada.ID == 0 {
		return entities.Reparacion{}, ErrReparacionNotFound
	}
	return actualizada, nil
}

func (u *ReparacionUseCase) Cancelar(ctx context.Context, id int) (entities.Reparacion, bool, error) {
	return u.transicionar(ctx, id, entities.EstatusReparacionCancelada, nil)
}

// Finalizar short-circuits when the repair is already Cancelada or Atendida,
// mirroring the appointment finalize path.
func (u *ReparacionUseCase) Finalizar(ctx context.Context, id int) (entities.Reparacion, bool, error) {
	return u.transicionar(ctx, id, entities.EstatusReparacionAtendida,
		[]entities.EstatusReparacion{entities.EstatusReparacionCancelada, entities.EstatusReparacionAtendida})
}

func (u *ReparacionUseCase) transicionar(ctx context.Context, id int, objetivo entities.EstatusReparacion, terminales []entities.EstatusReparacion) (entities.Reparacion, bool, error) {
	if id <= 0 {
		return entities.Reparacion{}, false, ErrReparacionIDInvalido
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Reparacion{}, false, err
	}
	if r.ID == 0 {
		return entities.Reparacion{}, false, ErrReparacionNotFound
	}
	if r.Estatus == objetivo {
		return r, true, nil
	}
	for _, t := range terminales {
		if r.Estatus == t {
			return r, true, nil
		}
	}

	actualizada, err := u.repo.UpdateEstatus(ctx, id, objetivo)
	if err != nil {
		return entities.Reparacion{}, false, err
	}
	if actualizada.ID == 0 {
		// Condition failed: concurrent status move or a delete in between.
		// Re-read to tell the two apart.
		r, err = u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Reparacion{}, false, err
		}
		if r.ID == 0 {
			return entities.Reparacion{}, false, ErrReparacionNotFound
		}
		return r, true, nil
	}
	return actualizada, false, nil
}

// AgregarRefaccion appends a usage entry to the repair. The refaccion must
// exist in the catalog at the time of addition and must not already appear in
// this repair; the store-level map condition closes the race left by the
// pre-read.
func (u *ReparacionUseCase) AgregarRefaccion(ctx context.Context, idReparacion int, uso entities.RefaccionUsada) (entities.Reparacion, error) {
	if idReparacion <= 0 {
		return entities.Reparacion{}, ErrReparacionIDInvalido
	}

	r, err := u.repo.GetByID(ctx, idReparacion)
	if err != nil {
		return entities.Reparacion{}, err
	}
	if r.ID == 0 {
		return entities.Reparacion{}, ErrReparacionNotFound
	}
	if _, existe := r.Refacciones[uso.IDRefaccion]; existe {
		return entities.Reparacion{}, ErrRefaccionDuplicada
	}

	completada, err := u.completarUso(ctx, uso)
	if err != nil {
		return entities.Reparacion{}, err
	}

	actualizada, err := u.repo.AddRefaccion(ctx, idReparacion, completada)
	if err != nil {
		return entities.Reparacion{}, err
	}
	if actualizada.ID == 0 {
		return entities.Reparacion{}, ErrRefaccionDuplicada
	}
	return actualizada, nil
}

// ActualizarRefaccion overwrites nombre/cantidad/precio of the usage entry
// keyed by idRefaccion. The entry is addressed by its id in the update
// expression itself, so insertion order is irrelevant and no other entry can
// be touched.
func (u *ReparacionUseCase) ActualizarRefaccion(ctx context.Context, idReparacion, idRefaccion int, nombre string, cantidad int, precio float64) (entities.Reparacion, error) {
	if idReparacion <= 0 {
		return entities.Reparacion{}, ErrReparacionIDInvalido
	}

	r, err := u.repo.GetByID(ctx, idReparacion)
	if err != nil {
		return entities.Reparacion{}, err
	}
	if r.ID == 0 {
		return entities.Reparacion{}, ErrReparacionNotFound
	}
	if _, existe := r.Refacciones[idRefaccion]; !existe {
		return entities.Reparacion{}, ErrRefaccionUsadaNotFound
	}

	actualizada, err := u.repo.UpdateRefaccion(ctx, idReparacion, idRefaccion, nombre, cantidad, precio)
	if err != nil {
		return entities.Reparacion{}, err
	}
	if actualizada.ID == 0 {
		return entities.Reparacion{}, ErrRefaccionUsadaNotFound
	}
	return actualizada, nil
}

// completarUso validates the usage entry against the catalog and fills the
// denormalized snapshot fields the caller left empty.
func (u *ReparacionUseCase) completarUso(ctx context.Context, uso entities.RefaccionUsada) (entities.RefaccionUsada, error) {
	catalogo, err := u.refaccionRepo.GetByID(ctx, uso.IDRefaccion)
	if err != nil {
		return entities.RefaccionUsada{}, err
	}
	if catalogo.ID == 0 {
		return entities.RefaccionUsada{}, ErrRefaccionNoCatalogo
	}

	if uso.Nombre == "" {
		uso.Nombre = catalogo.Nombre
	}
	if uso.Precio == 0 {
		uso.Precio = catalogo.Precio
	}
	if uso.Descripcion == "" {
		uso.Descripcion = catalogo.Descripcion
	}
	if uso.Cantidad <= 0 {
		uso.Cantidad = 1
	}
	return uso, nil
}

// normalizarFecha coerces a caller-supplied date into the fixed storage
// layout. Empty stays empty: both repair dates are optional.
func normalizarFecha(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	for _, layout := range formatosFechaEntrada {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(formatoFecha), nil
		}
	}
	return "", ErrFechaInvalida
}
