package entities

import "sort"

// EstatusReparacion is the closed status enumeration for a repair.
//
// The update path rejects unrecognized status strings at the validation
// boundary; Cancelada and Atendida short-circuit the finalize path the same
// way appointment statuses do.

type EstatusReparacion string

const (
	EstatusReparacionPendiente EstatusReparacion = "Pendiente"
	EstatusReparacionEnProceso EstatusReparacion = "EnProceso"
	EstatusReparacionCancelada EstatusReparacion = "Cancelada"
	EstatusReparacionAtendida  EstatusReparacion = "Atendida"
)

func (e EstatusReparacion) EsValido() bool {
	switch e {
	case EstatusReparacionPendiente, EstatusReparacionEnProceso, EstatusReparacionCancelada, EstatusReparacionAtendida:
		return true
	}
	return false
}

// RefaccionUsada is a spare-part usage entry embedded in a repair.
//
// It references a catalog Refaccion by ID but keeps a denormalized copy of
// name/price/quantity/description at time of use: a later catalog price
// change or deletion never alters historical repair costs.
type RefaccionUsada struct {
	IDRefaccion int     `json:"idRefaccion"`
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Cantidad    int     `json:"cantidad"`
	Descripcion string  `json:"descripcion"`
	Estatus     string  `json:"estatus,omitempty"`
}

// Reparacion is a repair job tied to an appointment, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: pk (constant "reparaciones")
//   - SK: id (number) — allocator-assigned, max existing + 1
//
// Refacciones is stored as a map keyed by the catalog refaccion id so that
// adding a duplicate entry and updating one entry are both single conditional
// item updates, never a positional scan over a list.
type Reparacion struct {
	ID            int                    `json:"idReparacion"`
	IDCita        int                    `json:"idCita"`
	IDUsuarioC    int                    `json:"idUsuarioC"`
	IDUsuarioT    int                    `json:"idUsuarioT"`
	IDDispositivo int                    `json:"idDispositivo"`
	Tipo          string                 `json:"tipoReparacion"`
	Detalles      string                 `json:"detalles"`
	Estatus       EstatusReparacion      `json:"estatus"`
	CostoServicio float64                `json:"costoServicio"`
	CostoTotal    float64                `json:"costoTotal"`
	FechaInicio   string                 `json:"fechaInicio"`
	FechaFin      string                 `json:"fechaFin"`
	Refacciones   map[int]RefaccionUsada `json:"-"`
}

// RefaccionesOrdenadas returns the embedded usage entries sorted by refaccion
// id, the order every response body renders them in.
func (r Reparacion) RefaccionesOrdenadas() []RefaccionUsada {
	out := make([]RefaccionUsada, 0, len(r.Refacciones))
	for _, u := range r.Refacciones {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDRefaccion < out[j].IDRefaccion })
	return out
}
