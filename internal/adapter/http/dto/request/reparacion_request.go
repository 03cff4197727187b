package request

import (
	"errors"

	"taller_api/internal/domain/entities"
)

var ErrRefaccionRepetida = errors.New("refaccion repetida en la solicitud")

// RefaccionUsadaRequest is one spare-part usage entry. Snapshot fields left
// empty are completed from the catalog at time of use.
type RefaccionUsadaRequest struct {
	IDRefaccion int     `json:"idRefaccion" binding:"required"`
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Cantidad    int     `json:"cantidad"`
	Descripcion string  `json:"descripcion"`
}

func (r RefaccionUsadaRequest) ToEntity() entities.RefaccionUsada {
	return entities.RefaccionUsada{
		IDRefaccion: r.IDRefaccion,
		Nombre:      r.Nombre,
		Precio:      r.Precio,
		Cantidad:    r.Cantidad,
		Descripcion: r.Descripcion,
	}
}

// ReparacionCreateRequest is the creation payload for a repair. The id is
// allocator-assigned; idCita must reference an existing appointment.
type ReparacionCreateRequest struct {
	IDCita        int                     `json:"idCita" binding:"required"`
	IDUsuarioC    int                     `json:"idUsuarioC"`
	IDUsuarioT    int                     `json:"idUsuarioT"`
	IDDispositivo int                     `json:"idDispositivo"`
	Tipo          string                  `json:"tipoReparacion" binding:"required"`
	Detalles      string                  `json:"detalles"`
	Estatus       string                  `json:"estatus"`
	CostoServicio float64                 `json:"costoServicio"`
	CostoTotal    float64                 `json:"costoTotal"`
	FechaInicio   string                  `json:"fechaInicio"`
	FechaFin      string                  `json:"fechaFin"`
	Refacciones   []RefaccionUsadaRequest `json:"refacciones"`
}

// ToEntity builds the domain repair, rejecting duplicate refaccion ids
// within the supplied list.
func (r ReparacionCreateRequest) ToEntity() (entities.Reparacion, error) {
	refacciones := make(map[int]entities.RefaccionUsada, len(r.Refacciones))
	for _, uso := range r.Refacciones {
		if _, existe := refacciones[uso.IDRefaccion]; existe {
			return entities.Reparacion{}, ErrRefaccionRepetida
		}
		refacciones[uso.IDRefaccion] = uso.ToEntity()
	}
	return entities.Reparacion{
		IDCita:        r.IDCita,
		IDUsuarioC:    r.IDUsuarioC,
		IDUsuarioT:    r.IDUsuarioT,
		IDDispositivo: r.IDDispositivo,
		Tipo:          r.Tipo,
		Detalles:      r.Detalles,
		Estatus:       entities.EstatusReparacion(r.Estatus),
		CostoServicio: r.CostoServicio,
		CostoTotal:    r.CostoTotal,
		FechaInicio:   r.FechaInicio,
		FechaFin:      r.FechaFin,
		Refacciones:   refacciones,
	}, nil
}

// ReparacionUpdateRequest is the sparse update payload; null fields stay
// untouched and unknown fields are dropped before reaching the store.
type ReparacionUpdateRequest struct {
	IDUsuarioT    *int     `json:"idUsuarioT"`
	IDDispositivo *int     `json:"idDispositivo"`
	Tipo          *string  `json:"tipoReparacion"`
	Detalles      *string  `json:"detalles"`
	Estatus       *string  `json:"estatus"`
	CostoServicio *float64 `json:"costoServicio"`
	CostoTotal    *float64 `json:"costoTotal"`
	FechaInicio   *string  `json:"fechaInicio"`
	FechaFin      *string  `json:"fechaFin"`
}

func (r ReparacionUpdateRequest) Campos() map[string]interface{} {
	campos := map[string]interface{}{}
	if r.IDUsuarioT != nil {
		campos["id_usuario_t"] = *r.IDUsuarioT
	}
	if r.IDDispositivo != nil {
		campos["id_dispositivo"] = *r.IDDispositivo
	}
	if r.Tipo != nil {
		campos["tipo"] = *r.Tipo
	}
	if r.Detalles != nil {
		campos["detalles"] = *r.Detalles
	}
	if r.Estatus != nil {
		campos["estatus"] = *r.Estatus
	}
	if r.CostoServicio != nil {
		campos["costo_servicio"] = *r.CostoServicio
	}
	if r.CostoTotal != nil {
		campos["costo_total"] = *r.CostoTotal
	}
	if r.FechaInicio != nil {
		campos["fecha_inicio"] = *r.FechaInicio
	}
	if r.FechaFin != nil {
		campos["fecha_fin"] = *r.FechaFin
	}
	return campos
}

// RefaccionUsadaUpdateRequest overwrites exactly nombre/cantidad/precio of
// one embedded usage entry.
type RefaccionUsadaUpdateRequest struct {
	Nombre   string  `json:"nombre" binding:"required"`
	Cantidad int     `json:"cantidad" binding:"required"`
	Precio   float64 `json:"precio" binding:"required"`
}
