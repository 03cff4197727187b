package response

import "taller_api/internal/domain/entities"

type RefaccionUsadaResponse struct {
	IDRefaccion int     `json:"idRefaccion"`
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Cantidad    int     `json:"cantidad"`
	Descripcion string  `json:"descripcion,omitempty"`
}

// ReparacionResponse is the repair wire shape. The embedded usage map is
// rendered as an array ordered by refaccion id.
type ReparacionResponse struct {
	ID            int                      `json:"idReparacion"`
	IDCita        int                      `json:"idCita"`
	IDUsuarioC    int                      `json:"idUsuarioC"`
	IDUsuarioT    int                      `json:"idUsuarioT"`
	IDDispositivo int                      `json:"idDispositivo"`
	Tipo          string                   `json:"tipoReparacion"`
	Detalles      string                   `json:"detalles"`
	Estatus       string                   `json:"estatus"`
	CostoServicio float64                  `json:"costoServicio"`
	CostoTotal    float64                  `json:"costoTotal"`
	FechaInicio   string                   `json:"fechaInicio"`
	FechaFin      string                   `json:"fechaFin"`
	Refacciones   []RefaccionUsadaResponse `json:"refacciones"`
}

func FromReparacion(r entities.Reparacion) ReparacionResponse {
	usos := r.RefaccionesOrdenadas()
	refacciones := make([]RefaccionUsadaResponse, 0, len(usos))
	for _, u := range usos {
		refacciones = append(refacciones, RefaccionUsadaResponse{
			IDRefaccion: u.IDRefaccion,
			Nombre:      u.Nombre,
			Precio:      u.Precio,
			Cantidad:    u.Cantidad,
			Descripcion: u.Descripcion,
		})
	}
	return ReparacionResponse{
		ID:            r.ID,
		IDCita:        r.IDCita,
		IDUsuarioC:    r.IDUsuarioC,
		IDUsuarioT:    r.IDUsuarioT,
		IDDispositivo: r.IDDispositivo,
		Tipo:          r.Tipo,
		Detalles:      r.Detalles,
		Estatus:       string(r.Estatus),
		CostoServicio: r.CostoServicio,
		CostoTotal:    r.CostoTotal,
		FechaInicio:   r.FechaInicio,
		FechaFin:      r.FechaFin,
		Refacciones:   refacciones,
	}
}

type ReparacionCreadaResponse struct {
	Estatus    bool               `json:"estatus"`
	Mensaje    string             `json:"mensaje"`
	Reparacion ReparacionResponse `json:"reparacion"`
}

type ReparacionTransicionResponse struct {
	Estatus    bool               `json:"estatus"`
	Mensaje    string             `json:"mensaje"`
	Reparacion ReparacionResponse `json:"reparacion"`
}

type ListaReparacionesResponse struct {
	Estatus      bool                 `json:"estatus"`
	Reparaciones []ReparacionResponse `json:"reparaciones"`
}

func FromReparaciones(reparaciones []entities.Reparacion) ListaReparacionesResponse {
	out := make([]ReparacionResponse, 0, len(reparaciones))
	for _, r := range reparaciones {
		out = append(out, FromReparacion(r))
	}
	return ListaReparacionesResponse{Estatus: true, Reparaciones: out}
}
