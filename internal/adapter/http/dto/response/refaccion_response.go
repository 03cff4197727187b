package response

import "taller_api/internal/domain/entities"

type RefaccionResponse struct {
	ID          int     `json:"idRefaccion"`
	Nombre      string  `json:"nombre"`
	Cantidad    int     `json:"cantidad"`
	Precio      float64 `json:"precio"`
	Descripcion string  `json:"descripcion"`
}

func FromRefaccion(r entities.Refaccion) RefaccionResponse {
	return RefaccionResponse{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Cantidad:    r.Cantidad,
		Precio:      r.Precio,
		Descripcion: r.Descripcion,
	}
}

type RefaccionCreadaResponse struct {
	Estatus   bool              `json:"estatus"`
	Mensaje   string            `json:"mensaje"`
	Refaccion RefaccionResponse `json:"refaccion"`
}

type ListaRefaccionesResponse struct {
	Estatus     bool                `json:"estatus"`
	Refacciones []RefaccionResponse `json:"refacciones"`
}

func FromRefacciones(refacciones []entities.Refaccion) ListaRefaccionesResponse {
	out := make([]RefaccionResponse, 0, len(refacciones))
	for _, r := range refacciones {
		out = append(out, FromRefaccion(r))
	}
	return ListaRefaccionesResponse{Estatus: true, Refacciones: out}
}
