package request

import "taller_api/internal/domain/entities"

// RefaccionCreateRequest is the catalog creation payload; the id is chosen by
// the caller and duplicates are a conflict.
type RefaccionCreateRequest struct {
	ID          int     `json:"idRefaccion" binding:"required"`
	Nombre      string  `json:"nombre" binding:"required"`
	Cantidad    int     `json:"cantidad"`
	Precio      float64 `json:"precio" binding:"required"`
	Descripcion string  `json:"descripcion"`
}

func (r RefaccionCreateRequest) ToEntity() entities.Refaccion {
	return entities.Refaccion{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Cantidad:    r.Cantidad,
		Precio:      r.Precio,
		Descripcion: r.Descripcion,
	}
}

// RefaccionUpdateRequest is the sparse catalog update payload.
type RefaccionUpdateRequest struct {
	Nombre      *string  `json:"nombre"`
	Cantidad    *int     `json:"cantidad"`
	Precio      *float64 `json:"precio"`
	Descripcion *string  `json:"descripcion"`
}

func (r RefaccionUpdateRequest) Campos() map[string]interface{} {
	campos := map[string]interface{}{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.Cantidad != nil {
		campos["cantidad"] = *r.Cantidad
	}
	if r.Precio != nil {
		campos["precio"] = *r.Precio
	}
	if r.Descripcion != nil {
		campos["descripcion"] = *r.Descripcion
	}
	return campos
}
