package interfaces

import (
	"context"
	"taller_api/internal/domain/entities"
)

// IReparacionRepository abstracts DynamoDB persistence for Reparacion.
//
// Embedded spare-part usage lives under the refacciones map attribute keyed
// by catalog id, so AddRefaccion and UpdateRefaccion are single conditional
// item updates addressed by that key.
type IReparacionRepository interface {
	Create(ctx context.Context, r entities.Reparacion) (entities.Reparacion, error)
	GetByID(ctx context.Context, id int) (entities.Reparacion, error)
	// List returns every repair; with soloConRefacciones it filters to
	// repairs whose embedded usage map is non-empty.
	List(ctx context.Context, soloConRefacciones bool) ([]entities.Reparacion, error)
	UltimoID(ctx context.Context) (int, error)
	UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) (entities.Reparacion, error)
	UpdateEstatus(ctx context.Context, id int, nuevo entities.EstatusReparacion) (entities.Reparacion, error)
	// AddRefaccion appends a usage entry; the condition fails (zero value
	// returned) when the repair is missing or the id is already present.
	AddRefaccion(ctx context.Context, id int, uso entities.RefaccionUsada) (entities.Reparacion, error)
	// UpdateRefaccion overwrites nombre/cantidad/precio of the entry keyed
	// by idRefaccion, leaving every other entry untouched.
	UpdateRefaccion(ctx context.Context, id int, idRefaccion int, nombre string, cantidad int, precio float64) (entities.Reparacion, error)
}
