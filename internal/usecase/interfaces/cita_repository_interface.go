package interfaces

import (
	"context"
	"taller_api/internal/domain/entities"
)

// ICitaRepository abstracts DynamoDB persistence for Cita.
//
// Not-found reads return the zero value with a nil error; the usecase layer
// maps that to its typed errors. Create and UpdateEstatus are conditional
// writes: a failed condition (duplicate id, status already moved) also comes
// back as the zero value so exactly one caller wins a race.
type ICitaRepository interface {
	Create(ctx context.Context, c entities.Cita) (entities.Cita, error)
	GetByID(ctx context.Context, id int) (entities.Cita, error)
	List(ctx context.Context) ([]entities.Cita, error)
	// UltimoID returns the highest existing appointment id, 0 when the
	// collection is empty. Backed by a descending query with limit 1, never
	// a count.
	UltimoID(ctx context.Context) (int, error)
	// UpdateEstatus sets the status only while the stored status still
	// differs from nuevo and is not terminal for the requested transition.
	UpdateEstatus(ctx context.Context, id int, nuevo entities.EstatusCita) (entities.Cita, error)
	Delete(ctx context.Context, id int) (bool, error)
}
