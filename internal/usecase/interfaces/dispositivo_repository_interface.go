package interfaces

import (
	"context"
	"taller_api/internal/domain/entities"
)

// IDispositivoRepository abstracts DynamoDB persistence for the standalone
// device catalog.
type IDispositivoRepository interface {
	Create(ctx context.Context, d entities.Dispositivo) (entities.Dispositivo, error)
	GetByID(ctx context.Context, id int) (entities.Dispositivo, error)
	List(ctx context.Context) ([]entities.Dispositivo, error)
	UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) (entities.Dispositivo, error)
	Delete(ctx context.Context, id int) (bool, error)
}
