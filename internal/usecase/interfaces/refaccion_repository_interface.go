package interfaces

import (
	"context"
	"taller_api/internal/domain/entities"
)

// IRefaccionRepository abstracts DynamoDB persistence for the spare-part
// catalog. Catalog rows are independent of repair-embedded usage copies.
type IRefaccionRepository interface {
	Create(ctx context.Context, r entities.Refaccion) (entities.Refaccion, error)
	GetByID(ctx context.Context, id int) (entities.Refaccion, error)
	List(ctx context.Context) ([]entities.Refaccion, error)
	UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) (entities.Refaccion, error)
	Delete(ctx context.Context, id int) (bool, error)
}
