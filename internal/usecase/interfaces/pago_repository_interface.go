package interfaces

import (
	"context"
	"taller_api/internal/domain/entities"
)

// IPagoRepository abstracts DynamoDB persistence for Pago.

type IPagoRepository interface {
	Create(ctx context.Context, p entities.Pago) (entities.Pago, error)
	GetByID(ctx context.Context, id string) (entities.Pago, error)
	ListByReparacionID(ctx context.Context, idReparacion int) ([]entities.Pago, error)
}
