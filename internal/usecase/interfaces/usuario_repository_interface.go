package interfaces

import (
	"context"
	"taller_api/internal/domain/entities"
)

// IUsuarioRepository abstracts DynamoDB persistence for Usuario.

type IUsuarioRepository interface {
	Create(ctx context.Context, u entities.Usuario) (entities.Usuario, error)
	GetByID(ctx context.Context, id int) (entities.Usuario, error)
	// GetByCorreo resolves a user through the correo-index GSI; credential
	// validation is its only caller.
	GetByCorreo(ctx context.Context, correo string) (entities.Usuario, error)
	List(ctx context.Context) ([]entities.Usuario, error)
	// UpdateCampos applies a sparse field-level SET; only the supplied
	// attributes are overwritten.
	UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) (entities.Usuario, error)
	Delete(ctx context.Context, id int) (bool, error)
}
