package usecase

import (
	"context"
	"errors"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"
)

var (
	ErrRefaccionNotFound   = errors.New("refaccion no encontrada")
	ErrRefaccionIDInvalido = errors.New("id de refaccion invalido")
	ErrRefaccionYaExiste   = errors.New("la refaccion ya existe en el catalogo")
	ErrRefaccionSinCambios = errors.New("ningun campo para actualizar")
)

// IRefaccionUseCase manages the spare-part catalog. Repair-embedded usage
// copies are out of its reach: catalog mutations never cascade into repairs.

type IRefaccionUseCase interface {
	Crear(ctx context.Context, r entities.Refaccion) (entities.Refaccion, error)
	Listar(ctx context.Context) ([]entities.Refaccion, error)
	Obtener(ctx context.Context, id int) (entities.Refaccion, error)
	Actualizar(ctx context.Context, id int, campos map[string]interface{}) (entities.Refaccion, error)
	Eliminar(ctx context.Context, id int) error
}

type RefaccionUseCase struct {
	repo interfaces.IRefaccionRepository
}

var _ IRefaccionUseCase = (*RefaccionUseCase)(nil)

func NewRefaccionUseCase(repo interfaces.IRefaccionRepository) *RefaccionUseCase {
	return &RefaccionUseCase{repo: repo}
}

// Crear inserts a catalog entry; a duplicate id is a conflict, detected by
// the conditional write rather than a separate read.
func (u *RefaccionUseCase) Crear(ctx context.Context, r entities.Refaccion) (entities.Refaccion, error) {
	if r.ID <= 0 {
		return entities.Refaccion{}, ErrRefaccionIDInvalido
	}
	creada, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Refaccion{}, err
	}
	if creada.ID == 0 {
		return entities.Refaccion{}, ErrRefaccionYaExiste
	}
	return creada, nil
}

func (u *RefaccionUseCase) Listar(ctx context.Context) ([]entities.Refaccion, error) {
	return u.repo.List(ctx)
}

func (u *RefaccionUseCase) Obtener(ctx context.Context, id int) (entities.Refaccion, error) {
	if id <= 0 {
		return entities.Refaccion{}, ErrRefaccionIDInvalido
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Refaccion{}, err
	}
	if r.ID == 0 {
		return entities.Refaccion{}, ErrRefaccionNotFound
	}
	return r, nil
}

var camposRefaccion = map[string]bool{
	"nombre":      true,
	"cantidad":    true,
	"precio":      true,
	"descripcion": true,
}

// Actualizar applies a sparse update; a patch that supplies nothing to change
// is rejected before any store access.
func (u *RefaccionUseCase) Actualizar(ctx context.Context, id int, campos map[string]interface{}) (entities.Refaccion, error) {
	if id <= 0 {
		return entities.Refaccion{}, ErrRefaccionIDInvalido
	}

	filtrados := make(map[string]interface{}, len(campos))
	for k, v := range campos {
		if !camposRefaccion[k] || v == nil {
			continue
		}
		filtrados[k] = v
	}
	if len(filtrados) == 0 {
		return entities.Refaccion{}, ErrRefaccionSinCambios
	}

	actualizada, err := u.repo.UpdateCampos(ctx, id, filtrados)
	if err != nil {
		return entities.Refaccion{}, err
	}
	if actualizada.ID == 0 {
		return entities.Refaccion{}, ErrRefaccionNotFound
	}
	return actualizada, nil
}

func (u *RefaccionUseCase) Eliminar(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrRefaccionIDInvalido
	}
	eliminada, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !eliminada {
		return ErrRefaccionNotFound
	}
	return nil
}
