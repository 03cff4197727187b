package usecase

import (
	"context"
	"errors"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"
)

var (
	ErrDispositivoNotFound   = errors.New("dispositivo no encontrado")
	ErrDispositivoIDInvalido = errors.New("id de dispositivo invalido")
	ErrDispositivoYaExiste   = errors.New("el dispositivo ya existe")
	ErrDispositivoSinCambios = errors.New("ningun campo para actualizar")
)

// IDispositivoUseCase manages the standalone device catalog. Appointment
// embedded device snapshots are copies and stay untouched by catalog edits.

type IDispositivoUseCase interface {
	Crear(ctx context.Context, d entities.Dispositivo) (entities.Dispositivo, error)
	Listar(ctx context.Context) ([]entities.Dispositivo, error)
	Obtener(ctx context.Context, id int) (entities.Dispositivo, error)
	Actualizar(ctx context.Context, id int, campos map[string]interface{}) (entities.Dispositivo, error)
	Eliminar(ctx context.Context, id int) error
}

type DispositivoUseCase struct {
	repo interfaces.IDispositivoRepository
}

var _ IDispositivoUseCase = (*DispositivoUseCase)(nil)

func NewDispositivoUseCase(repo interfaces.IDispositivoRepository) *DispositivoUseCase {
	return &DispositivoUseCase{repo: repo}
}

func (u *DispositivoUseCase) Crear(ctx context.Context, d entities.Dispositivo) (entities.Dispositivo, error) {
	if d.ID <= 0 {
		return entities.Dispositivo{}, ErrDispositivoIDInvalido
	}
	creado, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Dispositivo{}, err
	}
	if creado.ID == 0 {
		return entities.Dispositivo{}, ErrDispositivoYaExiste
	}
	return creado, nil
}

func (u *DispositivoUseCase) Listar(ctx context.Context) ([]entities.Dispositivo, error) {
	return u.repo.List(ctx)
}

func (u *DispositivoUseCase) Obtener(ctx context.Context, id int) (entities.Dispositivo, error) {
	if id <= 0 {
		return entities.Dispositivo{}, ErrDispositivoIDInvalido
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Dispositivo{}, err
	}
	if d.ID == 0 {
		return entities.Dispositivo{}, ErrDispositivoNotFound
	}
	return d, nil
}

var camposDispositivo = map[string]bool{
	"marca":             true,
	"modelo":            true,
	"caracteristicas":   true,
	"fallas_reportadas": true,
	"foto":              true,
}

func (u *DispositivoUseCase) Actualizar(ctx context.Context, id int, campos map[string]interface{}) (entities.Dispositivo, error) {
	if id <= 0 {
		return entities.Dispositivo{}, ErrDispositivoIDInvalido
	}

	filtrados := make(map[string]interface{}, len(campos))
	for k, v := range campos {
		if !camposDispositivo[k] || v == nil {
			continue
		}
		filtrados[k] = v
	}
	if len(filtrados) == 0 {
		return entities.Dispositivo{}, ErrDispositivoSinCambios
	}

	actualizado, err := u.repo.UpdateCampos(ctx, id, filtrados)
	if err != nil {
		return entities.Dispositivo{}, err
	}
	if actualizado.ID == 0 {
		return entities.Dispositivo{}, ErrDispositivoNotFound
	}
	return actualizado, nil
}

func (u *DispositivoUseCase) Eliminar(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrDispositivoIDInvalido
	}
	eliminado, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !eliminado {
		return ErrDispositivoNotFound
	}
	return nil
}
