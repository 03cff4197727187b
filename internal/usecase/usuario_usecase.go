package usecase

import (
	"context"
	"errors"
	"strings"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsuarioNotFound      = errors.New("usuario no encontrado")
	ErrUsuarioIDInvalido    = errors.New("id de usuario invalido")
	ErrUsuarioYaExiste      = errors.New("el usuario ya existe")
	ErrUsuarioSinCambios    = errors.New("ningun campo para actualizar")
	ErrRolInvalido          = errors.New("rol de usuario no reconocido")
	ErrCorreoNoRegistrado   = errors.New("correo no registrado")
	ErrContrasenaIncorrecta = errors.New("contrasena incorrecta")
	ErrContrasenaRequerida  = errors.New("contrasena requerida")
)

// IUsuarioUseCase manages user accounts. Credentials are stored as bcrypt
// hashes; the raw secret is hashed on the way in and compared with
// bcrypt.CompareHashAndPassword on validation, never logged.

type IUsuarioUseCase interface {
	Registrar(ctx context.Context, u entities.Usuario, contrasena string) (entities.Usuario, error)
	Listar(ctx context.Context) ([]entities.Usuario, error)
	Obtener(ctx context.Context, id int) (entities.Usuario, error)
	Actualizar(ctx context.Context, id int, campos map[string]interface{}) (entities.Usuario, error)
	Eliminar(ctx context.Context, id int) error
	Validar(ctx context.Context, correo, contrasena string) (entities.Usuario, error)
}

type UsuarioUseCase struct {
	repo interfaces.IUsuarioRepository
}

var _ IUsuarioUseCase = (*UsuarioUseCase)(nil)

func NewUsuarioUseCase(repo interfaces.IUsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

func (u *UsuarioUseCase) Registrar(ctx context.Context, usuario entities.Usuario, contrasena string) (entities.Usuario, error) {
	if usuario.ID <= 0 {
		return entities.Usuario{}, ErrUsuarioIDInvalido
	}
	if strings.TrimSpace(contrasena) == "" {
		return entities.Usuario{}, ErrContrasenaRequerida
	}
	if usuario.Rol == "" {
		usuario.Rol = entities.RolCliente
	}
	if !usuario.Rol.EsValido() {
		return entities.Usuario{}, ErrRolInvalido
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return entities.Usuario{}, err
	}
	usuario.Contrasena = string(hash)

	creado, err := u.repo.Create(ctx, usuario)
	if err != nil {
		return entities.Usuario{}, err
	}
	if creado.ID == 0 {
		return entities.Usuario{}, ErrUsuarioYaExiste
	}
	return creado, nil
}

func (u *UsuarioUseCase) Listar(ctx context.Context) ([]entities.Usuario, error) {
	return u.repo.List(ctx)
}

func (u *UsuarioUseCase) Obtener(ctx context.Context, id int) (entities.Usuario, error) {
	if id <= 0 {
		return entities.Usuario{}, ErrUsuarioIDInvalido
	}
	usuario, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Usuario{}, err
	}
	if usuario.ID == 0 {
		return entities.Usuario{}, ErrUsuarioNotFound
	}
	return usuario, nil
}

var camposUsuario = map[string]bool{
	"nombre":     true,
	"apellidos":  true,
	"telefono":   true,
	"correo":     true,
	"contrasena": true,
	"rol":        true,
}

// Actualizar applies a sparse update. A new contrasena is re-hashed before it
// reaches the store; an unrecognized rol is rejected.
func (u *UsuarioUseCase) Actualizar(ctx context.Context, id int, campos map[string]interface{}) (entities.Usuario, error) {
	if id <= 0 {
		return entities.Usuario{}, ErrUsuarioIDInvalido
	}

	filtrados := make(map[string]interface{}, len(campos))
	for k, v := range campos {
		if !camposUsuario[k] || v == nil {
			continue
		}
		filtrados[k] = v
	}
	if len(filtrados) == 0 {
		return entities.Usuario{}, ErrUsuarioSinCambios
	}

	if v, ok := filtrados["rol"]; ok {
		s, _ := v.(string)
		if !entities.RolUsuario(s).EsValido() {
			return entities.Usuario{}, ErrRolInvalido
		}
	}
	if v, ok := filtrados["contrasena"]; ok {
		s, _ := v.(string)
		if strings.TrimSpace(s) == "" {
			return entities.Usuario{}, ErrContrasenaRequerida
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
		if err != nil {
			return entities.Usuario{}, err
		}
		filtrados["contrasena"] = string(hash)
	}

	actualizado, err := u.repo.UpdateCampos(ctx, id, filtrados)
	if err != nil {
		return entities.Usuario{}, err
	}
	if actualizado.ID == 0 {
		return entities.Usuario{}, ErrUsuarioNotFound
	}
	return actualizado, nil
}

// Eliminar removes the account directly; nothing cascades.
func (u *UsuarioUseCase) Eliminar(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrUsuarioIDInvalido
	}
	eliminado, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !eliminado {
		return ErrUsuarioNotFound
	}
	return nil
}

// Validar checks a claimed credential. Unknown correo and wrong contrasena
// are distinct failures so the boundary can map them to 404 and 400.
func (u *UsuarioUseCase) Validar(ctx context.Context, correo, contrasena string) (entities.Usuario, error) {
	correo = strings.TrimSpace(correo)
	if correo == "" || contrasena == "" {
		return entities.Usuario{}, ErrContrasenaRequerida
	}

	usuario, err := u.repo.GetByCorreo(ctx, correo)
	if err != nil {
		return entities.Usuario{}, err
	}
	if usuario.ID == 0 {
		return entities.Usuario{}, ErrCorreoNoRegistrado
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(contrasena)); err != nil {
		return entities.Usuario{}, ErrContrasenaIncorrecta
	}
	return usuario, nil
}
