package request

import "taller_api/internal/domain/entities"

// UsuarioCreateRequest is the registration payload. Contrasena travels raw in
// the request body and is hashed before it ever reaches the store.
type UsuarioCreateRequest struct {
	ID         int    `json:"id" binding:"required"`
	Nombre     string `json:"nombre" binding:"required"`
	Apellidos  string `json:"apellidos"`
	Telefono   string `json:"telefono"`
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required"`
	Rol        string `json:"rol"`
}

func (r UsuarioCreateRequest) ToEntity() entities.Usuario {
	return entities.Usuario{
		ID:        r.ID,
		Nombre:    r.Nombre,
		Apellidos: r.Apellidos,
		Telefono:  r.Telefono,
		Correo:    r.Correo,
		Rol:       entities.RolUsuario(r.Rol),
	}
}

// UsuarioUpdateRequest is the sparse update payload: only non-null fields
// overwrite stored values.
type UsuarioUpdateRequest struct {
	Nombre     *string `json:"nombre"`
	Apellidos  *string `json:"apellidos"`
	Telefono   *string `json:"telefono"`
	Correo     *string `json:"correo"`
	Contrasena *string `json:"contrasena"`
	Rol        *string `json:"rol"`
}

// Campos flattens the patch into the attribute map the usecase consumes.
func (r UsuarioUpdateRequest) Campos() map[string]interface{} {
	campos := map[string]interface{}{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.Apellidos != nil {
		campos["apellidos"] = *r.Apellidos
	}
	if r.Telefono != nil {
		campos["telefono"] = *r.Telefono
	}
	if r.Correo != nil {
		campos["correo"] = *r.Correo
	}
	if r.Contrasena != nil {
		campos["contrasena"] = *r.Contrasena
	}
	if r.Rol != nil {
		campos["rol"] = *r.Rol
	}
	return campos
}

// ValidarCredencialesRequest is the payload for POST /usuarios/validar.
type ValidarCredencialesRequest struct {
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required"`
}
