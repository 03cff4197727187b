package response

import "taller_api/internal/domain/entities"

// UsuarioResponse is the user wire shape; the stored credential hash is
// deliberately absent.
type UsuarioResponse struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo"`
	Rol       string `json:"rol"`
}

func FromUsuario(u entities.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellidos: u.Apellidos,
		Telefono:  u.Telefono,
		Correo:    u.Correo,
		Rol:       string(u.Rol),
	}
}

type UsuarioCreadoResponse struct {
	Estatus bool            `json:"estatus"`
	Mensaje string          `json:"mensaje"`
	Usuario UsuarioResponse `json:"usuario"`
}

type ListaUsuariosResponse struct {
	Estatus  bool              `json:"estatus"`
	Usuarios []UsuarioResponse `json:"usuarios"`
}

func FromUsuarios(usuarios []entities.Usuario) ListaUsuariosResponse {
	out := make([]UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, FromUsuario(u))
	}
	return ListaUsuariosResponse{Estatus: true, Usuarios: out}
}

// CredencialesValidasResponse confirms a successful credential check.
type CredencialesValidasResponse struct {
	Estatus bool            `json:"estatus"`
	Mensaje string          `json:"mensaje"`
	Usuario UsuarioResponse `json:"usuario"`
}
