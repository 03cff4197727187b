package entities

// RolUsuario distinguishes the three account roles handled by the API.

type RolUsuario string

const (
	RolCliente  RolUsuario = "cliente"
	RolTecnico  RolUsuario = "tecnico"
	RolAdmin    RolUsuario = "admin"
)

func (r RolUsuario) EsValido() bool {
	switch r {
	case RolCliente, RolTecnico, RolAdmin:
		return true
	}
	return false
}

// Usuario is a user account persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: pk (constant "usuarios")
//   - SK: id (number) — caller-assigned
//   - GSI (correo-index): correo, used by credential validation
//
// Contrasena holds a bcrypt hash, never the raw secret; it is excluded from
// every JSON response.
type Usuario struct {
	ID         int        `json:"id"`
	Nombre     string     `json:"nombre"`
	Apellidos  string     `json:"apellidos"`
	Telefono   string     `json:"telefono"`
	Correo     string     `json:"correo"`
	Contrasena string     `json:"-"`
	Rol        RolUsuario `json:"rol"`
}

// NombreCompleto is the display name returned by appointment creation.
func (u Usuario) NombreCompleto() string {
	if u.Apellidos == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellidos
}
