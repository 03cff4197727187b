package response

// MensajeResponse is the minimal success envelope: estatus true plus a
// human-readable message.
type MensajeResponse struct {
	Estatus bool   `json:"estatus"`
	Mensaje string `json:"mensaje"`
}

func NuevoMensaje(mensaje string) MensajeResponse {
	return MensajeResponse{Estatus: true, Mensaje: mensaje}
}
