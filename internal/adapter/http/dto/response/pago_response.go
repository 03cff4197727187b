package response

import (
	"time"

	"taller_api/internal/domain/entities"
)

type PagoResponse struct {
	ID           string  `json:"idPago"`
	IDReparacion int     `json:"idReparacion"`
	Fecha        string  `json:"fecha"`
	Monto        float64 `json:"monto"`
	Estatus      string  `json:"estatus"`
}

func FromPago(p entities.Pago) PagoResponse {
	return PagoResponse{
		ID:           p.ID,
		IDReparacion: p.IDReparacion,
		Fecha:        p.Fecha.Format(time.RFC3339),
		Monto:        p.Monto,
		Estatus:      string(p.Estatus),
	}
}

type PagoCreadoResponse struct {
	Estatus bool         `json:"estatus"`
	Mensaje string       `json:"mensaje"`
	Pago    PagoResponse `json:"pago"`
}
