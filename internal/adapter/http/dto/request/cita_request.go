package request

import "taller_api/internal/domain/entities"

type DispositivoCitaRequest struct {
	ID               int    `json:"idDispositivo"`
	Marca            string `json:"marca" binding:"required"`
	Modelo           string `json:"modelo" binding:"required"`
	Caracteristicas  string `json:"caracteristicas"`
	FallasReportadas string `json:"fallasReportadas"`
	Foto             string `json:"foto"`
}

// CitaCreateRequest is the creation payload for an appointment. The id, the
// registration/delivery dates and the initial status are never taken from
// the caller.
type CitaCreateRequest struct {
	Motivo       string                   `json:"motivoCita" binding:"required"`
	Hora         string                   `json:"horaCita" binding:"required"`
	IDUsuarioC   int                      `json:"idUsuarioC" binding:"required"`
	IDUsuarioT   int                      `json:"idUsuarioT"`
	Dispositivos []DispositivoCitaRequest `json:"dispositivos"`
}

func (r CitaCreateRequest) ToEntity() entities.Cita {
	dispositivos := make([]entities.DispositivoCita, 0, len(r.Dispositivos))
	for _, d := range r.Dispositivos {
		dispositivos = append(dispositivos, entities.DispositivoCita{
			ID:               d.ID,
			Marca:            d.Marca,
			Modelo:           d.Modelo,
			Caracteristicas:  d.Caracteristicas,
			FallasReportadas: d.FallasReportadas,
			Foto:             d.Foto,
		})
	}
	return entities.Cita{
		Motivo:       r.Motivo,
		Hora:         r.Hora,
		IDUsuarioC:   r.IDUsuarioC,
		IDUsuarioT:   r.IDUsuarioT,
		Dispositivos: dispositivos,
	}
}
