package response

import (
	"time"

	"taller_api/internal/domain/entities"
)

type DispositivoCitaResponse struct {
	ID               int    `json:"idDispositivo"`
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	Caracteristicas  string `json:"caracteristicas"`
	FallasReportadas string `json:"fallasReportadas"`
	Foto             string `json:"foto,omitempty"`
}

// CitaResponse is the appointment wire shape. Identifiers are plain JSON
// numbers/strings; no storage-native reference type ever leaks here.
type CitaResponse struct {
	ID            int                       `json:"idCita"`
	FechaRegistro time.Time                 `json:"fechaRegistro"`
	FechaEntrega  time.Time                 `json:"fechaEntrega"`
	Motivo        string                    `json:"motivoCita"`
	Hora          string                    `json:"horaCita"`
	Estatus       string                    `json:"estatusCita"`
	IDUsuarioC    int                       `json:"idUsuarioC"`
	IDUsuarioT    int                       `json:"idUsuarioT"`
	Dispositivos  []DispositivoCitaResponse `json:"dispositivos"`
}

func FromCita(c entities.Cita) CitaResponse {
	dispositivos := make([]DispositivoCitaResponse, 0, len(c.Dispositivos))
	for _, d := range c.Dispositivos {
		dispositivos = append(dispositivos, DispositivoCitaResponse{
			ID:               d.ID,
			Marca:            d.Marca,
			Modelo:           d.Modelo,
			Caracteristicas:  d.Caracteristicas,
			FallasReportadas: d.FallasReportadas,
			Foto:             d.Foto,
		})
	}
	return CitaResponse{
		ID:            c.ID,
		FechaRegistro: c.FechaRegistro,
		FechaEntrega:  c.FechaEntrega,
		Motivo:        c.Motivo,
		Hora:          c.Hora,
		Estatus:       string(c.Estatus),
		IDUsuarioC:    c.IDUsuarioC,
		IDUsuarioT:    c.IDUsuarioT,
		Dispositivos:  dispositivos,
	}
}

// CitaCreadaResponse confirms a creation and reports the client's display
// name alongside the stored appointment.
type CitaCreadaResponse struct {
	Estatus       bool         `json:"estatus"`
	Mensaje       string       `json:"mensaje"`
	NombreCliente string       `json:"nombreCliente"`
	Cita          CitaResponse `json:"cita"`
}

// CitaTransicionResponse reports a status transition, including the
// idempotent already-in-state case.
type CitaTransicionResponse struct {
	Estatus bool         `json:"estatus"`
	Mensaje string       `json:"mensaje"`
	Cita    CitaResponse `json:"cita"`
}

// ListaCitasResponse wraps the collection under its named key.
type ListaCitasResponse struct {
	Estatus bool           `json:"estatus"`
	Citas   []CitaResponse `json:"citas"`
}

func FromCitas(citas []entities.Cita) ListaCitasResponse {
	out := make([]CitaResponse, 0, len(citas))
	for _, c := range citas {
		out = append(out, FromCita(c))
	}
	return ListaCitasResponse{Estatus: true, Citas: out}
}
