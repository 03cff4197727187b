package entities

import "time"

// EstatusCita represents the lifecycle of an appointment (cita).
//
// Domain notes:
//   - Pendiente is the initial status assigned on creation.
//   - Confirmada, Cancelada and Atendida are terminal: no transition out of
//     Cancelada or Atendida is defined, and re-requesting a transition the
//     appointment already satisfies is a no-op, not an error.

type EstatusCita string

const (
	EstatusCitaPendiente  EstatusCita = "Pendiente"
	EstatusCitaConfirmada EstatusCita = "Confirmada"
	EstatusCitaCancelada  EstatusCita = "Cancelada"
	EstatusCitaAtendida   EstatusCita = "Atendida"
)

// EsValido reports whether the status belongs to the closed enumeration.
func (e EstatusCita) EsValido() bool {
	switch e {
	case EstatusCitaPendiente, EstatusCitaConfirmada, EstatusCitaCancelada, EstatusCitaAtendida:
		return true
	}
	return false
}

// DispositivoCita is the device snapshot embedded in an appointment.
//
// Embedded copies are owned by the appointment: they have no identity outside
// it and are never reconciled against the standalone dispositivos catalog.
type DispositivoCita struct {
	ID               int    `json:"idDispositivo"`
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	Caracteristicas  string `json:"caracteristicas"`
	FallasReportadas string `json:"fallasReportadas"`
	Foto             string `json:"foto,omitempty"`
}

// Cita is the repair-shop appointment persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: pk (constant "citas")
//   - SK: id (number) — allocator-assigned, max existing + 1
//
// FechaEntrega is always FechaRegistro plus three calendar days.
type Cita struct {
	ID            int               `json:"idCita"`
	FechaRegistro time.Time         `json:"fechaRegistro"`
	FechaEntrega  time.Time         `json:"fechaEntrega"`
	Motivo        string            `json:"motivoCita"`
	Hora          string            `json:"horaCita"`
	Estatus       EstatusCita       `json:"estatusCita"`
	IDUsuarioC    int               `json:"idUsuarioC"`
	IDUsuarioT    int               `json:"idUsuarioT"`
	Dispositivos  []DispositivoCita `json:"dispositivos"`
}
