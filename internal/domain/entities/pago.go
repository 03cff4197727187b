package entities

import (
	"encoding/json"
	"time"
)

// EstatusPago represents the payment processing outcome.

type EstatusPago string

const (
	EstatusPagoPendiente EstatusPago = "pendiente"
	EstatusPagoAprobado  EstatusPago = "aprobado"
	EstatusPagoRechazado EstatusPago = "rechazado"
)

// Pago is a charge collected for a finalized repair.
//
// Storage model (DynamoDB):
//   - PK: id (string, provider payment id)
//   - GSI (reparacion_id-index): reparacion_id
//
// PayloadProveedor keeps the raw provider response (JSON) for audit.
type Pago struct {
	ID               string          `json:"idPago"`
	IDReparacion     int             `json:"idReparacion"`
	Fecha            time.Time       `json:"fecha"`
	Monto            float64         `json:"monto"`
	Estatus          EstatusPago     `json:"estatus"`
	PayloadProveedor json.RawMessage `json:"payloadProveedor,omitempty"`
}
