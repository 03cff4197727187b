package entities

// Dispositivo is a standalone catalog device persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: pk (constant "dispositivos")
//   - SK: id (number) — caller-assigned
//
// Appointment-embedded device snapshots (DispositivoCita) are copies; the
// catalog and the embedded entries never cascade into each other.
type Dispositivo struct {
	ID               int    `json:"idDispositivo"`
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	Caracteristicas  string `json:"caracteristicas"`
	FallasReportadas string `json:"fallasReportadas"`
	Foto             string `json:"foto,omitempty"`
}
