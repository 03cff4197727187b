package interfaces

import (
	"context"
	"encoding/json"
)

// IPasarelaPagos abstracts external payment providers (e.g. Mercado Pago).
//
// The payments usecase charges a finalized repair's total through it and
// persists the provider response payload for traceability.
type IPasarelaPagos interface {
	CobrarPago(ctx context.Context, monto float64, descripcion string, payload json.RawMessage) (idProveedor string, estatusProveedor string, respuestaProveedor json.RawMessage, err error)
}
