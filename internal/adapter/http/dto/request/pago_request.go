package request

import "encoding/json"

// PagoCreateRequest carries the optional provider payload for charging a
// repair. It is stored as-is (raw JSON) to support varying provider schemas;
// the amount never comes from it.
type PagoCreateRequest struct {
	Payload json.RawMessage `json:"payload"`
}
