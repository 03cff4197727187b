package entities

// Refaccion is a spare-part catalog entry persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: pk (constant "refacciones")
//   - SK: id (number) — caller-assigned
//
// Catalog entries and repair-embedded RefaccionUsada copies are deliberately
// decoupled; deleting or repricing a catalog entry leaves repairs untouched.
type Refaccion struct {
	ID          int     `json:"idRefaccion"`
	Nombre      string  `json:"nombre"`
	Cantidad    int     `json:"cantidad"`
	Precio      float64 `json:"precio"`
	Descripcion string  `json:"descripcion"`
}
