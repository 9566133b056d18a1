package models

// Order is read-only to this core; the ledger only lists and aggregates.
// Buyer references a user email but is not enforced.
type Order struct {
	ID     string  `json:"id"`
	Buyer  string  `json:"buyer"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}
