package entity

// Region is read-only reference data attached to a customer.
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}
