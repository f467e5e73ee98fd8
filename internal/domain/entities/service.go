package entities

// Service is one entry of the static task catalog.
type Service struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
