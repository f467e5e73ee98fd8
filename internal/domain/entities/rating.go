package entities

import "time"

// Rating is a single 1-5 score a requester gave a provider. A requester may
// rate the same provider more than once.
type Rating struct {
	ID          string    `json:"id" db:"id"`
	ProviderID  string    `json:"provider_id" db:"provider_id"`
	RequesterID string    `json:"requester_id" db:"requester_id"`
	Rating      int       `json:"rating" db:"rating"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ProviderMatch is a provider returned by matching, annotated with the mean
// of its ratings. AverageRating is nil when the provider has none.
type ProviderMatch struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"f_name"`
	LastName      string   `json:"l_name"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	CurrentTown   string   `json:"current_town"`
	AverageRating *float64 `json:"average_rating"`
}

// ProviderSummary is a provider with the ids of every service it offers,
// used by the unfiltered provider listing.
type ProviderSummary struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"f_name"`
	LastName      string   `json:"l_name"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	ServiceIDs    []string `json:"service_ids"`
	AverageRating *float64 `json:"average_rating"`
}

// ProviderLocation is the subset of provider fields needed for map display.
type ProviderLocation struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"f_name"`
	LastName    string  `json:"l_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CurrentTown string  `json:"current_town"`
}
