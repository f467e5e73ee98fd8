package entities

import "time"

// RequestStatus is the persisted state of a service request. Declined and
// canceled requests are deleted rather than kept with a terminal status, so
// only pending and accepted rows ever exist.
type RequestStatus string

const (
	// RequestStatusPending marks a request awaiting the provider's answer
	RequestStatusPending RequestStatus = "pending"

	// RequestStatusAccepted marks a request the provider has taken on
	RequestStatusAccepted RequestStatus = "accepted"
)

// Request is a requester's ask for a specific provider to perform a
// specific service.
type Request struct {
	ID          string        `json:"id" db:"id"`
	RequesterID string        `json:"requester_id" db:"requester_id"`
	ProviderID  string        `json:"provider_id" db:"provider_id"`
	ServiceID   string        `json:"service_id" db:"service_id"`
	Status      RequestStatus `json:"status" db:"status"`
	RequestDate time.Time     `json:"request_date" db:"request_date"`
}

// RequesterRequestView is a request as listed for the requester who created
// it, with the service name joined in.
type RequesterRequestView struct {
	ID          string        `json:"id"`
	RequestDate time.Time     `json:"request_date"`
	Status      RequestStatus `json:"status"`
	ServiceName string        `json:"serviceName"`
}

// ProviderRequestView is a pending request as listed for the addressed
// provider, with the requester's identity and the service name joined in.
type ProviderRequestView struct {
	RequestID          string `json:"requestId"`
	ServiceID          string `json:"serviceId"`
	RequesterFirstName string `json:"requesterFirstName"`
	RequesterLastName  string `json:"requesterLastName"`
	RequesterEmail     string `json:"requesterEmail"`
	ServiceName        string `json:"serviceName"`
}
