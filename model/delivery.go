package model

import "time"

const (
	//delivery statuses
	PENDING string = "pending"
	SENT           = "sent"
	FAILED         = "failed"

	//channels, only telegram is active today
	TELEGRAM = "telegram"
	WHATSAPP = "whatsapp"
	EMAIL    = "email"
)

// Delivery is one audit row per send attempt. Rows are insert-only,
// CreatedAt is assigned by the store at write time.
type Delivery struct {
	Id               string
	AlumniId         string
	Channel          string
	ProviderResponse *string
	Status           string
	CreatedAt        time.Time
}
