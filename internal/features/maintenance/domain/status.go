package domain

import "time"

// DefaultMessage is shown when maintenance mode is enabled without one.
const DefaultMessage = "The canteen is temporarily closed for maintenance."

// Status is the current maintenance switch.
type Status struct {
	Enabled   bool      `json:"enabled"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
