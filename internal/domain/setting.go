package domain

import "time"

// Setting is one key/value pair of restaurant configuration
// (contact email, opening hours note, booking policy text, ...).
type Setting struct {
	Key       string    `json:"key" validate:"required"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
