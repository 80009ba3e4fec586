package domain

import "time"

type Customer struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	Phone      string     `json:"phone,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	Anonymized bool       `json:"anonymized"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
