package domain

import "time"

type MenuCategory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []MenuItem `json:"items,omitempty"`
}

type MenuItem struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"required,gte=0"`
	IsAvailable bool      `json:"is_available"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
