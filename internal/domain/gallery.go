package domain

import "time"

type GalleryImage struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title" validate:"required"`
	URL       string    `json:"url" validate:"required,url"`
	Category  string    `json:"category,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
