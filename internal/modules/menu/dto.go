package menu

type CategoryRequest struct {
	Name      string `json:"name" binding:"required" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

type ItemRequest struct {
	CategoryID  int64   `json:"category_id" binding:"required" validate:"required"`
	Name        string  `json:"name" binding:"required" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required" validate:"gte=0"`
	IsAvailable *bool   `json:"is_available"`
	SortOrder   int     `json:"sort_order"`
}
