package gallery

type ImageRequest struct {
	Title     string `json:"title" binding:"required" validate:"required"`
	URL       string `json:"url" binding:"required" validate:"required,url"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}
