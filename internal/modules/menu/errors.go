package menu

import "errors"

var (
	ErrValidation       = errors.New("menu validation error")
	ErrCategoryNotFound = errors.New("menu category not found")
	ErrItemNotFound     = errors.New("menu item not found")
)
