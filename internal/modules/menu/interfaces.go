package menu

import (
	"context"

	"ristorante/internal/domain"
)

type MenuRepository interface {
	ListCategoriesWithItems(ctx context.Context, onlyAvailable bool) ([]domain.MenuCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.MenuCategory, error)
	CreateCategory(ctx context.Context, c *domain.MenuCategory) error
	UpdateCategory(ctx context.Context, c *domain.MenuCategory) error
	DeleteCategory(ctx context.Context, id int64) error
	GetItemByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	CreateItem(ctx context.Context, it *domain.MenuItem) error
	UpdateItem(ctx context.Context, it *domain.MenuItem) error
	DeleteItem(ctx context.Context, id int64) error
}
