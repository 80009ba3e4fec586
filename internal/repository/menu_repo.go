package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ristorante/internal/domain"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

type menuCategoryModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	SortOrder int       `gorm:"column:sort_order"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (menuCategoryModel) TableName() string { return "menu_categories" }

type menuItemModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CategoryID  int64     `gorm:"column:category_id;index"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	IsAvailable bool      `gorm:"column:is_available"`
	SortOrder   int       `gorm:"column:sort_order"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (menuItemModel) TableName() string { return "menu_items" }

func toDomainCategory(m menuCategoryModel) domain.MenuCategory {
	return domain.MenuCategory{
		ID:        m.ID,
		Name:      m.Name,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainItem(m menuItemModel) domain.MenuItem {
	return domain.MenuItem{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		IsAvailable: m.IsAvailable,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ListCategoriesWithItems returns the full menu in display order.
func (r *MenuRepository) ListCategoriesWithItems(ctx context.Context, onlyAvailable bool) ([]domain.MenuCategory, error) {
	var cats []menuCategoryModel
	if err := r.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Order("sort_order ASC, name ASC")
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}
	var items []menuItemModel
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]domain.MenuItem, len(cats))
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], toDomainItem(it))
	}

	out := make([]domain.MenuCategory, 0, len(cats))
	for _, cm := range cats {
		c := toDomainCategory(cm)
		c.Items = byCategory[c.ID]
		out = append(out, c)
	}
	return out, nil
}

func (r *MenuRepository) CreateCategory(ctx context.Context, c *domain.MenuCategory) error {
	m := menuCategoryModel{Name: c.Name, SortOrder: c.SortOrder}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = toDomainCategory(m)
	return nil
}

func (r *MenuRepository) UpdateCategory(ctx context.Context, c *domain.MenuCategory) error {
	m := menuCategoryModel{ID: c.ID, Name: c.Name, SortOrder: c.SortOrder, CreatedAt: c.CreatedAt}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*c = toDomainCategory(m)
	return nil
}

func (r *MenuRepository) DeleteCategory(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&menuItemModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&menuCategoryModel{}, id).Error
	})
}

func (r *MenuRepository) GetCategoryByID(ctx context.Context, id int64) (*domain.MenuCategory, error) {
	var m menuCategoryModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	c := toDomainCategory(m)
	return &c, nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, it *domain.MenuItem) error {
	m := menuItemModel{
		CategoryID:  it.CategoryID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		IsAvailable: it.IsAvailable,
		SortOrder:   it.SortOrder,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*it = toDomainItem(m)
	return nil
}

func (r *MenuRepository) UpdateItem(ctx context.Context, it *domain.MenuItem) error {
	m := menuItemModel{
		ID:          it.ID,
		CategoryID:  it.CategoryID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		IsAvailable: it.IsAvailable,
		SortOrder:   it.SortOrder,
		CreatedAt:   it.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*it = toDomainItem(m)
	return nil
}

func (r *MenuRepository) DeleteItem(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&menuItemModel{}, id).Error
}

func (r *MenuRepository) GetItemByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	var m menuItemModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	it := toDomainItem(m)
	return &it, nil
}
