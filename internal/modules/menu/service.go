package menu

import (
	"context"

	"ristorante/internal/domain"
)

type Service struct {
	repo MenuRepository
}

func NewService(repo MenuRepository) *Service {
	return &Service{repo: repo}
}

// PublicMenu returns only available items; the admin view includes all.
func (s *Service) PublicMenu(ctx context.Context) ([]domain.MenuCategory, error) {
	return s.repo.ListCategoriesWithItems(ctx, true)
}

func (s *Service) FullMenu(ctx context.Context) ([]domain.MenuCategory, error) {
	return s.repo.ListCategoriesWithItems(ctx, false)
}

func (s *Service) CreateCategory(ctx context.Context, req CategoryRequest) (*domain.MenuCategory, error) {
	c := &domain.MenuCategory{Name: req.Name, SortOrder: req.SortOrder}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*domain.MenuCategory, error) {
	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	c.Name = req.Name
	c.SortOrder = req.SortOrder
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes the category and its items in one transaction.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.repo.GetCategoryByID(ctx, id); err != nil {
		return ErrCategoryNotFound
	}
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) CreateItem(ctx context.Context, req ItemRequest) (*domain.MenuItem, error) {
	if _, err := s.repo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, ErrCategoryNotFound
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	it := &domain.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: available,
		SortOrder:   req.SortOrder,
	}
	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int64, req ItemRequest) (*domain.MenuItem, error) {
	it, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	if req.CategoryID != it.CategoryID {
		if _, err := s.repo.GetCategoryByID(ctx, req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
	}

	it.CategoryID = req.CategoryID
	it.Name = req.Name
	it.Description = req.Description
	it.Price = req.Price
	if req.IsAvailable != nil {
		it.IsAvailable = *req.IsAvailable
	}
	it.SortOrder = req.SortOrder

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.repo.GetItemByID(ctx, id); err != nil {
		return ErrItemNotFound
	}
	return s.repo.DeleteItem(ctx, id)
}
