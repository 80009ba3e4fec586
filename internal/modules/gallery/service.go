package gallery

import (
	"context"

	"ristorante/internal/domain"
)

type Service struct {
	repo GalleryRepository
}

func NewService(repo GalleryRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.GalleryImage, error) {
	return s.repo.List(ctx, category)
}

func (s *Service) Create(ctx context.Context, req ImageRequest) (*domain.GalleryImage, error) {
	img := &domain.GalleryImage{
		Title:     req.Title,
		URL:       req.URL,
		Category:  req.Category,
		SortOrder: req.SortOrder,
	}
	if err := s.repo.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) Update(ctx context.Context, id int64, req ImageRequest) (*domain.GalleryImage, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	img.Title = req.Title
	img.URL = req.URL
	img.Category = req.Category
	img.SortOrder = req.SortOrder

	if err := s.repo.Update(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
