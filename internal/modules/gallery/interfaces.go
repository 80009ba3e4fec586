package gallery

import (
	"context"

	"ristorante/internal/domain"
)

type GalleryRepository interface {
	List(ctx context.Context, category string) ([]domain.GalleryImage, error)
	GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error)
	Create(ctx context.Context, img *domain.GalleryImage) error
	Update(ctx context.Context, img *domain.GalleryImage) error
	Delete(ctx context.Context, id int64) error
}
