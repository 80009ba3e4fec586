package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ristorante/internal/domain"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

type galleryImageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title"`
	URL       string    `gorm:"column:url"`
	Category  string    `gorm:"column:category;index"`
	SortOrder int       `gorm:"column:sort_order"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (galleryImageModel) TableName() string { return "gallery_images" }

func toDomainImage(m galleryImageModel) domain.GalleryImage {
	return domain.GalleryImage{
		ID:        m.ID,
		Title:     m.Title,
		URL:       m.URL,
		Category:  m.Category,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *GalleryRepository) List(ctx context.Context, category string) ([]domain.GalleryImage, error) {
	q := r.db.WithContext(ctx).Model(&galleryImageModel{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []galleryImageModel
	if err := q.Order("sort_order ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.GalleryImage, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainImage(m))
	}
	return out, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error) {
	var m galleryImageModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	img := toDomainImage(m)
	return &img, nil
}

func (r *GalleryRepository) Create(ctx context.Context, img *domain.GalleryImage) error {
	m := galleryImageModel{
		Title:     img.Title,
		URL:       img.URL,
		Category:  img.Category,
		SortOrder: img.SortOrder,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*img = toDomainImage(m)
	return nil
}

func (r *GalleryRepository) Update(ctx context.Context, img *domain.GalleryImage) error {
	m := galleryImageModel{
		ID:        img.ID,
		Title:     img.Title,
		URL:       img.URL,
		Category:  img.Category,
		SortOrder: img.SortOrder,
		CreatedAt: img.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*img = toDomainImage(m)
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&galleryImageModel{}, id).Error
}
