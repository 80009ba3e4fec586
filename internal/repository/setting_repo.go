package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ristorante/internal/domain"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

type settingModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (settingModel) TableName() string { return "settings" }

func (r *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var m settingModel
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		return nil, err
	}
	return &domain.Setting{Key: m.Key, Value: m.Value, UpdatedAt: m.UpdatedAt}, nil
}

func (r *SettingRepository) GetAll(ctx context.Context) ([]domain.Setting, error) {
	var rows []settingModel
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Setting, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Setting{Key: m.Key, Value: m.Value, UpdatedAt: m.UpdatedAt})
	}
	return out, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	m := settingModel{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
}
