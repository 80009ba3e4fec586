package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"ristorante/internal/domain"
)

// TableFilters is the exhaustive filter set for table queries. Nil fields
// are ignored; there is no map-based filtering anywhere.
type TableFilters struct {
	MinCapacity *int
	Location    *domain.TableLocation
	IsActive    *bool
}

type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

type tableModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Number    int       `gorm:"column:number;uniqueIndex"`
	Capacity  int       `gorm:"column:capacity"`
	Location  string    `gorm:"column:location;index"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// "tables" collides with information_schema vocabulary too easily.
func (tableModel) TableName() string { return "dining_tables" }

func toDomainTable(m tableModel) *domain.Table {
	return &domain.Table{
		ID:        m.ID,
		Number:    m.Number,
		Capacity:  m.Capacity,
		Location:  domain.TableLocation(m.Location),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTableModel(t *domain.Table) tableModel {
	return tableModel{
		ID:        t.ID,
		Number:    t.Number,
		Capacity:  t.Capacity,
		Location:  string(t.Location),
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// List returns tables matching the filters, ordered by location, capacity
// and table number ascending. Grouping downstream relies on this order.
func (r *TableRepository) List(ctx context.Context, f TableFilters) ([]domain.Table, error) {
	q := r.db.WithContext(ctx).Model(&tableModel{})

	if f.MinCapacity != nil {
		q = q.Where("capacity >= ?", *f.MinCapacity)
	}
	if f.Location != nil {
		q = q.Where("location = ?", string(*f.Location))
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	var rows []tableModel
	if err := q.Order("location ASC, capacity ASC, number ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Table, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainTable(m))
	}
	return out, nil
}

func (r *TableRepository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	var m tableModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainTable(m), nil
}

func (r *TableRepository) Create(ctx context.Context, t *domain.Table) error {
	m := toTableModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translateTableErr(err)
	}
	*t = *toDomainTable(m)
	return nil
}

func (r *TableRepository) Update(ctx context.Context, t *domain.Table) error {
	m := toTableModel(t)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return translateTableErr(err)
	}
	*t = *toDomainTable(m)
	return nil
}

func (r *TableRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&tableModel{}, id).Error
}

func translateTableErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateTableNumber
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateTableNumber
	}
	return err
}
