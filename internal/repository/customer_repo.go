package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"ristorante/internal/domain"
)

type CustomerFilters struct {
	Search string // matches name or email
	Limit  int
	Offset int
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email;uniqueIndex"`
	Phone      string    `gorm:"column:phone"`
	Notes      string    `gorm:"column:notes"`
	Anonymized bool      `gorm:"column:anonymized"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (customerModel) TableName() string { return "customers" }

func toDomainCustomer(m customerModel) *domain.Customer {
	return &domain.Customer{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Notes:      m.Notes,
		Anonymized: m.Anonymized,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	return customerModel{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Notes:      c.Notes,
		Anonymized: c.Anonymized,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var m customerModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainCustomer(m), nil
}

// FindOrCreateByEmail attaches bookings to an existing customer record when
// the email is already known, updating name/phone on the way.
func (r *CustomerRepository) FindOrCreateByEmail(ctx context.Context, name, email, phone string) (*domain.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := r.GetByEmail(ctx, email)
	if err == nil {
		changed := false
		if name != "" && existing.Name != name {
			existing.Name = name
			changed = true
		}
		if phone != "" && existing.Phone != phone {
			existing.Phone = phone
			changed = true
		}
		if changed {
			if err := r.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &domain.Customer{Name: name, Email: email, Phone: phone}
	if err := r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) List(ctx context.Context, f CustomerFilters) ([]domain.Customer, int64, error) {
	q := r.db.WithContext(ctx).Model(&customerModel{})

	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []customerModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCustomer(m))
	}
	return out, total, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCustomer(m)
	return nil
}

// Anonymize scrubs personal data in place. Reservation rows stay for
// occupancy history but no longer point at an identifiable person.
func (r *CustomerRepository) Anonymize(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&customerModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       "Deleted customer",
			"email":      fmt.Sprintf("deleted-%d@anonymized.invalid", id),
			"phone":      "",
			"notes":      "",
			"anonymized": true,
		}).Error
}
