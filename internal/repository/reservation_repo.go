package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"ristorante/internal/domain"
)

// ReservationFilters is the exhaustive filter set for reservation queries.
type ReservationFilters struct {
	TableID    *int64
	CustomerID *int64
	From       *time.Time // date_time >= From
	To         *time.Time // date_time < To
	StatusIn   []domain.ReservationStatus
	Limit      int
	Offset     int
}

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	ReferenceCode   string    `gorm:"column:reference_code;uniqueIndex"`
	CustomerID      int64     `gorm:"column:customer_id;index"`
	TableID         *int64    `gorm:"column:table_id;index"`
	DateTime        time.Time `gorm:"column:date_time;index"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	PartySize       int       `gorm:"column:party_size"`
	Status          string    `gorm:"column:status;index"`
	Notes           string    `gorm:"column:notes"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:              m.ID,
		ReferenceCode:   m.ReferenceCode,
		CustomerID:      m.CustomerID,
		TableID:         m.TableID,
		DateTime:        m.DateTime,
		DurationMinutes: m.DurationMinutes,
		PartySize:       m.PartySize,
		Status:          domain.ReservationStatus(m.Status),
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	return reservationModel{
		ID:              r.ID,
		ReferenceCode:   r.ReferenceCode,
		CustomerID:      r.CustomerID,
		TableID:         r.TableID,
		DateTime:        r.DateTime,
		DurationMinutes: r.DurationMinutes,
		PartySize:       r.PartySize,
		Status:          string(r.Status),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func applyReservationFilters(q *gorm.DB, f ReservationFilters) *gorm.DB {
	if f.TableID != nil {
		q = q.Where("table_id = ?", *f.TableID)
	}
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.From != nil {
		q = q.Where("date_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date_time < ?", *f.To)
	}
	if len(f.StatusIn) > 0 {
		statuses := make([]string, 0, len(f.StatusIn))
		for _, s := range f.StatusIn {
			statuses = append(statuses, string(s))
		}
		q = q.Where("status IN ?", statuses)
	}
	return q
}

func (r *ReservationRepository) List(ctx context.Context, f ReservationFilters) ([]domain.Reservation, error) {
	q := applyReservationFilters(r.db.WithContext(ctx).Model(&reservationModel{}), f)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []reservationModel
	if err := q.Order("date_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// ReservationDetails carries a reservation joined with its customer and
// table for list/detail responses.
type ReservationDetails struct {
	domain.Reservation
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	TableNumber   *int    `json:"table_number,omitempty"`
	TableLocation *string `json:"table_location,omitempty"`
}

type reservationDetailsRow struct {
	reservationModel
	CustomerName  string  `gorm:"column:customer_name"`
	CustomerEmail string  `gorm:"column:customer_email"`
	CustomerPhone string  `gorm:"column:customer_phone"`
	TableNumber   *int    `gorm:"column:table_number"`
	TableLocation *string `gorm:"column:table_location"`
}

func (r *ReservationRepository) ListWithDetails(ctx context.Context, f ReservationFilters) ([]ReservationDetails, error) {
	q := applyReservationFilters(r.db.WithContext(ctx).Table("reservations"), f).
		Select(`reservations.*,
			customers.name AS customer_name,
			customers.email AS customer_email,
			customers.phone AS customer_phone,
			dining_tables.number AS table_number,
			dining_tables.location AS table_location`).
		Joins("JOIN customers ON customers.id = reservations.customer_id").
		Joins("LEFT JOIN dining_tables ON dining_tables.id = reservations.table_id").
		Order("reservations.date_time ASC")

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []reservationDetailsRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ReservationDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, ReservationDetails{
			Reservation:   *toDomainReservation(row.reservationModel),
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			CustomerPhone: row.CustomerPhone,
			TableNumber:   row.TableNumber,
			TableLocation: row.TableLocation,
		})
	}
	return out, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) GetByReferenceCode(ctx context.Context, ref string) (*domain.Reservation, error) {
	var m reservationModel
	if err := r.db.WithContext(ctx).Where("reference_code = ?", ref).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainReservation(m), nil
}

// CreateWithConflictCheck inserts the reservation after re-validating
// non-overlap inside the same transaction. The advisory read-path check can
// race with concurrent writers; this one cannot, and a database exclusion
// constraint (idx_no_double_booking on PostgreSQL) backs it up.
func (r *ReservationRepository) CreateWithConflictCheck(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if res.TableID != nil {
			start := res.DateTime
			end := res.EndTime()

			// Any active reservation starting within MaxDuration before the
			// requested end can still overlap it; exact test happens in Go.
			horizon := start.Add(-time.Duration(domain.MaxDurationMinutes) * time.Minute)

			var candidates []reservationModel
			q := tx.Where("table_id = ?", *res.TableID).
				Where("status IN ?", activeStatusStrings()).
				Where("date_time < ?", end).
				Where("date_time > ?", horizon)
			if err := q.Find(&candidates).Error; err != nil {
				return err
			}

			for _, c := range candidates {
				other := toDomainReservation(c)
				if domain.Overlaps(start, end, other.DateTime, other.EndTime()) {
					return ErrReservationConflict
				}
			}
		}

		return tx.Create(&m).Error
	})
	if err != nil {
		return translateReservationErr(err)
	}

	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	return r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *ReservationRepository) AssignTable(ctx context.Context, id int64, tableID int64) error {
	return r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("id = ?", id).
		Update("table_id", tableID).Error
}

func (r *ReservationRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("customer_id = ?", customerID).
		Count(&cnt).Error
	return cnt, err
}

func activeStatusStrings() []string {
	out := make([]string, 0, len(domain.ActiveReservationStatuses))
	for _, s := range domain.ActiveReservationStatuses {
		out = append(out, string(s))
	}
	return out
}

func translateReservationErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation, 23505 unique_violation
		if (pgErr.Code == "23P01" || pgErr.Code == "23505") && pgErr.ConstraintName == "idx_no_double_booking" {
			return ErrReservationConflict
		}
	}
	return err
}
