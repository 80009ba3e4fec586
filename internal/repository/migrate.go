package repository

import (
	"gorm.io/gorm"

	"ristorante/internal/pkg/logger"
)

// Migrate creates or updates the schema for every model in this package.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&customerModel{},
		&tableModel{},
		&reservationModel{},
		&menuCategoryModel{},
		&menuItemModel{},
		&galleryImageModel{},
		&settingModel{},
	); err != nil {
		return err
	}

	// On PostgreSQL an exclusion constraint backs up the in-transaction
	// overlap check; concurrent inserts racing past it get 23P01.
	if db.Dialector.Name() == "postgres" {
		var count int64
		if err := db.Raw(
			`SELECT COUNT(*) FROM pg_constraint WHERE conname = 'idx_no_double_booking'`,
		).Scan(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
				return err
			}
			err := db.Exec(`ALTER TABLE reservations ADD CONSTRAINT idx_no_double_booking
				EXCLUDE USING gist (
					table_id WITH =,
					tstzrange(date_time, date_time + (duration_minutes || ' minutes')::interval) WITH &&
				)
				WHERE (table_id IS NOT NULL AND status IN ('PENDING', 'CONFIRMED', 'SEATED'))`).Error
			if err != nil {
				return err
			}
			logger.Info.Println("Created exclusion constraint idx_no_double_booking")
		}
	}

	return nil
}
