package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/contalibre-dev/contalibre/internal/model"
)

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Company{},
		&model.AccountClass{},
		&model.Account{},
		&model.JournalEntry{},
		&model.Movement{},
		&model.Plan{},
		&model.Subscription{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}
