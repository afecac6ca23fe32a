package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&ProjectRecord{},
	}
}

// Migrate runs GORM AutoMigrate to create or update the project
// documents table with the given name.
func Migrate(db *gorm.DB, table string) error {
	return db.Table(table).AutoMigrate(AllModels()...)
}
