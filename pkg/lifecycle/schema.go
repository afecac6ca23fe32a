// Package lifecycle defines management operations of the status
// database that ngireports owns.
package lifecycle

import (
	"context"

	"github.com/gnames/ngireports/pkg/config"
)

// SchemaManager defines the interface for status database schema
// management. It uses GORM AutoMigrate and is idempotent - safe to run
// multiple times.
type SchemaManager interface {
	// Create creates or updates the project documents table.
	Create(ctx context.Context, cfg *config.Config) error
}
