// Package ioschema implements SchemaManager interface for
// the PostgreSQL status database. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/ngireports/internal/iostatusdb"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/lifecycle"
	"github.com/gnames/ngireports/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	conn *iostatusdb.PgConn
}

// NewManager creates a new SchemaManager.
func NewManager(conn *iostatusdb.PgConn) lifecycle.SchemaManager {
	return &manager{conn: conn}
}

// Create creates the project documents table using GORM AutoMigrate.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	if m.conn == nil || m.conn.Pool() == nil {
		return NotConnectedError()
	}

	db := stdlib.OpenDBFromPool(m.conn.Pool())
	defer db.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: db}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	table := m.conn.Table()
	if err := schema.Migrate(gormDB.WithContext(ctx), table); err != nil {
		return CreateSchemaError(table, err)
	}

	slog.Info("Status database schema is ready",
		"table", table,
		"database", cfg.StatusDB.Database,
	)
	return nil
}
