// Package iostatusdb implements statusdb.Connector for PostgreSQL,
// MongoDB, CouchDB, SQLite and a directory of document files.
// This is an impure I/O package that implements contracts
// defined in pkg/statusdb.
package iostatusdb

import (
	"context"
	"time"

	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/statusdb"
)

// Option modifies connector settings.
type Option func(*settings)

type settings struct {
	writable bool
}

// OptWritable makes connections usable for statusdb.Loader: missing
// SQLite files and document directories are created, and Put is
// allowed.
func OptWritable() Option {
	return func(s *settings) {
		s.writable = true
	}
}

// New returns a Connector for the backend set in cfg.
func New(
	cfg *config.StatusDBConfig,
	opts ...Option,
) (statusdb.Connector, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	switch cfg.Backend {
	case config.BackendPostgres:
		return &pgConnector{cfg: *cfg, settings: s}, nil
	case config.BackendMongo:
		if cfg.URI == "" {
			return nil, ConfigError(cfg.Backend, "uri")
		}
		return &mongoConnector{cfg: *cfg, settings: s}, nil
	case config.BackendCouchDB:
		if !validCouchURI(cfg.URI) {
			return nil, ConfigError(cfg.Backend, "uri")
		}
		return &couchConnector{cfg: *cfg, settings: s}, nil
	case config.BackendSQLite:
		if cfg.Path == "" {
			return nil, ConfigError(cfg.Backend, "path")
		}
		return &sqliteConnector{cfg: *cfg, settings: s}, nil
	case config.BackendFile:
		if cfg.Path == "" {
			return nil, ConfigError(cfg.Backend, "path")
		}
		return &fileConnector{cfg: *cfg, settings: s}, nil
	default:
		return nil, BackendError(cfg.Backend)
	}
}

// withTimeout limits connection establishment by cfg.Timeout seconds.
func withTimeout(
	ctx context.Context,
	cfg config.StatusDBConfig,
) (context.Context, context.CancelFunc) {
	if cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(cfg.Timeout)*time.Second)
}
