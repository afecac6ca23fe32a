package iostatusdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnames/gnfmt"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/statusdb"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgConnector keeps project documents as JSONB in a PostgreSQL table.
type pgConnector struct {
	cfg config.StatusDBConfig
	settings
}

// PgConn is an open PostgreSQL connection to the status database.
type PgConn struct {
	pool     *pgxpool.Pool
	table    string
	writable bool
}

// DSN returns the PostgreSQL connection string built from cfg.
func DSN(cfg *config.StatusDBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
}

// Connect establishes a small connection pool to PostgreSQL and
// verifies it.
func (c *pgConnector) Connect(
	ctx context.Context,
) (statusdb.Connection, error) {
	return c.connect(ctx)
}

func (c *pgConnector) connect(ctx context.Context) (*PgConn, error) {
	target := fmt.Sprintf("%s@%s:%d/%s",
		c.cfg.User, c.cfg.Host, c.cfg.Port, c.cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(DSN(&c.cfg))
	if err != nil {
		return nil, ConnectionError(c.cfg.Backend, target, err)
	}

	// one document per report, a couple of connections is plenty
	poolConfig.MaxConns = 2
	poolConfig.MinConns = 0

	ctx, cancel := withTimeout(ctx, c.cfg)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, ConnectionError(c.cfg.Backend, target, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, ConnectionError(c.cfg.Backend, target, err)
	}

	res := &PgConn{
		pool:     pool,
		table:    c.cfg.Collection,
		writable: c.writable,
	}
	return res, nil
}

// ConnectPg opens a PostgreSQL status database connection directly.
// It is used by schema management that needs the pool.
func ConnectPg(
	ctx context.Context,
	cfg *config.StatusDBConfig,
) (*PgConn, error) {
	c := &pgConnector{cfg: *cfg, settings: settings{writable: true}}
	return c.connect(ctx)
}

// Pool returns the underlying pgxpool.Pool.
func (p *PgConn) Pool() *pgxpool.Pool {
	return p.pool
}

// Table returns the name of the project documents table.
func (p *PgConn) Table() string {
	return p.table
}

// GetEntry returns the project document or nil if it does not exist.
func (p *PgConn) GetEntry(
	ctx context.Context,
	projectID string,
) (*statusdb.ProjectDocument, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	q := fmt.Sprintf(
		"SELECT doc FROM %s WHERE project_id = $1",
		pgx.Identifier{p.table}.Sanitize(),
	)

	var raw []byte
	err := p.pool.QueryRow(ctx, q, projectID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError(projectID, err)
	}

	return decodeJSON(projectID, raw)
}

// Put inserts or replaces a project document.
func (p *PgConn) Put(
	ctx context.Context,
	doc *statusdb.ProjectDocument,
) error {
	if !p.writable {
		return ReadOnlyError(config.BackendPostgres)
	}
	if p.pool == nil {
		return NotConnectedError()
	}

	enc := gnfmt.GNjson{}
	raw, err := enc.Encode(doc)
	if err != nil {
		return WriteError(doc.ProjectID, err)
	}

	q := fmt.Sprintf(`
		INSERT INTO %s (project_id, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (project_id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		pgx.Identifier{p.table}.Sanitize(),
	)
	if _, err = p.pool.Exec(ctx, q, doc.ProjectID, raw); err != nil {
		return WriteError(doc.ProjectID, err)
	}
	return nil
}

// Close releases all database connections.
func (p *PgConn) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// decodeJSON converts a stored JSON document. Documents without
// project_id get the identifier they were stored under.
func decodeJSON(
	projectID string,
	raw []byte,
) (*statusdb.ProjectDocument, error) {
	var res statusdb.ProjectDocument
	enc := gnfmt.GNjson{}
	if err := enc.Decode(raw, &res); err != nil {
		return nil, DecodeError(projectID, err)
	}
	if res.ProjectID == "" {
		res.ProjectID = projectID
	}
	return &res, nil
}
