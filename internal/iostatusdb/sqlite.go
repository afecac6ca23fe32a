package iostatusdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/statusdb"
	_ "modernc.org/sqlite"
)

// sqliteConnector keeps project documents as JSON text in a SQLite
// table. It is handy for local snapshots of the status database.
type sqliteConnector struct {
	cfg config.StatusDBConfig
	settings
}

type sqliteConn struct {
	db       *sql.DB
	table    string
	writable bool
}

// Connect opens the SQLite file. A missing file is an error unless the
// connector is writable, then the file and the table are created.
func (c *sqliteConnector) Connect(
	ctx context.Context,
) (statusdb.Connection, error) {
	path := c.cfg.Path
	if !c.writable {
		if _, err := os.Stat(path); err != nil {
			return nil, ConnectionError(c.cfg.Backend, path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, ConnectionError(c.cfg.Backend, path, err)
	}

	ctx, cancel := withTimeout(ctx, c.cfg)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, ConnectionError(c.cfg.Backend, path, err)
	}

	res := &sqliteConn{
		db:       db,
		table:    c.cfg.Collection,
		writable: c.writable,
	}

	if c.writable {
		q := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				project_id TEXT PRIMARY KEY,
				doc TEXT NOT NULL
			)`, quoteIdent(res.table))
		if _, err = db.ExecContext(ctx, q); err != nil {
			db.Close()
			return nil, ConnectionError(c.cfg.Backend, path, err)
		}
	}

	return res, nil
}

// GetEntry returns the project document or nil if it does not exist.
func (s *sqliteConn) GetEntry(
	ctx context.Context,
	projectID string,
) (*statusdb.ProjectDocument, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}

	q := fmt.Sprintf(
		"SELECT doc FROM %s WHERE project_id = ?",
		quoteIdent(s.table),
	)

	var raw string
	err := s.db.QueryRowContext(ctx, q, projectID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError(projectID, err)
	}

	return decodeJSON(projectID, []byte(raw))
}

// Put inserts or replaces a project document.
func (s *sqliteConn) Put(
	ctx context.Context,
	doc *statusdb.ProjectDocument,
) error {
	if !s.writable {
		return ReadOnlyError(config.BackendSQLite)
	}
	if s.db == nil {
		return NotConnectedError()
	}

	enc := gnfmt.GNjson{}
	raw, err := enc.Encode(doc)
	if err != nil {
		return WriteError(doc.ProjectID, err)
	}

	q := fmt.Sprintf(`
		INSERT INTO %s (project_id, doc) VALUES (?, ?)
		ON CONFLICT (project_id) DO UPDATE SET doc = excluded.doc`,
		quoteIdent(s.table),
	)
	if _, err = s.db.ExecContext(ctx, q, doc.ProjectID, string(raw)); err != nil {
		return WriteError(doc.ProjectID, err)
	}
	return nil
}

// Close closes the database.
func (s *sqliteConn) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
