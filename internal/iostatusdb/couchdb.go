package iostatusdb

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/statusdb"
	kivik "github.com/go-kivik/kivik/v4"
	_ "github.com/go-kivik/kivik/v4/couchdb"
)

// couchConnector reads project documents from a CouchDB database, the
// store behind the NGI StatusDB project summaries. Documents are matched
// by their project_id field with a Mango query, so documents with
// arbitrary _id work as well.
type couchConnector struct {
	cfg config.StatusDBConfig
	settings
}

type couchConn struct {
	client   *kivik.Client
	db       *kivik.DB
	writable bool
}

// couchDoc adds revision to a stored document, CouchDB requires it for
// updates.
type couchDoc struct {
	Rev string `json:"_rev,omitempty"`
	*statusdb.ProjectDocument
}

// validCouchURI accepts only HTTP server URLs. It rejects the MongoDB
// default left in the uri setting.
func validCouchURI(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Connect creates a CouchDB client, pings the server and checks the
// database. A writable connector creates a missing database.
func (c *couchConnector) Connect(
	ctx context.Context,
) (statusdb.Connection, error) {
	target := redactURI(c.cfg.URI) + "/" + c.cfg.Database

	client, err := kivik.New("couch", c.cfg.URI)
	if err != nil {
		return nil, ConnectionError(c.cfg.Backend, target, err)
	}

	ctx, cancel := withTimeout(ctx, c.cfg)
	defer cancel()

	ok, err := client.Ping(ctx)
	if err == nil && !ok {
		err = errors.New("server is not responding")
	}
	if err != nil {
		_ = client.Close()
		return nil, ConnectionError(c.cfg.Backend, target, err)
	}

	exists, err := client.DBExists(ctx, c.cfg.Database)
	switch {
	case err != nil:
	case !exists && c.writable:
		err = client.CreateDB(ctx, c.cfg.Database)
	case !exists:
		err = errors.New("database does not exist")
	}
	if err != nil {
		_ = client.Close()
		return nil, ConnectionError(c.cfg.Backend, target, err)
	}

	res := &couchConn{
		client:   client,
		db:       client.DB(c.cfg.Database),
		writable: c.writable,
	}
	return res, nil
}

// GetEntry returns the project document or nil if it does not exist.
func (c *couchConn) GetEntry(
	ctx context.Context,
	projectID string,
) (*statusdb.ProjectDocument, error) {
	if c.client == nil {
		return nil, NotConnectedError()
	}

	query := map[string]any{
		"selector": map[string]any{"project_id": projectID},
		"limit":    1,
	}
	rows := c.db.Find(ctx, query)
	defer rows.Close()

	if !rows.Next() {
		err := rows.Err()
		if err == nil || kivik.HTTPStatus(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, QueryError(projectID, err)
	}

	var res statusdb.ProjectDocument
	if err := rows.ScanDoc(&res); err != nil {
		return nil, DecodeError(projectID, err)
	}
	return &res, nil
}

// Put stores the document under its project_id, replacing the current
// revision if there is one.
func (c *couchConn) Put(
	ctx context.Context,
	doc *statusdb.ProjectDocument,
) error {
	if !c.writable {
		return ReadOnlyError(config.BackendCouchDB)
	}
	if c.client == nil {
		return NotConnectedError()
	}

	rev, err := c.db.GetRev(ctx, doc.ProjectID)
	if err != nil && kivik.HTTPStatus(err) != http.StatusNotFound {
		return WriteError(doc.ProjectID, err)
	}

	_, err = c.db.Put(ctx, doc.ProjectID, couchDoc{Rev: rev, ProjectDocument: doc})
	if err != nil {
		return WriteError(doc.ProjectID, err)
	}
	return nil
}

// Close releases the client.
func (c *couchConn) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	c.db = nil
	return err
}

// redactURI hides the password in error messages.
func redactURI(s string) string {
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	return u.Redacted()
}
