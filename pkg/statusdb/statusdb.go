// Package statusdb defines contracts for reading project documents from
// the status database, and the document model itself.
//
// Implementations live in internal/iostatusdb. This package is pure and
// has no I/O.
package statusdb

import (
	"context"
)

// Connector opens connections to the status database.
type Connector interface {
	// Connect opens a connection and verifies that it is usable.
	// An error means the status database cannot be reached or is
	// misconfigured.
	Connect(ctx context.Context) (Connection, error)
}

// Connection is an open handle to the status database.
type Connection interface {
	// GetEntry returns the project document for the given project
	// identifier. If no such document exists it returns nil, nil.
	GetEntry(ctx context.Context, projectID string) (*ProjectDocument, error)

	// Close releases resources held by the connection.
	Close() error
}

// Loader is implemented by connections that can store project documents.
// It is used to seed a status database, enrichment never writes.
type Loader interface {
	// Put creates or replaces the document with the same ProjectID.
	Put(ctx context.Context, doc *ProjectDocument) error
}
