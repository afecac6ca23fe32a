// Package schema provides database models of the status database tables
// managed by ngireports.
package schema

import (
	"time"
)

// ProjectRecord is a row of the project documents table. The document
// is kept as JSONB, so the status database layout of nested fields does
// not need its own tables.
type ProjectRecord struct {
	// ProjectID is the project identifier, e.g. "P12345".
	ProjectID string `gorm:"primaryKey;type:text"`

	// Doc is the JSON encoded statusdb.ProjectDocument.
	Doc []byte `gorm:"type:jsonb;not null"`

	// UpdatedAt is the time of the last load of the document.
	UpdatedAt time.Time `gorm:"not null"`
}
