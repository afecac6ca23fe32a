// Package report contains the in-memory model of a sample report.
// A Context is created by the report builder, enriched with data from the
// status database and then handed to rendering.
package report

import (
	"log/slog"
	"maps"
	"slices"
)

// Project keeps project-level fields of a report.
type Project struct {
	// ID is the project identifier used to look up the status database.
	ID string `json:"id" yaml:"id"`

	// Name is a human readable project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Prep is the library construction method. Nil when unknown.
	Prep *string `json:"prep,omitempty" yaml:"prep,omitempty"`
}

// Info keeps report metadata that is not specific to the project.
type Info struct {
	// Recipient is the contact that receives the report. Nil when unknown.
	Recipient *string `json:"recipient,omitempty" yaml:"recipient,omitempty"`
}

// Sample keeps sample fields of a report.
type Sample struct {
	// UserSampleID is the sample name given by the customer.
	UserSampleID *string `json:"user_sample_id,omitempty" yaml:"user_sample_id,omitempty"`

	// Barcode is the reagent label of the sample library.
	Barcode *string `json:"barcode,omitempty" yaml:"barcode,omitempty"`
}

// Context is a report under construction. It is owned by the caller and
// is mutated in place during enrichment.
type Context struct {
	Project Project            `json:"project" yaml:"project"`
	Info    Info               `json:"info" yaml:"info"`
	Samples map[string]*Sample `json:"samples" yaml:"samples"`

	// Logger receives operational messages about the report. If nil,
	// slog.Default() is used.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// New creates a report Context for a project with empty samples.
func New(projectID string, sampleIDs ...string) *Context {
	res := &Context{
		Project: Project{ID: projectID},
		Samples: make(map[string]*Sample, len(sampleIDs)),
	}
	for _, v := range sampleIDs {
		res.Samples[v] = &Sample{}
	}
	return res
}

// Log returns the logger of the report.
func (c *Context) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// SampleIDs returns sorted identifiers of the report samples.
func (c *Context) SampleIDs() []string {
	return slices.Sorted(maps.Keys(c.Samples))
}
