// Package enricher copies project and sample fields from the status
// database into a report before it is rendered.
//
// Enrichment is best effort. Only a failure to connect to the status
// database (or to query it) is returned as an error. Missing documents and
// missing nested fields are logged as warnings and leave the corresponding
// report fields untouched.
package enricher

import (
	"context"

	"github.com/gnames/gnlib"
	"github.com/gnames/ngireports/pkg/report"
	"github.com/gnames/ngireports/pkg/statusdb"
	"github.com/google/uuid"
)

// DefaultPrepKey is the library prep that provides sample barcodes.
const DefaultPrepKey = "A"

// Enricher fills a report with data from the status database.
type Enricher interface {
	// Enrich modifies the report in place.
	Enrich(ctx context.Context, rc *report.Context) error
}

// Option configures an Enricher.
type Option func(*enricher)

// OptPrepKey sets the library prep used to read sample barcodes.
// Empty value is ignored.
func OptPrepKey(s string) Option {
	return func(e *enricher) {
		if s != "" {
			e.prepKey = s
		}
	}
}

type enricher struct {
	connector statusdb.Connector
	prepKey   string
}

// New creates an Enricher that reads documents through the connector.
func New(connector statusdb.Connector, opts ...Option) Enricher {
	res := &enricher{connector: connector, prepKey: DefaultPrepKey}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Enrich fetches the project document once and copies the contact,
// the library construction method, customer sample names and barcodes
// into the report.
func (e *enricher) Enrich(ctx context.Context, rc *report.Context) error {
	if e.connector == nil {
		return NotConnectedError()
	}
	pid := rc.Project.ID
	log := rc.Log().With("project_id", pid, "run_id", uuid.NewString())

	log.Info("Connecting to status database")
	conn, err := e.connector.Connect(ctx)
	if err != nil {
		return ConnectionError(pid, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Warn("Cannot close status database connection", "error", err)
		}
	}()
	log.Info("Connected to status database")

	doc, err := conn.GetEntry(ctx, pid)
	if err != nil {
		return err
	}
	if doc == nil {
		log.Warn("Could not retrieve project details from status database. Skipping...")
		return nil
	}

	if s, ok := doc.Recipient(); ok {
		s = gnlib.FixUtf8(s)
		rc.Info.Recipient = &s
	}
	if s, ok := doc.Prep(); ok {
		s = gnlib.FixUtf8(s)
		rc.Project.Prep = &s
	}

	var enriched, skipped int
	for _, sid := range rc.SampleIDs() {
		smp := rc.Samples[sid]
		if smp == nil {
			smp = &report.Sample{}
			rc.Samples[sid] = smp
		}
		if e.enrichSample(doc, sid, smp) {
			enriched++
			continue
		}
		skipped++
		log.Warn(
			"Could not retrieve sample details from status database. Skipping...",
			"sample_id", sid,
		)
	}

	log.Info("Report enriched",
		"samples", len(rc.Samples),
		"enriched", enriched,
		"skipped", skipped,
	)
	return nil
}

// enrichSample sets every sample field found in the document. It returns
// false if any of them is missing.
func (e *enricher) enrichSample(
	doc *statusdb.ProjectDocument,
	sid string,
	smp *report.Sample,
) bool {
	name, nameOK := doc.CustomerName(sid)
	if nameOK {
		name = gnlib.FixUtf8(name)
		smp.UserSampleID = &name
	}

	label, labelOK := doc.ReagentLabel(sid, e.prepKey)
	if labelOK {
		label = gnlib.FixUtf8(label)
		smp.Barcode = &label
	}

	return nameOK && labelOK
}
