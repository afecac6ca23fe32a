package statusdb

// ProjectDocument is a read-only snapshot of a project record from the
// status database. All nested fields are optional.
type ProjectDocument struct {
	// ProjectID is the identifier the document is stored under.
	ProjectID string `json:"project_id" yaml:"project_id" bson:"project_id"`

	// Contact is the email of the person who receives reports.
	Contact *string `json:"contact,omitempty" yaml:"contact,omitempty" bson:"contact,omitempty"`

	Details *Details `json:"details,omitempty" yaml:"details,omitempty" bson:"details,omitempty"`

	// Samples are keyed by the sample identifier.
	Samples map[string]SampleEntry `json:"samples,omitempty" yaml:"samples,omitempty" bson:"samples,omitempty"`
}

// Details are project details kept in the status database.
type Details struct {
	LibraryConstructionMethod *string `json:"library_construction_method,omitempty" yaml:"library_construction_method,omitempty" bson:"library_construction_method,omitempty"`
}

// SampleEntry describes one sample of a project.
type SampleEntry struct {
	// CustomerName is the sample name given by the customer.
	CustomerName *string `json:"customer_name,omitempty" yaml:"customer_name,omitempty" bson:"customer_name,omitempty"`

	// LibraryPrep entries are keyed by prep label ("A", "B", ...).
	LibraryPrep map[string]LibraryPrep `json:"library_prep,omitempty" yaml:"library_prep,omitempty" bson:"library_prep,omitempty"`
}

// LibraryPrep is a library preparation of a sample.
type LibraryPrep struct {
	ReagentLabel *string `json:"reagent_label,omitempty" yaml:"reagent_label,omitempty" bson:"reagent_label,omitempty"`
}

// Recipient returns the project contact.
func (d *ProjectDocument) Recipient() (string, bool) {
	if d == nil {
		return "", false
	}
	return deref(d.Contact)
}

// Prep returns the library construction method of the project.
func (d *ProjectDocument) Prep() (string, bool) {
	if d == nil || d.Details == nil {
		return "", false
	}
	return deref(d.Details.LibraryConstructionMethod)
}

// Sample returns the entry of a sample.
func (d *ProjectDocument) Sample(sampleID string) (SampleEntry, bool) {
	if d == nil {
		return SampleEntry{}, false
	}
	res, ok := d.Samples[sampleID]
	return res, ok
}

// CustomerName returns the customer name of a sample.
func (d *ProjectDocument) CustomerName(sampleID string) (string, bool) {
	smp, ok := d.Sample(sampleID)
	if !ok {
		return "", false
	}
	return deref(smp.CustomerName)
}

// ReagentLabel returns the reagent label of the given library prep of a
// sample.
func (d *ProjectDocument) ReagentLabel(sampleID, prep string) (string, bool) {
	smp, ok := d.Sample(sampleID)
	if !ok {
		return "", false
	}
	lp, ok := smp.LibraryPrep[prep]
	if !ok {
		return "", false
	}
	return deref(lp.ReagentLabel)
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
