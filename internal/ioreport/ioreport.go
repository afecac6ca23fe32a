// Package ioreport builds report contexts from report description
// files or command line values and writes enriched reports out.
package ioreport

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/ngireports/pkg/report"
	"gopkg.in/yaml.v3"
)

// Report output formats.
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
	FormatYAML   = "yaml"
)

// description is the layout of a report description file.
type description struct {
	Project struct {
		ID   string `json:"id" yaml:"id"`
		Name string `json:"name" yaml:"name"`
	} `json:"project" yaml:"project"`
	Samples []string `json:"samples" yaml:"samples"`
}

// Read creates a report context from a YAML or JSON report description.
// Files with .json extension are decoded as JSON, everything else as
// YAML.
func Read(path string) (*report.Context, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}

	var desc description
	if strings.EqualFold(filepath.Ext(path), ".json") {
		enc := gnfmt.GNjson{}
		err = enc.Decode(raw, &desc)
	} else {
		err = yaml.Unmarshal(raw, &desc)
	}
	if err != nil {
		return nil, ReadError(path, err)
	}

	res, err := build(path, desc.Project.ID, desc.Samples)
	if err != nil {
		return nil, err
	}
	res.Project.Name = strings.TrimSpace(desc.Project.Name)
	return res, nil
}

// FromFlags creates a report context from a project ID and sample IDs
// given on command line.
func FromFlags(projectID string, sampleIDs []string) (*report.Context, error) {
	return build("command line", projectID, sampleIDs)
}

func build(
	source, projectID string,
	sampleIDs []string,
) (*report.Context, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ProjectIDError(source)
	}

	var ids []string
	for _, v := range sampleIDs {
		v = strings.TrimSpace(v)
		if v != "" && !slices.Contains(ids, v) {
			ids = append(ids, v)
		}
	}
	return report.New(projectID, ids...), nil
}

// Write outputs the report context in the given format.
// Fields that are unknown are omitted.
func Write(w io.Writer, rc *report.Context, format string) error {
	if rc == nil {
		return WriteError("", errors.New("empty report"))
	}

	var raw []byte
	var err error
	switch format {
	case FormatJSON:
		enc := gnfmt.GNjson{}
		raw, err = enc.Encode(rc)
	case FormatPretty:
		enc := gnfmt.GNjson{Pretty: true}
		raw, err = enc.Encode(rc)
	case FormatYAML:
		raw, err = yaml.Marshal(rc)
	default:
		return FormatError(format)
	}
	if err != nil {
		return WriteError(rc.Project.ID, err)
	}

	if len(raw) > 0 && raw[len(raw)-1] != '\n' {
		raw = append(raw, '\n')
	}
	if _, err = w.Write(raw); err != nil {
		return WriteError(rc.Project.ID, err)
	}
	return nil
}
