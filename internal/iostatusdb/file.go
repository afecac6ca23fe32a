package iostatusdb

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/statusdb"
	"gopkg.in/yaml.v3"
)

// documentExts are tried in order when looking for a project file.
var documentExts = []string{".json", ".yaml", ".yml"}

// fileConnector reads project documents from a directory where every
// project is kept in <project_id>.json or <project_id>.yaml file.
type fileConnector struct {
	cfg config.StatusDBConfig
	settings
}

type fileConn struct {
	dir      string
	writable bool
}

// Connect checks that the documents directory exists. A writable
// connector creates it.
func (c *fileConnector) Connect(
	_ context.Context,
) (statusdb.Connection, error) {
	dir := c.cfg.Path
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		err = errors.New("not a directory")
		return nil, ConnectionError(c.cfg.Backend, dir, err)
	case errors.Is(err, os.ErrNotExist) && c.writable:
		if err = os.MkdirAll(dir, 0755); err != nil {
			return nil, ConnectionError(c.cfg.Backend, dir, err)
		}
	case err != nil:
		return nil, ConnectionError(c.cfg.Backend, dir, err)
	}

	return &fileConn{dir: dir, writable: c.writable}, nil
}

// GetEntry reads the project file or returns nil if there is none.
func (f *fileConn) GetEntry(
	_ context.Context,
	projectID string,
) (*statusdb.ProjectDocument, error) {
	if f.dir == "" {
		return nil, NotConnectedError()
	}
	if !validFileID(projectID) {
		return nil, QueryError(projectID, errors.New("invalid project id"))
	}

	for _, ext := range documentExts {
		path := filepath.Join(f.dir, projectID+ext)
		doc, err := ReadDocument(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		var gnErr *gn.Error
		if errors.As(err, &gnErr) {
			return nil, err
		}
		if err != nil {
			return nil, QueryError(projectID, err)
		}
		if doc.ProjectID == "" {
			doc.ProjectID = projectID
		}
		return doc, nil
	}
	return nil, nil
}

// Put writes the document to <project_id>.json.
func (f *fileConn) Put(
	_ context.Context,
	doc *statusdb.ProjectDocument,
) error {
	if !f.writable {
		return ReadOnlyError(config.BackendFile)
	}
	if f.dir == "" {
		return NotConnectedError()
	}
	if !validFileID(doc.ProjectID) {
		return WriteError(doc.ProjectID, errors.New("invalid project id"))
	}

	enc := gnfmt.GNjson{Pretty: true}
	raw, err := enc.Encode(doc)
	if err != nil {
		return WriteError(doc.ProjectID, err)
	}

	path := filepath.Join(f.dir, doc.ProjectID+".json")
	if err = os.WriteFile(path, raw, 0644); err != nil {
		return WriteError(doc.ProjectID, err)
	}
	return nil
}

// Close is a no-op for files.
func (f *fileConn) Close() error {
	f.dir = ""
	return nil
}

// ReadDocument decodes a project document from a JSON or YAML file.
// Errors that wrap os.ErrNotExist mean the file is absent.
func ReadDocument(path string) (*statusdb.ProjectDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var res statusdb.ProjectDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &res)
	default:
		enc := gnfmt.GNjson{}
		err = enc.Decode(raw, &res)
	}
	if err != nil {
		return nil, DecodeError(path, err)
	}
	return &res, nil
}

func validFileID(id string) bool {
	return id != "" && id != "." && id != ".." &&
		!strings.ContainsAny(id, `/\`)
}
