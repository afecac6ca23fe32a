package ioload_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/internal/ioload"
	"github.com/gnames/ngireports/internal/iostatusdb"
	"github.com/gnames/ngireports/internal/iotesting"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/errcode"
	"github.com/gnames/ngireports/pkg/statusdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memLoader keeps documents in memory.
type memLoader struct {
	mu   sync.Mutex
	docs map[string]*statusdb.ProjectDocument
	err  error
}

func (m *memLoader) Put(_ context.Context, doc *statusdb.ProjectDocument) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.docs == nil {
		m.docs = make(map[string]*statusdb.ProjectDocument)
	}
	m.docs[doc.ProjectID] = doc
	return nil
}

func writeDocs(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"P001.json": `{"project_id":"P001","contact":"jane.doe@example.org"}`,
		"P002.yaml": "contact: john.doe@example.org\n",
		"other.yml": "project_id: P003\ndetails:\n  library_construction_method: TruSeq\n",
	}
	var res []string
	for k, v := range files {
		path := filepath.Join(dir, k)
		require.NoError(t, os.WriteFile(path, []byte(v), 0644))
		res = append(res, path)
	}
	return res
}

func TestLoad(t *testing.T) {
	loader := &memLoader{}
	count, err := ioload.Load(context.Background(), loader, writeDocs(t), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.Contains(t, loader.docs, "P002")
	recipient, ok := loader.docs["P002"].Recipient()
	assert.True(t, ok)
	assert.Equal(t, "john.doe@example.org", recipient)

	require.Contains(t, loader.docs, "P003")
	prep, ok := loader.docs["P003"].Prep()
	assert.True(t, ok)
	assert.Equal(t, "TruSeq", prep)
	assert.Contains(t, loader.docs, "P001")
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("no files", func(t *testing.T) {
		_, err := ioload.Load(ctx, &memLoader{}, nil, 1)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.LoadNoFilesError, gnErr.Code)
	})

	t.Run("bad document", func(t *testing.T) {
		paths := writeDocs(t)
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))

		loader := &memLoader{}
		count, err := ioload.Load(ctx, loader, append(paths, bad), 4)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.LoadDocumentError, gnErr.Code)
		assert.Zero(t, count)
		assert.Empty(t, loader.docs)
	})

	t.Run("put fails", func(t *testing.T) {
		cause := errors.New("disk full")
		count, err := ioload.Load(ctx, &memLoader{err: cause}, writeDocs(t), 1)
		assert.ErrorIs(t, err, cause)
		assert.Zero(t, count)
	})
}

func TestLoadIntoFileBackend(t *testing.T) {
	ctx := context.Background()
	cfg := iotesting.GetTestConfig(t, config.BackendFile)

	connector, err := iostatusdb.New(&cfg.StatusDB, iostatusdb.OptWritable())
	require.NoError(t, err)
	conn, err := connector.Connect(ctx)
	require.NoError(t, err)
	defer conn.Close()

	loader, ok := conn.(statusdb.Loader)
	require.True(t, ok)

	count, err := ioload.Load(ctx, loader, writeDocs(t), cfg.JobsNumber)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	doc, err := conn.GetEntry(ctx, "P001")
	require.NoError(t, err)
	require.NotNil(t, doc)
	recipient, _ := doc.Recipient()
	assert.Equal(t, "jane.doe@example.org", recipient)
}
