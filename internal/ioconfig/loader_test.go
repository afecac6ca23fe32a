package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/ngireports/internal/ioconfig"
	"github.com/gnames/ngireports/internal/iofs"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	res, err := ioconfig.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Contains(t, []string{"defaults", "defaults+env"}, res.Source)
	assert.Empty(t, res.SourcePath)
	assert.NotNil(t, res.Config)
}

func TestLoad_EmbeddedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(iofs.ConfigYAML), 0644))

	res, err := ioconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file", res.Source)
	assert.Equal(t, path, res.SourcePath)

	// embedded config carries the same values as built-in defaults
	def := config.New()
	assert.Equal(t, def.StatusDB, res.Config.StatusDB)
	assert.Equal(t, def.Report, res.Config.Report)
	assert.Equal(t, def.Log, res.Config.Log)
}

func TestLoad_FileAndEnv(t *testing.T) {
	yml := `status_db:
  backend: sqlite
  path: /data/statusdb.sqlite
  timeout: 5
report:
  prep_key: B
  format: csv
log:
  level: debug
jobs_number: 3
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	t.Setenv("NGIREPORTS_STATUS_DB_PATH", "/env/statusdb.sqlite")
	t.Setenv("NGIREPORTS_REPORT_FORMAT", "yaml")

	res, err := ioconfig.Load(path)
	require.NoError(t, err)

	cfg := res.Config
	assert.Equal(t, config.BackendSQLite, cfg.StatusDB.Backend)
	assert.Equal(t, "/env/statusdb.sqlite", cfg.StatusDB.Path)
	assert.Equal(t, 5, cfg.StatusDB.Timeout)
	assert.Equal(t, "B", cfg.Report.PrepKey)
	assert.Equal(t, "yaml", cfg.Report.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.JobsNumber)
}

func TestLoad_InvalidValues(t *testing.T) {
	yml := "status_db:\n  backend: redis\nlog:\n  destination: syslog\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	res, err := ioconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendPostgres, res.Config.StatusDB.Backend)
	assert.Equal(t, "file", res.Config.Log.Destination)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("status_db: [\n"), 0644))

	_, err := ioconfig.Load(path)
	assert.Error(t, err)
}
