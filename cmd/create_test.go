package cmd

import (
	"context"
	"testing"

	"github.com/gnames/ngireports/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCreateCmd_Exists verifies getCreateCmd returns
// a valid command.
func TestGetCreateCmd_Exists(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd, "Create command should exist")
	assert.Equal(t, "create", cmd.Use)
	assert.Contains(t, cmd.Short, "PostgreSQL")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
}

// TestRunCreate_OtherBackends verifies that backends without schema
// are skipped.
func TestRunCreate_OtherBackends(t *testing.T) {
	for _, backend := range []string{
		config.BackendMongo, config.BackendSQLite, config.BackendFile,
	} {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptStatusDBBackend(backend)})
		err := runCreate(context.Background(), cfg)
		assert.NoError(t, err, backend)
	}
}
