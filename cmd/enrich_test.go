package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/internal/ioreport"
	"github.com/gnames/ngireports/internal/iotesting"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/errcode"
	"github.com/gnames/ngireports/pkg/report"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestGetEnrichCmd_Flags verifies enrich flags.
func TestGetEnrichCmd_Flags(t *testing.T) {
	cmd := getEnrichCmd()
	assert.Equal(t, "enrich", cmd.Use)

	tests := []struct {
		name      string
		shorthand string
	}{
		{"project", "p"},
		{"samples", "s"},
		{"report", "r"},
		{"format", "f"},
		{"backend", "b"},
		{"prep-key", ""},
		{"path", ""},
	}
	for _, v := range tests {
		flag := cmd.Flags().Lookup(v.name)
		require.NotNil(t, flag, v.name)
		assert.Equal(t, v.shorthand, flag.Shorthand, v.name)
	}
}

func TestFlagOptions(t *testing.T) {
	cmd := getEnrichCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"-f", "yaml", "--prep-key", "B", "-b", "file", "--path", "/tmp/docs",
	}))

	c := config.New()
	c.Update(flagOptions(cmd))
	assert.Equal(t, "yaml", c.Report.Format)
	assert.Equal(t, "B", c.Report.PrepKey)
	assert.Equal(t, config.BackendFile, c.StatusDB.Backend)
	assert.Equal(t, "/tmp/docs", c.StatusDB.Path)

	// unchanged flags keep config values
	cmd = &cobra.Command{}
	addStatusDBFlags(cmd)
	c = config.New()
	c.Update(flagOptions(cmd))
	assert.Equal(t, config.New().StatusDB, c.StatusDB)
}

// seedFileBackend stores a test project in a file backend.
func seedFileBackend(t *testing.T) *config.Config {
	t.Helper()
	c := iotesting.GetTestConfig(t, config.BackendFile)
	doc := iotesting.ProjectDocument("P001")

	raw, err := yaml.Marshal(doc)
	require.NoError(t, err)
	path := writeTemp(t, "P001.yaml", raw)

	_, err = runLoad(context.Background(), c, []string{path})
	require.NoError(t, err)
	return c
}

func TestRunEnrich(t *testing.T) {
	c := seedFileBackend(t)
	c.Update([]config.Option{config.OptReportFormat("yaml")})

	rc, err := ioreport.FromFlags("P001", []string{"S1", "S2", "S3"})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = runEnrich(context.Background(), c, rc, &buf)
	require.NoError(t, err)

	var res report.Context
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "jane.doe@example.org", *res.Info.Recipient)
	assert.Equal(t, "TruSeq PCR-free", *res.Project.Prep)
	assert.Equal(t, "liver-01", *res.Samples["S1"].UserSampleID)
	assert.Equal(t, "ACGTACGT", *res.Samples["S1"].Barcode)
	assert.Equal(t, "liver-02", *res.Samples["S2"].UserSampleID)
	assert.Nil(t, res.Samples["S2"].Barcode)
	assert.Nil(t, res.Samples["S3"].UserSampleID)
}

func TestRunEnrich_UnknownProject(t *testing.T) {
	c := seedFileBackend(t)

	rc, err := ioreport.FromFlags("P404", []string{"S1"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runEnrich(context.Background(), c, rc, &buf))
	assert.Contains(t, buf.String(), `"P404"`)
	assert.Nil(t, rc.Info.Recipient)
}

func TestRunEnrich_ConnectionError(t *testing.T) {
	c := iotesting.GetTestConfig(t, config.BackendSQLite)

	rc, err := ioreport.FromFlags("P001", []string{"S1"})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = runEnrich(context.Background(), c, rc, &buf)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.StatusDBConnectionError, gnErr.Code)
	assert.Zero(t, buf.Len(), "nothing is printed on connection failure")
}
