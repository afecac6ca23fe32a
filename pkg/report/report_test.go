package report_test

import (
	"log/slog"
	"testing"

	"github.com/gnames/ngireports/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	rc := report.New("P123", "P123_102", "P123_101")

	assert.Equal(t, "P123", rc.Project.ID)
	assert.Nil(t, rc.Project.Prep)
	assert.Nil(t, rc.Info.Recipient)
	require.Len(t, rc.Samples, 2)
	for _, v := range rc.Samples {
		require.NotNil(t, v)
		assert.Nil(t, v.UserSampleID)
		assert.Nil(t, v.Barcode)
	}
	assert.Equal(t, []string{"P123_101", "P123_102"}, rc.SampleIDs())
}

func TestLog(t *testing.T) {
	rc := report.New("P1")
	assert.Equal(t, slog.Default(), rc.Log())

	l := slog.New(slog.DiscardHandler)
	rc.Logger = l
	assert.Equal(t, l, rc.Log())
}
