package schema_test

import (
	"sync"
	"testing"

	"github.com/gnames/ngireports/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gschema "gorm.io/gorm/schema"
)

func TestProjectRecordColumns(t *testing.T) {
	s, err := gschema.Parse(
		&schema.ProjectRecord{},
		&sync.Map{},
		gschema.NamingStrategy{},
	)
	require.NoError(t, err)

	assert.Equal(t, "project_records", s.Table)

	var cols []string
	for _, v := range s.Fields {
		cols = append(cols, v.DBName)
	}
	assert.Equal(t, []string{"project_id", "doc", "updated_at"}, cols)

	require.Len(t, s.PrimaryFields, 1)
	assert.Equal(t, "project_id", s.PrimaryFields[0].DBName)

	doc := s.LookUpField("doc")
	require.NotNil(t, doc)
	assert.Equal(t, "jsonb", string(doc.DataType))
}

func TestAllModels(t *testing.T) {
	assert.Len(t, schema.AllModels(), 1)
}
