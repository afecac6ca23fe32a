package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("root cause")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		path string
	}{
		{
			name: "CreateDirError",
			err:  CreateDirError("/test/dir", cause),
			code: errcode.CreateDirError,
			path: "/test/dir",
		},
		{
			name: "CopyFileError",
			err:  CopyFileError("/test/config.yaml", cause),
			code: errcode.CopyFileError,
			path: "/test/config.yaml",
		},
		{
			name: "ReadFileError",
			err:  ReadFileError("/test/report.yaml", cause),
			code: errcode.ReadFileError,
			path: "/test/report.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			// caller context from runtime.Caller
			assert.Contains(t, gnErr.Err.Error(), "from")
			assert.ErrorIs(t, gnErr.Err, cause)
		})
	}
}
