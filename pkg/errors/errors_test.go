// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/configtool/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "env_missing",
			code:    errors.ErrEnvMissing,
			message: "$XDG_CONFIG_HOME or $HOME must be defined",
			wantStr: "[ENV_MISSING] $XDG_CONFIG_HOME or $HOME must be defined",
		},
		{
			name:    "internal",
			code:    errors.ErrInternal,
			message: "environment lookup is required",
			wantStr: "[INTERNAL] environment lookup is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrThemeLoad, "theme %q not found", "dark")
	assert.Equal(t, `theme "dark" not found`, err.Message)
	assert.Equal(t, errors.ErrThemeLoad, err.Code)
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrFileRead, "read"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrFileRead, "read %s", "x"))
	})

	t.Run("wrapped_error_is_reachable", func(t *testing.T) {
		err := errors.Wrapf(fs.ErrNotExist, errors.ErrFileRead, "failed to read %s", "/tmp/a")
		require.NotNil(t, err)
		assert.True(t, stderrors.Is(err, fs.ErrNotExist))
		assert.Equal(t, "[FILE_READ] failed to read /tmp/a: file does not exist", err.Error())
	})
}

func TestCodeLookup(t *testing.T) {
	base := errors.New(errors.ErrThemeParse, "bad theme").WithDetail("path", "/themes/dark")
	wrapped := fmt.Errorf("outer: %w", base)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrThemeParse))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrThemeLoad))
	assert.Equal(t, errors.ErrThemeParse, errors.GetErrorCode(wrapped))
	assert.Equal(t, "/themes/dark", errors.GetErrorDetails(wrapped)["path"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := errors.Wrap(fs.ErrPermission, errors.ErrFileWrite, "write failed")
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrFileWrite, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrFileRead, "")))
}
