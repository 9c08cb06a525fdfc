package errors_test

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
)

func TestTidyError(t *testing.T) {
	t.Run("error_string_includes_code", func(t *testing.T) {
		err := errors.New(errors.ErrSourceNotFound, "source directory does not exist")
		assert.Contains(t, err.Error(), "SOURCE_NOT_FOUND")
		assert.Contains(t, err.Error(), "source directory does not exist")
	})

	t.Run("wrap_preserves_cause", func(t *testing.T) {
		err := errors.Wrap(os.ErrPermission, errors.ErrMoveFailed, "failed to move file")
		assert.True(t, stderrors.Is(err, os.ErrPermission))
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("wrap_nil_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrMoveFailed, "ignored"))
	})

	t.Run("is_matches_by_code", func(t *testing.T) {
		err := errors.Newf(errors.ErrRunNotFound, "no run with id %s", "abc")
		assert.True(t, stderrors.Is(err, errors.New(errors.ErrRunNotFound, "")))
		assert.False(t, stderrors.Is(err, errors.New(errors.ErrMoveFailed, "")))
	})

	t.Run("with_detail", func(t *testing.T) {
		err := errors.New(errors.ErrUnsafePath, "refused").WithDetail("path", "/etc")
		assert.Equal(t, "/etc", err.Details["path"])
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrConfigLoad, "boom")

	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrConfigLoad))

	t.Run("sees_through_wrapping", func(t *testing.T) {
		wrapped := errors.Wrap(err, errors.ErrInternal, "outer")
		assert.True(t, errors.IsErrorCode(wrapped, errors.ErrInternal))
	})
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(errors.New(errors.ErrConfigLoad, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}
