package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/catein/episodemap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "short code",
			ID:       "zz",
		}
		assert.Equal(t, "short code zz not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("episode", "a3J4W")
		wrapped := errors.Join(errors.New("lookup failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("token", "", "cannot be empty")
		assert.Equal(t, "validation failed for field token: cannot be empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad short code"}
		assert.Equal(t, "validation failed: bad short code", err.Error())
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := pkgerrors.NewAPIError("Album", 502, "bad gateway")
		assert.Contains(t, err.Error(), "Album")
		assert.Contains(t, err.Error(), "502")
		assert.True(t, errors.Is(err, pkgerrors.ErrAPIUnavailable))
		assert.False(t, pkgerrors.IsUnauthorized(err))
	})

	t.Run("unauthorized", func(t *testing.T) {
		for _, code := range []int{401, 403} {
			err := pkgerrors.NewAPIError("Episode Home", code, "denied")
			assert.True(t, pkgerrors.IsUnauthorized(err), "status %d", code)
		}
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection reset")
		err := &pkgerrors.APIError{Category: "Album", Message: "request failed", Err: baseErr}
		assert.Equal(t, "API error for Album: request failed", err.Error())
		assert.Equal(t, baseErr, err.Unwrap())
	})
}

func TestFetchError(t *testing.T) {
	t.Run("with page", func(t *testing.T) {
		err := pkgerrors.NewFetchError("Album", 3, pkgerrors.NewAPIError("Album", 500, "boom"))
		assert.Contains(t, err.Error(), "page 3")
		assert.True(t, pkgerrors.IsFetchFailed(err))
		assert.True(t, errors.Is(err, pkgerrors.ErrAPIUnavailable))

		var apiErr *pkgerrors.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 500, apiErr.StatusCode)
	})

	t.Run("empty category", func(t *testing.T) {
		err := pkgerrors.WrapFetch("Episode Home", 0, pkgerrors.ErrEmptyCategory)
		assert.Equal(t, "fetch Episode Home failed: category returned no items", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrEmptyCategory))
		assert.True(t, pkgerrors.IsFetchFailed(err))
	})

	t.Run("nil wraps to nil", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapFetch("Album", 1, nil))
	})
}

func TestExhaustedError(t *testing.T) {
	err := pkgerrors.NewExhaustedError(5, 2)
	assert.Equal(t, "short code space exhausted: 5 new items, 2 codes free", err.Error())
	assert.True(t, pkgerrors.IsExhausted(err))
	assert.True(t, pkgerrors.IsExhausted(fmt.Errorf("merge: %w", err)))
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("categories", "at least one category is required", nil)
	assert.Equal(t, "configuration error in categories: at least one category is required", err.Error())
	assert.Nil(t, err.Unwrap())

	err = &pkgerrors.ConfigError{Message: "broken"}
	assert.Equal(t, "configuration error: broken", err.Error())
}

func TestParseError(t *testing.T) {
	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "mapping", File: "episode_names.txt", Line: 7, Message: "bad code"}
		assert.Equal(t, "parse error in mapping at episode_names.txt:7: bad code", err.Error())
	})

	t.Run("with file only", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "response", "unexpected EOF", nil)
		assert.Equal(t, "parse error in json file response: unexpected EOF", err.Error())
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "json", Message: "oops"}
		assert.Equal(t, "json parse error: oops", err.Error())
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapIO", func(t *testing.T) {
		base := errors.New("disk full")
		err := pkgerrors.WrapIO("write", "/tmp/episode_names.txt", base)
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/tmp/episode_names.txt")
		assert.ErrorIs(t, err, base)
		assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	})

	t.Run("WrapResource", func(t *testing.T) {
		err := pkgerrors.WrapResource("save", "mapping", "episode_names.txt", errors.New("denied"))
		assert.Equal(t, "failed to save mapping episode_names.txt: denied", err.Error())
		assert.Nil(t, pkgerrors.WrapResource("load", "mapping", "", nil))
	})

	t.Run("WrapParse", func(t *testing.T) {
		err := pkgerrors.WrapParse("json", "response", errors.New("invalid syntax"))
		assert.Contains(t, err.Error(), "invalid syntax")
		assert.Nil(t, pkgerrors.WrapParse("json", "response", nil))
	})
}
