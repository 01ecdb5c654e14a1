package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spaserver/core/response"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("error message and status", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Not Found", response.ErrNotFound.Error())
		assert.Equal(t, http.StatusNotFound, response.ErrNotFound.StatusCode())
		assert.Equal(t, http.StatusForbidden, response.ErrForbidden.StatusCode())
	})

	t.Run("with message keeps identity", func(t *testing.T) {
		t.Parallel()
		err := response.ErrNotFound.WithMessage("no such asset")
		assert.Equal(t, "no such asset", err.Error())
		assert.ErrorIs(t, err, response.ErrNotFound)
		assert.NotErrorIs(t, err, response.ErrForbidden)
		assert.Equal(t, "Not Found", response.ErrNotFound.Message, "predefined error must not be mutated")
	})

	t.Run("with error wraps cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("disk failure")
		err := response.ErrInternalServerError.WithError(cause)

		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, response.ErrInternalServerError)
		assert.Equal(t, "disk failure", err.Details["cause"])
		assert.Nil(t, response.ErrInternalServerError.Details)
	})

	t.Run("with error copies details", func(t *testing.T) {
		t.Parallel()
		base := response.ErrBadRequest.WithDetails(map[string]any{"field": "path"})
		err := base.WithError(errors.New("bad"))

		assert.Len(t, base.Details, 1)
		assert.Len(t, err.Details, 2)
	})

	t.Run("with nil error is a no-op", func(t *testing.T) {
		t.Parallel()
		err := response.ErrNotFound.WithError(nil)
		assert.NoError(t, err.Unwrap())
	})

	t.Run("errors.As through fmt wrapping", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("serve: %w", response.ErrForbidden)

		var httpErr response.HTTPError
		require.ErrorAs(t, wrapped, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Status)
	})

	t.Run("new http error", func(t *testing.T) {
		t.Parallel()
		err := response.NewHTTPError("boom")
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
		assert.Equal(t, "boom", err.Error())
	})
}
