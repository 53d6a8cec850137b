package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catein/episodemap/pkg/errors"
)

func TestPostJSON(t *testing.T) {
	var gotHeader http.Header
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		assert.Equal(t, http.MethodPost, r.Method)
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(&BearerAuth{},
		WithTimeout(time.Second),
		WithHeader("x-experience-name", "Adventures In Odyssey"),
		WithHeader("x-viewer-id", ""),
	)

	resp, err := c.PostJSON(context.Background(), srv.URL, "tok", map[string]any{"pageNumber": 1})
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, DecodeResponse(resp, &out))
	assert.True(t, out.OK)

	assert.Equal(t, "Bearer tok", gotHeader.Get("Authorization"))
	assert.Equal(t, "Adventures In Odyssey", gotHeader.Get("x-experience-name"))
	assert.Empty(t, gotHeader.Values("x-viewer-id"))
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.Equal(t, "application/json", gotHeader.Get("Accept"))
	assert.Equal(t, float64(1), gotBody["pageNumber"])
}

func TestDecodeResponseStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	resp, err := New(nil).PostJSON(context.Background(), srv.URL, "", struct{}{})
	require.NoError(t, err)

	err = DecodeResponse(resp, &struct{}{})
	require.Error(t, err)

	var apiErr *errors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)
	assert.Equal(t, srv.URL, apiErr.Endpoint)
	assert.True(t, errors.IsUnauthorized(err))
}

func TestDecodeResponseBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	resp, err := New(nil).PostJSON(context.Background(), srv.URL, "", nil)
	require.NoError(t, err)

	err = DecodeResponse(resp, &struct{}{})
	var parseErr *errors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}
