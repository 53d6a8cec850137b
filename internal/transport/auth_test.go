package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoAuth(t *testing.T) {
	req := &http.Request{Header: make(http.Header)}

	(&NoAuth{}).Apply(req, "token")

	assert.Empty(t, req.Header)
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "raw token", token: "abc123", want: "Bearer abc123"},
		{name: "already prefixed", token: "Bearer abc123", want: "Bearer abc123"},
		{name: "lowercase prefix", token: "bearer abc123", want: "Bearer abc123"},
		{name: "surrounding space", token: "  abc123\n", want: "Bearer abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &http.Request{Header: make(http.Header)}
			(&BearerAuth{}).Apply(req, tt.token)
			assert.Equal(t, tt.want, req.Header.Get("Authorization"))
		})
	}
}
