package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"", "v0.0.0"},
		{"garbage", "v0.0.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalVersion(tt.in), tt.in)
	}
}

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/abhisek/bilan/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.4.0","html_url":"https://example.com/v1.4.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))

	t.Run("update available", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.4.0", result.LatestVersion)
	})

	t.Run("already current", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.4.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})
}
