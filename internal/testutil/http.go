package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewStandingsServer starts an httptest server answering every request with status and body.
// The server is closed when the test ends.
func NewStandingsServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
