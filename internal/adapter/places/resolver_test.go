package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shefazol/ordering/internal/port"
)

func newTestResolver(handler http.HandlerFunc) (*HTTPResolver, *httptest.Server) {
	server := httptest.NewServer(handler)
	resolver := NewHTTPResolver("test-agent").WithEndpoint(server.URL)
	return resolver, server
}

func TestResolveReturnsCandidate(t *testing.T) {
	resolver, server := newTestResolver(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "il", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "הרצל 1", r.URL.Query().Get("q"))
		w.Write([]byte(`[{"display_name":"הרצל 1, תל אביב-יפו, ישראל","lat":"32.06","lon":"34.77"}]`))
	})
	defer server.Close()

	resolved, err := resolver.Resolve(context.Background(), "הרצל 1")
	require.NoError(t, err)
	assert.Equal(t, "הרצל 1, תל אביב-יפו, ישראל", resolved.FormattedAddress)
	assert.True(t, resolved.HasGeometry())
}

func TestResolveNoCandidatesIsNoSelection(t *testing.T) {
	resolver, server := newTestResolver(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	_, err := resolver.Resolve(context.Background(), "רחוב שלא קיים")
	assert.ErrorIs(t, err, port.ErrNoSelection)
}

func TestResolveEmptyTextIsNoSelection(t *testing.T) {
	called := false
	resolver, server := newTestResolver(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer server.Close()

	_, err := resolver.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, port.ErrNoSelection)
	assert.False(t, called)
}

func TestResolveMissingGeometryIsAccepted(t *testing.T) {
	resolver, server := newTestResolver(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"display_name":"כתובת בלי קואורדינטות","lat":"","lon":""}]`))
	})
	defer server.Close()

	resolved, err := resolver.Resolve(context.Background(), "כתובת")
	require.NoError(t, err)
	assert.Equal(t, "כתובת בלי קואורדינטות", resolved.FormattedAddress)
	assert.False(t, resolved.HasGeometry())
}

func TestResolveRetriesThenFails(t *testing.T) {
	var attempts atomic.Int32
	resolver, server := newTestResolver(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})
	defer server.Close()

	_, err := resolver.Resolve(context.Background(), "הרצל 1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrNoSelection)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestResolveRecoversOnRetry(t *testing.T) {
	var attempts atomic.Int32
	resolver, server := newTestResolver(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"display_name":"הרצל 1, תל אביב","lat":"32.06","lon":"34.77"}]`))
	})
	defer server.Close()

	resolved, err := resolver.Resolve(context.Background(), "הרצל 1")
	require.NoError(t, err)
	assert.Equal(t, "הרצל 1, תל אביב", resolved.FormattedAddress)
}
