package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 2 * time.Millisecond
	return cfg
}

func TestHTTPClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<urlset/>"))
	}))
	defer srv.Close()

	c := NewHTTPClient(WithUserAgent("test-agent"))
	body, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<urlset/>", string(body))
}

func TestHTTPClient_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewHTTPClient(WithRetryConfig(fastRetry()))
	body, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPClient_NoRetryOnNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPClient(WithRetryConfig(fastRetry()))
	_, err := c.Fetch(context.Background(), srv.URL)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	cfg := fastRetry()
	cfg.MaxAttempts = 1
	c := NewHTTPClient(WithTimeout(20*time.Millisecond), WithRetryConfig(cfg))

	start := time.Now()
	_, err := c.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 900*time.Millisecond)
}

func TestHTTPClient_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standorte.xml")
	require.NoError(t, os.WriteFile(path, []byte("<standorte/>"), 0o644))

	c := NewHTTPClient()
	body, err := c.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "<standorte/>", string(body))

	body, err = c.Fetch(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, "<standorte/>", string(body))

	_, err = c.Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestHTTPClient_EmptyURL(t *testing.T) {
	_, err := NewHTTPClient().Fetch(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyURL)
}
