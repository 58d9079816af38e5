package upstream

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/mythdex/internal/domain/entities"
	"github.com/ersonp/mythdex/internal/domain/mocks"
	"github.com/ersonp/mythdex/internal/infrastructure/config"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
		errMsg  string
	}{
		{name: "valid http", baseURL: "http://localhost:8080/api"},
		{name: "valid https", baseURL: "https://myths.example.org"},
		{name: "missing", baseURL: "", wantErr: true, errMsg: "base URL is required"},
		{name: "bad scheme", baseURL: "ftp://myths.example.org", wantErr: true, errMsg: "http or https"},
		{name: "relative", baseURL: "/api", wantErr: true, errMsg: "http or https"},
		{name: "no host", baseURL: "http://", wantErr: true, errMsg: "must have a host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(config.UpstreamConfig{BaseURL: tt.baseURL}, nil)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client, err := NewClient(config.UpstreamConfig{BaseURL: "http://localhost/api/"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/api", client.BaseURL())
}

func TestClient_Fetch(t *testing.T) {
	var mu sync.Mutex
	var gotPath, gotAccept, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get(RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Zeus"}]`))
	}))
	defer srv.Close()

	logger := &mocks.Logger{}
	client, err := NewClient(config.UpstreamConfig{BaseURL: srv.URL + "/api"}, logger)
	require.NoError(t, err)

	body, err := client.Fetch(t.Context(), entities.CategoryGod)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"id":1,"name":"Zeus"}]`, string(body))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/api/gods", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Len(t, gotRequestID, 36)
	assert.Contains(t, logger.Messages("debug"), "fetching catalog")
}

func TestClient_Fetch_CategoryPaths(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, err := NewClient(config.UpstreamConfig{BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	for _, c := range entities.Categories() {
		_, err := client.Fetch(t.Context(), c)
		require.NoError(t, err)
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/gods", "/heroes", "/monsters", "/titans"}, paths)
}

func TestClient_Fetch_StatusError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "under maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(config.UpstreamConfig{BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	body, err := client.Fetch(t.Context(), entities.CategoryHero)
	require.Error(t, err)
	assert.Nil(t, body)

	var fetchErr *entities.RemoteFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	assert.Equal(t, "under maintenance", fetchErr.Body)
	assert.Equal(t, entities.CategoryHero, fetchErr.Category)
	assert.Equal(t, srv.URL+"/heroes", fetchErr.URL)
	assert.Equal(t, int32(1), calls.Load(), "no retries")
}

func TestClient_Fetch_NotFoundWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewClient(config.UpstreamConfig{BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = client.Fetch(t.Context(), entities.CategoryTitan)
	var fetchErr *entities.RemoteFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Empty(t, fetchErr.Body)
}

func TestClient_Fetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := NewClient(config.UpstreamConfig{BaseURL: url}, nil)
	require.NoError(t, err)

	_, err = client.Fetch(t.Context(), entities.CategoryGod)
	var fetchErr *entities.RemoteFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Zero(t, fetchErr.StatusCode)
	assert.Error(t, fetchErr.Err)
}

func TestClient_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client, err := NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	require.NoError(t, err)

	_, err = client.Fetch(t.Context(), entities.CategoryGod)
	var fetchErr *entities.RemoteFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Zero(t, fetchErr.StatusCode)
}
