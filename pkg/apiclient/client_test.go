package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": status < http.StatusBadRequest,
		"data":    data,
		"message": message,
	})
}

func TestDoInjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, map[string]string{"ok": "yes"}, "")
	}))
	defer srv.Close()

	creds := NewMemoryStore()
	require.NoError(t, creds.SetTokens("access-1", "refresh-1"))

	client := New(srv.URL, creds)
	var out map[string]string
	require.NoError(t, client.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/x"}, &out))

	assert.Equal(t, "Bearer access-1", gotAuth)
	assert.Equal(t, "yes", out["ok"])
}

func TestDoOmitsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, nil, "")
	}))
	defer srv.Close()

	client := New(srv.URL, NewMemoryStore())
	require.NoError(t, client.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/x"}, nil))
	assert.Empty(t, gotAuth)
}

func TestDoSurfacesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, nil, "player not found")
	}))
	defer srv.Close()

	client := New(srv.URL, NewMemoryStore())
	err := client.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/x"}, nil)

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "player not found")
}

func TestDoRefreshesOnceAndRetries(t *testing.T) {
	var refreshCalls, dataCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			atomic.AddInt32(&refreshCalls, 1)
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refreshToken"])
			writeEnvelope(w, http.StatusOK, map[string]string{"accessToken": "access-2"}, "")
			return
		}
		atomic.AddInt32(&dataCalls, 1)
		if r.Header.Get("Authorization") != "Bearer access-2" {
			writeEnvelope(w, http.StatusUnauthorized, nil, "token expired")
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]string{"ok": "yes"}, "")
	}))
	defer srv.Close()

	creds := NewMemoryStore()
	require.NoError(t, creds.SetTokens("stale", "refresh-1"))

	client := New(srv.URL, creds)
	var out map[string]string
	require.NoError(t, client.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/x"}, &out))

	assert.Equal(t, "yes", out["ok"])
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&dataCalls))
	assert.Equal(t, "access-2", creds.AccessToken())
	assert.Equal(t, "refresh-1", creds.RefreshToken(), "refresh token is reused, not rotated")
}

func TestDoRetriesAtMostOnce(t *testing.T) {
	var refreshCalls, dataCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			atomic.AddInt32(&refreshCalls, 1)
			writeEnvelope(w, http.StatusOK, map[string]string{"accessToken": "access-2"}, "")
			return
		}
		atomic.AddInt32(&dataCalls, 1)
		writeEnvelope(w, http.StatusUnauthorized, nil, "still unauthorized")
	}))
	defer srv.Close()

	creds := NewMemoryStore()
	require.NoError(t, creds.SetTokens("stale", "refresh-1"))

	client := New(srv.URL, creds)
	err := client.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/x"}, nil)

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&dataCalls), "exactly one retry, never more")
}

func TestDoRefreshFailureExpiresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			writeEnvelope(w, http.StatusUnauthorized, nil, "refresh token revoked")
			return
		}
		writeEnvelope(w, http.StatusUnauthorized, nil, "token expired")
	}))
	defer srv.Close()

	creds := NewMemoryStore()
	require.NoError(t, creds.SetTokens("stale", "revoked"))
	require.NoError(t, creds.SetSession(`{"id":"user-1"}`))

	var hookCalls int32
	client := New(srv.URL, creds, WithSessionExpiredHook(func() { atomic.AddInt32(&hookCalls, 1) }))

	err := client.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/x"}, nil)

	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, creds.AccessToken())
	assert.Empty(t, creds.RefreshToken())
	assert.Empty(t, creds.Session(), "session is cleared alongside both tokens")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hookCalls))
}

func TestDoLoginUnauthorizedSkipsRefresh(t *testing.T) {
	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			atomic.AddInt32(&refreshCalls, 1)
			writeEnvelope(w, http.StatusOK, map[string]string{"accessToken": "access-2"}, "")
			return
		}
		writeEnvelope(w, http.StatusUnauthorized, nil, "invalid credentials")
	}))
	defer srv.Close()

	// tokens from an earlier sign in must survive a rejected login attempt
	creds := NewMemoryStore()
	require.NoError(t, creds.SetTokens("stale", "refresh-1"))

	var hookCalls int32
	client := New(srv.URL, creds, WithSessionExpiredHook(func() { atomic.AddInt32(&hookCalls, 1) }))

	err := client.Do(context.Background(), RequestSpec{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]string{"email": "sam@example.com", "password": "wrong"},
	}, nil)

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.EqualError(t, err, "invalid credentials")
	assert.Zero(t, atomic.LoadInt32(&refreshCalls), "a rejected login never triggers a renewal")
	assert.Zero(t, atomic.LoadInt32(&hookCalls))
	assert.Equal(t, "refresh-1", creds.RefreshToken())
}

func TestDoRefreshFailureKeepsOriginalError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			writeEnvelope(w, http.StatusUnauthorized, nil, "refresh token revoked")
			return
		}
		writeEnvelope(w, http.StatusUnauthorized, nil, "token expired")
	}))
	defer srv.Close()

	creds := NewMemoryStore()
	require.NoError(t, creds.SetTokens("stale", "revoked"))

	client := New(srv.URL, creds)
	err := client.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/x"}, nil)

	require.ErrorIs(t, err, ErrSessionExpired)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr, "the triggering failure stays inspectable")
	assert.Equal(t, http.StatusUnauthorized, svcErr.Status)
	assert.Equal(t, "token expired", svcErr.Message)
}

func TestDoMissingRefreshTokenExpiresSession(t *testing.T) {
	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		writeEnvelope(w, http.StatusUnauthorized, nil, "token expired")
	}))
	defer srv.Close()

	creds := NewMemoryStore()
	require.NoError(t, creds.SetAccessToken("stale"))

	var hookCalls int32
	client := New(srv.URL, creds, WithSessionExpiredHook(func() { atomic.AddInt32(&hookCalls, 1) }))

	err := client.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/x"}, nil)

	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Zero(t, atomic.LoadInt32(&refreshCalls), "no renewal attempted without a refresh token")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hookCalls))
}

func TestConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	const workers = 8

	var refreshCalls int32
	var barrier sync.WaitGroup
	barrier.Add(workers)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)
			time.Sleep(100 * time.Millisecond)
			writeEnvelope(w, http.StatusOK, map[string]string{"accessToken": "access-2"}, "")
		case r.Header.Get("Authorization") == "Bearer access-2":
			writeEnvelope(w, http.StatusOK, map[string]string{"ok": "yes"}, "")
		default:
			// hold every stale request until all workers have arrived so
			// their renewals overlap
			barrier.Done()
			barrier.Wait()
			writeEnvelope(w, http.StatusUnauthorized, nil, "token expired")
		}
	}))
	defer srv.Close()

	creds := NewMemoryStore()
	require.NoError(t, creds.SetTokens("stale", "refresh-1"))

	client := New(srv.URL, creds)

	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			errCh <- client.Do(context.Background(), RequestSpec{
				Method: http.MethodGet,
				Path:   fmt.Sprintf("/x/%d", i),
			}, nil)
		}(i)
	}
	for i := 0; i < workers; i++ {
		require.NoError(t, <-errCh)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls), "concurrent renewals are coalesced")
}

func TestDoUnwrapsNullData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, nil, "deleted")
	}))
	defer srv.Close()

	client := New(srv.URL, NewMemoryStore())
	var out map[string]string
	require.NoError(t, client.Do(context.Background(), RequestSpec{Method: http.MethodDelete, Path: "/x"}, &out))
	assert.Nil(t, out)
}

func TestServiceErrorFallbackMessage(t *testing.T) {
	err := &ServiceError{Status: http.StatusBadGateway}
	assert.Equal(t, "request failed with status 502", err.Error())
	assert.False(t, errors.Is(err, ErrSessionExpired))
}
