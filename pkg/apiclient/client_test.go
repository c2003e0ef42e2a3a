package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/schedule", r.URL.Path)
		require.Equal(t, "Bearer some-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"videos":[{"id":"v1","title":"My video","date":"2026-09-01","time":"14:00","category":"Tech","status":"scheduled"}]}`))
	}))
	defer srv.Close()

	videos, err := New(srv.URL).Schedule(context.Background(), "some-token")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, "My video", videos[0].Title)
	require.Equal(t, "scheduled", videos[0].Status)
}

func TestDo_SurfacesServerMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Login(context.Background(), "a@x.com", "wrongpass")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Invalid credentials", apiErr.Message)
}
