package nominatim_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/clients/nominatim"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Rome", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"lat":"41.8933203","lon":"12.4829321","display_name":"Roma, Italia"},
			{"lat":"34.2575566","lon":"-85.1646726","display_name":"Rome, Georgia, USA"}
		]`))
	}))
	defer srv.Close()

	client := nominatim.NewClient(srv.URL, "test-agent")
	places, err := client.Search(context.Background(), "Rome")
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.InDelta(t, 41.8933203, places[0].Latitude, 1e-9)
	assert.InDelta(t, 12.4829321, places[0].Longitude, 1e-9)
	assert.Equal(t, "Roma, Italia", places[0].DisplayName)
}

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lat":"41.8933","lon":"12.4829","display_name":"Roma, Italia"}`))
	}))
	defer srv.Close()

	client := nominatim.NewClient(srv.URL, "test-agent")
	place, err := client.Reverse(context.Background(), 41.8933, 12.4829)
	require.NoError(t, err)
	assert.Equal(t, "Roma, Italia", place.DisplayName)
}

func TestReverse_NoPlace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	client := nominatim.NewClient(srv.URL, "test-agent")
	_, err := client.Reverse(context.Background(), 0, 0)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := nominatim.NewClient(srv.URL, "test-agent")
	_, err := client.Search(context.Background(), "Rome")
	assert.Error(t, err)
}
