package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

func geocoderAgainst(t *testing.T, handler http.HandlerFunc) *services.NominatimGeocoder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &services.NominatimGeocoder{
		HTTP:    &http.Client{Timeout: time.Second},
		BaseURL: srv.URL,
	}
}

// TestGeocodeSearch_success verifies the provider response maps onto the
// coordinate result and the query lands in the request.
func TestGeocodeSearch_success(t *testing.T) {
	g := geocoderAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		require.Equal(t, "Eiffel Tower", r.URL.Query().Get("q"))
		require.Equal(t, "json", r.URL.Query().Get("format"))
		w.Write([]byte(`[{"lat":"48.8584","lon":"2.2945","display_name":"Tour Eiffel, Paris"}]`))
	})

	got, err := g.Search(context.Background(), "Eiffel Tower")

	require.NoError(t, err)
	require.InDelta(t, 48.8584, got.Latitude, 1e-9)
	require.InDelta(t, 2.2945, got.Longitude, 1e-9)
	require.Equal(t, "Tour Eiffel, Paris", got.Address)
}

// TestGeocodeSearch_noResults verifies an empty provider answer maps to the
// location-not-found sentinel, not a transport error.
func TestGeocodeSearch_noResults(t *testing.T) {
	g := geocoderAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := g.Search(context.Background(), "xyzzy nowhere")

	require.ErrorIs(t, err, utils.ErrLocationNotFound)
}

// TestGeocodeSearch_providerDown verifies non-2xx statuses and malformed
// coordinates surface as the unavailable sentinel.
func TestGeocodeSearch_providerDown(t *testing.T) {
	g := geocoderAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := g.Search(context.Background(), "Eiffel Tower")
	require.ErrorIs(t, err, utils.ErrGeocodeUnavailable)

	g = geocoderAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"north","lon":"2.2945"}]`))
	})
	_, err = g.Search(context.Background(), "Eiffel Tower")
	require.ErrorIs(t, err, utils.ErrGeocodeUnavailable)
}

// TestGeocodeSearch_blankQuery verifies validation happens before any
// request goes out.
func TestGeocodeSearch_blankQuery(t *testing.T) {
	g := &services.NominatimGeocoder{HTTP: &http.Client{Timeout: time.Second}}

	_, err := g.Search(context.Background(), "  ")

	require.ErrorIs(t, err, utils.ErrInvalidInput)
}
