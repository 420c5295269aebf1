package infrastructure_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/infrastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoogleMapsGeocoder_MissingKey(t *testing.T) {
	_, err := infrastructure.NewGoogleMapsGeocoder("", "", nil)

	var configErr *entities.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "key", configErr.Field)
}

func TestGoogleMapsGeocoder_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "Marienplatz, München", r.URL.Query().Get("address"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":48.137,"lng":11.575}}}]}`))
	}))
	defer server.Close()

	geocoder, err := infrastructure.NewGoogleMapsGeocoder("AIzaTestKey", server.URL, server.Client())
	require.NoError(t, err)

	center, err := geocoder.Geocode(context.Background(), "Marienplatz, München")
	require.NoError(t, err)
	assert.Equal(t, entities.LatLng{Lat: 48.137, Lng: 11.575}, center)
}

func TestGoogleMapsGeocoder_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer server.Close()

	geocoder, err := infrastructure.NewGoogleMapsGeocoder("AIzaTestKey", server.URL, server.Client())
	require.NoError(t, err)

	_, err = geocoder.Geocode(context.Background(), "nowhere")
	assert.Error(t, err)
}
