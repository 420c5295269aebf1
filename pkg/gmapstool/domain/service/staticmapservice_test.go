package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStaticRequest(t *testing.T) {
	mapOptions := entities.MapOptions{
		Center:  &entities.LatLng{Lat: 48.137, Lng: 11.575},
		Zoom:    entities.Int(12),
		MinZoom: 7,
		MaxZoom: 17,
	}
	staticOptions := entities.StaticOptions{
		Size:    "640x400",
		Scale:   2,
		MapType: "roadmap",
		Markers: "48.1,11.5",
		Style:   "feature:road|color:0x303748",
	}

	requestURL, err := service.BuildStaticRequest(service.DefaultStaticBaseURL, mapOptions, staticOptions, "secret")
	require.NoError(t, err)

	assert.Equal(t,
		"https://maps.googleapis.com/maps/api/staticmap?center=48.137,11.575&zoom=12&size=640x400&scale=2&maptype=roadmap&markers=48.1,11.5&style=feature:road|color:0x303748&key=secret",
		requestURL,
	)
	assert.NotContains(t, requestURL, "minZoom")
	assert.NotContains(t, requestURL, "maxZoom")
	assert.NotContains(t, requestURL, "min_zoom")
}

func TestBuildStaticRequest_SkipsEmpty(t *testing.T) {
	requestURL, err := service.BuildStaticRequest("http://example.test/static", entities.MapOptions{}, entities.StaticOptions{Size: "100x100"}, "k")
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/static?size=100x100&key=k", requestURL)
}

func TestBuildStaticRequest_ZeroZoom(t *testing.T) {
	mapOptions := entities.MapOptions{Center: &entities.LatLng{Lat: 0, Lng: 0}, Zoom: entities.Int(0)}

	requestURL, err := service.BuildStaticRequest("http://example.test/static", mapOptions, entities.StaticOptions{Size: "100x100"}, "k")
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/static?center=0,0&zoom=0&size=100x100&key=k", requestURL)
}

func TestBuildStaticRequest_MissingKey(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	requestURL, err := service.NewStaticMapService(server.Client(), nil).
		BuildStaticRequest(server.URL, entities.DefaultMapOptions(), entities.DefaultStaticOptions(), "")

	var configErr *entities.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "key", configErr.Field)
	assert.Empty(t, requestURL)
	assert.False(t, requested)
}

func TestFormatMarkers(t *testing.T) {
	positions := []entities.LatLng{{Lat: 48.1, Lng: 11.5}, {Lat: -33.5, Lng: 151}}

	assert.Equal(t, "48.1,11.5|-33.5,151", service.FormatMarkers("", positions))
	assert.Equal(t,
		"icon:https%3A%2F%2Fexample.test%2Fpin.png%3Fsize%3D2|48.1,11.5|-33.5,151",
		service.FormatMarkers("https://example.test/pin.png?size=2", positions),
	)
}

func TestStaticMapService_FetchImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png"))
	}))
	defer server.Close()

	staticService := service.NewStaticMapService(server.Client(), nil)
	requestURL, err := staticService.BuildStaticRequest(server.URL, entities.MapOptions{}, entities.DefaultStaticOptions(), "k")
	require.NoError(t, err)

	data, contentType, err := staticService.FetchImage(context.Background(), requestURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestStaticMapService_FetchImageRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, _, err := service.NewStaticMapService(server.Client(), nil).
		FetchImage(context.Background(), server.URL+"?size=1x1&key=secret")

	var remoteErr *entities.RemoteResourceError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusForbidden, remoteErr.StatusCode)
	assert.NotContains(t, remoteErr.URL, "secret")
	assert.True(t, strings.HasSuffix(remoteErr.URL, "key=REDACTED"))
}

func TestStaticMapService_SaveImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "map.png")
	err := service.NewStaticMapService(server.Client(), nil).SaveImage(context.Background(), server.URL+"?key=k", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}
