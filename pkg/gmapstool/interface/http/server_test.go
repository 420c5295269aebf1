package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/application"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/repository"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
	httpinterface "github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/interface/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplication struct {
	styles   map[string][]entities.StyleRule
	apiKey   string
	imageErr error
	lastReq  application.StaticMapRequest
}

func (f *fakeApplication) GetStyle(ctx context.Context, name string) ([]entities.StyleRule, error) {
	rules, ok := f.styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrStyleNotFound, name)
	}
	return rules, nil
}

func (f *fakeApplication) ListStyles(ctx context.Context) ([]string, error) {
	return []string{"dark"}, nil
}

func (f *fakeApplication) ImportStyle(ctx context.Context, name string, path string) error {
	return nil
}

func (f *fakeApplication) DeleteStyle(ctx context.Context, name string) error {
	if _, err := f.GetStyle(ctx, name); err != nil {
		return err
	}
	delete(f.styles, name)
	return nil
}

func (f *fakeApplication) EncodedStyle(ctx context.Context, name string) (string, error) {
	rules, err := f.GetStyle(ctx, name)
	if err != nil {
		return "", err
	}
	return service.EncodeStyles(rules), nil
}

func (f *fakeApplication) StyleColors(ctx context.Context, name string) ([]string, error) {
	if _, err := f.GetStyle(ctx, name); err != nil {
		return nil, err
	}
	return []string{"#303748"}, nil
}

func (f *fakeApplication) StaticMapURL(ctx context.Context, req application.StaticMapRequest) (string, error) {
	f.lastReq = req
	if req.Style != "" {
		if _, err := f.GetStyle(ctx, req.Style); err != nil {
			return "", err
		}
	}
	return service.BuildStaticRequest("https://static.example.test/map", entities.MapOptions{Center: req.Center, Zoom: req.Zoom}, entities.DefaultStaticOptions().Merge(req.Static), f.apiKey)
}

func (f *fakeApplication) StaticMapImage(ctx context.Context, req application.StaticMapRequest) ([]byte, string, error) {
	if _, err := f.StaticMapURL(ctx, req); err != nil {
		return nil, "", err
	}
	if f.imageErr != nil {
		return nil, "", f.imageErr
	}
	return []byte("png"), "", nil
}

func (f *fakeApplication) SaveStaticMap(ctx context.Context, req application.StaticMapRequest, path string) error {
	return nil
}

func newServer(t *testing.T, app *fakeApplication) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(httpinterface.NewHandler(app, nil))
	t.Cleanup(server.Close)
	return server
}

func noRedirectClient(server *httptest.Server) *http.Client {
	client := server.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return client
}

func newFakeApplication() *fakeApplication {
	return &fakeApplication{
		styles: map[string][]entities.StyleRule{
			"dark": {{FeatureType: "road", Stylers: entities.Stylers{{Key: "color", Value: "#303748"}}}},
		},
		apiKey: "k",
	}
}

func TestMapStyleRoute(t *testing.T) {
	server := newServer(t, newFakeApplication())

	resp, err := http.Get(server.URL + "/styles")
	require.NoError(t, err)
	defer resp.Body.Close()

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Equal(t, []string{"dark"}, names)

	resp, err = http.Get(server.URL + "/styles/dark")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var rules []entities.StyleRule
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rules))
	assert.Equal(t, []entities.StyleRule{{FeatureType: "road", Stylers: entities.Stylers{{Key: "color", Value: "#303748"}}}}, rules)
}

func TestMapStyleRoute_Colors(t *testing.T) {
	server := newServer(t, newFakeApplication())

	resp, err := http.Get(server.URL + "/styles/dark/colors")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var colors []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&colors))
	assert.Equal(t, []string{"#303748"}, colors)

	resp, err = http.Get(server.URL + "/styles/missing/colors")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMapStyleRoute_Encoded(t *testing.T) {
	server := newServer(t, newFakeApplication())

	resp, err := http.Get(server.URL + "/styles/dark/encoded")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "feature:road|color:0x303748", string(body))

	resp, err = http.Get(server.URL + "/styles/missing/encoded")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMapStyleRoute_NotFound(t *testing.T) {
	server := newServer(t, newFakeApplication())

	resp, err := http.Get(server.URL + "/styles/missing")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStaticMapRoute_Redirect(t *testing.T) {
	app := newFakeApplication()
	server := newServer(t, app)

	resp, err := noRedirectClient(server).Get(server.URL + "/staticmap?style=dark&center=48.137,11.575&zoom=12&size=320x200&marker=48.1,11.5")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t,
		"https://static.example.test/map?center=48.137,11.575&zoom=12&size=320x200&scale=1&maptype=roadmap&key=k",
		resp.Header.Get("Location"),
	)
	assert.Equal(t, []entities.Marker{{Position: entities.LatLng{Lat: 48.1, Lng: 11.5}}}, app.lastReq.Markers)
}

func TestStaticMapRoute_ZeroZoom(t *testing.T) {
	app := newFakeApplication()
	server := newServer(t, app)

	resp, err := noRedirectClient(server).Get(server.URL + "/staticmap?center=0,0&zoom=0")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NotNil(t, app.lastReq.Zoom)
	assert.Equal(t, 0, *app.lastReq.Zoom)
	assert.Contains(t, resp.Header.Get("Location"), "center=0,0&zoom=0&")
}

func TestStaticMapRoute_Errors(t *testing.T) {
	for name, test := range map[string]struct {
		query  string
		apiKey string
		status int
	}{
		"bad center":    {query: "center=north", apiKey: "k", status: http.StatusBadRequest},
		"bad zoom":      {query: "center=1,2&zoom=x", apiKey: "k", status: http.StatusBadRequest},
		"missing key":   {query: "center=1,2", apiKey: "", status: http.StatusInternalServerError},
		"unknown style": {query: "center=1,2&style=missing", apiKey: "k", status: http.StatusNotFound},
	} {
		t.Run(name, func(t *testing.T) {
			app := newFakeApplication()
			app.apiKey = test.apiKey
			server := newServer(t, app)

			resp, err := noRedirectClient(server).Get(server.URL + "/staticmap?" + test.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, test.status, resp.StatusCode)
		})
	}
}

func TestStaticMapRoute_Image(t *testing.T) {
	server := newServer(t, newFakeApplication())

	resp, err := http.Get(server.URL + "/staticmap.png?center=1,2")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestStaticMapRoute_ImageRemoteError(t *testing.T) {
	app := newFakeApplication()
	app.imageErr = &entities.RemoteResourceError{URL: "https://static.example.test/map", StatusCode: http.StatusForbidden}
	server := newServer(t, app)

	resp, err := http.Get(server.URL + "/staticmap.png?center=1,2")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestWebPageRoute(t *testing.T) {
	server := newServer(t, newFakeApplication())

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/static.go")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestWebPageRoute_Assets(t *testing.T) {
	server := newServer(t, newFakeApplication())

	resp, err := http.Get(server.URL + "/marker.svg")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))
}
