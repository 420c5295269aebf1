package application

import (
	"context"
	"log/slog"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/mapping"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
)

const staticMapTarget = "#staticmap"

// StaticMapRequest describes a static map. The center is taken from Center,
// then Address, then the configured map options, and finally from Markers.
type StaticMapRequest struct {
	Style   string
	Center  *entities.LatLng
	Address string
	Zoom    *int
	Markers []entities.Marker
	Static  entities.StaticOptions
}

type Application interface {
	GetStyle(ctx context.Context, name string) ([]entities.StyleRule, error)
	ListStyles(ctx context.Context) ([]string, error)
	ImportStyle(ctx context.Context, name string, path string) error
	DeleteStyle(ctx context.Context, name string) error
	EncodedStyle(ctx context.Context, name string) (string, error)
	StyleColors(ctx context.Context, name string) ([]string, error)
	StaticMapURL(ctx context.Context, req StaticMapRequest) (string, error)
	StaticMapImage(ctx context.Context, req StaticMapRequest) ([]byte, string, error)
	SaveStaticMap(ctx context.Context, req StaticMapRequest, path string) error
}

type Config struct {
	MapOptions    entities.MapOptions
	StaticOptions entities.StaticOptions
	Settings      entities.Settings
	StaticBaseURL string
	APIKey        string
	MarkerIcon    string
}

type application struct {
	config        Config
	newClient     func() mapping.Client
	styleService  service.MapStyleService
	staticService service.StaticMapService
	geocoder      mapping.Geocoder
	logger        *slog.Logger
}

// New creates the Application. newClient is called once per static map so
// every request gets its own map state; geocoder may be nil.
func New(config Config, newClient func() mapping.Client, styleService service.MapStyleService, staticService service.StaticMapService, geocoder mapping.Geocoder, logger *slog.Logger) Application {
	return &application{
		config:        config,
		newClient:     newClient,
		styleService:  styleService,
		staticService: staticService,
		geocoder:      geocoder,
		logger:        logger,
	}
}

func (app *application) GetStyle(ctx context.Context, name string) ([]entities.StyleRule, error) {
	return app.styleService.GetStyle(ctx, name)
}

func (app *application) ListStyles(ctx context.Context) ([]string, error) {
	return app.styleService.ListStyles(ctx)
}

func (app *application) ImportStyle(ctx context.Context, name string, path string) error {
	return app.styleService.ImportStyle(ctx, name, path)
}

func (app *application) DeleteStyle(ctx context.Context, name string) error {
	return app.styleService.DeleteStyle(ctx, name)
}

func (app *application) EncodedStyle(ctx context.Context, name string) (string, error) {
	return app.styleService.EncodedStyle(ctx, name)
}

func (app *application) StyleColors(ctx context.Context, name string) ([]string, error) {
	return app.styleService.StyleColors(ctx, name)
}

func (app *application) StaticMapURL(ctx context.Context, req StaticMapRequest) (string, error) {
	tool, err := app.staticTool(ctx, req)
	if err != nil {
		return "", err
	}
	return tool.StaticURL(app.config.StaticOptions.Merge(req.Static))
}

func (app *application) StaticMapImage(ctx context.Context, req StaticMapRequest) ([]byte, string, error) {
	requestURL, err := app.StaticMapURL(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return app.staticService.FetchImage(ctx, requestURL)
}

func (app *application) SaveStaticMap(ctx context.Context, req StaticMapRequest, path string) error {
	requestURL, err := app.StaticMapURL(ctx, req)
	if err != nil {
		return err
	}
	return app.staticService.SaveImage(ctx, requestURL, path)
}

// staticTool drives a Tool against a fresh map client the same way a page
// would: init, styles, then markers.
func (app *application) staticTool(ctx context.Context, req StaticMapRequest) (*Tool, error) {
	tool := NewTool(app.newClient(),
		WithMapOptions(app.config.MapOptions),
		WithSettings(app.config.Settings),
		WithMapStyleService(app.styleService),
		WithStaticMapService(app.staticService),
		WithStaticMap(app.config.StaticBaseURL, app.config.APIKey),
		WithMarkerIcon(app.config.MarkerIcon),
		WithGeocoder(app.geocoder),
		WithLogger(app.logger),
	)

	center, err := app.center(ctx, tool, req)
	if err != nil {
		return nil, err
	}

	mapOptions := entities.MapOptions{Center: center, Zoom: req.Zoom}
	if _, err := tool.Configure(mapOptions).Init(staticMapTarget); err != nil {
		return nil, err
	}

	if req.Style != "" {
		if _, err := tool.SetNamedStyle(ctx, req.Style); err != nil {
			return nil, err
		}
	}

	if len(req.Markers) > 0 {
		if _, err := tool.SetMarkers(req.Markers, MarkerOptions{}); err != nil {
			return nil, err
		}
	}

	return tool, nil
}

func (app *application) center(ctx context.Context, tool *Tool, req StaticMapRequest) (*entities.LatLng, error) {
	switch {
	case req.Center != nil:
		return req.Center, nil
	case req.Address != "":
		center, err := tool.GeocodeCenter(ctx, req.Address)
		if err != nil {
			return nil, err
		}
		return &center, nil
	case app.config.MapOptions.Center != nil:
		return app.config.MapOptions.Center, nil
	case len(req.Markers) > 0:
		// SetMarkers recenters on the markers right after Init
		center := req.Markers[0].Position
		return &center, nil
	default:
		return nil, nil
	}
}
