package application

import (
	"context"
	"log/slog"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/mapping"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
)

// Tool wraps a mapping client with option merging, marker and layer
// bookkeeping and typed callbacks. A Tool is not safe for concurrent use.
type Tool struct {
	client    mapping.Client
	clusterer mapping.Clusterer
	geocoder  mapping.Geocoder

	styleService  service.MapStyleService
	staticService service.StaticMapService

	mapOptions    entities.MapOptions
	settings      entities.Settings
	staticBaseURL string
	apiKey        string
	markerIcon    string
	logger        *slog.Logger

	target  string
	gmap    mapping.Map
	bounds  entities.Bounds
	markers []*Marker
	layers  []*Layer
}

type Option func(*Tool)

// WithMapOptions overrides the default map options.
func WithMapOptions(opts entities.MapOptions) Option {
	return func(t *Tool) {
		t.mapOptions = t.mapOptions.Merge(opts)
	}
}

func WithSettings(settings entities.Settings) Option {
	return func(t *Tool) {
		t.settings = settings
	}
}

func WithClusterer(clusterer mapping.Clusterer) Option {
	return func(t *Tool) {
		t.clusterer = clusterer
	}
}

func WithGeocoder(geocoder mapping.Geocoder) Option {
	return func(t *Tool) {
		t.geocoder = geocoder
	}
}

func WithMapStyleService(styleService service.MapStyleService) Option {
	return func(t *Tool) {
		t.styleService = styleService
	}
}

func WithStaticMapService(staticService service.StaticMapService) Option {
	return func(t *Tool) {
		t.staticService = staticService
	}
}

// WithStaticMap sets the static map endpoint and api key used by StaticURL.
func WithStaticMap(baseURL string, apiKey string) Option {
	return func(t *Tool) {
		if baseURL != "" {
			t.staticBaseURL = baseURL
		}
		t.apiKey = apiKey
	}
}

// WithMarkerIcon sets the icon of static map markers.
func WithMarkerIcon(iconURL string) Option {
	return func(t *Tool) {
		t.markerIcon = iconURL
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Tool) {
		t.logger = service.ComponentLogger(logger)
	}
}

func NewTool(client mapping.Client, opts ...Option) *Tool {
	t := &Tool{
		client:        client,
		mapOptions:    entities.DefaultMapOptions(),
		settings:      entities.DefaultSettings(),
		staticBaseURL: service.DefaultStaticBaseURL,
		logger:        service.ComponentLogger(nil),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.staticService == nil {
		t.staticService = service.NewStaticMapService(nil, t.logger)
	}
	return t
}

// Configure merges opts into the map options used by the next Init.
func (t *Tool) Configure(opts entities.MapOptions) *Tool {
	t.mapOptions = t.mapOptions.Merge(opts)
	return t
}

// prepareMapOptions checks the required options and applies the settings
// that change map options. It returns a new value.
func (t *Tool) prepareMapOptions() (entities.MapOptions, error) {
	opts := t.mapOptions
	if opts.Center == nil {
		return opts, &entities.ConfigurationError{Field: "center", Message: "Please set \"center\" options"}
	}

	if t.settings.Fullscreen {
		opts.Scrollwheel = entities.Bool(false)
	}

	return opts, nil
}

// Init creates the map inside target.
func (t *Tool) Init(target string) (*Tool, error) {
	if t.client == nil {
		return t, t.fail(&entities.DependencyError{Name: "google.maps"})
	}
	if target == "" {
		return t, t.fail(&entities.ConfigurationError{Field: "target", Message: "Please set the map target"})
	}

	opts, err := t.prepareMapOptions()
	if err != nil {
		return t, t.fail(err)
	}

	gmap, err := t.client.NewMap(target, opts)
	if err != nil {
		return t, t.fail(err)
	}

	t.target = target
	t.mapOptions = opts
	t.gmap = gmap
	return t, nil
}

func (t *Tool) Map() mapping.Map {
	return t.gmap
}

func (t *Tool) MapOptions() entities.MapOptions {
	return t.mapOptions
}

func (t *Tool) Bounds() entities.Bounds {
	return t.bounds
}

func (t *Tool) SetMapOptions(opts entities.MapOptions) (*Tool, error) {
	if err := t.requireMap(); err != nil {
		return t, err
	}
	t.gmap.SetOptions(opts)
	return t, nil
}

// SetCenter centers the map on the markers' bounds when there are any,
// fitting the viewport first for more than one marker, and on the center
// option otherwise.
func (t *Tool) SetCenter() (*Tool, error) {
	if err := t.requireMap(); err != nil {
		return t, err
	}

	if !t.bounds.IsEmpty() {
		if len(t.markers) > 1 {
			t.gmap.FitBounds(t.bounds)
		}
		t.gmap.SetCenter(t.bounds.Center())
	} else if t.mapOptions.Center != nil {
		t.gmap.SetCenter(*t.mapOptions.Center)
	}

	return t, nil
}

// SetStyles loads a style document and applies it to the map. On failure the
// map keeps its current styles.
func (t *Tool) SetStyles(ctx context.Context, path string) (*Tool, error) {
	if err := t.requireMap(); err != nil {
		return t, err
	}
	if t.styleService == nil {
		return t, t.fail(&entities.DependencyError{Name: "MapStyleService"})
	}

	rules, err := t.styleService.LoadStyles(ctx, path)
	if err != nil {
		return t, err
	}

	t.applyStyles(rules)
	return t, nil
}

// SetNamedStyle applies a style stored in the style repository.
func (t *Tool) SetNamedStyle(ctx context.Context, name string) (*Tool, error) {
	if err := t.requireMap(); err != nil {
		return t, err
	}
	if t.styleService == nil {
		return t, t.fail(&entities.DependencyError{Name: "MapStyleService"})
	}

	rules, err := t.styleService.GetStyle(ctx, name)
	if err != nil {
		return t, t.fail(err)
	}

	t.applyStyles(rules)
	return t, nil
}

func (t *Tool) applyStyles(rules []entities.StyleRule) {
	if rules == nil {
		rules = []entities.StyleRule{}
	}
	t.gmap.SetOptions(entities.MapOptions{Styles: rules})
	t.mapOptions.Styles = rules
}

func (t *Tool) GeocodeCenter(ctx context.Context, address string) (entities.LatLng, error) {
	if t.geocoder == nil {
		return entities.LatLng{}, t.fail(&entities.DependencyError{Name: "Geocoder"})
	}

	center, err := t.geocoder.Geocode(ctx, address)
	if err != nil {
		return entities.LatLng{}, t.fail(err)
	}
	return center, nil
}

// StaticURL renders the current map as a static map request. Without an
// initialized map the configured map options are used.
func (t *Tool) StaticURL(staticOptions entities.StaticOptions) (string, error) {
	mapOptions := t.mapOptions
	if t.gmap != nil {
		mapOptions = t.gmap.Options()
		center := t.gmap.Center()
		mapOptions.Center = &center
		mapOptions.Zoom = entities.Int(t.gmap.Zoom())
	}

	opts := entities.DefaultStaticOptions()
	if renderer, ok := t.gmap.(mapping.StaticRenderer); ok {
		opts = opts.Merge(renderer.StaticOptions(t.markerIcon))
	}
	opts = opts.Merge(staticOptions)
	if opts.Style == "" {
		opts.Style = service.EncodeStyles(mapOptions.Styles)
	}

	requestURL, err := t.staticService.BuildStaticRequest(t.staticBaseURL, mapOptions, opts, t.apiKey)
	if err != nil {
		return "", t.fail(err)
	}
	return requestURL, nil
}

func (t *Tool) requireMap() error {
	if t.gmap == nil {
		return t.fail(&entities.ConfigurationError{Field: "map", Message: "Map is not initialized, call Init first"})
	}
	return nil
}

// fail reports err on the log side channel and returns it.
func (t *Tool) fail(err error) error {
	t.logger.Error(err.Error())
	return err
}
