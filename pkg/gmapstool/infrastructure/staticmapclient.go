package infrastructure

import (
	"fmt"
	"math"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/mapping"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
)

var (
	_ mapping.Client            = (*StaticMapClient)(nil)
	_ mapping.Map               = (*StaticMap)(nil)
	_ mapping.RichMarkerFactory = (*StaticMap)(nil)
	_ mapping.KmlLayerFactory   = (*StaticMap)(nil)
)

// StaticMapClient is a mapping client without a browser: it records every
// map it creates so the resulting state can be rendered as a static map
// request. Events are only emitted through Trigger.
type StaticMapClient struct {
	maps []*StaticMap
}

func NewStaticMapClient() *StaticMapClient {
	return &StaticMapClient{}
}

func (c *StaticMapClient) NewMap(target string, opts entities.MapOptions) (mapping.Map, error) {
	if target == "" {
		return nil, &entities.ConfigurationError{Field: "target", Message: "Please set the map target"}
	}
	m := &StaticMap{
		target:       target,
		options:      opts,
		domListeners: map[string][]mapping.Listener{},
	}
	if opts.Center != nil {
		m.center = *opts.Center
	}
	c.maps = append(c.maps, m)
	return m, nil
}

func (c *StaticMapClient) RichMarkers() mapping.RichMarkerFactory {
	return (*staticFactory)(c)
}

func (c *StaticMapClient) KmlLayers() mapping.KmlLayerFactory {
	return (*staticFactory)(c)
}

// Maps returns every map created so far.
func (c *StaticMapClient) Maps() []*StaticMap {
	return c.maps
}

// staticFactory places overlays on the StaticMap they are created for.
type staticFactory StaticMapClient

func (f *staticFactory) NewRichMarker(opts mapping.RichMarkerOptions) (mapping.Overlay, error) {
	m, ok := opts.Map.(*StaticMap)
	if !ok {
		return nil, fmt.Errorf("rich marker map must be a static map, got %T", opts.Map)
	}
	return m.NewRichMarker(opts)
}

func (f *staticFactory) NewKmlLayer(opts mapping.KmlLayerOptions) (mapping.Overlay, error) {
	m, ok := opts.Map.(*StaticMap)
	if !ok {
		return nil, fmt.Errorf("kml layer map must be a static map, got %T", opts.Map)
	}
	return m.NewKmlLayer(opts)
}

type StaticMap struct {
	target       string
	options      entities.MapOptions
	center       entities.LatLng
	fitted       entities.Bounds
	markers      []*StaticOverlay
	layers       []*StaticOverlay
	domListeners map[string][]mapping.Listener
}

func (m *StaticMap) Target() string {
	return m.target
}

func (m *StaticMap) SetOptions(opts entities.MapOptions) {
	m.options = m.options.Merge(opts)
	if opts.Center != nil {
		m.center = *opts.Center
	}
}

func (m *StaticMap) Options() entities.MapOptions {
	return m.options
}

func (m *StaticMap) SetCenter(center entities.LatLng) {
	m.center = center
}

func (m *StaticMap) Center() entities.LatLng {
	return m.center
}

func (m *StaticMap) Zoom() int {
	if m.options.Zoom == nil {
		return 0
	}
	return *m.options.Zoom
}

// SetZoom keeps the zoom within the map's min and max zoom.
func (m *StaticMap) SetZoom(zoom int) {
	if m.options.MinZoom != 0 && zoom < m.options.MinZoom {
		zoom = m.options.MinZoom
	}
	if m.options.MaxZoom != 0 && zoom > m.options.MaxZoom {
		zoom = m.options.MaxZoom
	}
	m.options.Zoom = entities.Int(zoom)
}

// FitBounds picks the largest zoom at which the bounds still fit a 640px
// wide web mercator viewport, then centers on them.
func (m *StaticMap) FitBounds(bounds entities.Bounds) {
	if bounds.IsEmpty() {
		return
	}
	m.fitted = bounds
	m.center = bounds.Center()
	m.SetZoom(fitZoom(bounds, 640))
}

func (m *StaticMap) FittedBounds() entities.Bounds {
	return m.fitted
}

func (m *StaticMap) AddDomListener(target string, event string, listener mapping.Listener) {
	key := target + "/" + event
	m.domListeners[key] = append(m.domListeners[key], listener)
}

// TriggerDom emulates a DOM event on target.
func (m *StaticMap) TriggerDom(target string, event string, e mapping.Event) {
	for _, l := range m.domListeners[target+"/"+event] {
		l(e)
	}
}

func (m *StaticMap) NewRichMarker(opts mapping.RichMarkerOptions) (mapping.Overlay, error) {
	o := &StaticOverlay{
		Kind:      "marker",
		Position:  opts.Position,
		Content:   opts.Content,
		Options:   opts.RichMarkerOptions,
		listeners: map[string][]mapping.Listener{},
	}
	m.markers = append(m.markers, o)
	return o, nil
}

func (m *StaticMap) NewKmlLayer(opts mapping.KmlLayerOptions) (mapping.Overlay, error) {
	o := &StaticOverlay{
		Kind:      "kml",
		URL:       opts.URL,
		listeners: map[string][]mapping.Listener{},
	}
	m.layers = append(m.layers, o)
	return o, nil
}

func (m *StaticMap) Markers() []*StaticOverlay {
	return m.markers
}

func (m *StaticMap) Layers() []*StaticOverlay {
	return m.layers
}

// StaticOptions renders the recorded markers and styles as static image options.
func (m *StaticMap) StaticOptions(iconURL string) entities.StaticOptions {
	positions := make([]entities.LatLng, 0, len(m.markers))
	for _, o := range m.markers {
		positions = append(positions, o.Position)
	}

	opts := entities.StaticOptions{
		Style: service.EncodeStyles(m.options.Styles),
	}
	if len(positions) > 0 {
		opts.Markers = service.FormatMarkers(iconURL, positions)
	}
	return opts
}

type StaticOverlay struct {
	Kind     string
	Position entities.LatLng
	Content  string
	URL      string
	Options  entities.RichMarkerOptions

	listeners map[string][]mapping.Listener
}

func (o *StaticOverlay) AddListener(event string, listener mapping.Listener) {
	o.listeners[event] = append(o.listeners[event], listener)
}

// Trigger emulates the mapping service emitting event on this overlay.
func (o *StaticOverlay) Trigger(event string, e mapping.Event) {
	for _, l := range o.listeners[event] {
		l(e)
	}
}

func fitZoom(bounds entities.Bounds, viewportPx float64) int {
	const tileSize = 256.0

	sw, ne := bounds.SouthWest(), bounds.NorthEast()
	lngFraction := (ne.Lng - sw.Lng) / 360
	latFraction := (mercatorY(ne.Lat) - mercatorY(sw.Lat)) / (2 * math.Pi)
	fraction := math.Max(lngFraction, latFraction)
	if fraction <= 0 {
		return 21
	}

	zoom := math.Floor(math.Log2(viewportPx / tileSize / fraction))
	return int(math.Max(0, math.Min(zoom, 21)))
}

func mercatorY(lat float64) float64 {
	sin := math.Sin(lat * math.Pi / 180)
	return math.Log((1+sin)/(1-sin)) / 2
}
