package application

import (
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/mapping"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
)

var markerEvents = []string{"click", "dblclick", "mouseover", "mouseout"}

// Marker is a marker placed on the map.
type Marker struct {
	entities.Marker
	RichMarkerOptions mapping.RichMarkerOptions
	RichMarker        mapping.Overlay
}

type MarkerContext struct {
	Tool   *Tool
	Marker *Marker
}

type MarkerEventContext struct {
	Tool   *Tool
	Marker *Marker
	Event  mapping.Event
}

type MarkersContext struct {
	Tool    *Tool
	Markers []*Marker
	Bounds  entities.Bounds
}

type ClusterOptions struct {
	// MaxZoom is passed through unchanged, zero leaves the clusterer's own
	// default. The map's MaxZoom is not applied.
	MaxZoom  int
	GridSize int
	Styles   []entities.ClusterStyle
	// ClusterColor builds Styles when none are given.
	ClusterColor  string
	ClusterLevels int
	TextColor     string
}

type MarkerOptions struct {
	Cluster        bool
	ClusterOptions ClusterOptions

	OnAdd       func(MarkerContext)
	OnComplete  func(MarkersContext)
	OnClick     func(MarkerEventContext)
	OnDblclick  func(MarkerEventContext)
	OnMouseover func(MarkerEventContext)
	OnMouseout  func(MarkerEventContext)
}

func (o MarkerOptions) handler(event string) func(MarkerEventContext) {
	switch service.FormatEventName(event) {
	case "onClick":
		return o.OnClick
	case "onDblclick":
		return o.OnDblclick
	case "onMouseover":
		return o.OnMouseover
	case "onMouseout":
		return o.OnMouseout
	default:
		return nil
	}
}

func (t *Tool) Markers() []*Marker {
	return t.markers
}

// SetMarkers replaces the tool's markers with markers, centers the map on
// them and clusters them when asked to.
func (t *Tool) SetMarkers(markers []entities.Marker, opts MarkerOptions) ([]*Marker, error) {
	if err := t.requireMap(); err != nil {
		return nil, err
	}

	t.bounds = entities.Bounds{}
	t.markers = []*Marker{}

	if t.client.RichMarkers() == nil {
		return nil, t.fail(&entities.DependencyError{Name: "RichMarker"})
	}

	for _, m := range markers {
		if _, err := t.SetMarker(m, opts); err != nil {
			return t.markers, err
		}
	}

	if _, err := t.SetCenter(); err != nil {
		return t.markers, err
	}

	if opts.Cluster {
		if err := t.AddMarkersClusters(opts.ClusterOptions); err != nil {
			return t.markers, err
		}
	}

	if opts.OnComplete != nil {
		opts.OnComplete(MarkersContext{
			Tool:    t,
			Markers: t.markers,
			Bounds:  t.bounds,
		})
	}

	return t.markers, nil
}

// SetMarker places a single rich marker. Fields set in the marker's own
// options override the tool-wide rich marker settings key by key.
func (t *Tool) SetMarker(m entities.Marker, opts MarkerOptions) (*Marker, error) {
	if err := t.requireMap(); err != nil {
		return nil, err
	}

	factory := t.client.RichMarkers()
	if factory == nil {
		return nil, t.fail(&entities.DependencyError{Name: "RichMarker"})
	}

	richOptions := mapping.RichMarkerOptions{
		RichMarkerOptions: t.settings.RichMarkerOptions,
		Map:               t.gmap,
		Content:           m.Content,
		Position:          m.Position,
	}
	if m.Options != nil {
		richOptions.RichMarkerOptions = richOptions.RichMarkerOptions.Merge(*m.Options)
	}

	overlay, err := factory.NewRichMarker(richOptions)
	if err != nil {
		return nil, t.fail(err)
	}

	marker := &Marker{
		Marker:            m,
		RichMarkerOptions: richOptions,
		RichMarker:        overlay,
	}

	for _, event := range markerEvents {
		handler := opts.handler(event)
		if handler == nil {
			continue
		}
		overlay.AddListener(event, func(e mapping.Event) {
			handler(MarkerEventContext{Tool: t, Marker: marker, Event: e})
		})
	}

	t.bounds = t.bounds.Extend(m.Position)
	t.markers = append(t.markers, marker)

	if opts.OnAdd != nil {
		opts.OnAdd(MarkerContext{Tool: t, Marker: marker})
	}

	return marker, nil
}

// AddMarkersClusters hands every placed marker to the clusterer.
func (t *Tool) AddMarkersClusters(opts ClusterOptions) error {
	if t.clusterer == nil {
		return t.fail(&entities.DependencyError{Name: "MarkerClusterer"})
	}

	clusterOptions := mapping.ClusterOptions{
		MaxZoom:  opts.MaxZoom,
		GridSize: opts.GridSize,
		Styles:   opts.Styles,
	}
	if len(clusterOptions.Styles) == 0 && opts.ClusterColor != "" {
		levels := opts.ClusterLevels
		if levels == 0 {
			levels = 3
		}
		styles, err := service.ClusterIconStyles(opts.ClusterColor, levels, opts.TextColor)
		if err != nil {
			return t.fail(err)
		}
		clusterOptions.Styles = styles
	}

	overlays := make([]mapping.Overlay, 0, len(t.markers))
	for _, m := range t.markers {
		overlays = append(overlays, m.RichMarker)
	}

	if err := t.clusterer.Cluster(t.gmap, overlays, clusterOptions); err != nil {
		return t.fail(err)
	}
	return nil
}
