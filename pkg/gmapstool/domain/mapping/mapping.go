// Package mapping declares the collaborators the map facade drives: the
// mapping service client and its map, overlay and layer primitives, the
// marker clustering library and a geocoder.
//
// None of them is implemented by this module beyond a recording static map
// client; the interactive map, tiling and clustering stay with the external
// service.
package mapping

import (
	"context"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
)

// Event is the opaque event value passed through by the mapping service.
type Event any

type Listener func(event Event)

type Client interface {
	NewMap(target string, opts entities.MapOptions) (Map, error)
	// RichMarkers returns nil when the rich marker primitive is not available.
	RichMarkers() RichMarkerFactory
	// KmlLayers returns nil when KML layers are not available.
	KmlLayers() KmlLayerFactory
}

type Map interface {
	SetOptions(opts entities.MapOptions)
	Options() entities.MapOptions
	SetCenter(center entities.LatLng)
	Center() entities.LatLng
	Zoom() int
	SetZoom(zoom int)
	FitBounds(bounds entities.Bounds)
	AddDomListener(target string, event string, listener Listener)
}

// Overlay is anything placed on a map that emits events.
type Overlay interface {
	AddListener(event string, listener Listener)
}

type RichMarkerOptions struct {
	entities.RichMarkerOptions
	Map      Map
	Content  string
	Position entities.LatLng
}

type RichMarkerFactory interface {
	NewRichMarker(opts RichMarkerOptions) (Overlay, error)
}

type KmlLayerOptions struct {
	URL              string
	PreserveViewport bool
	Map              Map
}

type KmlLayerFactory interface {
	NewKmlLayer(opts KmlLayerOptions) (Overlay, error)
}

type ClusterOptions struct {
	MaxZoom  int
	GridSize int
	Styles   []entities.ClusterStyle
}

// Clusterer groups nearby markers of a map into cluster icons.
type Clusterer interface {
	Cluster(m Map, markers []Overlay, opts ClusterOptions) error
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (entities.LatLng, error)
}

// StaticRenderer is implemented by maps that can describe their own markers
// and styles as static image options.
type StaticRenderer interface {
	StaticOptions(iconURL string) entities.StaticOptions
}
