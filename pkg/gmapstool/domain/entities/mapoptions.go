package entities

// MapOptions for reference see: https://developers.google.com/maps/documentation/javascript/reference/map#MapOptions
//
// MinZoom and MaxZoom only apply to the interactive map and never reach a
// static map request.
type MapOptions struct {
	Center            *LatLng     `json:"center,omitempty" toml:"center"`
	Zoom              *int        `json:"zoom,omitempty" toml:"zoom"`
	MinZoom           int         `json:"minZoom" toml:"min_zoom"`
	MaxZoom           int         `json:"maxZoom" toml:"max_zoom"`
	Scrollwheel       *bool       `json:"scrollwheel,omitempty" toml:"scrollwheel"`
	MapTypeControl    *bool       `json:"mapTypeControl,omitempty" toml:"map_type_control"`
	StreetViewControl *bool       `json:"streetViewControl,omitempty" toml:"street_view_control"`
	ZoomControl       *bool       `json:"zoomControl,omitempty" toml:"zoom_control"`
	Styles            []StyleRule `json:"styles,omitempty" toml:"-"`
}

func DefaultMapOptions() MapOptions {
	return MapOptions{
		Zoom:    Int(10),
		MinZoom: 7,
		MaxZoom: 17,
	}
}

// Merge returns a new MapOptions where every field set in o overrides m.
// Neither m nor o is modified.
func (m MapOptions) Merge(o MapOptions) MapOptions {
	result := m
	if o.Center != nil {
		c := *o.Center
		result.Center = &c
	}
	if o.Zoom != nil {
		result.Zoom = Int(*o.Zoom)
	}
	if o.MinZoom != 0 {
		result.MinZoom = o.MinZoom
	}
	if o.MaxZoom != 0 {
		result.MaxZoom = o.MaxZoom
	}
	if o.Scrollwheel != nil {
		result.Scrollwheel = Bool(*o.Scrollwheel)
	}
	if o.MapTypeControl != nil {
		result.MapTypeControl = Bool(*o.MapTypeControl)
	}
	if o.StreetViewControl != nil {
		result.StreetViewControl = Bool(*o.StreetViewControl)
	}
	if o.ZoomControl != nil {
		result.ZoomControl = Bool(*o.ZoomControl)
	}
	if o.Styles != nil {
		result.Styles = append([]StyleRule(nil), o.Styles...)
	}
	return result
}

func Bool(b bool) *bool {
	return &b
}

func Int(i int) *int {
	return &i
}

// StaticOptions are the image parameters of a static map request.
// Markers is expected to be preformatted, see service.FormatMarkers.
type StaticOptions struct {
	Size    string `json:"size" toml:"size"`
	Scale   int    `json:"scale" toml:"scale"`
	MapType string `json:"maptype" toml:"maptype"`
	Markers string `json:"markers,omitempty" toml:"markers"`
	Style   string `json:"style,omitempty" toml:"-"`
}

func DefaultStaticOptions() StaticOptions {
	return StaticOptions{
		Size:    "640x640",
		Scale:   1,
		MapType: "roadmap",
	}
}

func (s StaticOptions) Merge(o StaticOptions) StaticOptions {
	result := s
	if o.Size != "" {
		result.Size = o.Size
	}
	if o.Scale != 0 {
		result.Scale = o.Scale
	}
	if o.MapType != "" {
		result.MapType = o.MapType
	}
	if o.Markers != "" {
		result.Markers = o.Markers
	}
	if o.Style != "" {
		result.Style = o.Style
	}
	return result
}

type RichMarkerOptions struct {
	Draggable *bool  `json:"draggable,omitempty" toml:"draggable"`
	Shadow    string `json:"shadow,omitempty" toml:"shadow"`
	Flat      *bool  `json:"flat,omitempty" toml:"flat"`
	Anchor    string `json:"anchor,omitempty" toml:"anchor"`
}

// Merge returns a new RichMarkerOptions where every field set in o overrides r.
func (r RichMarkerOptions) Merge(o RichMarkerOptions) RichMarkerOptions {
	result := r
	if o.Draggable != nil {
		result.Draggable = Bool(*o.Draggable)
	}
	if o.Shadow != "" {
		result.Shadow = o.Shadow
	}
	if o.Flat != nil {
		result.Flat = Bool(*o.Flat)
	}
	if o.Anchor != "" {
		result.Anchor = o.Anchor
	}
	return result
}

// Settings are the wrapper's own options, as opposed to the map's.
type Settings struct {
	RichMarkerOptions RichMarkerOptions `json:"richMarkerOptions" toml:"rich_marker"`
	Fullscreen        bool              `json:"fullscreen" toml:"fullscreen"`
}

func DefaultSettings() Settings {
	return Settings{
		RichMarkerOptions: RichMarkerOptions{
			Draggable: Bool(false),
			Shadow:    "none",
		},
		Fullscreen: false,
	}
}
