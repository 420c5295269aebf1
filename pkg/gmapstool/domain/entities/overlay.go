package entities

// Marker is a rich marker: a position with arbitrary HTML content.
type Marker struct {
	Position LatLng `json:"position"`
	Content  string `json:"content"`
	// Options override the tool-wide rich marker settings for this marker.
	Options *RichMarkerOptions `json:"options,omitempty"`
}

const LayerTypeKML = "kml"

type Layer struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// ClusterStyle describes one cluster icon size step.
type ClusterStyle struct {
	URL       string `json:"url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	TextColor string `json:"textColor"`
	TextSize  int    `json:"textSize"`
}
