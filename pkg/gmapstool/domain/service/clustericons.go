package service

import (
	"bytes"
	"fmt"
	"math"
	"net/url"
	"text/template"

	"github.com/hsluv/hsluv-go"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
)

const (
	clusterIconBaseSize  = 40
	clusterIconSizeStep  = 10
	clusterLightnessStep = 8.0
)

var clusterIconTemplate = template.Must(template.New("cluster").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Size}}" height="{{.Size}}" viewBox="0 0 {{.Size}} {{.Size}}">` +
		`<circle cx="{{.Radius}}" cy="{{.Radius}}" r="{{.Radius}}" fill="{{.Fill}}" fill-opacity="0.35"/>` +
		`<circle cx="{{.Radius}}" cy="{{.Radius}}" r="{{.Inner}}" fill="{{.Fill}}"/>` +
		`</svg>`,
))

type clusterIcon struct {
	Size   int
	Radius int
	Inner  int
	Fill   string
}

// ClusterIconStyles builds one cluster icon per level, each a data uri of an
// svg circle. Every level is larger and darker than the previous one.
func ClusterIconStyles(baseColor string, levels int, textColor string) ([]entities.ClusterStyle, error) {
	if !IsHexColor(baseColor) {
		return nil, &entities.ConfigurationError{Field: "clusterColor", Message: fmt.Sprintf("cluster color %q is not a #RRGGBB color", baseColor)}
	}
	if textColor == "" {
		textColor = "#ffffff"
	}

	h, s, l := hsluv.HsluvFromHex(baseColor)

	styles := make([]entities.ClusterStyle, 0, levels)
	for level := 0; level < levels; level++ {
		size := clusterIconBaseSize + level*clusterIconSizeStep
		icon := clusterIcon{
			Size:   size,
			Radius: size / 2,
			Inner:  size/2 - size/8,
			Fill:   hsluv.HsluvToHex(h, s, math.Max(l-float64(level)*clusterLightnessStep, 0)),
		}

		var buf bytes.Buffer
		if err := clusterIconTemplate.Execute(&buf, icon); err != nil {
			return nil, fmt.Errorf("failed to render cluster icon: %w", err)
		}

		styles = append(styles, entities.ClusterStyle{
			URL:       "data:image/svg+xml;charset=UTF-8," + url.PathEscape(buf.String()),
			Width:     size,
			Height:    size,
			TextColor: textColor,
			TextSize:  11 + level,
		})
	}

	return styles, nil
}
