package infrastructure

import (
	"context"
	"fmt"
	"os"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/repository"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var _ repository.MarkerImporter = GeoJSONMarkerImporter{}

// GeoJSONMarkerImporter turns the Point features of a FeatureCollection into
// markers. Content is taken from the "content" property, falling back to "name".
type GeoJSONMarkerImporter struct{}

func (GeoJSONMarkerImporter) Import(ctx context.Context, path string) ([]entities.Marker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geojson file: %w", err)
	}

	return DecodeGeoJSONMarkers(data)
}

func DecodeGeoJSONMarkers(data []byte) ([]entities.Marker, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geojson: %w", err)
	}

	markers := []entities.Marker{}
	for _, feature := range fc.Features {
		point, ok := feature.Geometry.(orb.Point)
		if !ok {
			continue
		}

		content := feature.Properties.MustString("content", "")
		if content == "" {
			content = feature.Properties.MustString("name", "")
		}

		markers = append(markers, entities.Marker{
			Position: entities.LatLngFromPoint(point),
			Content:  content,
		})
	}

	return markers, nil
}
