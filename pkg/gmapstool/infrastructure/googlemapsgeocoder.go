package infrastructure

import (
	"context"
	"fmt"
	"net/http"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/mapping"
	"googlemaps.github.io/maps"
)

var _ mapping.Geocoder = (*GoogleMapsGeocoder)(nil)

type GoogleMapsGeocoder struct {
	client *maps.Client
}

// NewGoogleMapsGeocoder creates a geocoder for apiKey. baseURL is only set to
// point the client at something other than the Google Maps API.
func NewGoogleMapsGeocoder(apiKey string, baseURL string, httpClient *http.Client) (*GoogleMapsGeocoder, error) {
	if apiKey == "" {
		return nil, &entities.ConfigurationError{Field: "key", Message: "Please set the geocoding \"key\" option"}
	}

	options := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if baseURL != "" {
		options = append(options, maps.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		options = append(options, maps.WithHTTPClient(httpClient))
	}

	client, err := maps.NewClient(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &GoogleMapsGeocoder{client: client}, nil
}

func (g *GoogleMapsGeocoder) Geocode(ctx context.Context, address string) (entities.LatLng, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return entities.LatLng{}, fmt.Errorf("failed to geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return entities.LatLng{}, fmt.Errorf("no geocoding result for %q", address)
	}

	location := results[0].Geometry.Location
	return entities.LatLng{Lat: location.Lat, Lng: location.Lng}, nil
}
