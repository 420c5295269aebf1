package service

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"googlemaps.github.io/maps"
)

// ParseLatLng accepts a "lat,lng" string, a two element float slice or array,
// a two element []any of numbers, or a LatLng.
func ParseLatLng(position any) (entities.LatLng, error) {
	switch p := position.(type) {
	case entities.LatLng:
		return p, nil
	case *entities.LatLng:
		if p != nil {
			return *p, nil
		}
	case string:
		parts := strings.Split(p, ",")
		if len(parts) != 2 {
			break
		}
		ll, err := maps.ParseLatLng(strings.TrimSpace(parts[0]) + "," + strings.TrimSpace(parts[1]))
		if err != nil {
			return entities.LatLng{}, &entities.ConfigurationError{Field: "position", Message: fmt.Sprintf("invalid position %q: %v", p, err)}
		}
		return entities.LatLng{Lat: ll.Lat, Lng: ll.Lng}, nil
	case [2]float64:
		return entities.LatLng{Lat: p[0], Lng: p[1]}, nil
	case []float64:
		if len(p) == 2 {
			return entities.LatLng{Lat: p[0], Lng: p[1]}, nil
		}
	case []any:
		if len(p) == 2 {
			lat, okLat := toFloat(p[0])
			lng, okLng := toFloat(p[1])
			if okLat && okLng {
				return entities.LatLng{Lat: lat, Lng: lng}, nil
			}
		}
	}

	return entities.LatLng{}, &entities.ConfigurationError{Field: "position", Message: fmt.Sprintf("invalid position %v", position)}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// FormatEventName maps a mapping service event to its callback option name,
// e.g. "click" to "onClick".
func FormatEventName(event string) string {
	if event == "" {
		return "on"
	}
	r, size := utf8.DecodeRuneInString(event)
	return "on" + string(unicode.ToUpper(r)) + event[size:]
}
