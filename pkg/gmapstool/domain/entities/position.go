package entities

import (
	"strconv"

	"github.com/paulmach/orb"
)

type LatLng struct {
	Lat float64 `json:"lat" toml:"lat"`
	Lng float64 `json:"lng" toml:"lng"`
}

func LatLngFromPoint(p orb.Point) LatLng {
	return LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// Point returns the position in orb's [lon, lat] order.
func (l LatLng) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// String formats the position the way the static map API expects it: "lat,lng".
func (l LatLng) String() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// Bounds is the minimal region containing every extended position.
// The zero value is empty.
type Bounds struct {
	bound orb.Bound
	set   bool
}

func (b Bounds) Extend(l LatLng) Bounds {
	if !b.set {
		return Bounds{bound: l.Point().Bound(), set: true}
	}
	return Bounds{bound: b.bound.Extend(l.Point()), set: true}
}

func (b Bounds) IsEmpty() bool {
	return !b.set
}

func (b Bounds) Center() LatLng {
	return LatLngFromPoint(b.bound.Center())
}

// SouthWest and NorthEast are the corners handed to fitBounds.
func (b Bounds) SouthWest() LatLng {
	return LatLngFromPoint(b.bound.Min)
}

func (b Bounds) NorthEast() LatLng {
	return LatLngFromPoint(b.bound.Max)
}

func (b Bounds) Bound() orb.Bound {
	return b.bound
}
