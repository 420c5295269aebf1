package entities_test

import (
	"testing"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	opts := entities.DefaultMapOptions()
	assert.Equal(t, 10, *opts.Zoom)
	assert.Equal(t, 7, opts.MinZoom)
	assert.Equal(t, 17, opts.MaxZoom)

	settings := entities.DefaultSettings()
	assert.False(t, *settings.RichMarkerOptions.Draggable)
	assert.Equal(t, "none", settings.RichMarkerOptions.Shadow)
	assert.False(t, settings.Fullscreen)
}

func TestMapOptions_Merge(t *testing.T) {
	base := entities.DefaultMapOptions()
	center := entities.LatLng{Lat: 1, Lng: 2}

	merged := base.Merge(entities.MapOptions{
		Center:      &center,
		Zoom:        entities.Int(12),
		Scrollwheel: entities.Bool(false),
	})

	assert.Equal(t, 12, *merged.Zoom)
	assert.Equal(t, 7, merged.MinZoom)
	assert.Equal(t, &center, merged.Center)
	assert.False(t, *merged.Scrollwheel)

	assert.Nil(t, base.Center)
	assert.Nil(t, base.Scrollwheel)
	assert.Equal(t, 10, *base.Zoom)

	center.Lat = 99
	assert.Equal(t, 1.0, merged.Center.Lat)
}

func TestMapOptions_MergeZeroZoom(t *testing.T) {
	merged := entities.DefaultMapOptions().Merge(entities.MapOptions{Zoom: entities.Int(0)})
	assert.Equal(t, 0, *merged.Zoom)

	unset := entities.DefaultMapOptions().Merge(entities.MapOptions{})
	assert.Equal(t, 10, *unset.Zoom)
}

func TestRichMarkerOptions_Merge(t *testing.T) {
	base := entities.DefaultSettings().RichMarkerOptions

	merged := base.Merge(entities.RichMarkerOptions{Draggable: entities.Bool(true), Anchor: "bottom"})

	assert.True(t, *merged.Draggable)
	assert.Equal(t, "none", merged.Shadow)
	assert.Equal(t, "bottom", merged.Anchor)
	assert.Nil(t, merged.Flat)
	assert.False(t, *base.Draggable)

	kept := merged.Merge(entities.RichMarkerOptions{Draggable: entities.Bool(false)})
	assert.False(t, *kept.Draggable)
}

func TestStaticOptions_Merge(t *testing.T) {
	merged := entities.DefaultStaticOptions().Merge(entities.StaticOptions{Size: "320x200", Style: "feature:all|"})

	assert.Equal(t, entities.StaticOptions{
		Size:    "320x200",
		Scale:   1,
		MapType: "roadmap",
		Style:   "feature:all|",
	}, merged)
}

func TestErrors(t *testing.T) {
	assert.Equal(t, `Please set "center" options`, (&entities.ConfigurationError{Field: "center"}).Error())
	assert.Equal(t, `Missing "RichMarker" dependency`, (&entities.DependencyError{Name: "RichMarker"}).Error())
	assert.Equal(t, "The kml file must be online: ./local.kml", (&entities.LayerSourceError{Path: "./local.kml", Type: "kml"}).Error())
}
