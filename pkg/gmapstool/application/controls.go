package application

import (
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/mapping"
)

const (
	ZoomIn  = "in"
	ZoomOut = "out"
)

type ZoomContext struct {
	Tool  *Tool
	Type  string
	Level int
	Event mapping.Event
}

// ZoomControls binds custom zoom buttons, In and Out are DOM targets.
type ZoomControls struct {
	In      string
	Out     string
	OnClick func(ZoomContext)
}

type ControlOptions struct {
	// MapOptions override the defaults, which hide every built-in control.
	MapOptions entities.MapOptions
	Zoom       *ZoomControls
}

func defaultControlMapOptions() entities.MapOptions {
	return entities.MapOptions{
		MapTypeControl:    entities.Bool(false),
		StreetViewControl: entities.Bool(false),
		ZoomControl:       entities.Bool(false),
	}
}

func (t *Tool) SetControls(opts ControlOptions) (*Tool, error) {
	if err := t.requireMap(); err != nil {
		return t, err
	}

	t.gmap.SetOptions(defaultControlMapOptions().Merge(opts.MapOptions))

	if opts.Zoom == nil {
		return t, nil
	}

	for _, zoomType := range []string{ZoomIn, ZoomOut} {
		target := opts.Zoom.In
		if zoomType == ZoomOut {
			target = opts.Zoom.Out
		}
		if target == "" {
			continue
		}

		zoomType := zoomType
		onClick := opts.Zoom.OnClick
		t.gmap.AddDomListener(target, "click", func(e mapping.Event) {
			level := t.gmap.Zoom()
			if zoomType == ZoomIn {
				level++
			} else {
				level--
			}
			t.gmap.SetZoom(level)

			if onClick != nil {
				onClick(ZoomContext{Tool: t, Type: zoomType, Level: level, Event: e})
			}
		})
	}

	return t, nil
}
