package application

import (
	"errors"
	"strings"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/mapping"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
)

var layerEvents = []string{"click", "defaultviewport_changed", "status_changed"}

type Layer struct {
	entities.Layer
	KmlLayer mapping.Overlay
}

type LayerContext struct {
	Tool  *Tool
	Layer *Layer
}

type LayerEventContext struct {
	Tool  *Tool
	Layer *Layer
	Event mapping.Event
}

type LayersContext struct {
	Tool   *Tool
	Layers []*Layer
}

type LayerOptions struct {
	OnAdd                    func(LayerContext)
	OnComplete               func(LayersContext)
	OnClick                  func(LayerEventContext)
	OnDefaultViewportChanged func(LayerEventContext)
	OnStatusChanged          func(LayerEventContext)
}

func (o LayerOptions) handler(event string) func(LayerEventContext) {
	switch service.FormatEventName(event) {
	case "onClick":
		return o.OnClick
	case "onDefaultviewport_changed":
		return o.OnDefaultViewportChanged
	case "onStatus_changed":
		return o.OnStatusChanged
	default:
		return nil
	}
}

func (t *Tool) Layers() []*Layer {
	return t.layers
}

// SetLayers adds every layer whose file is online. Skipped layers are
// reported together in the returned error, the added ones are still returned
// and OnComplete still fires.
func (t *Tool) SetLayers(layers []entities.Layer, opts LayerOptions) ([]*Layer, error) {
	if err := t.requireMap(); err != nil {
		return nil, err
	}

	t.layers = []*Layer{}

	var errs []error
	for _, l := range layers {
		if err := t.prepareLayer(l); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := t.SetLayer(l, opts); err != nil {
			errs = append(errs, err)
		}
	}

	if opts.OnComplete != nil {
		opts.OnComplete(LayersContext{Tool: t, Layers: t.layers})
	}

	return t.layers, errors.Join(errs...)
}

func (t *Tool) prepareLayer(l entities.Layer) error {
	if !strings.HasPrefix(l.Path, "http") {
		layerType := l.Type
		if layerType == "" {
			layerType = entities.LayerTypeKML
		}
		return t.fail(&entities.LayerSourceError{Path: l.Path, Type: layerType})
	}
	return nil
}

func (t *Tool) SetLayer(l entities.Layer, opts LayerOptions) (*Layer, error) {
	if err := t.requireMap(); err != nil {
		return nil, err
	}

	factory := t.client.KmlLayers()
	if factory == nil {
		return nil, t.fail(&entities.DependencyError{Name: "KmlLayer"})
	}

	overlay, err := factory.NewKmlLayer(mapping.KmlLayerOptions{
		URL:              l.Path,
		PreserveViewport: true,
		Map:              t.gmap,
	})
	if err != nil {
		return nil, t.fail(err)
	}

	layer := &Layer{Layer: l, KmlLayer: overlay}

	for _, event := range layerEvents {
		handler := opts.handler(event)
		if handler == nil {
			continue
		}
		overlay.AddListener(event, func(e mapping.Event) {
			handler(LayerEventContext{Tool: t, Layer: layer, Event: e})
		})
	}

	t.layers = append(t.layers, layer)

	if opts.OnAdd != nil {
		opts.OnAdd(LayerContext{Tool: t, Layer: layer})
	}

	return layer, nil
}
