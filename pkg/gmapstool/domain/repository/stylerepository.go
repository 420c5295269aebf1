package repository

import (
	"context"
	"errors"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
)

var ErrStyleNotFound = errors.New("style not found")

type StyleRepository interface {
	Import(ctx context.Context, name string, path string) error
	Save(ctx context.Context, name string, rules []entities.StyleRule) error
	Get(ctx context.Context, name string) ([]entities.StyleRule, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
	// Colors returns the distinct #RRGGBB colors a style uses, in first use order.
	Colors(ctx context.Context, name string) ([]string, error)
}

// StyleDocumentSource loads a style document, either from an http(s) url or
// from the local filesystem.
type StyleDocumentSource interface {
	Load(ctx context.Context, path string) ([]entities.StyleRule, error)
}

// MarkerImporter reads markers from a geodata file.
type MarkerImporter interface {
	Import(ctx context.Context, path string) ([]entities.Marker, error)
}
