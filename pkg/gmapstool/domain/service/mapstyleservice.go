package service

import (
	"context"
	"log/slog"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/repository"
)

type MapStyleService interface {
	LoadStyles(ctx context.Context, path string) ([]entities.StyleRule, error)
	ImportStyle(ctx context.Context, name string, path string) error
	GetStyle(ctx context.Context, name string) ([]entities.StyleRule, error)
	ListStyles(ctx context.Context) ([]string, error)
	EncodedStyle(ctx context.Context, name string) (string, error)
	StyleColors(ctx context.Context, name string) ([]string, error)
	DeleteStyle(ctx context.Context, name string) error
}

type mapStyleService struct {
	source     repository.StyleDocumentSource
	repository repository.StyleRepository
	logger     *slog.Logger
}

// NewMapStyleService wires a style document source and an optional style
// repository. Without a repository only LoadStyles is usable.
func NewMapStyleService(source repository.StyleDocumentSource, styleRepository repository.StyleRepository, logger *slog.Logger) MapStyleService {
	return &mapStyleService{
		source:     source,
		repository: styleRepository,
		logger:     ComponentLogger(logger),
	}
}

func (m *mapStyleService) LoadStyles(ctx context.Context, path string) ([]entities.StyleRule, error) {
	if m.source == nil {
		return nil, &entities.DependencyError{Name: "StyleDocumentSource"}
	}

	rules, err := m.source.Load(ctx, path)
	if err != nil {
		m.logger.Error("Json file not found", "path", path, "error", err)
		return nil, err
	}

	return rules, nil
}

func (m *mapStyleService) ImportStyle(ctx context.Context, name string, path string) error {
	if m.repository == nil {
		return &entities.DependencyError{Name: "StyleRepository"}
	}

	if err := m.repository.Import(ctx, name, path); err != nil {
		m.logger.Error("Style import failed", "name", name, "path", path, "error", err)
		return err
	}

	m.logger.Info("Imported style", "name", name, "path", path)
	return nil
}

func (m *mapStyleService) GetStyle(ctx context.Context, name string) ([]entities.StyleRule, error) {
	if m.repository == nil {
		return nil, &entities.DependencyError{Name: "StyleRepository"}
	}
	return m.repository.Get(ctx, name)
}

func (m *mapStyleService) ListStyles(ctx context.Context) ([]string, error) {
	if m.repository == nil {
		return nil, &entities.DependencyError{Name: "StyleRepository"}
	}
	return m.repository.List(ctx)
}

func (m *mapStyleService) EncodedStyle(ctx context.Context, name string) (string, error) {
	rules, err := m.GetStyle(ctx, name)
	if err != nil {
		return "", err
	}
	return EncodeStyles(rules), nil
}

// StyleColors fails with repository.ErrStyleNotFound for an unknown name
// instead of returning an empty palette.
func (m *mapStyleService) StyleColors(ctx context.Context, name string) ([]string, error) {
	if _, err := m.GetStyle(ctx, name); err != nil {
		return nil, err
	}
	return m.repository.Colors(ctx, name)
}

func (m *mapStyleService) DeleteStyle(ctx context.Context, name string) error {
	if _, err := m.GetStyle(ctx, name); err != nil {
		return err
	}

	if err := m.repository.Delete(ctx, name); err != nil {
		m.logger.Error("Style delete failed", "name", name, "error", err)
		return err
	}

	m.logger.Info("Deleted style", "name", name)
	return nil
}
