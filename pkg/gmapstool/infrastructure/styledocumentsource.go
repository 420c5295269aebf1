package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/repository"
	"gopkg.in/yaml.v2"
)

var _ repository.StyleDocumentSource = (*StyleDocumentSource)(nil)

type StyleDocumentSource struct {
	client *http.Client
}

func NewStyleDocumentSource(client *http.Client) *StyleDocumentSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &StyleDocumentSource{client: client}
}

func (s *StyleDocumentSource) Load(ctx context.Context, location string) ([]entities.StyleRule, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		data, err = s.fetch(ctx, location)
	} else {
		data, err = os.ReadFile(location)
		if err != nil {
			err = &entities.RemoteResourceError{URL: location, Err: err}
		}
	}
	if err != nil {
		return nil, err
	}

	return decodeStyleDocument(data, documentExt(location))
}

func (s *StyleDocumentSource) fetch(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create style document request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &entities.RemoteResourceError{URL: location, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &entities.RemoteResourceError{URL: location, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entities.RemoteResourceError{URL: location, Err: err}
	}

	return data, nil
}

// documentExt ignores any query string so "style.yaml?v=2" is still yaml.
func documentExt(location string) string {
	if idx := strings.IndexAny(location, "?#"); idx >= 0 {
		location = location[:idx]
	}
	return strings.ToLower(path.Ext(location))
}

func decodeStyleDocument(data []byte, ext string) ([]entities.StyleRule, error) {
	var rules []entities.StyleRule

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rules); err != nil {
			return nil, fmt.Errorf("failed to parse yaml style document: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &rules); err != nil {
			return nil, fmt.Errorf("failed to parse json style document: %w", err)
		}
	}

	if rules == nil {
		rules = []entities.StyleRule{}
	}
	return rules, nil
}
