package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
)

const DefaultStaticBaseURL = "https://maps.googleapis.com/maps/api/staticmap"

type StaticMapService interface {
	BuildStaticRequest(baseURL string, mapOptions entities.MapOptions, staticOptions entities.StaticOptions, apiKey string) (string, error)
	FetchImage(ctx context.Context, requestURL string) ([]byte, string, error)
	SaveImage(ctx context.Context, requestURL string, path string) error
}

type staticMapService struct {
	client *http.Client
	logger *slog.Logger
}

func NewStaticMapService(client *http.Client, logger *slog.Logger) StaticMapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &staticMapService{
		client: client,
		logger: ComponentLogger(logger),
	}
}

func (s *staticMapService) BuildStaticRequest(baseURL string, mapOptions entities.MapOptions, staticOptions entities.StaticOptions, apiKey string) (string, error) {
	return BuildStaticRequest(baseURL, mapOptions, staticOptions, apiKey)
}

// BuildStaticRequest assembles a static map image URL. Parameters are
// written in a fixed order (center, zoom, size, scale, maptype, markers,
// style, key) and are not escaped; marker icons are escaped by FormatMarkers.
func BuildStaticRequest(baseURL string, mapOptions entities.MapOptions, staticOptions entities.StaticOptions, apiKey string) (string, error) {
	if apiKey == "" {
		return "", &entities.ConfigurationError{Field: "key", Message: "Please set the static map \"key\" option"}
	}

	params := queryParams{}
	if mapOptions.Center != nil {
		params.add("center", mapOptions.Center.String())
	}
	if mapOptions.Zoom != nil {
		params.add("zoom", strconv.Itoa(*mapOptions.Zoom))
	}
	params.add("size", staticOptions.Size)
	if staticOptions.Scale != 0 {
		params.add("scale", strconv.Itoa(staticOptions.Scale))
	}
	params.add("maptype", staticOptions.MapType)
	params.add("markers", staticOptions.Markers)
	params.add("style", staticOptions.Style)
	params.add("key", apiKey)

	return baseURL + "?" + params.encode(), nil
}

// FormatMarkers builds a static map markers value: an optional escaped icon
// followed by every position.
func FormatMarkers(iconURL string, positions []entities.LatLng) string {
	parts := make([]string, 0, len(positions)+1)
	if iconURL != "" {
		parts = append(parts, "icon:"+url.QueryEscape(iconURL))
	}
	for _, p := range positions {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, styleJoiner)
}

type queryParam struct {
	key   string
	value string
}

// queryParams keeps insertion order, unlike url.Values.
type queryParams []queryParam

func (qp *queryParams) add(key, value string) {
	if value == "" {
		return
	}
	*qp = append(*qp, queryParam{key: key, value: value})
}

func (qp queryParams) encode() string {
	var buf strings.Builder
	for _, p := range qp {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(p.key)
		buf.WriteByte('=')
		buf.WriteString(p.value)
	}
	return buf.String()
}

func (s *staticMapService) FetchImage(ctx context.Context, requestURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create static map request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		remoteErr := &entities.RemoteResourceError{URL: redactKey(requestURL), Err: err}
		s.logger.Error("Static map request failed", "error", remoteErr)
		return nil, "", remoteErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remoteErr := &entities.RemoteResourceError{URL: redactKey(requestURL), StatusCode: resp.StatusCode}
		s.logger.Error("Static map request failed", "error", remoteErr)
		return nil, "", remoteErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read static map image: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func (s *staticMapService) SaveImage(ctx context.Context, requestURL string, path string) error {
	data, _, err := s.FetchImage(ctx, requestURL)
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write static map image: %w", err)
	}

	s.logger.Info("Saved static map", "path", path, "bytes", len(data))
	return nil
}

// redactKey hides the api key of a request url before it is logged or returned.
func redactKey(requestURL string) string {
	idx := strings.Index(requestURL, "key=")
	if idx < 0 {
		return requestURL
	}
	end := strings.IndexByte(requestURL[idx:], '&')
	if end < 0 {
		return requestURL[:idx] + "key=REDACTED"
	}
	return requestURL[:idx] + "key=REDACTED" + requestURL[idx+end:]
}
