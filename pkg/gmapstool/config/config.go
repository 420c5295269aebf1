package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/natefinch/atomic"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
)

const APIKeyEnv = "GMAPSTOOL_API_KEY"

var validate = validator.New(validator.WithRequiredStructEnabled())

type ServerConfig struct {
	ListenAddr   string `toml:"listen_addr" validate:"required"`
	DatabasePath string `toml:"database_path" validate:"required"`
	LogLevel     string `toml:"log_level" validate:"oneof=debug info warn error"`
}

type MapsConfig struct {
	APIKey        string `toml:"api_key"`
	StaticBaseURL string `toml:"static_base_url" validate:"required,url"`
	GeocodeURL    string `toml:"geocode_base_url" validate:"omitempty,url"`
	// HTTPTimeout is a time.ParseDuration string, e.g. "10s".
	HTTPTimeout string `toml:"http_timeout" validate:"required"`
	MarkerIcon  string `toml:"marker_icon" validate:"omitempty,url"`
}

type StyleImport struct {
	Name string `toml:"name" validate:"required"`
	Path string `toml:"path" validate:"required"`
}

type Config struct {
	Server   ServerConfig           `toml:"server"`
	Maps     MapsConfig             `toml:"maps"`
	Map      entities.MapOptions    `toml:"map"`
	Static   entities.StaticOptions `toml:"static"`
	Settings entities.Settings      `toml:"settings"`
	Styles   []StyleImport          `toml:"styles" validate:"dive"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:   "0.0.0.0:8080",
			DatabasePath: "./gmapstool.db",
			LogLevel:     "info",
		},
		Maps: MapsConfig{
			StaticBaseURL: service.DefaultStaticBaseURL,
			HTTPTimeout:   "10s",
		},
		Map:      entities.DefaultMapOptions(),
		Static:   entities.DefaultStaticOptions(),
		Settings: entities.DefaultSettings(),
	}
}

// Load decodes the toml file at path on top of the defaults. A missing file
// is created with the defaults. GMAPSTOOL_API_KEY overrides maps.api_key.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
		if err := WriteDefault(path); err != nil {
			return Config{}, err
		}
	}

	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.Maps.APIKey = key
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func WriteDefault(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write default config file: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.ParseDuration(c.Maps.HTTPTimeout); err != nil {
		return fmt.Errorf("invalid config: maps.http_timeout: %w", err)
	}
	return nil
}

func (c Config) HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(c.Maps.HTTPTimeout)
	if err != nil {
		return 0
	}
	return d
}

func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
