package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/application"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/config"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/mapping"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/repository"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/infrastructure"
	httpinterface "github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/interface/http"
)

const usage = `usage: gmapstool [-config path] <command> [flags]

commands:
  serve                       serve style documents and static maps over http
  import <name> <path|url>    import a json or yaml style document
  delete <name>               delete an imported style
  static [flags] <output>     render a static map image to a file
`

func main() {
	configPath := flag.String("config", "gmapstool.toml", "path to the toml config file")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))

	if err := run(context.Background(), cfg, logger, flag.Arg(0), flag.Args()[1:]); err != nil {
		logger.Error("Command failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, command string, args []string) error {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout()}

	source := infrastructure.NewStyleDocumentSource(httpClient)
	styleRepository, err := infrastructure.NewSqliteStyleRepository(cfg.Server.DatabasePath, source)
	if err != nil {
		return err
	}
	defer styleRepository.Close()

	styleService := service.NewMapStyleService(source, styleRepository, logger)
	staticService := service.NewStaticMapService(httpClient, logger)

	app := application.New(application.Config{
		MapOptions:    cfg.Map,
		StaticOptions: cfg.Static,
		Settings:      cfg.Settings,
		StaticBaseURL: cfg.Maps.StaticBaseURL,
		APIKey:        cfg.Maps.APIKey,
		MarkerIcon:    cfg.Maps.MarkerIcon,
	}, newStaticClient, styleService, staticService, newGeocoder(cfg, httpClient, logger), logger)

	switch command {
	case "serve":
		return serve(ctx, cfg, app, logger)
	case "import":
		if len(args) != 2 {
			return fmt.Errorf("import needs a name and a path, got %d arguments", len(args))
		}
		return app.ImportStyle(ctx, args[0], args[1])
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete needs a style name, got %d arguments", len(args))
		}
		return app.DeleteStyle(ctx, args[0])
	case "static":
		return static(ctx, app, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func newStaticClient() mapping.Client {
	return infrastructure.NewStaticMapClient()
}

// newGeocoder returns nil without an api key, addresses are then rejected
// with a DependencyError.
func newGeocoder(cfg config.Config, httpClient *http.Client, logger *slog.Logger) mapping.Geocoder {
	geocoder, err := infrastructure.NewGoogleMapsGeocoder(cfg.Maps.APIKey, cfg.Maps.GeocodeURL, httpClient)
	if err != nil {
		logger.Warn("Geocoding disabled", "error", err)
		return nil
	}
	return geocoder
}

func serve(ctx context.Context, cfg config.Config, app application.Application, logger *slog.Logger) error {
	for _, style := range cfg.Styles {
		if err := app.ImportStyle(ctx, style.Name, style.Path); err != nil {
			return err
		}
	}

	listener, err := net.Listen("tcp", cfg.Server.ListenAddr)
	if err != nil {
		return err
	}

	logger.Info("Listening", "addr", listener.Addr().String())
	return httpinterface.ServeApplication(listener, app, logger)
}

func static(ctx context.Context, app application.Application, args []string) error {
	flags := flag.NewFlagSet("static", flag.ContinueOnError)
	style := flags.String("style", "", "name of an imported style")
	center := flags.String("center", "", "map center as lat,lng")
	address := flags.String("address", "", "address to geocode as map center")
	zoom := flags.Int("zoom", 0, "zoom level")
	size := flags.String("size", "", "image size, e.g. 640x400")
	markers := flags.String("markers", "", "marker file (.geojson, .osm, .osm.bz2 or .osm.pbf)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("static needs an output path")
	}

	req := application.StaticMapRequest{
		Style:   *style,
		Address: *address,
		Static:  entities.StaticOptions{Size: *size},
	}

	flags.Visit(func(f *flag.Flag) {
		if f.Name == "zoom" {
			req.Zoom = entities.Int(*zoom)
		}
	})

	if *center != "" {
		ll, err := service.ParseLatLng(*center)
		if err != nil {
			return err
		}
		req.Center = &ll
	}

	if *markers != "" {
		var importer repository.MarkerImporter = infrastructure.OsmMarkerImporter{}
		if strings.HasSuffix(*markers, ".geojson") || strings.HasSuffix(*markers, ".json") {
			importer = infrastructure.GeoJSONMarkerImporter{}
		}

		imported, err := importer.Import(ctx, *markers)
		if err != nil {
			return err
		}
		req.Markers = imported
	}

	return app.SaveStaticMap(ctx, req, flags.Arg(0))
}
