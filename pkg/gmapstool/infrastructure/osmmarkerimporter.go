package infrastructure

import (
	"compress/bzip2"
	"context"
	"fmt"
	"html"
	"os"
	"runtime"
	"strings"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/repository"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

var _ repository.MarkerImporter = OsmMarkerImporter{}

// OsmMarkerImporter turns every named node of an osm dump into a marker.
type OsmMarkerImporter struct{}

func (OsmMarkerImporter) Import(ctx context.Context, path string) ([]entities.Marker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open osm dump file: %w", err)
	}
	defer f.Close()

	var scanner osm.Scanner
	if strings.HasSuffix(path, ".osm.pbf") {
		scanner = osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	} else if strings.HasSuffix(path, ".osm.bz2") {
		compressedReader := bzip2.NewReader(f)
		scanner = osmxml.New(ctx, compressedReader)
	} else if strings.HasSuffix(path, ".osm") {
		scanner = osmxml.New(ctx, f)
	} else {
		return nil, fmt.Errorf("osm dump file must either be a '.osm'-XML, a '.osm.bz2'-compressed-XML or a '.osm.pbf'-protobuf file")
	}
	defer scanner.Close()

	markers := []entities.Marker{}
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}

		name := node.Tags.Find("name")
		if name == "" {
			continue
		}

		markers = append(markers, entities.Marker{
			Position: entities.LatLng{Lat: node.Lat, Lng: node.Lon},
			Content:  "<div class=\"marker\">" + html.EscapeString(name) + "</div>",
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read osm dump file: %w", err)
	}

	return markers, nil
}
