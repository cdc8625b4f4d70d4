package pmtiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"shopradar/config"
	"shopradar/internal/errors"

	"github.com/paulmach/orb/maptile"
	"github.com/protomaps/go-pmtiles/pmtiles"
)

const tileCacheSize = 64

// archiveSource reads tiles through a go-pmtiles server. The server resolves
// local files, HTTP URLs and cloud buckets.
type archiveSource struct {
	server  *pmtiles.Server
	tileset string
}

// NewArchiveSource opens the PMTiles archive at source.
func NewArchiveSource(source string) (TileSource, error) {
	bucket, tileset := parseSourcePath(source)

	server, err := pmtiles.NewServer(bucket, "", log.New(io.Discard, "", 0), tileCacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "open PMTiles archive")
	}
	server.Start()

	return &archiveSource{server: server, tileset: tileset}, nil
}

func (s *archiveSource) Tile(ctx context.Context, tile maptile.Tile) ([]byte, error) {
	status, _, data := s.server.Get(ctx, fmt.Sprintf("/%s/%d/%d/%d.mvt", s.tileset, tile.Z, tile.X, tile.Y))

	switch status {
	case http.StatusOK:
		return data, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, ErrTileNotFound
	default:
		return nil, errors.Errorf("unexpected tile status %d", status)
	}
}

// parseSourcePath splits a source into the bucket and the tileset name the server expects.
//
//	"/data/walking.pmtiles"                 -> ("file:///data", "walking")
//	"https://cdn.example.com/t/osm.pmtiles" -> ("https://cdn.example.com/t", "osm")
//	"gs://tiles/osm.pmtiles"                -> ("gs://tiles", "osm")
func parseSourcePath(source string) (bucket, tileset string) {
	if strings.Contains(source, "://") {
		idx := strings.LastIndex(source, "/")

		return source[:idx], strings.TrimSuffix(source[idx+1:], ".pmtiles")
	}

	return "file://" + filepath.Dir(source), strings.TrimSuffix(filepath.Base(source), ".pmtiles")
}

// NewRouterFromConfig opens the configured archive and builds a router over it.
func NewRouterFromConfig(cfg *config.PMTilesConfig, logger *slog.Logger) (*Router, error) {
	if cfg == nil || cfg.Source == "" {
		return nil, errors.New("pmtiles directions require a source")
	}

	source, err := NewArchiveSource(cfg.Source)
	if err != nil {
		return nil, err
	}

	router := NewRouter(source, Options{
		RoadLayer:       cfg.RoadLayer,
		ZoomLevel:       cfg.ZoomLevel,
		WalkingSpeedKmh: cfg.WalkingSpeedKmh,
		DrivingSpeedKmh: cfg.DrivingSpeedKmh,
	}, logger)

	logger.Info("PMTiles directions initialized",
		slog.String("source", cfg.Source),
		slog.Int("zoom_level", int(router.zoom)),
	)

	return router, nil
}
