// Package pmtiles routes over road vector tiles read from a PMTiles archive.
package pmtiles

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

const (
	// ProviderName identifies the router in logs and responses.
	ProviderName = "pmtiles"

	defaultRoadLayer   = "transportation"
	defaultZoom        = 14
	defaultWalkingKmh  = 5.0
	defaultDrivingKmh  = 30.0
	maxSnapMeters      = 500.0
	boundsPadding      = 0.005 // about 500m
	maxTilesPerRequest = 64
)

// ErrTileNotFound is returned by a TileSource for tiles outside the archive.
var ErrTileNotFound = errors.New("tile not found")

// TileSource reads raw vector tiles.
type TileSource interface {
	Tile(ctx context.Context, tile maptile.Tile) ([]byte, error)
}

// Options configures a Router. Zero values select the defaults.
type Options struct {
	RoadLayer       string
	ZoomLevel       int
	WalkingSpeedKmh float64
	DrivingSpeedKmh float64
}

// Router computes routes over the road layer of a tile source.
type Router struct {
	tiles        TileSource
	parser       *MVTParser
	zoom         maptile.Zoom
	walkingSpeed float64
	drivingSpeed float64
	logger       *slog.Logger

	cacheMu sync.RWMutex
	cache   map[maptile.Tile][]RoadSegment
}

// NewRouter creates a router reading tiles from source.
func NewRouter(source TileSource, opts Options, logger *slog.Logger) *Router {
	if opts.RoadLayer == "" {
		opts.RoadLayer = defaultRoadLayer
	}
	if opts.ZoomLevel <= 0 {
		opts.ZoomLevel = defaultZoom
	}
	if opts.WalkingSpeedKmh <= 0 {
		opts.WalkingSpeedKmh = defaultWalkingKmh
	}
	if opts.DrivingSpeedKmh <= 0 {
		opts.DrivingSpeedKmh = defaultDrivingKmh
	}

	return &Router{
		tiles:        source,
		parser:       NewMVTParser(opts.RoadLayer),
		zoom:         maptile.Zoom(opts.ZoomLevel),
		walkingSpeed: opts.WalkingSpeedKmh,
		drivingSpeed: opts.DrivingSpeedKmh,
		logger:       logger,
		cache:        make(map[maptile.Tile][]RoadSegment),
	}
}

// Name implements service.DirectionsProvider.
func (r *Router) Name() string {
	return ProviderName
}

// Route snaps both ends to the road network and returns the shortest path between them.
func (r *Router) Route(ctx context.Context, origin, destination entity.Coordinate, profile entity.TravelProfile) (*entity.Route, error) {
	tiles := tilesForBounds(orb.MultiPoint{origin.Point(), destination.Point()}.Bound().Pad(boundsPadding), r.zoom)
	if len(tiles) > maxTilesPerRequest {
		return nil, domainerrors.ErrNoRoute.WithDetails("destination is too far for offline routing")
	}

	graph := NewRoadGraph()
	for _, tile := range tiles {
		segments, err := r.segments(ctx, tile)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.Wrap(ctx.Err(), "load road tiles")
			}
			r.logger.Debug("Skipping road tile",
				slog.String("tile", tileKey(tile)),
				slog.Any("error", err),
			)

			continue
		}
		r.addSegments(graph, segments, profile)
	}

	from, fromSnap, ok := graph.NearestNode(origin.Point())
	if !ok || fromSnap > maxSnapMeters {
		return nil, domainerrors.ErrNoRoute.WithDetails("origin is not near a road")
	}
	to, toSnap, ok := graph.NearestNode(destination.Point())
	if !ok || toSnap > maxSnapMeters {
		return nil, domainerrors.ErrNoRoute.WithDetails("destination is not near a road")
	}

	path, ok := graph.ShortestPath(from, to)
	if !ok {
		return nil, domainerrors.ErrNoRoute
	}

	geometry := make(orb.LineString, 0, len(path.Nodes)+2)
	geometry = append(geometry, origin.Point())
	geometry = append(geometry, graph.Points(path)...)
	geometry = append(geometry, destination.Point())

	// Snap legs are walked to and from the road.
	snap := fromSnap + toSnap

	return &entity.Route{
		Profile:         profile,
		Geometry:        geometry,
		DistanceMeters:  path.Distance + snap,
		DurationSeconds: path.Duration + snap/1000/r.walkingSpeed*3600,
	}, nil
}

func (r *Router) addSegments(graph *RoadGraph, segments []RoadSegment, profile entity.TravelProfile) {
	for i := range segments {
		segment := &segments[i]
		switch profile {
		case entity.TravelProfileDriving:
			if !drivable(segment.Class) {
				continue
			}
			speed := segment.MaxSpeed
			if speed <= 0 {
				speed = r.drivingSpeed
			}
			graph.AddSegment(segment, speed, true)
		default:
			if !walkable(segment.Class) {
				continue
			}
			graph.AddSegment(segment, r.walkingSpeed, false)
		}
	}
}

// segments returns the parsed road segments of a tile. Missing tiles have none.
func (r *Router) segments(ctx context.Context, tile maptile.Tile) ([]RoadSegment, error) {
	r.cacheMu.RLock()
	cached, ok := r.cache[tile]
	r.cacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := r.tiles.Tile(ctx, tile)
	switch {
	case errors.Is(err, ErrTileNotFound):
		data = nil
	case err != nil:
		return nil, err
	}

	var segments []RoadSegment
	if len(data) > 0 {
		if segments, err = r.parser.ParseTile(data, tile); err != nil {
			return nil, err
		}
	}

	r.cacheMu.Lock()
	r.cache[tile] = segments
	r.cacheMu.Unlock()

	return segments, nil
}

// tilesForBounds lists the tiles covering bound at zoom.
func tilesForBounds(bound orb.Bound, zoom maptile.Zoom) []maptile.Tile {
	minTile := maptile.At(orb.Point{bound.Min.Lon(), bound.Max.Lat()}, zoom)
	maxTile := maptile.At(orb.Point{bound.Max.Lon(), bound.Min.Lat()}, zoom)

	var tiles []maptile.Tile
	for x := minTile.X; x <= maxTile.X; x++ {
		for y := minTile.Y; y <= maxTile.Y; y++ {
			tiles = append(tiles, maptile.Tile{X: x, Y: y, Z: zoom})
		}
	}

	return tiles
}

func tileKey(tile maptile.Tile) string {
	return fmt.Sprintf("%d/%d/%d", tile.Z, tile.X, tile.Y)
}
