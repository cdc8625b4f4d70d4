package pmtiles

import (
	"shopradar/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
)

// RoadSegment is one road feature of a vector tile, in WGS84.
type RoadSegment struct {
	Points   []orb.Point
	Class    string  // road class (e.g. "primary", "footway")
	MaxSpeed float64 // km/h, 0 when unknown
	OneWay   bool
	Name     string
}

// MVTParser extracts road segments from Mapbox Vector Tiles.
type MVTParser struct {
	roadLayerName string
}

// NewMVTParser creates a parser reading the named road layer.
func NewMVTParser(roadLayerName string) *MVTParser {
	return &MVTParser{roadLayerName: roadLayerName}
}

// ParseTile decodes tile data (gzipped or plain) and returns its road segments.
// A tile without the road layer yields no segments.
func (p *MVTParser) ParseTile(data []byte, tile maptile.Tile) ([]RoadSegment, error) {
	layers, err := mvt.UnmarshalGzipped(data)
	if err != nil {
		layers, err = mvt.Unmarshal(data)
		if err != nil {
			return nil, errors.Wrap(err, "decode vector tile")
		}
	}

	var roadLayer *mvt.Layer
	for _, layer := range layers {
		if layer.Name == p.roadLayerName {
			roadLayer = layer

			break
		}
	}
	if roadLayer == nil {
		return nil, nil
	}

	roadLayer.ProjectToWGS84(tile)

	segments := make([]RoadSegment, 0, len(roadLayer.Features))
	for _, feature := range roadLayer.Features {
		points, ok := linePoints(feature.Geometry)
		if !ok {
			continue
		}
		class := stringProperty(feature, "class", "highway", "type")
		segments = append(segments, RoadSegment{
			Points:   points,
			Class:    class,
			MaxSpeed: speedForClass(class),
			OneWay:   boolProperty(feature, "oneway"),
			Name:     stringProperty(feature, "name"),
		})
	}

	return segments, nil
}

// linePoints flattens line geometries. Other geometry types are not routable.
func linePoints(geometry orb.Geometry) ([]orb.Point, bool) {
	var points []orb.Point
	switch geom := geometry.(type) {
	case orb.LineString:
		points = append(points, geom...)
	case orb.MultiLineString:
		for _, ls := range geom {
			points = append(points, ls...)
		}
	default:
		return nil, false
	}

	return points, len(points) >= 2
}

func stringProperty(feature *geojson.Feature, keys ...string) string {
	for _, key := range keys {
		if str, ok := feature.Properties[key].(string); ok {
			return str
		}
	}

	return ""
}

func boolProperty(feature *geojson.Feature, key string) bool {
	switch value := feature.Properties[key].(type) {
	case bool:
		return value
	case int:
		return value != 0
	case int64:
		return value != 0
	case uint64:
		return value != 0
	case float64:
		return value != 0
	case string:
		return value == "yes" || value == "true" || value == "1"
	}

	return false
}

var classSpeeds = map[string]float64{
	"motorway":       110,
	"motorway_link":  80,
	"trunk":          80,
	"trunk_link":     60,
	"primary":        60,
	"primary_link":   50,
	"secondary":      50,
	"secondary_link": 40,
	"tertiary":       40,
	"tertiary_link":  30,
	"residential":    30,
	"unclassified":   30,
	"minor":          30,
	"living_street":  20,
	"service":        20,
}

// speedForClass returns the nominal driving speed of a road class, 0 when unknown.
func speedForClass(class string) float64 {
	return classSpeeds[class]
}

var (
	pedestrianOnly = map[string]bool{"footway": true, "path": true, "pedestrian": true, "steps": true, "track": true}
	motorOnly      = map[string]bool{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true}
)

// walkable reports whether pedestrians may use the road class.
func walkable(class string) bool {
	return !motorOnly[class]
}

// drivable reports whether cars may use the road class.
func drivable(class string) bool {
	return !pedestrianOnly[class]
}
