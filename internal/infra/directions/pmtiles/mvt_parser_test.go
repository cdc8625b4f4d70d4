package pmtiles

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTile = maptile.At(orb.Point{121.5654, 25.0330}, 14)

// encodeTile encodes WGS84 features as the named layer of testTile.
func encodeTile(t *testing.T, layerName string, features ...*geojson.Feature) []byte {
	t.Helper()

	fc := geojson.NewFeatureCollection()
	fc.Features = append(fc.Features, features...)

	layers := mvt.Layers{mvt.NewLayer(layerName, fc)}
	layers.ProjectToTile(testTile)

	data, err := mvt.Marshal(layers)
	require.NoError(t, err)

	return data
}

func road(class string, props map[string]any, points ...orb.Point) *geojson.Feature {
	feature := geojson.NewFeature(orb.LineString(points))
	feature.Properties["class"] = class
	for k, v := range props {
		feature.Properties[k] = v
	}

	return feature
}

func TestMVTParser_ParseTile(t *testing.T) {
	center := testTile.Bound().Center()
	east := orb.Point{center.Lon() + 0.001, center.Lat()}

	data := encodeTile(t, "transportation",
		road("primary", map[string]any{"name": "Xinyi Road", "oneway": 1}, center, east),
		geojson.NewFeature(center),
	)

	segments, err := NewMVTParser("transportation").ParseTile(data, testTile)

	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "primary", segments[0].Class)
	assert.Equal(t, "Xinyi Road", segments[0].Name)
	assert.Equal(t, 60.0, segments[0].MaxSpeed)
	assert.True(t, segments[0].OneWay)
	require.Len(t, segments[0].Points, 2)
	assert.InDelta(t, center.Lon(), segments[0].Points[0].Lon(), 1e-5)
	assert.InDelta(t, east.Lon(), segments[0].Points[1].Lon(), 1e-5)
}

func TestMVTParser_ParseTile_LayerMissing(t *testing.T) {
	center := testTile.Bound().Center()
	data := encodeTile(t, "water", road("river", nil, center, orb.Point{center.Lon() + 0.001, center.Lat()}))

	segments, err := NewMVTParser("transportation").ParseTile(data, testTile)

	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestMVTParser_ParseTile_InvalidData(t *testing.T) {
	_, err := NewMVTParser("transportation").ParseTile([]byte("not a tile"), testTile)

	assert.Error(t, err)
}

func TestBoolProperty(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "bool", value: true, want: true},
		{name: "float", value: float64(1), want: true},
		{name: "zero", value: float64(0), want: false},
		{name: "yes", value: "yes", want: true},
		{name: "no", value: "no", want: false},
		{name: "missing", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			feature := geojson.NewFeature(orb.Point{})
			if tt.value != nil {
				feature.Properties["oneway"] = tt.value
			}

			assert.Equal(t, tt.want, boolProperty(feature, "oneway"))
		})
	}
}

func TestRoadClassAccess(t *testing.T) {
	assert.True(t, walkable("footway"))
	assert.False(t, walkable("motorway"))
	assert.True(t, drivable("motorway"))
	assert.False(t, drivable("steps"))
	assert.Zero(t, speedForClass("footway"))
}
