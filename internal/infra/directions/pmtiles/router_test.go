package pmtiles

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTileSource struct {
	tiles map[maptile.Tile][]byte
	err   error
	calls int
}

func (f *fakeTileSource) Tile(_ context.Context, tile maptile.Tile) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.tiles[tile]
	if !ok {
		return nil, ErrTileNotFound
	}

	return data, nil
}

type routerFixture struct {
	router *Router
	source *fakeTileSource
	a, b   orb.Point // ends of a one-way primary road running east
	c      orb.Point // end of a footway running north from b
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	center := testTile.Bound().Center()
	fx := &routerFixture{
		a: center,
		b: orb.Point{center.Lon() + 0.002, center.Lat()},
		c: orb.Point{center.Lon() + 0.002, center.Lat() + 0.002},
	}
	fx.source = &fakeTileSource{tiles: map[maptile.Tile][]byte{
		testTile: encodeTile(t, "transportation",
			road("primary", map[string]any{"oneway": true}, fx.a, fx.b),
			road("footway", nil, fx.b, fx.c),
		),
	}}
	fx.router = NewRouter(fx.source, Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return fx
}

func coordinate(p orb.Point) entity.Coordinate {
	return entity.Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

func TestRouter_Route_Walking(t *testing.T) {
	fx := newRouterFixture(t)
	// Start a few meters off the road.
	origin := entity.Coordinate{Lat: fx.c.Lat() + 0.00003, Lng: fx.c.Lon()}

	route, err := fx.router.Route(context.Background(), origin, coordinate(fx.a), entity.TravelProfileWalking)

	require.NoError(t, err)
	assert.Equal(t, entity.TravelProfileWalking, route.Profile)
	require.GreaterOrEqual(t, len(route.Geometry), 4)
	assert.Equal(t, origin.Point(), route.Geometry[0])
	assert.Equal(t, fx.a, route.Geometry[len(route.Geometry)-1])
	// ~222m north plus ~202m west plus the snap leg.
	assert.InDelta(t, 427, route.DistanceMeters, 5)
	assert.InDelta(t, route.DistanceMeters/1000/defaultWalkingKmh*3600, route.DurationSeconds, 1)
}

func TestRouter_Route_DrivingRespectsRoadRules(t *testing.T) {
	fx := newRouterFixture(t)

	route, err := fx.router.Route(context.Background(), coordinate(fx.a), coordinate(fx.b), entity.TravelProfileDriving)
	require.NoError(t, err)
	// Primary roads are driven at 60 km/h.
	assert.InDelta(t, route.DistanceMeters/1000/60*3600, route.DurationSeconds, 1)

	_, err = fx.router.Route(context.Background(), coordinate(fx.b), coordinate(fx.a), entity.TravelProfileDriving)
	assert.True(t, errors.Is(err, domainerrors.ErrNoRoute), "one-way road driven backwards")
}

func TestRouter_Route_FootwayWalkedAsSnapLeg(t *testing.T) {
	fx := newRouterFixture(t)

	route, err := fx.router.Route(context.Background(), coordinate(fx.a), coordinate(fx.c), entity.TravelProfileDriving)

	require.NoError(t, err)
	assert.Equal(t, fx.c, route.Geometry[len(route.Geometry)-1])
	// ~202m driven east then ~222m walked north.
	assert.InDelta(t, 424, route.DistanceMeters, 5)
	assert.InDelta(t, 172, route.DurationSeconds, 3)
}

func TestRouter_Route_NotNearRoad(t *testing.T) {
	fx := newRouterFixture(t)
	far := entity.Coordinate{Lat: fx.a.Lat() - 0.009, Lng: fx.a.Lon()}

	_, err := fx.router.Route(context.Background(), far, coordinate(fx.b), entity.TravelProfileWalking)

	assert.True(t, errors.Is(err, domainerrors.ErrNoRoute))
}

func TestRouter_Route_TooFar(t *testing.T) {
	fx := newRouterFixture(t)
	far := entity.Coordinate{Lat: fx.a.Lat() + 1, Lng: fx.a.Lon() + 1}

	_, err := fx.router.Route(context.Background(), coordinate(fx.a), far, entity.TravelProfileWalking)

	assert.True(t, errors.Is(err, domainerrors.ErrNoRoute))
	assert.Zero(t, fx.source.calls)
}

func TestRouter_Route_CachesTiles(t *testing.T) {
	fx := newRouterFixture(t)

	_, err := fx.router.Route(context.Background(), coordinate(fx.a), coordinate(fx.b), entity.TravelProfileWalking)
	require.NoError(t, err)
	first := fx.source.calls

	_, err = fx.router.Route(context.Background(), coordinate(fx.a), coordinate(fx.b), entity.TravelProfileWalking)
	require.NoError(t, err)

	assert.Equal(t, first, fx.source.calls)
}

func TestRouter_Route_CanceledContext(t *testing.T) {
	fx := newRouterFixture(t)
	fx.source.err = errors.New("connection reset")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.router.Route(ctx, coordinate(fx.a), coordinate(fx.b), entity.TravelProfileWalking)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTilesForBounds(t *testing.T) {
	tiles := tilesForBounds(testTile.Bound(0), testTile.Z)

	assert.Contains(t, tiles, testTile)
	assert.Equal(t, fmt.Sprintf("14/%d/%d", testTile.X, testTile.Y), tileKey(testTile))
}
