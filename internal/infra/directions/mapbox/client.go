// Package mapbox implements directions through the Mapbox Directions API.
package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shopradar/config"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/time/rate"
)

// ProviderName identifies the client in logs and responses.
const ProviderName = "mapbox"

const (
	defaultBaseURL           = "https://api.mapbox.com"
	defaultTimeout           = 10 * time.Second
	defaultRequestsPerMinute = 300
)

// Client calls the Mapbox Directions API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// NewClient creates a Directions API client. Requests are throttled to cfg.RequestsPerMinute.
func NewClient(cfg *config.MapboxConfig, logger *slog.Logger) (*Client, error) {
	if cfg == nil || cfg.AccessToken == "" {
		return nil, errors.New("mapbox directions require an access token")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}

	return &Client{
		baseURL:     baseURL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		logger:      logger,
	}, nil
}

// Name implements service.DirectionsProvider.
func (c *Client) Name() string {
	return ProviderName
}

type directionsResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry json.RawMessage `json:"geometry"`
		Distance float64         `json:"distance"`
		Duration float64         `json:"duration"`
	} `json:"routes"`
}

// Route requests the first route between origin and destination.
func (c *Client) Route(ctx context.Context, origin, destination entity.Coordinate, profile entity.TravelProfile) (*entity.Route, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domainerrors.ErrTimeout.WithDetails("directions rate limit: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.routeURL(origin, destination, profile), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, domainerrors.ErrTimeout.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "request directions")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read directions response")
	}

	var payload directionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("directions returned status %d", resp.StatusCode)
		}

		return nil, errors.Wrap(err, "decode directions response")
	}

	switch {
	case payload.Code == "NoRoute" || payload.Code == "NoSegment":
		return nil, domainerrors.ErrNoRoute.WithDetails(payload.Message)
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("[Directions] Mapbox request rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("code", payload.Code),
			slog.String("message", payload.Message),
		)

		return nil, errors.Errorf("directions returned status %d: %s", resp.StatusCode, payload.Code)
	case len(payload.Routes) == 0:
		return nil, domainerrors.ErrNoRoute
	}

	first := payload.Routes[0]
	geometry, err := geojson.UnmarshalGeometry(first.Geometry)
	if err != nil {
		return nil, errors.Wrap(err, "decode route geometry")
	}
	line, ok := geometry.Geometry().(orb.LineString)
	if !ok {
		return nil, domainerrors.ErrNoRoute.WithDetails("route geometry is not a line")
	}

	return &entity.Route{
		Profile:         profile,
		Geometry:        line,
		DistanceMeters:  first.Distance,
		DurationSeconds: first.Duration,
	}, nil
}

func (c *Client) routeURL(origin, destination entity.Coordinate, profile entity.TravelProfile) string {
	coordinates := formatCoordinate(origin) + ";" + formatCoordinate(destination)

	query := url.Values{}
	query.Set("geometries", "geojson")
	query.Set("access_token", c.accessToken)

	return fmt.Sprintf("%s/directions/v5/mapbox/%s/%s?%s", c.baseURL, profile, coordinates, query.Encode())
}

func formatCoordinate(c entity.Coordinate) string {
	return strconv.FormatFloat(c.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}
