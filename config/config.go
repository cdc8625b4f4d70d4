package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Auth verifies the backend access tokens presented on sign-in
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Location configures the high-precision sampler and its position source
	Location *LocationConfig `json:"location" yaml:"location"`

	// Proximity configures the store proximity monitor
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	// Reminder configures the product reminder monitor
	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// Search configures search history and recently viewed stores
	Search *SearchConfig `json:"search" yaml:"search"`

	// LocalStore configures device-local key-value storage
	LocalStore *LocalStoreConfig `json:"localStore" yaml:"localStore"`

	// Directions configures the route provider
	Directions *DirectionsConfig `json:"directions" yaml:"directions"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for store deep-link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines how backend access tokens are verified
type AuthConfig struct {
	AccessSecret string `json:"accessSecret" yaml:"accessSecret"`
	Issuer       string `json:"issuer" yaml:"issuer"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LocationConfig defines sampling behaviour for the high-precision sampler
type LocationConfig struct {
	// Number of readings taken per sampling run
	Samples int `json:"samples" yaml:"samples"`

	// Delay between two consecutive readings
	SampleInterval time.Duration `json:"sampleInterval" yaml:"sampleInterval"`

	// Timeout of a single position request
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// How long a cached fix is served without touching the platform
	CacheMaxAge time.Duration `json:"cacheMaxAge" yaml:"cacheMaxAge"`

	// Provider type: "bridge" for readings pushed by the native shell, "static" for a fixed position
	Provider string `json:"provider" yaml:"provider"`

	Static *StaticLocationConfig `json:"static" yaml:"static"`
}

// StaticLocationConfig is a fixed position used by the static provider
type StaticLocationConfig struct {
	Lat      float64 `json:"lat" yaml:"lat"`
	Lng      float64 `json:"lng" yaml:"lng"`
	Accuracy float64 `json:"accuracy" yaml:"accuracy"`
}

// ProximityConfig defines the store proximity monitor
type ProximityConfig struct {
	RadiusMeters float64       `json:"radiusMeters" yaml:"radiusMeters"`
	Interval     time.Duration `json:"interval" yaml:"interval"`
	Cooldown     time.Duration `json:"cooldown" yaml:"cooldown"`
}

// ReminderConfig defines the product reminder monitor
type ReminderConfig struct {
	RadiusMeters    float64       `json:"radiusMeters" yaml:"radiusMeters"`
	Interval        time.Duration `json:"interval" yaml:"interval"`
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
	Cooldown        time.Duration `json:"cooldown" yaml:"cooldown"`

	// How long a raised notification stays pending before it counts as acknowledged
	NotificationTTL time.Duration `json:"notificationTTL" yaml:"notificationTTL"`
}

// SearchConfig defines local search bookkeeping
type SearchConfig struct {
	HistorySize        int `json:"historySize" yaml:"historySize"`
	RecentlyViewedSize int `json:"recentlyViewedSize" yaml:"recentlyViewedSize"`
}

// LocalStoreConfig defines the device-local key-value store
type LocalStoreConfig struct {
	// Driver type: "blob" for a gocloud bucket or "redis"
	Driver string `json:"driver" yaml:"driver"`

	// Bucket URL for the blob driver (file:///var/lib/shopradar, mem://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the redis connection used by the redis driver
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

// DirectionsConfig defines the route provider
type DirectionsConfig struct {
	// Provider type: "mapbox" or "pmtiles"
	Provider string `json:"provider" yaml:"provider"`

	Mapbox  *MapboxConfig  `json:"mapbox" yaml:"mapbox"`
	PMTiles *PMTilesConfig `json:"pmtiles" yaml:"pmtiles"`
}

// MapboxConfig defines the Mapbox Directions API client
type MapboxConfig struct {
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	AccessToken       string        `json:"accessToken" yaml:"accessToken"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	RequestsPerMinute int           `json:"requestsPerMinute" yaml:"requestsPerMinute"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// PMTilesConfig defines the offline walking router
type PMTilesConfig struct {
	// PMTiles source URL (local file path, HTTP URL, or GCS URL)
	Source string `json:"source" yaml:"source"`

	// Road layer name in the MVT tiles
	RoadLayer string `json:"roadLayer" yaml:"roadLayer"`

	// Zoom level for tile queries
	ZoomLevel int `json:"zoomLevel" yaml:"zoomLevel"`

	// Speed used to turn walking distance into duration
	WalkingSpeedKmh float64 `json:"walkingSpeedKmh" yaml:"walkingSpeedKmh"`

	// Speed used for the driving profile when the tiles carry no speed data
	DrivingSpeedKmh float64 `json:"drivingSpeedKmh" yaml:"drivingSpeedKmh"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills the monitoring sections with the values the client ships with.
func (c *Config) applyDefaults() {
	if c.Location == nil {
		c.Location = &LocationConfig{}
	}
	if c.Location.Samples <= 0 {
		c.Location.Samples = 5
	}
	if c.Location.SampleInterval <= 0 {
		c.Location.SampleInterval = 600 * time.Millisecond
	}
	if c.Location.RequestTimeout <= 0 {
		c.Location.RequestTimeout = 10 * time.Second
	}
	if c.Location.CacheMaxAge <= 0 {
		c.Location.CacheMaxAge = 5 * time.Minute
	}

	if c.Proximity == nil {
		c.Proximity = &ProximityConfig{}
	}
	if c.Proximity.RadiusMeters <= 0 {
		c.Proximity.RadiusMeters = 30
	}
	if c.Proximity.Interval <= 0 {
		c.Proximity.Interval = 10 * time.Second
	}
	if c.Proximity.Cooldown <= 0 {
		c.Proximity.Cooldown = 5 * time.Minute
	}

	if c.Reminder == nil {
		c.Reminder = &ReminderConfig{}
	}
	if c.Reminder.RadiusMeters <= 0 {
		c.Reminder.RadiusMeters = 5000
	}
	if c.Reminder.Interval <= 0 {
		c.Reminder.Interval = 30 * time.Second
	}
	if c.Reminder.RefreshInterval <= 0 {
		c.Reminder.RefreshInterval = 2 * c.Reminder.Interval
	}
	if c.Reminder.Cooldown <= 0 {
		c.Reminder.Cooldown = 24 * time.Hour
	}
	if c.Reminder.NotificationTTL <= 0 {
		c.Reminder.NotificationTTL = 10 * time.Second
	}

	if c.Search == nil {
		c.Search = &SearchConfig{}
	}
	if c.Search.HistorySize <= 0 {
		c.Search.HistorySize = 5
	}
	if c.Search.RecentlyViewedSize <= 0 {
		c.Search.RecentlyViewedSize = 10
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
