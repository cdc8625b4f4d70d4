// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Position providers
const (
	LocationProviderBridge = "bridge"
	LocationProviderStatic = "static"
)

// Directions providers
const (
	DirectionsProviderMapbox  = "mapbox"
	DirectionsProviderPMTiles = "pmtiles"
)

// Local store drivers
const (
	LocalStoreDriverBlob  = "blob"
	LocalStoreDriverRedis = "redis"
)

// Device-local storage keys
const (
	LocalKeyLocationCache   = "high_precision_user_location"
	LocalKeyGuestFavorites  = "guest_favorites"
	LocalKeyGuestReminders  = "guest_product_reminders"
	LocalKeyPreferences     = "preferences"
	LocalKeySearchHistory   = "recent_search_terms"
	LocalKeyRecentlyViewed  = "recently_viewed_store_ids"
	LocalKeyDevicePushToken = "device_push_token"
)

// Event types published to the message queue
const (
	EventTypeStoreDetected   = "store.detected"
	EventTypeReminderMatched = "reminder.matched"
)
