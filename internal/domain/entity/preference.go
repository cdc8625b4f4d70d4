package entity

// Preferences are the per-user (or per-device for guests) settings.
type Preferences struct {
	AutoOpenNearbyStores  bool     `json:"auto_open_nearby_stores"`
	NotifyFailedSearches  bool     `json:"notify_failed_searches"`
	SearchProximityMeters *float64 `json:"search_proximity,omitempty"`
	PriceMin              *float64 `json:"price_min,omitempty"`
	PriceMax              *float64 `json:"price_max,omitempty"`
}

// DefaultPreferences returns the settings of a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		AutoOpenNearbyStores: true,
		NotifyFailedSearches: true,
	}
}

// PreferencePatch is a partial update; nil fields are left untouched.
type PreferencePatch struct {
	AutoOpenNearbyStores  *bool    `json:"auto_open_nearby_stores,omitempty"`
	NotifyFailedSearches  *bool    `json:"notify_failed_searches,omitempty"`
	SearchProximityMeters *float64 `json:"search_proximity,omitempty"`
	PriceMin              *float64 `json:"price_min,omitempty"`
	PriceMax              *float64 `json:"price_max,omitempty"`
}

// Apply returns p with the patch applied.
func (patch PreferencePatch) Apply(p Preferences) Preferences {
	if patch.AutoOpenNearbyStores != nil {
		p.AutoOpenNearbyStores = *patch.AutoOpenNearbyStores
	}
	if patch.NotifyFailedSearches != nil {
		p.NotifyFailedSearches = *patch.NotifyFailedSearches
	}
	if patch.SearchProximityMeters != nil {
		p.SearchProximityMeters = patch.SearchProximityMeters
	}
	if patch.PriceMin != nil {
		p.PriceMin = patch.PriceMin
	}
	if patch.PriceMax != nil {
		p.PriceMax = patch.PriceMax
	}

	return p
}
