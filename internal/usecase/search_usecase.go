package usecase

import (
	"context"

	"shopradar/internal/domain/entity"
)

// SearchInput is a product search. Nil filters fall back to the saved preferences.
type SearchInput struct {
	Query           string   `json:"query" query:"q" validate:"max=200"`
	ProximityMeters *float64 `json:"proximity_meters,omitempty" query:"proximity" validate:"omitempty,gt=0"`
	MinPrice        *float64 `json:"min_price,omitempty" query:"min_price" validate:"omitempty,gte=0"`
	MaxPrice        *float64 `json:"max_price,omitempty" query:"max_price" validate:"omitempty,gte=0"`
}

// SearchResult is the outcome of a product search.
type SearchResult struct {
	Results           []*entity.ProductResult `json:"results"`
	LocationAvailable bool                    `json:"location_available"`
	// Reminder is set when a failed search was saved as a reminder.
	Reminder *entity.ProductReminder `json:"reminder,omitempty"`
}

// SearchUsecase searches products and keeps the search history.
type SearchUsecase interface {
	Search(ctx context.Context, input *SearchInput) (*SearchResult, error)
	RecentSearches(ctx context.Context) ([]string, error)
	ClearSearchHistory(ctx context.Context) error
}
