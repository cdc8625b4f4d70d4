package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"shopradar/config"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/repository"
	"shopradar/internal/geo"
	"shopradar/internal/usecase"
	"shopradar/internal/util"
)

type searchService struct {
	productRepo repository.ProductRepository
	location    usecase.LocationUsecase
	persistence usecase.PersistenceUsecase
	reminders   usecase.ReminderUsecase
	local       repository.LocalStore
	config      *config.SearchConfig
	logger      *slog.Logger
}

// NewSearchService creates the product search service.
func NewSearchService(
	productRepo repository.ProductRepository,
	location usecase.LocationUsecase,
	persistence usecase.PersistenceUsecase,
	reminders usecase.ReminderUsecase,
	local repository.LocalStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	return &searchService{
		productRepo: productRepo,
		location:    location,
		persistence: persistence,
		reminders:   reminders,
		local:       local,
		config:      cfg.Search,
		logger:      logger,
	}
}

// Search finds active products by name. With a location fix results carry distances,
// are filtered by the proximity limit and sorted nearest first; otherwise they are
// sorted by name. A failed search with a fix is saved as a reminder.
func (s *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchResult, error) {
	query := strings.TrimSpace(input.Query)

	prefs, err := s.persistence.LoadPreferences(ctx)
	if err != nil {
		s.logger.Warn("Failed to load search filter preferences", slog.Any("error", err))
		defaults := entity.DefaultPreferences()
		prefs = &defaults
	}

	proximity := firstNonNil(input.ProximityMeters, prefs.SearchProximityMeters)
	filter := repository.ProductSearchFilter{
		Query:    query,
		MinPrice: firstNonNil(input.MinPrice, prefs.PriceMin),
		MaxPrice: firstNonNil(input.MaxPrice, prefs.PriceMax),
	}

	results, err := s.productRepo.SearchProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	fix, locErr := s.location.GetLocation(ctx, false)
	if locErr != nil {
		s.logger.Debug("Searching without location", slog.Any("error", locErr))
		fix = nil
	}

	if fix != nil {
		results = withDistances(results, fix, proximity)
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return strings.ToLower(results[i].Product.Name) < strings.ToLower(results[j].Product.Name)
		})
	}

	if query != "" {
		s.recordSearch(ctx, query)
	}

	out := &usecase.SearchResult{
		Results:           results,
		LocationAvailable: fix != nil,
	}

	if len(results) == 0 && query != "" && fix != nil {
		reminder, created, err := s.reminders.Create(ctx, &usecase.CreateReminderInput{SearchTerm: query})
		if err != nil {
			s.logger.Error("Failed to save failed search as reminder",
				slog.String("search_term", query),
				slog.Any("error", err),
			)
		} else if created {
			out.Reminder = reminder
		}
	}

	return out, nil
}

// RecentSearches returns the search history, most recent first.
func (s *searchService) RecentSearches(ctx context.Context) ([]string, error) {
	var history []string
	if _, err := readLocalJSON(ctx, s.local, constants.LocalKeySearchHistory, &history); err != nil {
		return nil, err
	}
	if history == nil {
		history = []string{}
	}

	return history, nil
}

// ClearSearchHistory removes the search history.
func (s *searchService) ClearSearchHistory(ctx context.Context) error {
	return s.local.Delete(ctx, constants.LocalKeySearchHistory)
}

func (s *searchService) recordSearch(ctx context.Context, query string) {
	history, err := s.RecentSearches(ctx)
	if err != nil {
		s.logger.Warn("Resetting unreadable search history", slog.Any("error", err))
		history = nil
	}

	history = util.MoveToFront(history, query, s.config.HistorySize, strings.EqualFold)
	if err := writeLocalJSON(ctx, s.local, constants.LocalKeySearchHistory, history); err != nil {
		s.logger.Warn("Failed to save search history", slog.Any("error", err))
	}
}

func withDistances(results []*entity.ProductResult, fix *entity.LocationFix, proximity *float64) []*entity.ProductResult {
	kept := make([]*entity.ProductResult, 0, len(results))
	for _, r := range results {
		if r.Store.Lat == nil || r.Store.Lng == nil {
			continue
		}

		distance := geo.DistanceMeters(fix.Lat, fix.Lng, *r.Store.Lat, *r.Store.Lng)
		if proximity != nil && distance > *proximity {
			continue
		}

		r.DistanceMeters = &distance
		r.FormattedDistance = geo.FormatDistance(distance)
		kept = append(kept, r)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return *kept[i].DistanceMeters < *kept[j].DistanceMeters
	})

	return kept
}

func firstNonNil[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}
