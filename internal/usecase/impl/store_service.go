package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"shopradar/config"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"
	"shopradar/internal/geo"
	"shopradar/internal/usecase"
	"shopradar/internal/util"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

type storeService struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	location    usecase.LocationUsecase
	qrCodes     service.QRCodeService
	local       repository.LocalStore
	clock       clock.Clock
	config      *config.SearchConfig
	logger      *slog.Logger
}

// NewStoreService creates the store service.
func NewStoreService(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	location usecase.LocationUsecase,
	qrCodes service.QRCodeService,
	local repository.LocalStore,
	clk clock.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		location:    location,
		qrCodes:     qrCodes,
		local:       local,
		clock:       clk,
		config:      cfg.Search,
		logger:      logger,
	}
}

// Nearby returns active stores, nearest first when a fix is available.
func (s *storeService) Nearby(ctx context.Context, limit int) ([]*entity.NearbyStore, error) {
	stores, err := s.storeRepo.FindActiveStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find active stores: %w", err)
	}

	fix := s.currentFix(ctx)
	nearby := make([]*entity.NearbyStore, 0, len(stores))
	for _, store := range stores {
		nearby = append(nearby, s.describe(store, fix))
	}

	if fix != nil {
		sort.SliceStable(nearby, func(i, j int) bool {
			return distanceOrMax(nearby[i]) < distanceOrMax(nearby[j])
		})
	} else {
		sort.SliceStable(nearby, func(i, j int) bool {
			return strings.ToLower(nearby[i].Name) < strings.ToLower(nearby[j].Name)
		})
	}

	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

// Get returns a store and moves it to the front of the recently viewed list.
func (s *storeService) Get(ctx context.Context, storeID uuid.UUID) (*entity.NearbyStore, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, fmt.Errorf("failed to find store: %w", err)
	}

	s.recordView(ctx, storeID)

	return s.describe(store, s.currentFix(ctx)), nil
}

// RecentlyViewed returns the recently viewed stores that still exist, most recent first.
func (s *storeService) RecentlyViewed(ctx context.Context) ([]*entity.NearbyStore, error) {
	ids, err := s.recentIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*entity.NearbyStore{}, nil
	}

	stores, err := s.storeRepo.FindStoresByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find stores: %w", err)
	}

	byID := make(map[uuid.UUID]*entity.Store, len(stores))
	for _, store := range stores {
		byID[store.ID] = store
	}

	fix := s.currentFix(ctx)
	out := make([]*entity.NearbyStore, 0, len(ids))
	for _, id := range ids {
		if store, ok := byID[id]; ok {
			out = append(out, s.describe(store, fix))
		}
	}

	return out, nil
}

// QRCode returns a deep-link QR code for a store, optionally focused on one of its products.
func (s *storeService) QRCode(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID) ([]byte, error) {
	if _, err := s.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, fmt.Errorf("failed to find store: %w", err)
	}

	if productID != nil {
		product, err := s.productRepo.FindProductByID(ctx, *productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrNotFound.WithDetails("product not found")
			}

			return nil, fmt.Errorf("failed to find product: %w", err)
		}
		if product.StoreID != storeID {
			return nil, domainerrors.ErrNotFound.WithDetails("product is not sold by this store")
		}
	}

	png, err := s.qrCodes.GenerateStoreQR(storeID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return png, nil
}

func (s *storeService) describe(store *entity.Store, fix *entity.LocationFix) *entity.NearbyStore {
	nearby := &entity.NearbyStore{
		Store:  *store,
		Status: util.StoreStatus(store.OpeningHours, s.clock.Now()),
	}

	if fix != nil && store.Lat != nil && store.Lng != nil {
		distance := geo.DistanceMeters(fix.Lat, fix.Lng, *store.Lat, *store.Lng)
		nearby.DistanceMeters = &distance
		nearby.FormattedDistance = geo.FormatDistance(distance)
	}

	return nearby
}

func (s *storeService) currentFix(ctx context.Context) *entity.LocationFix {
	fix, err := s.location.GetLocation(ctx, false)
	if err != nil {
		s.logger.Debug("Listing stores without location", slog.Any("error", err))

		return nil
	}

	return fix
}

func (s *storeService) recentIDs(ctx context.Context) ([]uuid.UUID, error) {
	var raw []string
	if _, err := readLocalJSON(ctx, s.local, constants.LocalKeyRecentlyViewed, &raw); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		id, err := uuid.Parse(v)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *storeService) recordView(ctx context.Context, storeID uuid.UUID) {
	var recent []string
	if _, err := readLocalJSON(ctx, s.local, constants.LocalKeyRecentlyViewed, &recent); err != nil {
		s.logger.Warn("Resetting unreadable recently viewed list", slog.Any("error", err))
		recent = nil
	}

	recent = util.MoveToFront(recent, storeID.String(), s.config.RecentlyViewedSize, func(a, b string) bool { return a == b })
	if err := writeLocalJSON(ctx, s.local, constants.LocalKeyRecentlyViewed, recent); err != nil {
		s.logger.Warn("Failed to save recently viewed stores", slog.Any("error", err))
	}
}

func distanceOrMax(s *entity.NearbyStore) float64 {
	if s.DistanceMeters == nil {
		return math.MaxFloat64
	}

	return *s.DistanceMeters
}
