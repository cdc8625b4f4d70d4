package localstore

import (
	"context"
	"slices"
	"sync"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/repository"

	"github.com/google/uuid"
)

// guestFavoriteStore keeps guest favorites as one JSON list in the local store.
type guestFavoriteStore struct {
	local repository.LocalStore
	mu    sync.Mutex
}

// NewGuestFavoriteStore creates the favorite collection of the signed-out device.
func NewGuestFavoriteStore(local repository.LocalStore) repository.FavoriteStore {
	return &guestFavoriteStore{local: local}
}

func (s *guestFavoriteStore) LoadFavorites(ctx context.Context) ([]*entity.FavoriteProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadList[entity.FavoriteProduct](ctx, s.local, constants.LocalKeyGuestFavorites)
}

func (s *guestFavoriteStore) SaveFavorites(ctx context.Context, favorites []*entity.FavoriteProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return saveList(ctx, s.local, constants.LocalKeyGuestFavorites, favorites)
}

func (s *guestFavoriteStore) AddFavorite(ctx context.Context, favorite *entity.FavoriteProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := loadList[entity.FavoriteProduct](ctx, s.local, constants.LocalKeyGuestFavorites)
	if err != nil {
		return err
	}
	if slices.ContainsFunc(favorites, func(f *entity.FavoriteProduct) bool { return f.ProductID == favorite.ProductID }) {
		return repository.ErrDuplicateFavorite
	}

	return saveList(ctx, s.local, constants.LocalKeyGuestFavorites, append(favorites, favorite))
}

func (s *guestFavoriteStore) RemoveFavorite(ctx context.Context, productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := loadList[entity.FavoriteProduct](ctx, s.local, constants.LocalKeyGuestFavorites)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(favorites, func(f *entity.FavoriteProduct) bool { return f.ProductID == productID })
	if len(kept) == len(favorites) {
		return repository.ErrFavoriteNotFound
	}

	return saveList(ctx, s.local, constants.LocalKeyGuestFavorites, kept)
}

func (s *guestFavoriteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.local.Delete(ctx, constants.LocalKeyGuestFavorites)
}
