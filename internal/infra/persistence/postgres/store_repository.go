// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/repository"
	"shopradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the domain.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindActiveStores returns every active store with coordinates in ID order.
// The proximity monitor prompts for the first qualifying store in this order.
func (repo *storeRepository) FindActiveStores(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel
	if err := repo.activeStores(ctx).Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active stores")
	}

	return toStoreDomains(storeModels), nil
}

func (repo *storeRepository) activeStores(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Where("is_active = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true).
		Order("id ASC")
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// FindStoresByIDs retrieves the stores with the given IDs.
func (repo *storeRepository) FindStoresByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error) {
	if len(ids) == 0 {
		return []*entity.Store{}, nil
	}

	var storeModels []*model.StoreModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by IDs")
	}

	return toStoreDomains(storeModels), nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	hours := make([]entity.OpeningHour, 0, len(data.OpeningHours))
	for _, h := range data.OpeningHours {
		hours = append(hours, entity.OpeningHour{Day: h.Day, Open: h.Open, Close: h.Close})
	}

	return &entity.Store{
		ID:           data.ID,
		Name:         data.StoreName,
		Address:      data.Address,
		Lat:          data.Latitude,
		Lng:          data.Longitude,
		IsActive:     data.IsActive,
		Phone:        data.PhoneNumber,
		OpeningHours: hours,
	}
}

func toStoreDomains(data []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(data))
	for _, storeM := range data {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores
}
