package postgres

import (
	"context"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindFavoritesByUser returns the favorites of a user with product and store display fields.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteProduct, error) {
	var favoriteModels []*model.FavoriteModel
	err := repo.db.WithContext(ctx).
		Preload("Product.Store").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.FavoriteProduct, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// CreateFavorites inserts favorites in one statement.
func (repo *favoriteRepository) CreateFavorites(ctx context.Context, favorites []*entity.FavoriteProduct) error {
	if len(favorites) == 0 {
		return nil
	}

	favoriteModels := make([]*model.FavoriteModel, 0, len(favorites))
	for _, f := range favorites {
		favoriteModels = append(favoriteModels, fromFavoriteDomain(f))
	}

	if err := repo.db.WithContext(ctx).Omit("Product").Create(&favoriteModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("favorite references an unknown product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorites")
	}

	return nil
}

// ReplaceFavorites makes favorites the complete favorite set of the user.
func (repo *favoriteRepository) ReplaceFavorites(ctx context.Context, userID uuid.UUID, favorites []*entity.FavoriteProduct) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.FavoriteModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete favorites")
		}

		return NewFavoriteRepository(tx).CreateFavorites(ctx, favorites)
	})
}

// DeleteFavorite removes a product from the user's favorites.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// DeleteFavoritesByUser removes every favorite of the user.
func (repo *favoriteRepository) DeleteFavoritesByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.FavoriteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete favorites by user")
	}

	return nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel with its preloaded product to a domain FavoriteProduct.
func toFavoriteDomain(data *model.FavoriteModel) *entity.FavoriteProduct {
	if data == nil {
		return nil
	}

	userID := data.UserID
	favorite := &entity.FavoriteProduct{
		ID:        data.ID,
		UserID:    &userID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}

	if p := data.Product; p != nil {
		favorite.StoreID = p.StoreID
		favorite.ProductName = p.Name
		favorite.Price = p.Price
		favorite.ImageURL = p.ImageURL
		favorite.Currency = p.Currency
		favorite.CurrencySymbol = p.CurrencySymbol
		if p.Store != nil {
			favorite.StoreName = p.Store.StoreName
		}
	}
	favorite.ApplyCurrencyDefaults()

	return favorite
}

// fromFavoriteDomain converts a domain FavoriteProduct to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.FavoriteProduct) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	favoriteM := &model.FavoriteModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
	if data.UserID != nil {
		favoriteM.UserID = *data.UserID
	}

	return favoriteM
}
