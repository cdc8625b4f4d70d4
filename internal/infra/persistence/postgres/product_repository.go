package postgres

import (
	"context"
	"strings"

	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/repository"
	"shopradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// SearchProducts returns active products of active, located stores matching the filter.
func (repo *productRepository) SearchProducts(ctx context.Context, filter repository.ProductSearchFilter) ([]*entity.ProductResult, error) {
	query := repo.db.WithContext(ctx).
		Joins("Store").
		Where("products.is_active = ?", true).
		Where(`"Store".is_active = ? AND "Store".latitude IS NOT NULL AND "Store".longitude IS NOT NULL`, true)

	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("products.name ILIKE ?", containsPattern(q))
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}

	var productModels []*model.ProductModel
	if err := query.Order("products.name ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	results := make([]*entity.ProductResult, 0, len(productModels))
	for _, productM := range productModels {
		if productM.Store == nil {
			continue
		}
		results = append(results, &entity.ProductResult{
			Product: *toProductDomain(productM),
			Store:   *toStoreDomain(productM.Store),
		})
	}

	return results, nil
}

// FindAvailableForReminders returns in-stock active products matching any term or product ID.
func (repo *productRepository) FindAvailableForReminders(ctx context.Context, terms []string, productIDs []uuid.UUID) ([]*entity.ProductAvailability, error) {
	if len(terms) == 0 && len(productIDs) == 0 {
		return []*entity.ProductAvailability{}, nil
	}

	match := repo.db.Session(&gorm.Session{NewDB: true})
	for i, term := range terms {
		if i == 0 {
			match = match.Where("products.name ILIKE ?", containsPattern(term))

			continue
		}
		match = match.Or("products.name ILIKE ?", containsPattern(term))
	}
	if len(productIDs) > 0 {
		if len(terms) == 0 {
			match = match.Where("products.id IN ?", productIDs)
		} else {
			match = match.Or("products.id IN ?", productIDs)
		}
	}

	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Joins("Store").
		Where("products.is_active = ? AND products.stock_quantity > 0", true).
		Where(match).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products for reminders")
	}

	out := make([]*entity.ProductAvailability, 0, len(productModels))
	for _, productM := range productModels {
		availability := &entity.ProductAvailability{
			ProductID:   productM.ID,
			ProductName: productM.Name,
			StoreID:     productM.StoreID,
		}
		if productM.Store != nil {
			availability.StoreName = productM.Store.StoreName
			availability.StoreLat = productM.Store.Latitude
			availability.StoreLng = productM.Store.Longitude
		}
		out = append(out, availability)
	}

	return out, nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + replacer.Replace(s) + "%"
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		StoreID:        data.StoreID,
		Name:           data.Name,
		Price:          data.Price,
		StockQuantity:  data.StockQuantity,
		IsActive:       data.IsActive,
		ImageURL:       data.ImageURL,
		Currency:       data.Currency,
		CurrencySymbol: data.CurrencySymbol,
		Barcode:        data.Barcode,
		CreatedAt:      data.CreatedAt,
	}
}
