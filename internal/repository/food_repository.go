package repository

import (
	"errors"
	"strings"

	"github.com/crave-wave/cravewave/internal/constants"
	"github.com/crave-wave/cravewave/internal/models"

	"gorm.io/gorm"
)

// ErrUnknownFoodSource returned for a food source tag outside the two catalogs
var ErrUnknownFoodSource = errors.New("unknown food source")

// FoodRepository catalog data access interface covering both food sources
type FoodRepository interface {
	ListHomeMade(filter FoodListFilter) ([]models.HomeMadeFood, int64, error)
	ListRestaurant(filter FoodListFilter) ([]models.RestaurantFood, int64, error)
	GetListing(foodSource string, foodID uint) (*models.FoodListing, error)
	GetListings(refs []FoodRef) (map[FoodRef]*models.FoodListing, error)
	WithTx(tx *gorm.DB) *GormFoodRepository
}

// FoodRef identifies a catalog row across the two sources
type FoodRef struct {
	Source string
	ID     uint
}

// GormFoodRepository GORM implementation
type GormFoodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates the catalog repository
func NewFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// WithTx binds a transaction
func (r *GormFoodRepository) WithTx(tx *gorm.DB) *GormFoodRepository {
	if tx == nil {
		return r
	}
	return &GormFoodRepository{db: tx}
}

// ListHomeMade lists home-made dishes
func (r *GormFoodRepository) ListHomeMade(filter FoodListFilter) ([]models.HomeMadeFood, int64, error) {
	var foods []models.HomeMadeFood

	query := r.db.Model(&models.HomeMadeFood{})
	if filter.WithOwner {
		query = query.Preload("Chef")
	}
	query = applyFoodFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at DESC").Find(&foods).Error; err != nil {
		return nil, 0, err
	}
	return foods, total, nil
}

// ListRestaurant lists restaurant dishes
func (r *GormFoodRepository) ListRestaurant(filter FoodListFilter) ([]models.RestaurantFood, int64, error) {
	var foods []models.RestaurantFood

	query := r.db.Model(&models.RestaurantFood{})
	if filter.WithOwner {
		query = query.Preload("Restaurant")
	}
	query = applyFoodFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at DESC").Find(&foods).Error; err != nil {
		return nil, 0, err
	}
	return foods, total, nil
}

func applyFoodFilter(query *gorm.DB, filter FoodListFilter) *gorm.DB {
	if filter.OnlyAvailable {
		query = query.Where("available = ?", true)
	}
	if category := strings.TrimSpace(filter.Category); category != "" && category != constants.FoodCategoryAll {
		query = query.Where("category = ?", category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("food_name LIKE ? OR description LIKE ?", like, like)
	}
	return query
}

// GetListing resolves one catalog row into a tagged listing. A missing row
// returns (nil, nil).
func (r *GormFoodRepository) GetListing(foodSource string, foodID uint) (*models.FoodListing, error) {
	switch foodSource {
	case constants.FoodSourceHomeMade:
		var food models.HomeMadeFood
		if err := r.db.Preload("Chef").First(&food, foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &models.FoodListing{Source: foodSource, HomeMade: &food}, nil
	case constants.FoodSourceRestaurantMade:
		var food models.RestaurantFood
		if err := r.db.Preload("Restaurant").First(&food, foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &models.FoodListing{Source: foodSource, Restaurant: &food}, nil
	default:
		return nil, ErrUnknownFoodSource
	}
}

// GetListings resolves a batch of catalog references in two queries.
// Missing rows are simply absent from the result map.
func (r *GormFoodRepository) GetListings(refs []FoodRef) (map[FoodRef]*models.FoodListing, error) {
	result := make(map[FoodRef]*models.FoodListing, len(refs))
	if len(refs) == 0 {
		return result, nil
	}

	var homeIDs, restaurantIDs []uint
	for _, ref := range refs {
		switch ref.Source {
		case constants.FoodSourceHomeMade:
			homeIDs = append(homeIDs, ref.ID)
		case constants.FoodSourceRestaurantMade:
			restaurantIDs = append(restaurantIDs, ref.ID)
		default:
			return nil, ErrUnknownFoodSource
		}
	}

	if len(homeIDs) > 0 {
		var foods []models.HomeMadeFood
		if err := r.db.Preload("Chef").Where("id IN ?", homeIDs).Find(&foods).Error; err != nil {
			return nil, err
		}
		for i := range foods {
			ref := FoodRef{Source: constants.FoodSourceHomeMade, ID: foods[i].ID}
			result[ref] = &models.FoodListing{Source: ref.Source, HomeMade: &foods[i]}
		}
	}
	if len(restaurantIDs) > 0 {
		var foods []models.RestaurantFood
		if err := r.db.Preload("Restaurant").Where("id IN ?", restaurantIDs).Find(&foods).Error; err != nil {
			return nil, err
		}
		for i := range foods {
			ref := FoodRef{Source: constants.FoodSourceRestaurantMade, ID: foods[i].ID}
			result[ref] = &models.FoodListing{Source: ref.Source, Restaurant: &foods[i]}
		}
	}
	return result, nil
}
