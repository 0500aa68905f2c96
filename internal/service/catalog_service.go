package service

import (
	"strings"

	"github.com/crave-wave/cravewave/internal/constants"
	"github.com/crave-wave/cravewave/internal/models"
	"github.com/crave-wave/cravewave/internal/repository"
)

// CatalogListInput catalog browsing filters
type CatalogListInput struct {
	Category string
	Search   string
	Page     int
	PageSize int
}

// CatalogPage one page of catalog listings
type CatalogPage struct {
	Items    []models.FoodListing `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// CatalogService read-only catalog browsing over both food sources
type CatalogService struct {
	foodRepo repository.FoodRepository
}

// NewCatalogService creates the catalog service
func NewCatalogService(foodRepo repository.FoodRepository) *CatalogService {
	return &CatalogService{foodRepo: foodRepo}
}

func normalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	switch category {
	case constants.FoodCategoryMeals, constants.FoodCategorySnacks, constants.FoodCategoryDesserts:
		return category
	}
	return constants.FoodCategoryAll
}

// ListHomeMade lists available home-made dishes with chef profiles
func (s *CatalogService) ListHomeMade(input CatalogListInput) (*CatalogPage, error) {
	filter := repository.FoodListFilter{
		Page:          input.Page,
		PageSize:      input.PageSize,
		Category:      normalizeCategory(input.Category),
		Search:        input.Search,
		OnlyAvailable: true,
		WithOwner:     true,
	}
	foods, total, err := s.foodRepo.ListHomeMade(filter)
	if err != nil {
		return nil, err
	}
	page := &CatalogPage{Total: total, Page: input.Page, PageSize: input.PageSize}
	page.Items = make([]models.FoodListing, 0, len(foods))
	for i := range foods {
		page.Items = append(page.Items, models.FoodListing{
			Source:   constants.FoodSourceHomeMade,
			HomeMade: &foods[i],
		})
	}
	return page, nil
}

// ListRestaurant lists available restaurant dishes
func (s *CatalogService) ListRestaurant(input CatalogListInput) (*CatalogPage, error) {
	filter := repository.FoodListFilter{
		Page:          input.Page,
		PageSize:      input.PageSize,
		Category:      normalizeCategory(input.Category),
		Search:        input.Search,
		OnlyAvailable: true,
		WithOwner:     true,
	}
	foods, total, err := s.foodRepo.ListRestaurant(filter)
	if err != nil {
		return nil, err
	}
	page := &CatalogPage{Total: total, Page: input.Page, PageSize: input.PageSize}
	page.Items = make([]models.FoodListing, 0, len(foods))
	for i := range foods {
		page.Items = append(page.Items, models.FoodListing{
			Source:     constants.FoodSourceRestaurantMade,
			Restaurant: &foods[i],
		})
	}
	return page, nil
}

// GetListing fetches a single catalog entry by source and id
func (s *CatalogService) GetListing(foodSource string, foodID uint) (*models.FoodListing, error) {
	if foodID == 0 {
		return nil, ErrInvalidInput
	}
	listing, err := s.foodRepo.GetListing(foodSource, foodID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotFound
	}
	return listing, nil
}
