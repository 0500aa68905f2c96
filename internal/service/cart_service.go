package service

import (
	"errors"

	"github.com/crave-wave/cravewave/internal/models"
	"github.com/crave-wave/cravewave/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddCartItemInput input for adding a dish to the cart
type AddCartItemInput struct {
	UserID     uint
	FoodSource string
	FoodID     uint
}

// CartView enriched cart with its subtotal
type CartView struct {
	Items    []models.EnrichedCartItem `json:"items"`
	Subtotal models.Money              `json:"subtotal"`
}

// CartService cart operations scoped to a single owner
type CartService struct {
	cartRepo repository.CartRepository
	foodRepo repository.FoodRepository
}

// NewCartService creates the cart service
func NewCartService(cartRepo repository.CartRepository, foodRepo repository.FoodRepository) *CartService {
	return &CartService{cartRepo: cartRepo, foodRepo: foodRepo}
}

// AddOrIncrement adds a dish to the cart, or bumps quantity by one when the
// same dish is already present. Returns the resulting line.
func (s *CartService) AddOrIncrement(input AddCartItemInput) (*models.CartItem, error) {
	if input.UserID == 0 || input.FoodID == 0 {
		return nil, ErrInvalidInput
	}
	listing, err := s.foodRepo.GetListing(input.FoodSource, input.FoodID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotFound
	}
	if !listing.IsAvailable() {
		return nil, ErrFoodNotAvailable
	}

	existing, err := s.cartRepo.GetByUserAndFood(input.UserID, input.FoodSource, input.FoodID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		if err := s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+1); err != nil {
			return nil, err
		}
		return s.cartRepo.GetByIDAndUser(existing.ID, input.UserID)
	}

	item := &models.CartItem{
		UserID:     input.UserID,
		FoodSource: input.FoodSource,
		FoodID:     input.FoodID,
		Quantity:   1,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetQuantity sets the absolute quantity of a cart line owned by the user.
// Returns the updated line.
func (s *CartService) SetQuantity(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if userID == 0 || itemID == 0 {
		return nil, ErrInvalidInput
	}
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}
	item, err := s.cartRepo.GetByIDAndUser(itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.cartRepo.UpdateQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

// Remove deletes a cart line owned by the user. Removing an already absent
// line is a no-op.
func (s *CartService) Remove(userID, itemID uint) error {
	if userID == 0 || itemID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.DeleteByIDAndUser(itemID, userID)
}

// ListEnriched joins cart lines with their live catalog listings and sums a
// subtotal with current prices. Lines whose listing has disappeared are
// dropped from the cart as a side effect.
func (s *CartService) ListEnriched(userID uint) (*CartView, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	refs := make([]repository.FoodRef, 0, len(items))
	for _, item := range items {
		refs = append(refs, repository.FoodRef{Source: item.FoodSource, ID: item.FoodID})
	}
	listings, err := s.foodRepo.GetListings(refs)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]models.EnrichedCartItem, 0, len(items))}
	subtotal := decimal.Zero
	for _, item := range items {
		listing := listings[repository.FoodRef{Source: item.FoodSource, ID: item.FoodID}]
		if listing == nil {
			_ = s.cartRepo.DeleteByIDAndUser(item.ID, userID)
			continue
		}
		price := listing.Price()
		lineTotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)

		enriched := models.EnrichedCartItem{
			CartItem: item,
			FoodName: listing.FoodName(),
			Price:    price,
			Subtotal: models.NewMoneyFromDecimal(lineTotal),
		}
		if listing.HomeMade != nil {
			enriched.FoodImageURL = listing.HomeMade.FoodImageURL
		} else if listing.Restaurant != nil {
			enriched.FoodImageURL = listing.Restaurant.FoodImageURL
		}
		view.Items = append(view.Items, enriched)
	}
	view.Subtotal = models.NewMoneyFromDecimal(subtotal)
	return view, nil
}

// Clear empties the user's cart
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.ClearByUser(userID)
}
