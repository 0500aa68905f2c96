package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/crave-wave/cravewave/internal/constants"
	"github.com/crave-wave/cravewave/internal/models"
	"github.com/crave-wave/cravewave/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T, name string) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Chef{}, &models.Restaurant{}, &models.HomeMadeFood{}, &models.RestaurantFood{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewCartService(repository.NewCartRepository(db), repository.NewFoodRepository(db))
	return svc, db
}

func seedHomeMadeFood(t *testing.T, db *gorm.DB, name string, price int64, available bool) *models.HomeMadeFood {
	t.Helper()
	chef := &models.Chef{ChefName: "Asha", City: "Pune"}
	if err := db.Create(chef).Error; err != nil {
		t.Fatalf("create chef failed: %v", err)
	}
	food := &models.HomeMadeFood{
		ChefID:    chef.ID,
		FoodName:  name,
		Category:  constants.FoodCategoryMeals,
		Price:     models.NewMoneyFromInt(price),
		Available: available,
	}
	if err := db.Create(food).Error; err != nil {
		t.Fatalf("create food failed: %v", err)
	}
	if !available {
		if err := db.Model(food).Update("available", false).Error; err != nil {
			t.Fatalf("mark unavailable failed: %v", err)
		}
	}
	return food
}

func TestAddOrIncrementMergesRepeatedAdds(t *testing.T) {
	svc, db := setupCartServiceTest(t, "merge")
	food := seedHomeMadeFood(t, db, "Masala Dosa", 150, true)

	input := AddCartItemInput{UserID: 1, FoodSource: constants.FoodSourceHomeMade, FoodID: food.ID}
	first, err := svc.AddOrIncrement(input)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if first.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", first.Quantity)
	}

	second, err := svc.AddOrIncrement(input)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("repeated add must merge into the same line, got ids %d and %d", first.ID, second.ID)
	}
	if second.Quantity != 2 {
		t.Fatalf("expected quantity 2 after merge, got %d", second.Quantity)
	}

	view, err := svc.ListEnriched(1)
	if err != nil {
		t.Fatalf("list enriched failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(view.Items))
	}
}

func TestAddOrIncrementRejectsUnavailableFood(t *testing.T) {
	svc, db := setupCartServiceTest(t, "unavailable")
	food := seedHomeMadeFood(t, db, "Paneer Tikka", 220, false)

	_, err := svc.AddOrIncrement(AddCartItemInput{UserID: 1, FoodSource: constants.FoodSourceHomeMade, FoodID: food.ID})
	if !errors.Is(err, ErrFoodNotAvailable) {
		t.Fatalf("expected ErrFoodNotAvailable, got %v", err)
	}

	_, err = svc.AddOrIncrement(AddCartItemInput{UserID: 1, FoodSource: constants.FoodSourceHomeMade, FoodID: 9999})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing dish, got %v", err)
	}
}

func TestSetQuantityRejectsBelowOne(t *testing.T) {
	svc, db := setupCartServiceTest(t, "setqty")
	food := seedHomeMadeFood(t, db, "Thali", 250, true)

	line, err := svc.AddOrIncrement(AddCartItemInput{UserID: 1, FoodSource: constants.FoodSourceHomeMade, FoodID: food.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	for _, quantity := range []int{0, -1, -100} {
		if _, err := svc.SetQuantity(1, line.ID, quantity); !errors.Is(err, ErrQuantityInvalid) {
			t.Fatalf("quantity %d should be rejected, got %v", quantity, err)
		}
	}

	updated, err := svc.SetQuantity(1, line.ID, 5)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if updated.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", updated.Quantity)
	}

	// rejected updates must not have touched the stored line
	view, err := svc.ListEnriched(1)
	if err != nil {
		t.Fatalf("list enriched failed: %v", err)
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("stored quantity drifted: %d", view.Items[0].Quantity)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc, db := setupCartServiceTest(t, "remove")
	food := seedHomeMadeFood(t, db, "Gulab Jamun", 90, true)

	line, err := svc.AddOrIncrement(AddCartItemInput{UserID: 1, FoodSource: constants.FoodSourceHomeMade, FoodID: food.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.Remove(1, line.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.Remove(1, line.ID); err != nil {
		t.Fatalf("second remove must be a no-op, got %v", err)
	}

	view, err := svc.ListEnriched(1)
	if err != nil {
		t.Fatalf("list enriched failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(view.Items))
	}
}

func TestListEnrichedSubtotalIsAdditive(t *testing.T) {
	svc, db := setupCartServiceTest(t, "subtotal")
	dosa := seedHomeMadeFood(t, db, "Masala Dosa", 150, true)

	restaurant := &models.Restaurant{HotelName: "Spice Route", City: "Mumbai"}
	if err := db.Create(restaurant).Error; err != nil {
		t.Fatalf("create restaurant failed: %v", err)
	}
	biryani := &models.RestaurantFood{
		RestaurantID: restaurant.ID,
		FoodName:     "Biryani",
		Category:     constants.FoodCategoryMeals,
		Price:        models.NewMoneyFromInt(100),
		Available:    true,
	}
	if err := db.Create(biryani).Error; err != nil {
		t.Fatalf("create biryani failed: %v", err)
	}

	if _, err := svc.AddOrIncrement(AddCartItemInput{UserID: 1, FoodSource: constants.FoodSourceHomeMade, FoodID: dosa.ID}); err != nil {
		t.Fatalf("add dosa failed: %v", err)
	}
	line, err := svc.AddOrIncrement(AddCartItemInput{UserID: 1, FoodSource: constants.FoodSourceRestaurantMade, FoodID: biryani.ID})
	if err != nil {
		t.Fatalf("add biryani failed: %v", err)
	}
	if _, err := svc.SetQuantity(1, line.ID, 2); err != nil {
		t.Fatalf("set biryani quantity failed: %v", err)
	}

	view, err := svc.ListEnriched(1)
	if err != nil {
		t.Fatalf("list enriched failed: %v", err)
	}
	// 150*1 + 100*2
	want := models.NewMoneyFromInt(350)
	if !view.Subtotal.Equal(want.Decimal) {
		t.Fatalf("expected subtotal %s, got %s", want, view.Subtotal)
	}
	sum := models.NewMoneyFromInt(0)
	for _, item := range view.Items {
		sum = models.NewMoneyFromDecimal(sum.Add(item.Subtotal.Decimal))
	}
	if !sum.Equal(view.Subtotal.Decimal) {
		t.Fatalf("line subtotals %s do not add up to %s", sum, view.Subtotal)
	}
}

func TestListEnrichedDropsOrphanedLines(t *testing.T) {
	svc, db := setupCartServiceTest(t, "orphans")
	food := seedHomeMadeFood(t, db, "Chole Bhature", 180, true)

	if _, err := svc.AddOrIncrement(AddCartItemInput{UserID: 1, FoodSource: constants.FoodSourceHomeMade, FoodID: food.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	// dish disappears from the catalog after it was carted
	if err := db.Delete(&models.HomeMadeFood{}, food.ID).Error; err != nil {
		t.Fatalf("delete food failed: %v", err)
	}

	view, err := svc.ListEnriched(1)
	if err != nil {
		t.Fatalf("list enriched failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("orphaned line should be dropped, got %d lines", len(view.Items))
	}
	if !view.Subtotal.IsZero() {
		t.Fatalf("expected zero subtotal, got %s", view.Subtotal)
	}

	// the orphan row itself must be gone from storage too
	items, err := repository.NewCartRepository(db).ListByUser(1)
	if err != nil {
		t.Fatalf("list raw cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("orphan row should be deleted, got %d rows", len(items))
	}
}
