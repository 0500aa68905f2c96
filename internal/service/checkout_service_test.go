package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/crave-wave/cravewave/internal/constants"
	"github.com/crave-wave/cravewave/internal/models"
	"github.com/crave-wave/cravewave/internal/payment/razorpay"
	"github.com/crave-wave/cravewave/internal/queue"
	"github.com/crave-wave/cravewave/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type checkoutTestEnv struct {
	svc     *CheckoutService
	cartSvc *CartService
	db      *gorm.DB
	user    *models.User
}

func setupCheckoutTest(t *testing.T, name string, payCfg *razorpay.Config) *checkoutTestEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_service_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Chef{}, &models.Restaurant{},
		&models.HomeMadeFood{}, &models.RestaurantFood{},
		&models.CartItem{}, &models.Order{}, &models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	user := &models.User{
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
		FullName:     "Test User",
		Address:      "12 MG Road, Pune",
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	cartRepo := repository.NewCartRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	cartSvc := NewCartService(cartRepo, foodRepo)
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}
	svc := NewCheckoutService(cartRepo, foodRepo, orderRepo, userRepo, cartSvc, queueClient, payCfg)
	return &checkoutTestEnv{svc: svc, cartSvc: cartSvc, db: db, user: user}
}

func (env *checkoutTestEnv) addDish(t *testing.T, name string, price int64, quantity int) {
	t.Helper()
	chef := &models.Chef{ChefName: "Asha", City: "Pune"}
	if err := env.db.Create(chef).Error; err != nil {
		t.Fatalf("create chef failed: %v", err)
	}
	food := &models.HomeMadeFood{
		ChefID:    chef.ID,
		FoodName:  name,
		Category:  constants.FoodCategoryMeals,
		Price:     models.NewMoneyFromInt(price),
		Available: true,
	}
	if err := env.db.Create(food).Error; err != nil {
		t.Fatalf("create food failed: %v", err)
	}
	line, err := env.cartSvc.AddOrIncrement(AddCartItemInput{
		UserID:     env.user.ID,
		FoodSource: constants.FoodSourceHomeMade,
		FoodID:     food.ID,
	})
	if err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if quantity > 1 {
		if _, err := env.cartSvc.SetQuantity(env.user.ID, line.ID, quantity); err != nil {
			t.Fatalf("set quantity failed: %v", err)
		}
	}
}

var orderNoPattern = regexp.MustCompile(`^CW\d{13,}$`)

func TestCheckoutEndToEndInTestMode(t *testing.T) {
	env := setupCheckoutTest(t, "endtoend", &razorpay.Config{})
	// 150 + 125*2 = 400
	env.addDish(t, "Masala Dosa", 150, 1)
	env.addDish(t, "Vada Pav", 125, 2)

	session, err := env.svc.Begin(context.Background(), BeginCheckoutInput{UserID: env.user.ID})
	if err != nil {
		t.Fatalf("begin checkout failed: %v", err)
	}
	if session.State != constants.CheckoutStateAwaitingPayment {
		t.Fatalf("expected awaiting_payment, got %s", session.State)
	}
	if !orderNoPattern.MatchString(session.Reference) {
		t.Fatalf("session reference %q does not match expected shape", session.Reference)
	}
	if !session.TestMode {
		t.Fatalf("missing gateway key must put checkout in test mode")
	}
	if session.AmountPaise != 40000 {
		t.Fatalf("expected 40000 paise, got %d", session.AmountPaise)
	}
	if session.DeliveryAddress != "12 MG Road, Pune" {
		t.Fatalf("profile address not resolved: %q", session.DeliveryAddress)
	}

	order, err := env.svc.Confirm(context.Background(), ConfirmCheckoutInput{
		UserID:         env.user.ID,
		Reference:      session.Reference,
		GatewayOrderID: session.GatewayOrderID,
	})
	if err != nil {
		t.Fatalf("confirm checkout failed: %v", err)
	}

	if order.OrderNo != session.Reference {
		t.Fatalf("order number %q should carry the session reference %q", order.OrderNo, session.Reference)
	}
	if !orderNoPattern.MatchString(order.OrderNo) {
		t.Fatalf("order number %q does not match expected shape", order.OrderNo)
	}
	if !order.TotalAmount.Equal(models.NewMoneyFromInt(400).Decimal) {
		t.Fatalf("expected total 400, got %s", order.TotalAmount)
	}
	if order.OrderStatus != constants.OrderStatusPlaced || order.PaymentStatus != constants.PaymentStatusCompleted {
		t.Fatalf("unexpected statuses: %s / %s", order.OrderStatus, order.PaymentStatus)
	}
	if !strings.HasPrefix(order.PaymentReference, "test_payment_") {
		t.Fatalf("expected synthetic payment reference, got %q", order.PaymentReference)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 snapshot items, got %d", len(order.Items))
	}
	for _, item := range order.Items {
		if item.FoodName == "" || item.UnitPrice.IsZero() {
			t.Fatalf("snapshot item missing name or price: %+v", item)
		}
	}

	// the cart must be emptied by the same commit
	view, err := env.cartSvc.ListEnriched(env.user.ID)
	if err != nil {
		t.Fatalf("list cart after checkout failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d lines", len(view.Items))
	}

	// order price snapshots must survive a later catalog price change
	if err := env.db.Model(&models.HomeMadeFood{}).Where("food_name = ?", "Masala Dosa").
		Update("price", models.NewMoneyFromInt(999)).Error; err != nil {
		t.Fatalf("update catalog price failed: %v", err)
	}
	stored, err := repository.NewOrderRepository(env.db).GetByIDAndUser(order.ID, env.user.ID)
	if err != nil || stored == nil {
		t.Fatalf("reload order failed: %v", err)
	}
	for _, item := range stored.Items {
		if item.FoodName == "Masala Dosa" && !item.UnitPrice.Equal(models.NewMoneyFromInt(150).Decimal) {
			t.Fatalf("snapshot price drifted with catalog: %s", item.UnitPrice)
		}
	}
}

func TestBeginRejectsEmptyCartAndMissingAddress(t *testing.T) {
	env := setupCheckoutTest(t, "validation", &razorpay.Config{})

	// empty cart
	if _, err := env.svc.Begin(context.Background(), BeginCheckoutInput{UserID: env.user.ID}); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}

	// no address anywhere
	if err := env.db.Model(env.user).Update("address", "").Error; err != nil {
		t.Fatalf("clear address failed: %v", err)
	}
	env.addDish(t, "Thali", 250, 1)
	if _, err := env.svc.Begin(context.Background(), BeginCheckoutInput{UserID: env.user.ID}); !errors.Is(err, ErrAddressRequired) {
		t.Fatalf("expected ErrAddressRequired, got %v", err)
	}

	// explicit address wins over the missing profile one
	session, err := env.svc.Begin(context.Background(), BeginCheckoutInput{
		UserID:          env.user.ID,
		DeliveryAddress: "  44 FC Road, Pune  ",
	})
	if err != nil {
		t.Fatalf("begin with explicit address failed: %v", err)
	}
	if session.DeliveryAddress != "44 FC Road, Pune" {
		t.Fatalf("address not trimmed: %q", session.DeliveryAddress)
	}
}

func TestCancelLeavesCartUntouched(t *testing.T) {
	env := setupCheckoutTest(t, "cancel", &razorpay.Config{})
	env.addDish(t, "Biryani", 300, 1)

	if _, err := env.svc.Begin(context.Background(), BeginCheckoutInput{UserID: env.user.ID}); err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	session, err := env.svc.Cancel(env.user.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if session.State != constants.CheckoutStateCancelled {
		t.Fatalf("expected cancelled state, got %s", session.State)
	}

	view, err := env.cartSvc.ListEnriched(env.user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("cancel must leave the cart intact, got %d lines", len(view.Items))
	}

	var orders int64
	if err := env.db.Model(&models.Order{}).Count(&orders).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orders != 0 {
		t.Fatalf("cancel must not create orders, got %d", orders)
	}
}

func TestConfirmRejectsBadSignatureInLiveMode(t *testing.T) {
	payCfg := &razorpay.Config{KeyID: "rzp_test_abc", KeySecret: "topsecret"}
	env := setupCheckoutTest(t, "badsig", payCfg)
	env.addDish(t, "Dhokla", 80, 1)

	_, err := env.svc.Confirm(context.Background(), ConfirmCheckoutInput{
		UserID:           env.user.ID,
		GatewayOrderID:   "order_live_1",
		GatewayPaymentID: "pay_live_1",
		GatewaySignature: "deadbeef",
	})
	if !errors.Is(err, ErrPaymentVerifyFailed) {
		t.Fatalf("expected ErrPaymentVerifyFailed, got %v", err)
	}

	// a failed payment must not touch cart or orders
	view, err := env.cartSvc.ListEnriched(env.user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("failed payment must leave the cart intact, got %d lines", len(view.Items))
	}

	// with a correct signature the same checkout goes through
	sig := razorpay.Sign("order_live_1", "pay_live_1", payCfg.KeySecret)
	order, err := env.svc.Confirm(context.Background(), ConfirmCheckoutInput{
		UserID:           env.user.ID,
		GatewayOrderID:   "order_live_1",
		GatewayPaymentID: "pay_live_1",
		GatewaySignature: sig,
	})
	if err != nil {
		t.Fatalf("confirm with valid signature failed: %v", err)
	}
	if order.PaymentReference != "pay_live_1" {
		t.Fatalf("expected gateway payment id as reference, got %q", order.PaymentReference)
	}
}

func TestConfirmSucceedsWhenDishTurnsUnavailableAfterBegin(t *testing.T) {
	env := setupCheckoutTest(t, "toggled", &razorpay.Config{})
	env.addDish(t, "Pav Bhaji", 140, 1)

	session, err := env.svc.Begin(context.Background(), BeginCheckoutInput{UserID: env.user.ID})
	if err != nil {
		t.Fatalf("begin checkout failed: %v", err)
	}

	// the dish goes off the menu while the payment widget is open
	if err := env.db.Model(&models.HomeMadeFood{}).Where("food_name = ?", "Pav Bhaji").
		Update("available", false).Error; err != nil {
		t.Fatalf("toggle availability failed: %v", err)
	}

	// the money is captured by now, so the order must still be created
	order, err := env.svc.Confirm(context.Background(), ConfirmCheckoutInput{
		UserID:    env.user.ID,
		Reference: session.Reference,
	})
	if err != nil {
		t.Fatalf("confirm after availability toggle failed: %v", err)
	}
	if !order.TotalAmount.Equal(models.NewMoneyFromInt(140).Decimal) {
		t.Fatalf("expected total 140, got %s", order.TotalAmount)
	}
	if len(order.Items) != 1 || order.Items[0].FoodName != "Pav Bhaji" {
		t.Fatalf("snapshot items wrong: %+v", order.Items)
	}

	view, err := env.cartSvc.ListEnriched(env.user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d lines", len(view.Items))
	}
}

func TestConfirmRollsBackWhenOrderItemsInsertFails(t *testing.T) {
	env := setupCheckoutTest(t, "rollback", &razorpay.Config{})
	env.addDish(t, "Misal Pav", 110, 2)

	// breaking the snapshot table makes the item insert fail mid-transaction
	if err := env.db.Migrator().DropTable(&models.OrderItem{}); err != nil {
		t.Fatalf("drop order items table failed: %v", err)
	}

	_, err := env.svc.Confirm(context.Background(), ConfirmCheckoutInput{UserID: env.user.ID})
	if !errors.Is(err, ErrOrderCreateFailed) {
		t.Fatalf("expected ErrOrderCreateFailed, got %v", err)
	}

	// the order row from step one must have been rolled back with the rest
	var orders int64
	if err := env.db.Model(&models.Order{}).Count(&orders).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orders != 0 {
		t.Fatalf("failed finalization must leave no order rows, got %d", orders)
	}

	view, err := env.cartSvc.ListEnriched(env.user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 2 {
		t.Fatalf("failed finalization must leave the cart intact, got %+v", view.Items)
	}
}

func TestConfirmWritesAddressBackToProfile(t *testing.T) {
	env := setupCheckoutTest(t, "writeback", &razorpay.Config{})
	env.addDish(t, "Idli", 60, 1)

	_, err := env.svc.Confirm(context.Background(), ConfirmCheckoutInput{
		UserID:          env.user.ID,
		DeliveryAddress: "7 Baner Road, Pune",
	})
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	reloaded, err := repository.NewUserRepository(env.db).GetByID(env.user.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.Address != "7 Baner Road, Pune" {
		t.Fatalf("address not written back, got %q", reloaded.Address)
	}
}
