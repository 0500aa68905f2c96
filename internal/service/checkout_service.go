package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/crave-wave/cravewave/internal/constants"
	"github.com/crave-wave/cravewave/internal/logger"
	"github.com/crave-wave/cravewave/internal/models"
	"github.com/crave-wave/cravewave/internal/payment/razorpay"
	"github.com/crave-wave/cravewave/internal/queue"
	"github.com/crave-wave/cravewave/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BeginCheckoutInput input for starting a checkout
type BeginCheckoutInput struct {
	UserID          uint
	DeliveryAddress string
}

// ConfirmCheckoutInput payment confirmation posted after the gateway widget
type ConfirmCheckoutInput struct {
	UserID           uint
	DeliveryAddress  string
	Reference        string
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
}

// CheckoutSession state handed back to the client between checkout calls
type CheckoutSession struct {
	State           string                    `json:"state"`
	Reference       string                    `json:"reference"` // becomes the order number on confirm
	TotalAmount     models.Money              `json:"total_amount"`
	AmountPaise     int64                     `json:"amount_paise"`
	Currency        string                    `json:"currency"`
	GatewayOrderID  string                    `json:"gateway_order_id"`
	GatewayKeyID    string                    `json:"gateway_key_id,omitempty"`
	TestMode        bool                      `json:"test_mode"`
	DeliveryAddress string                    `json:"delivery_address"`
	Items           []models.EnrichedCartItem `json:"items"`
}

// CheckoutService drives a checkout from cart validation through payment to
// the finalized order. No state is held between calls; each step revalidates
// against the database.
type CheckoutService struct {
	cartRepo    repository.CartRepository
	foodRepo    repository.FoodRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	cartService *CartService
	queueClient *queue.Client
	payCfg      *razorpay.Config
}

// NewCheckoutService creates the checkout service
func NewCheckoutService(
	cartRepo repository.CartRepository,
	foodRepo repository.FoodRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	cartService *CartService,
	queueClient *queue.Client,
	payCfg *razorpay.Config,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		foodRepo:    foodRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		cartService: cartService,
		queueClient: queueClient,
		payCfg:      payCfg,
	}
}

// resolveAddress falls back to the profile address when the request carries
// none.
func (s *CheckoutService) resolveAddress(userID uint, address string) (string, error) {
	address = strings.TrimSpace(address)
	if address != "" {
		return address, nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrNotFound
	}
	address = strings.TrimSpace(user.Address)
	if address == "" {
		return "", ErrAddressRequired
	}
	return address, nil
}

// validateCart revalidates the cart against the live catalog. Every line
// must still resolve to an available listing.
func (s *CheckoutService) validateCart(userID uint) (*CartView, error) {
	view, err := s.cartService.ListEnriched(userID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, ErrCartEmpty
	}
	refs := make([]repository.FoodRef, 0, len(view.Items))
	for _, item := range view.Items {
		refs = append(refs, repository.FoodRef{Source: item.FoodSource, ID: item.FoodID})
	}
	listings, err := s.foodRepo.GetListings(refs)
	if err != nil {
		return nil, err
	}
	for _, item := range view.Items {
		listing := listings[repository.FoodRef{Source: item.FoodSource, ID: item.FoodID}]
		if listing == nil || !listing.IsAvailable() {
			return nil, ErrFoodNotAvailable
		}
	}
	return view, nil
}

// Begin validates the cart and address, then opens a payment. In test mode
// no gateway order is created and the session carries a synthetic id.
func (s *CheckoutService) Begin(ctx context.Context, input BeginCheckoutInput) (*CheckoutSession, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	address, err := s.resolveAddress(input.UserID, input.DeliveryAddress)
	if err != nil {
		return nil, err
	}
	view, err := s.validateCart(input.UserID)
	if err != nil {
		return nil, err
	}

	amountPaise := view.Subtotal.Mul(decimal.NewFromInt(100)).IntPart()
	if amountPaise <= 0 {
		return nil, ErrPaymentAmountInvalid
	}

	reference := generateOrderNo()
	session := &CheckoutSession{
		State:           constants.CheckoutStateAwaitingPayment,
		Reference:       reference,
		TotalAmount:     view.Subtotal,
		AmountPaise:     amountPaise,
		Currency:        constants.CurrencyINR,
		DeliveryAddress: address,
		Items:           view.Items,
	}

	if s.payCfg.TestMode() {
		session.TestMode = true
		session.GatewayOrderID = fmt.Sprintf("order_test_%d", time.Now().UnixMilli())
		return session, nil
	}

	gatewayOrder, err := razorpay.CreateOrder(ctx, s.payCfg, razorpay.CreateOrderInput{
		AmountPaise: amountPaise,
		Currency:    constants.CurrencyINR,
		Receipt:     reference,
	})
	if err != nil {
		return nil, err
	}
	session.GatewayOrderID = gatewayOrder.ID
	session.GatewayKeyID = s.payCfg.KeyID
	return session, nil
}

// Confirm verifies the payment and finalizes the order. The order row, its
// snapshot items and the cart wipe commit in a single transaction.
// Availability is not re-checked here: the money is already captured by the
// time the gateway calls back, so the snapshot is taken as-is. The gate
// lives in Begin.
func (s *CheckoutService) Confirm(ctx context.Context, input ConfirmCheckoutInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	address, err := s.resolveAddress(input.UserID, input.DeliveryAddress)
	if err != nil {
		return nil, err
	}
	view, err := s.cartService.ListEnriched(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, ErrCartEmpty
	}

	paymentRef, err := s.verifyPayment(input)
	if err != nil {
		return nil, err
	}

	orderNo := strings.TrimSpace(input.Reference)
	if !strings.HasPrefix(orderNo, "CW") {
		orderNo = generateOrderNo()
	}
	now := time.Now()
	order := &models.Order{
		OrderNo:          orderNo,
		UserID:           input.UserID,
		TotalAmount:      view.Subtotal,
		DeliveryAddress:  address,
		PaymentReference: paymentRef,
		PaymentStatus:    constants.PaymentStatusCompleted,
		OrderStatus:      constants.OrderStatusPlaced,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	items := make([]models.OrderItem, 0, len(view.Items))
	for _, line := range view.Items {
		items = append(items, models.OrderItem{
			FoodSource: line.FoodSource,
			FoodID:     line.FoodID,
			FoodName:   line.FoodName,
			Quantity:   line.Quantity,
			UnitPrice:  line.Price,
		})
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		return cartRepo.ClearByUser(input.UserID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCreateFailed, err)
	}
	order.Items = items

	s.writeBackAddress(input.UserID, address)

	if err := s.queueClient.EnqueueOrderPlacedEmail(queue.OrderPlacedEmailPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("enqueue order placed email failed", "order_no", order.OrderNo, "error", err)
	}
	return order, nil
}

// Cancel abandons a checkout. Nothing was persisted before Confirm commits,
// so the cart stays exactly as it was.
func (s *CheckoutService) Cancel(userID uint) (*CheckoutSession, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return &CheckoutSession{State: constants.CheckoutStateCancelled}, nil
}

func (s *CheckoutService) verifyPayment(input ConfirmCheckoutInput) (string, error) {
	if s.payCfg.TestMode() {
		ref := strings.TrimSpace(input.GatewayPaymentID)
		if ref == "" {
			ref = fmt.Sprintf("test_payment_%d", time.Now().UnixMilli())
		}
		return ref, nil
	}
	if err := razorpay.VerifyPaymentSignature(s.payCfg, input.GatewayOrderID, input.GatewayPaymentID, input.GatewaySignature); err != nil {
		return "", ErrPaymentVerifyFailed
	}
	return input.GatewayPaymentID, nil
}

// writeBackAddress keeps the latest delivery address on the profile. Best
// effort, a failure never blocks a paid order.
func (s *CheckoutService) writeBackAddress(userID uint, address string) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return
	}
	if strings.TrimSpace(user.Address) == address {
		return
	}
	user.Address = address
	if err := s.userRepo.Update(user); err != nil {
		logger.Warnw("address write back failed", "user_id", userID, "error", err)
	}
}

// generateOrderNo builds a public order number: CW prefix, epoch
// milliseconds, then a random suffix in [0, 999].
func generateOrderNo() string {
	suffix := int64(0)
	if n, err := rand.Int(rand.Reader, big.NewInt(1000)); err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("CW%d%d", time.Now().UnixMilli(), suffix)
}
