package constants

// Food source constants
const (
	FoodSourceHomeMade       = "home_made"
	FoodSourceRestaurantMade = "restaurant_made"
)

// Food category constants
const (
	FoodCategoryAll      = "all"
	FoodCategoryMeals    = "meals"
	FoodCategorySnacks   = "snacks"
	FoodCategoryDesserts = "desserts"
)

// Order status constants
const (
	OrderStatusPlaced    = "placed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment status constants
const (
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Checkout attempt states
const (
	CheckoutStateIdle            = "idle"
	CheckoutStateValidating      = "validating"
	CheckoutStateAwaitingPayment = "awaiting_payment"
	CheckoutStateFinalizing      = "finalizing"
	CheckoutStateDone            = "done"
	CheckoutStateCancelled       = "cancelled"
	CheckoutStateFailed          = "failed"
)

// User status constants
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Currency constants
const (
	CurrencyINR = "INR"
)

// Queue names
const (
	QueueDefault = "default"
)

// Queue task types
const (
	TaskOrderPlacedEmail = "order:placed_email"
)
