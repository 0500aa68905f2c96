package service

import "errors"

// Sentinel errors shared across the service layer. Handlers map these to
// HTTP status codes and response messages.
var (
	ErrNotFound             = errors.New("record not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrQuantityInvalid      = errors.New("quantity must be at least 1")
	ErrFoodNotAvailable     = errors.New("food is not available")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrAddressRequired      = errors.New("delivery address is required")
	ErrInvalidCheckoutState = errors.New("invalid checkout state transition")
	ErrOrderCreateFailed    = errors.New("order creation failed")
	ErrPaymentVerifyFailed  = errors.New("payment verification failed")
	ErrPaymentAmountInvalid = errors.New("payment amount invalid")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDisabled       = errors.New("user is disabled")
	ErrWeakPassword       = errors.New("password does not meet the policy")
)
