package public

import (
	"errors"

	"github.com/crave-wave/cravewave/internal/http/response"
	"github.com/crave-wave/cravewave/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a business error to an API error response.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid request"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, msg: "quantity must be at least 1"},
	{target: service.ErrFoodNotAvailable, code: response.CodeBadRequest, msg: "this dish is not available right now"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "item not found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid request"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "your cart is empty"},
	{target: service.ErrAddressRequired, code: response.CodeBadRequest, msg: "delivery address is required"},
	{target: service.ErrFoodNotAvailable, code: response.CodeBadRequest, msg: "a dish in your cart is no longer available"},
	{target: service.ErrPaymentAmountInvalid, code: response.CodeBadRequest, msg: "order amount invalid"},
	{target: service.ErrPaymentVerifyFailed, code: response.CodePaymentFailed, msg: "payment verification failed"},
	{target: service.ErrOrderCreateFailed, code: response.CodeInternal, msg: "could not place your order"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "account not found"},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid request"},
	{target: service.ErrWeakPassword, code: response.CodeBadRequest, msg: "password does not meet the policy"},
	{target: service.ErrEmailTaken, code: response.CodeConflict, msg: "email already registered"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: "invalid email or password"},
	{target: service.ErrUserDisabled, code: response.CodeForbidden, msg: "account disabled"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "account not found"},
}
