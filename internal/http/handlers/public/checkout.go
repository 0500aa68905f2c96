package public

import (
	"github.com/crave-wave/cravewave/internal/http/response"
	"github.com/crave-wave/cravewave/internal/service"

	"github.com/gin-gonic/gin"
)

// BeginCheckoutRequest checkout start request
type BeginCheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address"`
}

// ConfirmCheckoutRequest payment confirmation posted by the checkout widget
type ConfirmCheckoutRequest struct {
	DeliveryAddress  string `json:"delivery_address"`
	Reference        string `json:"reference"`
	GatewayOrderID   string `json:"gateway_order_id"`
	GatewayPaymentID string `json:"gateway_payment_id"`
	GatewaySignature string `json:"gateway_signature"`
}

// BeginCheckout validates the cart and opens a payment session
func (h *Handler) BeginCheckout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req BeginCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	session, err := h.CheckoutService.Begin(c.Request.Context(), service.BeginCheckoutInput{
		UserID:          uid,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "could not start checkout")
		return
	}
	response.Success(c, session)
}

// ConfirmCheckout verifies the payment and finalizes the order
func (h *Handler) ConfirmCheckout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req ConfirmCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	order, err := h.CheckoutService.Confirm(c.Request.Context(), service.ConfirmCheckoutInput{
		UserID:           uid,
		DeliveryAddress:  req.DeliveryAddress,
		Reference:        req.Reference,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		GatewaySignature: req.GatewaySignature,
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "could not place your order")
		return
	}
	requestLog(c).Infow("order_placed", "order_no", order.OrderNo, "user_id", uid)
	response.Success(c, order)
}

// CancelCheckout abandons a checkout; the cart is left untouched
func (h *Handler) CancelCheckout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	session, err := h.CheckoutService.Cancel(uid)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "could not cancel checkout")
		return
	}
	response.Success(c, session)
}
