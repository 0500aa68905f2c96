package public

import (
	"strconv"

	"github.com/crave-wave/cravewave/internal/http/response"
	"github.com/crave-wave/cravewave/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest add-to-cart request
type AddCartItemRequest struct {
	FoodSource string `json:"food_source" binding:"required"`
	FoodID     uint   `json:"food_id" binding:"required"`
}

// SetCartQuantityRequest absolute quantity update. No binding constraint on
// Quantity so a zero value reaches the service rule and its message.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the enriched cart with its subtotal
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	view, err := h.CartService.ListEnriched(uid)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "could not load the cart")
		return
	}
	response.Success(c, view)
}

// AddCartItem adds a dish or bumps its quantity by one
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	item, err := h.CartService.AddOrIncrement(service.AddCartItemInput{
		UserID:     uid,
		FoodSource: req.FoodSource,
		FoodID:     req.FoodID,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "could not update the cart")
		return
	}
	response.Success(c, item)
}

// SetCartItemQuantity sets the absolute quantity of a cart line
func (h *Handler) SetCartItemQuantity(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart item id", nil)
		return
	}
	var req SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	item, err := h.CartService.SetQuantity(uid, uint(itemID), req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "could not update the cart")
		return
	}
	response.Success(c, item)
}

// RemoveCartItem deletes a cart line; removing an absent line succeeds
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart item id", nil)
		return
	}

	if err := h.CartService.Remove(uid, uint(itemID)); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "could not update the cart")
		return
	}
	response.Success(c, gin.H{"removed": true})
}
