package public

import (
	"strconv"
	"strings"

	"github.com/crave-wave/cravewave/internal/http/response"
	"github.com/crave-wave/cravewave/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
)

// ListOrders lists the current user's order history
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultOrderPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxOrderPageSize {
		pageSize = defaultOrderPageSize
	}

	result, err := h.OrderService.ListByUser(service.OrderListInput{
		UserID:   uid,
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "could not load orders", err)
		return
	}

	pagination := response.Pagination{
		Page:     page,
		PageSize: pageSize,
		Total:    result.Total,
	}
	if pageSize > 0 {
		pagination.TotalPage = (result.Total + int64(pageSize) - 1) / int64(pageSize)
	}
	response.SuccessWithPage(c, result.Orders, pagination)
}

// GetOrder fetches one order by id or public order number
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	ref := strings.TrimSpace(c.Param("ref"))
	if ref == "" {
		respondError(c, response.CodeBadRequest, "invalid order reference", nil)
		return
	}

	var err error
	var order interface{}
	if strings.HasPrefix(ref, "CW") {
		order, err = h.OrderService.GetByOrderNo(ref, uid)
	} else {
		id, parseErr := strconv.ParseUint(ref, 10, 64)
		if parseErr != nil || id == 0 {
			respondError(c, response.CodeBadRequest, "invalid order reference", nil)
			return
		}
		order, err = h.OrderService.GetByID(uint(id), uid)
	}
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid order reference"},
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "order not found"},
		}, response.CodeInternal, "could not load the order")
		return
	}
	response.Success(c, order)
}
