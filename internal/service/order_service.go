package service

import (
	"strings"

	"github.com/crave-wave/cravewave/internal/models"
	"github.com/crave-wave/cravewave/internal/repository"
)

// OrderListInput order history filters
type OrderListInput struct {
	UserID   uint
	Status   string
	Page     int
	PageSize int
}

// OrderPage one page of a user's order history
type OrderPage struct {
	Orders   []models.Order `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// OrderService read side of placed orders
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates the order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListByUser lists a user's orders with their snapshot items, newest first
func (s *OrderService) ListByUser(input OrderListInput) (*OrderPage, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	orders, total, err := s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:      input.Page,
		PageSize:  input.PageSize,
		UserID:    input.UserID,
		Status:    strings.TrimSpace(input.Status),
		WithItems: true,
	})
	if err != nil {
		return nil, err
	}
	return &OrderPage{Orders: orders, Total: total, Page: input.Page, PageSize: input.PageSize}, nil
}

// GetByID fetches one order scoped to its owner
func (s *OrderService) GetByID(orderID, userID uint) (*models.Order, error) {
	if orderID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// GetByOrderNo fetches one order by public number scoped to its owner
func (s *OrderService) GetByOrderNo(orderNo string, userID uint) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" || userID == 0 {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByOrderNoAndUser(orderNo, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}
