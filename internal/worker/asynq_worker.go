package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/crave-wave/cravewave/internal/logger"
	"github.com/crave-wave/cravewave/internal/provider"
	"github.com/crave-wave/cravewave/internal/queue"
	"github.com/crave-wave/cravewave/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer async task consumer
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registers the task handlers
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlacedEmail, c.handleOrderPlacedEmail)
}

func (c *Consumer) handleOrderPlacedEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_placed_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_placed_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_placed_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_placed_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_order_placed_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_placed_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}

	input := service.OrderPlacedEmailInput{
		OrderNo:         order.OrderNo,
		TotalAmount:     order.TotalAmount,
		DeliveryAddress: order.DeliveryAddress,
		Items:           order.Items,
	}
	if err := c.EmailService.SendOrderPlacedEmail(strings.TrimSpace(user.Email), input); err != nil {
		if err == service.ErrEmailServiceDisabled || err == service.ErrEmailServiceNotConfigured {
			logger.Debugw("worker_order_placed_email_skip_disabled", "order_id", order.ID, "order_no", order.OrderNo)
			return nil
		}
		logger.Warnw("worker_order_placed_email_send_failed", "order_id", order.ID, "order_no", order.OrderNo, "error", err)
		return err
	}
	logger.Infow("worker_order_placed_email_sent", "order_id", order.ID, "order_no", order.OrderNo)
	return nil
}
