package queue

import (
	"encoding/json"

	"github.com/crave-wave/cravewave/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlacedEmail order confirmation email task
	TaskOrderPlacedEmail = constants.TaskOrderPlacedEmail
)

// OrderPlacedEmailPayload order confirmation email task payload
type OrderPlacedEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderPlacedEmailTask creates the order confirmation email task
func NewOrderPlacedEmailTask(payload OrderPlacedEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlacedEmail, body), nil
}
