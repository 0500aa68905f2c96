package models

import (
	"time"

	"gorm.io/gorm"
)

// Order a placed order with snapshot pricing
type Order struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                      // primary key
	OrderNo          string         `gorm:"type:varchar(32);uniqueIndex;not null" json:"order_no"`     // public order number
	UserID           uint           `gorm:"not null;index" json:"user_id"`                             // owning user
	TotalAmount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // order total in rupees
	DeliveryAddress  string         `gorm:"type:varchar(500);not null" json:"delivery_address"`        // delivery address snapshot
	PaymentReference string         `gorm:"type:varchar(128)" json:"payment_reference"`                // gateway payment id
	PaymentStatus    string         `gorm:"type:varchar(20);index" json:"payment_status"`              // completed / failed
	OrderStatus      string         `gorm:"type:varchar(20);index" json:"order_status"`                // placed / delivered / cancelled
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                   // creation time
	UpdatedAt        time.Time      `json:"updated_at"`                                                // update time
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                            // soft delete time

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // snapshot lines
}

// TableName sets the table name
func (Order) TableName() string {
	return "orders"
}
