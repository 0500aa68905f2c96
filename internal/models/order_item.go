package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem one snapshot line of a placed order. Name and price are copied
// from the catalog at checkout time and never re-read.
type OrderItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                   // primary key
	OrderID    uint      `gorm:"not null;index" json:"order_id"`                         // owning order
	FoodSource string    `gorm:"type:varchar(20);not null" json:"food_source"`           // home_made / restaurant_made
	FoodID     uint      `gorm:"not null" json:"food_id"`                                // catalog row id within the source
	FoodName   string    `gorm:"not null" json:"food_name"`                              // name snapshot
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`                     // line quantity
	UnitPrice  Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // price snapshot in rupees
	CreatedAt  time.Time `json:"created_at"`                                             // creation time
	UpdatedAt  time.Time `json:"updated_at"`                                             // update time
}

// LineTotal unit price times quantity
func (i *OrderItem) LineTotal() Money {
	return NewMoneyFromDecimal(i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))))
}
