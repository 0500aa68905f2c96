package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem one catalog line in a user's cart
type CartItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                                 // primary key
	UserID     uint           `gorm:"not null;uniqueIndex:idx_cart_user_food,priority:1" json:"user_id"`    // owning user
	FoodSource string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_cart_user_food,priority:2" json:"food_source"` // home_made / restaurant_made
	FoodID     uint           `gorm:"not null;uniqueIndex:idx_cart_user_food,priority:3" json:"food_id"`    // catalog row id within the source
	Quantity   int            `gorm:"not null;default:1" json:"quantity"`                                   // line quantity, always >= 1
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                              // creation time
	UpdatedAt  time.Time      `json:"updated_at"`                                                           // update time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                                       // soft delete time
}

// TableName sets the table name
func (CartItem) TableName() string {
	return "cart_items"
}

// EnrichedCartItem cart line joined with its live catalog listing.
// Subtotal is computed from the listing's current price, not a stored one.
type EnrichedCartItem struct {
	CartItem
	FoodName     string `json:"food_name"`
	FoodImageURL string `json:"food_image_url"`
	Price        Money  `json:"price"`
	Subtotal     Money  `json:"subtotal"`
}
