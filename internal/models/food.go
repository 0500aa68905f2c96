package models

import (
	"time"

	"github.com/crave-wave/cravewave/internal/constants"

	"gorm.io/gorm"
)

// HomeMadeFood dishes cooked by local chefs
type HomeMadeFood struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                     // primary key
	ChefID          uint           `gorm:"not null;index" json:"chef_id"`                            // owning chef
	FoodName        string         `gorm:"not null" json:"food_name"`                                // dish name
	FoodImageURL    string         `gorm:"type:varchar(500)" json:"food_image_url"`                  // dish image
	Description     string         `gorm:"type:varchar(1000)" json:"description"`                    // dish description
	Category        string         `gorm:"type:varchar(20);index" json:"category"`                   // meals / snacks / desserts
	Calories        int            `gorm:"default:0" json:"calories"`                                // kcal per serving
	Protein         int            `gorm:"default:0" json:"protein"`                                 // grams per serving
	Price           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`       // price in rupees
	PrebookingHours int            `gorm:"default:0" json:"prebooking_hours"`                        // advance notice needed (0 = none)
	Available       bool           `gorm:"default:true;index" json:"available"`                      // purchasable flag
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                  // creation time
	UpdatedAt       time.Time      `json:"updated_at"`                                               // update time
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                           // soft delete time

	Chef *Chef `gorm:"foreignKey:ChefID" json:"chef,omitempty"` // owning chef profile
}

// TableName sets the table name
func (HomeMadeFood) TableName() string {
	return "home_made_foods"
}

// RestaurantFood dishes prepared by partner restaurants
type RestaurantFood struct {
	ID           uint           `gorm:"primarykey" json:"id"`                               // primary key
	RestaurantID uint           `gorm:"not null;index" json:"restaurant_id"`                // owning restaurant
	FoodName     string         `gorm:"not null" json:"food_name"`                          // dish name
	FoodImageURL string         `gorm:"type:varchar(500)" json:"food_image_url"`            // dish image
	Description  string         `gorm:"type:varchar(1000)" json:"description"`              // dish description
	Category     string         `gorm:"type:varchar(20);index" json:"category"`             // meals / snacks / desserts
	Calories     int            `gorm:"default:0" json:"calories"`                          // kcal per serving
	Protein      int            `gorm:"default:0" json:"protein"`                           // grams per serving
	Price        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // price in rupees
	Available    bool           `gorm:"default:true;index" json:"available"`                // purchasable flag
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                            // creation time
	UpdatedAt    time.Time      `json:"updated_at"`                                         // update time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                     // soft delete time

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"` // owning restaurant profile
}

// TableName sets the table name
func (RestaurantFood) TableName() string {
	return "restaurant_foods"
}

// FoodListing tagged union over the two catalog variants, resolved at the
// data-access boundary. Exactly one of HomeMade/Restaurant is non-nil and
// matches Source.
type FoodListing struct {
	Source     string          `json:"source"`
	HomeMade   *HomeMadeFood   `json:"home_made,omitempty"`
	Restaurant *RestaurantFood `json:"restaurant,omitempty"`
}

// FoodID returns the id of the underlying row
func (l *FoodListing) FoodID() uint {
	switch {
	case l == nil:
		return 0
	case l.Source == constants.FoodSourceHomeMade && l.HomeMade != nil:
		return l.HomeMade.ID
	case l.Source == constants.FoodSourceRestaurantMade && l.Restaurant != nil:
		return l.Restaurant.ID
	}
	return 0
}

// FoodName returns the dish name
func (l *FoodListing) FoodName() string {
	switch {
	case l == nil:
		return ""
	case l.Source == constants.FoodSourceHomeMade && l.HomeMade != nil:
		return l.HomeMade.FoodName
	case l.Source == constants.FoodSourceRestaurantMade && l.Restaurant != nil:
		return l.Restaurant.FoodName
	}
	return ""
}

// Price returns the current catalog price
func (l *FoodListing) Price() Money {
	switch {
	case l == nil:
	case l.Source == constants.FoodSourceHomeMade && l.HomeMade != nil:
		return l.HomeMade.Price
	case l.Source == constants.FoodSourceRestaurantMade && l.Restaurant != nil:
		return l.Restaurant.Price
	}
	return Money{}
}

// IsAvailable reports whether the dish is currently purchasable
func (l *FoodListing) IsAvailable() bool {
	switch {
	case l == nil:
		return false
	case l.Source == constants.FoodSourceHomeMade && l.HomeMade != nil:
		return l.HomeMade.Available
	case l.Source == constants.FoodSourceRestaurantMade && l.Restaurant != nil:
		return l.Restaurant.Available
	}
	return false
}
