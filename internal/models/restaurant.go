package models

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant partner restaurant table
type Restaurant struct {
	ID        uint           `gorm:"primarykey" json:"id"`      // primary key
	HotelName string         `gorm:"not null" json:"hotel_name"`// restaurant name shown to buyers
	City      string         `gorm:"index" json:"city"`         // operating city
	CreatedAt time.Time      `gorm:"index" json:"created_at"`   // creation time
	UpdatedAt time.Time      `json:"updated_at"`                // update time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`            // soft delete time
}

// TableName sets the table name
func (Restaurant) TableName() string {
	return "restaurants"
}
