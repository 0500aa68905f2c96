package models

import (
	"time"

	"gorm.io/gorm"
)

// Chef home cook profile table
type Chef struct {
	ID           uint           `gorm:"primarykey" json:"id"`                      // primary key
	ChefName     string         `gorm:"not null" json:"chef_name"`                 // cook's name
	BrandName    string         `gorm:"not null" json:"brand_name"`                // kitchen brand shown to buyers
	ChefImageURL string         `gorm:"type:varchar(500)" json:"chef_image_url"`   // profile picture
	City         string         `gorm:"index" json:"city"`                         // operating city
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                   // creation time
	UpdatedAt    time.Time      `json:"updated_at"`                                // update time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                            // soft delete time
}

// TableName sets the table name
func (Chef) TableName() string {
	return "chefs"
}
