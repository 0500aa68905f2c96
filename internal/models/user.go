package models

import (
	"time"

	"gorm.io/gorm"
)

// User account table
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                 // primary key
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`    // email
	PasswordHash       string         `gorm:"not null" json:"-"`                    // password hash (never returned)
	FullName           string         `gorm:"default:''" json:"full_name"`          // display name
	MobileNumber       string         `gorm:"type:varchar(20)" json:"mobile_number"`// contact number
	Address            string         `gorm:"type:varchar(500)" json:"address"`     // default delivery address
	Status             string         `gorm:"default:'active'" json:"status"`       // account status
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`          // token version (bulk revocation)
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                       // tokens issued before this are invalid
	LastLoginAt        *time.Time     `json:"last_login_at"`                        // last login time
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`              // creation time
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`              // update time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                       // soft delete time
}

// TableName sets the table name
func (User) TableName() string {
	return "users"
}
