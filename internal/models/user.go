package models

import "gorm.io/gorm"

// User represents a registered account, buyer or seller.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	UserType   string `json:"userType" gorm:"type:varchar(50)"`                     // free-form tag, e.g. "seller" or "buyer"
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
