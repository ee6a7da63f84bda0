package models

import "gorm.io/gorm"

// Order references a seller by id and embeds the ordered items verbatim.
// SellerID is a plain string reference, not a foreign key; existence is
// checked once at creation time.
type Order struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SellerID   string     `json:"sellerId" gorm:"index;type:varchar(36)"`
	Items      []LineItem `json:"items" gorm:"serializer:json"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
