package models

import "gorm.io/gorm"

// Seller owns a catalog of line items. The catalog has no independent
// lifecycle: it is written once with the seller and stored embedded, so
// insertion order is preserved as-is.
type Seller struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string     `json:"name" gorm:"type:varchar(100)"`
	OwnerUserID string     `json:"ownerUserId" gorm:"type:varchar(36)"` // user who created the catalog
	Catalog     []LineItem `json:"catalog" gorm:"serializer:json"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
