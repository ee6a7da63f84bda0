package repositories

import (
	"pasar/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(order *models.Order) error
	ListBySellerID(sellerID string) ([]models.Order, error)
}
