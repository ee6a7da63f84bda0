package repositories

import (
	"fmt"

	"pasar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create creates a new order in the database.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// ListBySellerID retrieves all orders stored against the given seller id.
// The match is plain string equality on the stored column.
func (r *GORMOrderRepository) ListBySellerID(sellerID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders, "seller_id = ?", sellerID).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for seller %s: %w", sellerID, err)
	}
	return orders, nil
}
