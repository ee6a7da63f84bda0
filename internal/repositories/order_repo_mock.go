package repositories

import (
	"sync"

	"pasar/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.orders = append(r.orders, *order)
	return nil
}

// ListBySellerID returns all orders with a matching seller id, in
// insertion order.
func (r *MockOrderRepository) ListBySellerID(sellerID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.SellerID == sellerID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}
