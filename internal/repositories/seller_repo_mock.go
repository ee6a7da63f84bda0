package repositories

import (
	"fmt"
	"sync"

	"pasar/internal/models"

	"github.com/google/uuid"
)

// MockSellerRepository is an in-memory implementation of SellerRepository.
type MockSellerRepository struct {
	sellers map[string]models.Seller
	mu      sync.RWMutex
}

// NewMockSellerRepository creates a new instance of MockSellerRepository.
func NewMockSellerRepository() *MockSellerRepository {
	return &MockSellerRepository{
		sellers: make(map[string]models.Seller),
	}
}

// Create adds a new seller.
func (r *MockSellerRepository) Create(seller *models.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	r.sellers[seller.ID] = *seller
	return nil
}

// GetByID returns a seller by its ID.
func (r *MockSellerRepository) GetByID(id string) (*models.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seller, ok := r.sellers[id]
	if !ok {
		return nil, fmt.Errorf("seller with ID %s: %w", id, ErrNotFound)
	}
	return &seller, nil
}
