package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSellerRepository is a GORM implementation of SellerRepository.
type GORMSellerRepository struct {
	db *gorm.DB
}

// NewGORMSellerRepository creates a new instance of GORMSellerRepository.
func NewGORMSellerRepository(db *gorm.DB) *GORMSellerRepository {
	return &GORMSellerRepository{
		db: db,
	}
}

// Create creates a new seller in the database.
func (r *GORMSellerRepository) Create(seller *models.Seller) error {
	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	if err := r.db.Create(seller).Error; err != nil {
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

// GetByID retrieves a single seller by its ID from the database.
func (r *GORMSellerRepository) GetByID(id string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.First(&seller, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("seller with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get seller by ID %s: %w", id, err)
	}
	return &seller, nil
}
