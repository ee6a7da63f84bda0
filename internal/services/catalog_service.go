package services

import (
	"errors"
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CatalogService handles business logic for seller catalogs.
type CatalogService struct {
	sellerRepo repositories.SellerRepository
	userRepo   repositories.UserRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(sellerRepo repositories.SellerRepository, userRepo repositories.UserRepository) *CatalogService {
	return &CatalogService{
		sellerRepo: sellerRepo,
		userRepo:   userRepo,
	}
}

// CreateCatalog creates a seller record owning exactly the given items.
// The authenticated user's id is stamped as the catalog owner.
func (s *CatalogService) CreateCatalog(ownerUserID, name string, items []models.LineItem) (*models.Seller, error) {
	seller := &models.Seller{
		Name:        name,
		OwnerUserID: ownerUserID,
		Catalog:     items,
	}
	if err := s.sellerRepo.Create(seller); err != nil {
		return nil, fmt.Errorf("failed to create catalog: %w", err)
	}
	return seller, nil
}

// ListSellers returns all users tagged as sellers. This is the buyer-facing
// view; it deliberately reads the user collection, not seller records.
func (s *CatalogService) ListSellers() ([]models.User, error) {
	return s.userRepo.ListByUserType("seller")
}

// GetCatalog returns the catalog of the seller with the given id.
func (s *CatalogService) GetCatalog(sellerID string) ([]models.LineItem, error) {
	seller, err := s.sellerRepo.GetByID(sellerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to get seller %s: %w", sellerID, err)
	}
	return seller.Catalog, nil
}
