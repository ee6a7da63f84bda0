package services

import (
	"errors"
	"fmt"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo  repositories.OrderRepository
	sellerRepo repositories.SellerRepository
	mqClient   *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, sellerRepo repositories.SellerRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		sellerRepo: sellerRepo,
		mqClient:   mqClient,
	}
}

// CreateOrder persists an order against an existing seller. The items are
// stored verbatim: no price recomputation against the live catalog, no
// merging of duplicate lines. Seller existence is checked once here; there
// is no foreign key at the storage layer.
func (s *OrderService) CreateOrder(sellerID string, items []models.LineItem) (*models.Order, error) {
	if _, err := s.sellerRepo.GetByID(sellerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to check seller %s: %w", sellerID, err)
	}

	newOrder := &models.Order{
		SellerID: sellerID,
		Items:    items,
	}
	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	// Publish an order.created event. A publish failure never fails the
	// request; the order is already durable at this point.
	if s.mqClient != nil {
		event := map[string]interface{}{
			"orderId":  newOrder.ID,
			"sellerId": newOrder.SellerID,
			"items":    len(newOrder.Items),
		}
		if err := s.mqClient.PublishOrderEvent("order.created", event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", newOrder.ID, err)
		} else {
			log.Printf("Successfully published order created event for order %s", newOrder.ID)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}

	return newOrder, nil
}

// ListOrdersForSeller retrieves all orders stored against the given seller id.
func (s *OrderService) ListOrdersForSeller(sellerID string) ([]models.Order, error) {
	return s.orderRepo.ListBySellerID(sellerID)
}
