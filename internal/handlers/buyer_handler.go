package handlers

import (
	"errors"
	"log"

	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BuyerHandler handles the buyer-facing HTTP surface: seller discovery,
// catalog lookup and order creation.
type BuyerHandler struct {
	catalogService *services.CatalogService
	orderService   *services.OrderService
}

// NewBuyerHandler creates a new BuyerHandler.
func NewBuyerHandler(catalogService *services.CatalogService, orderService *services.OrderService) *BuyerHandler {
	return &BuyerHandler{
		catalogService: catalogService,
		orderService:   orderService,
	}
}

// RegisterRoutes registers the buyer routes with the Fiber app.
func (h *BuyerHandler) RegisterRoutes(router fiber.Router) {
	buyerRoutes := router.Group("/buyer")
	buyerRoutes.Get("/list-of-sellers", h.HandleListSellers)
	buyerRoutes.Get("/seller-catalog/:seller_id", h.HandleGetSellerCatalog)
	buyerRoutes.Post("/create-order/:seller_id", h.HandleCreateOrder)
}

// HandleListSellers returns all users tagged as sellers.
func (h *BuyerHandler) HandleListSellers(c *fiber.Ctx) error {
	sellers, err := h.catalogService.ListSellers()
	if err != nil {
		log.Printf("Error listing sellers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(sellers)
}

// HandleGetSellerCatalog returns the catalog of a single seller.
func (h *BuyerHandler) HandleGetSellerCatalog(c *fiber.Ctx) error {
	sellerID := c.Params("seller_id")

	catalog, err := h.catalogService.GetCatalog(sellerID)
	if err != nil {
		if errors.Is(err, services.ErrSellerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Seller not found",
			})
		}
		log.Printf("Error getting catalog for seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(catalog)
}

// HandleCreateOrder creates an order against an existing seller. The
// request body is a bare JSON array of line items.
func (h *BuyerHandler) HandleCreateOrder(c *fiber.Ctx) error {
	sellerID := c.Params("seller_id")

	var items []models.LineItem
	if err := c.BodyParser(&items); err != nil {
		log.Printf("Error parsing order items: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Basic validation: at least one item is required
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one item is required for an order.",
		})
	}

	order, err := h.orderService.CreateOrder(sellerID, items)
	if err != nil {
		if errors.Is(err, services.ErrSellerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Seller not found",
			})
		}
		log.Printf("Error creating order for seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(order)
}
