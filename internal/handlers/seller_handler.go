package handlers

import (
	"log"

	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SellerHandler handles the seller-facing HTTP surface: catalog creation
// and order listing.
type SellerHandler struct {
	catalogService *services.CatalogService
	orderService   *services.OrderService
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(catalogService *services.CatalogService, orderService *services.OrderService) *SellerHandler {
	return &SellerHandler{
		catalogService: catalogService,
		orderService:   orderService,
	}
}

// RegisterRoutes registers the seller routes with the Fiber app.
func (h *SellerHandler) RegisterRoutes(router fiber.Router) {
	sellerRoutes := router.Group("/seller")
	sellerRoutes.Post("/create-catalog", h.HandleCreateCatalog)
	sellerRoutes.Get("/orders", h.HandleListOrders)
}

// HandleCreateCatalog creates a seller record with the posted catalog. The
// request body is a bare JSON array of line items; the owner is taken from
// the authenticated token claims.
func (h *SellerHandler) HandleCreateCatalog(c *fiber.Ctx) error {
	var items []models.LineItem
	if err := c.BodyParser(&items); err != nil {
		log.Printf("Error parsing catalog items: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Basic validation: at least one item is required
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one item is required for a catalog.",
		})
	}

	ownerUserID, _ := c.Locals("user_id").(string)
	name, _ := c.Locals("username").(string)

	seller, err := h.catalogService.CreateCatalog(ownerUserID, name, items)
	if err != nil {
		log.Printf("Error creating catalog: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(seller)
}

// HandleListOrders returns all orders stored against the sellerId query
// parameter.
func (h *SellerHandler) HandleListOrders(c *fiber.Ctx) error {
	sellerID := c.Query("sellerId")

	orders, err := h.orderService.ListOrdersForSeller(sellerID)
	if err != nil {
		log.Printf("Error listing orders for seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(orders)
}
