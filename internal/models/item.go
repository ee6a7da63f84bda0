package models

// LineItem is a single sellable entry in a catalog or an order.
type LineItem struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}
