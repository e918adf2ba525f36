package service

import (
	"context"

	"quick-checkout/internal/cart"
	"quick-checkout/internal/model"
)

// ShippingService defines operations for summarising shippable items.
type ShippingService interface {
	// Ship builds the shipment notice for the items that require shipping.
	Ship(ctx context.Context, items []cart.Item) *model.ShipmentNotice
}

// CheckoutService defines the checkout pipeline.
type CheckoutService interface {
	// Checkout validates the cart, charges the customer, and prints the
	// shipment notice and receipt.
	Checkout(ctx context.Context, customer *model.Customer, c *cart.Cart) (*model.Receipt, error)
}
