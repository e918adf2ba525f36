package cart

import (
	"quick-checkout/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var gramsPerKg = decimal.NewFromInt(1000)

// Config holds pricing configuration for a cart.
type Config struct {
	// ShippingRatePerKg is charged per kilogram of shippable weight.
	// Default: 10
	ShippingRatePerKg decimal.Decimal
}

// DefaultConfig returns the default cart configuration.
func DefaultConfig() *Config {
	return &Config{
		ShippingRatePerKg: decimal.NewFromInt(10),
	}
}

// Item binds a product to a requested quantity.
type Item struct {
	Product  *model.Product
	Quantity int
}

// TotalPrice returns unit price times quantity.
func (i Item) TotalPrice() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalWeight returns unit weight times quantity, in grams.
func (i Item) TotalWeight() decimal.Decimal {
	return i.Product.Weight.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is an ordered, append-only list of line items owned by one checkout
// session. It is not safe for concurrent use.
type Cart struct {
	items     []Item
	ratePerKg decimal.Decimal
	logger    zerolog.Logger
}

// New creates an empty cart.
func New(config *Config, logger zerolog.Logger) *Cart {
	if config == nil {
		config = DefaultConfig()
	}

	return &Cart{
		ratePerKg: config.ShippingRatePerKg,
		logger:    logger.With().Str("component", "cart").Logger(),
	}
}

// Add appends a line item for product. Stock is checked but not reserved.
// When the product cannot cover quantity the cart is left unchanged and an
// insufficient stock error is returned; callers may keep adding other items.
func (c *Cart) Add(product *model.Product, quantity int) error {
	if product == nil {
		return model.NewInvalidProductError("product is required")
	}

	if quantity <= 0 {
		c.logger.Warn().
			Str("product", product.Name).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return model.ErrInvalidQuantity
	}

	if !product.HasStock(quantity) {
		c.logger.Warn().
			Str("product", product.Name).
			Int("requested", quantity).
			Int("available", product.Quantity()).
			Msg("not enough stock for product")
		return model.NewInsufficientStockError(product.Name)
	}

	c.items = append(c.items, Item{Product: product, Quantity: quantity})

	c.logger.Debug().
		Str("product", product.Name).
		Int("quantity", quantity).
		Int("item_count", len(c.items)).
		Msg("item added to cart")

	return nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether no items have been added.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal returns the sum of line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.TotalPrice())
	}
	return subtotal
}

// ShippableWeight returns the weight in grams of items that require shipping.
func (c *Cart) ShippableWeight() decimal.Decimal {
	weight := decimal.Zero
	for _, item := range c.items {
		if item.Product.RequiresShipping {
			weight = weight.Add(item.TotalWeight())
		}
	}
	return weight
}

// ShippingFee charges the configured rate per kilogram of shippable weight.
func (c *Cart) ShippingFee() decimal.Decimal {
	return c.ShippableWeight().Div(gramsPerKg).Mul(c.ratePerKg)
}

// TotalAmount returns subtotal plus shipping fee.
func (c *Cart) TotalAmount() decimal.Decimal {
	return c.Subtotal().Add(c.ShippingFee())
}
