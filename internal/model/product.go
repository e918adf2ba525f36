package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalogue entry that can be added to a cart.
// Stock is only changed through ReduceQuantity.
type Product struct {
	ID               uuid.UUID
	Name             string
	Price            decimal.Decimal
	Perishable       bool
	RequiresShipping bool

	// Weight is the weight of a single unit in grams.
	Weight  decimal.Decimal
	Expired bool

	quantity int
}

// ProductParams holds the attributes used to create a product.
type ProductParams struct {
	Name             string
	Price            decimal.Decimal
	Quantity         int
	Perishable       bool
	RequiresShipping bool
	Weight           decimal.Decimal
	Expired          bool
}

// NewProduct validates params and creates a new product.
func NewProduct(params ProductParams) (*Product, error) {
	if params.Name == "" {
		return nil, NewInvalidProductError("name is required")
	}

	if params.Price.IsNegative() {
		return nil, NewInvalidProductError("price must not be negative")
	}

	if params.Quantity < 0 {
		return nil, NewInvalidProductError("quantity must not be negative")
	}

	if params.Weight.IsNegative() {
		return nil, NewInvalidProductError("weight must not be negative")
	}

	return &Product{
		ID:               uuid.New(),
		Name:             params.Name,
		Price:            params.Price,
		Perishable:       params.Perishable,
		RequiresShipping: params.RequiresShipping,
		Weight:           params.Weight,
		Expired:          params.Expired,
		quantity:         params.Quantity,
	}, nil
}

// Quantity returns the number of units currently in stock.
func (p *Product) Quantity() int {
	return p.quantity
}

// HasStock reports whether n units are available.
func (p *Product) HasStock(n int) bool {
	return n <= p.quantity
}

// ReduceQuantity removes n units from stock. Stock never goes negative.
func (p *Product) ReduceQuantity(n int) error {
	if n <= 0 {
		return ErrInvalidQuantity
	}

	if !p.HasStock(n) {
		return NewInsufficientStockError(p.Name)
	}

	p.quantity -= n
	return nil
}
