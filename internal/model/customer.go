package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is an account holder paying for a checkout.
type Customer struct {
	ID   uuid.UUID
	Name string

	balance decimal.Decimal
}

// NewCustomer creates a customer with an initial balance.
func NewCustomer(name string, balance decimal.Decimal) (*Customer, error) {
	if balance.IsNegative() {
		return nil, NewInvalidCustomerError("balance must not be negative")
	}

	return &Customer{
		ID:      uuid.New(),
		Name:    name,
		balance: balance,
	}, nil
}

// Balance returns the current balance.
func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

// Deduct subtracts amount from the balance. It returns false and leaves the
// balance untouched when amount is negative or exceeds the balance.
func (c *Customer) Deduct(amount decimal.Decimal) bool {
	if amount.IsNegative() || amount.GreaterThan(c.balance) {
		return false
	}

	c.balance = c.balance.Sub(amount)
	return true
}
