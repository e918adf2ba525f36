package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutState is the progress of a single checkout attempt.
type CheckoutState int

const (
	StateStart CheckoutState = iota
	StateCartValidated
	StateExpiryValidated
	StatePaymentDeducted
	StateShipped
	StateReceiptPrinted
	StateAborted
)

func (s CheckoutState) String() string {
	switch s {
	case StateStart:
		return "START"
	case StateCartValidated:
		return "CART_VALIDATED"
	case StateExpiryValidated:
		return "EXPIRY_VALIDATED"
	case StatePaymentDeducted:
		return "PAYMENT_DEDUCTED"
	case StateShipped:
		return "SHIPPED"
	case StateReceiptPrinted:
		return "RECEIPT_PRINTED"
	case StateAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// ShipmentLine is one shippable line item in a shipment notice.
type ShipmentLine struct {
	ProductName string
	Quantity    int

	// Weight is the line weight in grams.
	Weight decimal.Decimal
}

// ShipmentNotice summarises the shippable part of a cart.
type ShipmentNotice struct {
	Lines []ShipmentLine

	// TotalWeight is the package weight in grams.
	TotalWeight decimal.Decimal
}

// TotalWeightKg returns the package weight in kilograms.
func (n *ShipmentNotice) TotalWeightKg() decimal.Decimal {
	return n.TotalWeight.Div(decimal.NewFromInt(1000))
}

// ReceiptLine is one purchased line item.
type ReceiptLine struct {
	ProductName string
	Quantity    int
	TotalPrice  decimal.Decimal
}

// Receipt is the result of a successful checkout.
type Receipt struct {
	ID           uuid.UUID
	CustomerName string
	Lines        []ReceiptLine
	Subtotal     decimal.Decimal
	ShippingFee  decimal.Decimal
	TotalAmount  decimal.Decimal
	BalanceAfter decimal.Decimal
	Shipment     *ShipmentNotice
	State        CheckoutState
	CreatedAt    time.Time
}
