package model

import "fmt"

// Standard error codes for checkout failures
const (
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeInsufficientStock   = "INSUFFICIENT_STOCK"
	ErrCodeExpiredProduct      = "EXPIRED_PRODUCT"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidProduct      = "INVALID_PRODUCT"
	ErrCodeInvalidCustomer     = "INVALID_CUSTOMER"
	ErrCodeInvalidCheckout     = "INVALID_CHECKOUT"
)

// DomainError is a recoverable business-rule failure. Subject names the
// offending product or field when there is one.
type DomainError struct {
	Code    string
	Message string
	Subject string
}

func (e *DomainError) Error() string {
	if e.Subject == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Subject)
}

// Is reports whether target is a DomainError with the same code, so that
// product-specific errors still match their sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "cart is empty")
	ErrInsufficientStock   = NewDomainError(ErrCodeInsufficientStock, "not enough stock for product")
	ErrExpiredProduct      = NewDomainError(ErrCodeExpiredProduct, "product is expired")
	ErrInsufficientBalance = NewDomainError(ErrCodeInsufficientBalance, "insufficient balance")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "quantity must be greater than zero")
	ErrInvalidProduct      = NewDomainError(ErrCodeInvalidProduct, "invalid product")
	ErrInvalidCustomer     = NewDomainError(ErrCodeInvalidCustomer, "invalid customer")
	ErrInvalidCheckout     = NewDomainError(ErrCodeInvalidCheckout, "checkout requires a customer and a cart")
)

// NewInsufficientStockError reports that the named product cannot cover a request.
func NewInsufficientStockError(productName string) *DomainError {
	return withSubject(ErrInsufficientStock, productName)
}

// NewExpiredProductError reports that the named product is expired.
func NewExpiredProductError(productName string) *DomainError {
	return withSubject(ErrExpiredProduct, productName)
}

// NewInvalidProductError reports which product attribute failed validation.
func NewInvalidProductError(reason string) *DomainError {
	return withSubject(ErrInvalidProduct, reason)
}

// NewInvalidCustomerError reports which customer attribute failed validation.
func NewInvalidCustomerError(reason string) *DomainError {
	return withSubject(ErrInvalidCustomer, reason)
}

func withSubject(base *DomainError, subject string) *DomainError {
	return &DomainError{
		Code:    base.Code,
		Message: base.Message,
		Subject: subject,
	}
}
