package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quick-checkout/internal/cart"
	"quick-checkout/internal/config"
	"quick-checkout/internal/model"
	"quick-checkout/internal/printer"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	shipping ShippingService
	printer  printer.Printer
	config   config.CheckoutConfig
	logger   zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	shipping ShippingService,
	printer printer.Printer,
	cfg config.CheckoutConfig,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		shipping: shipping,
		printer:  printer,
		config:   cfg,
		logger:   logger.With().Str("service", "checkout").Logger(),
	}
}

// checkoutAttempt tracks the state of a single call to Checkout.
type checkoutAttempt struct {
	state  model.CheckoutState
	logger zerolog.Logger
}

func (a *checkoutAttempt) advance(next model.CheckoutState) {
	a.logger.Debug().
		Str("from", a.state.String()).
		Str("to", next.String()).
		Msg("checkout state changed")
	a.state = next
}

func (a *checkoutAttempt) abort(err error) error {
	code := ""
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		code = domainErr.Code
	}

	a.logger.Warn().
		Err(err).
		Str("code", code).
		Str("reached", a.state.String()).
		Msg("checkout aborted")
	a.state = model.StateAborted
	return err
}

// Checkout runs the validation, payment, shipping and receipt steps in order
// and stops at the first failure. Validation failures leave the customer
// balance untouched. Checkout is not transactional: once payment is deducted
// the remaining steps always run, and if printing fails the receipt is
// returned together with the error.
func (s *checkoutService) Checkout(ctx context.Context, customer *model.Customer, c *cart.Cart) (*model.Receipt, error) {
	if customer == nil || c == nil {
		s.logger.Warn().
			Bool("has_customer", customer != nil).
			Bool("has_cart", c != nil).
			Msg("invalid checkout request")
		return nil, model.ErrInvalidCheckout
	}

	attemptID := uuid.New()
	logger := s.logger.With().
		Str("checkout_id", attemptID.String()).
		Str("customer", customer.Name).
		Logger()
	attempt := &checkoutAttempt{state: model.StateStart, logger: logger}

	if err := ctx.Err(); err != nil {
		return nil, attempt.abort(fmt.Errorf("checkout cancelled: %w", err))
	}

	if c.IsEmpty() {
		return nil, attempt.abort(model.ErrEmptyCart)
	}
	attempt.advance(model.StateCartValidated)

	items := c.Items()
	if err := s.validateItems(items); err != nil {
		return nil, attempt.abort(err)
	}
	attempt.advance(model.StateExpiryValidated)

	if err := ctx.Err(); err != nil {
		return nil, attempt.abort(fmt.Errorf("checkout cancelled: %w", err))
	}

	total := c.TotalAmount()
	if !customer.Deduct(total) {
		attempt.logger.Debug().
			Str("total", total.String()).
			Str("balance", customer.Balance().String()).
			Msg("balance does not cover total")
		return nil, attempt.abort(model.ErrInsufficientBalance)
	}
	attempt.advance(model.StatePaymentDeducted)

	if s.config.DecrementStock {
		if err := s.reduceStock(items); err != nil {
			attempt.logger.Error().Err(err).Msg("failed to reduce stock after payment")
			return nil, fmt.Errorf("failed to reduce stock: %w", err)
		}
	}

	notice := s.shipping.Ship(ctx, items)
	receipt := s.buildReceipt(attemptID, customer, c, items, notice)

	if err := s.printer.PrintShipmentNotice(notice); err != nil {
		attempt.logger.Error().Err(err).Msg("failed to print shipment notice")
		receipt.State = attempt.state
		return receipt, fmt.Errorf("failed to print shipment notice: %w", err)
	}
	attempt.advance(model.StateShipped)

	if err := s.printer.PrintReceipt(receipt); err != nil {
		attempt.logger.Error().Err(err).Msg("failed to print receipt")
		receipt.State = attempt.state
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	attempt.advance(model.StateReceiptPrinted)
	receipt.State = attempt.state

	attempt.logger.Info().
		Int("item_count", len(items)).
		Str("subtotal", receipt.Subtotal.String()).
		Str("shipping_fee", receipt.ShippingFee.String()).
		Str("total", receipt.TotalAmount.String()).
		Str("balance_after", receipt.BalanceAfter.String()).
		Msg("checkout completed successfully")

	return receipt, nil
}

// validateItems rejects the first expired product in insertion order. When
// stock decrement is enabled it also re-checks stock, summing lines that
// share a product.
func (s *checkoutService) validateItems(items []cart.Item) error {
	requested := make(map[*model.Product]int, len(items))

	for _, item := range items {
		if item.Product.Expired {
			return model.NewExpiredProductError(item.Product.Name)
		}

		if s.config.DecrementStock {
			requested[item.Product] += item.Quantity
			if !item.Product.HasStock(requested[item.Product]) {
				return model.NewInsufficientStockError(item.Product.Name)
			}
		}
	}

	return nil
}

func (s *checkoutService) reduceStock(items []cart.Item) error {
	for _, item := range items {
		if err := item.Product.ReduceQuantity(item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *checkoutService) buildReceipt(
	id uuid.UUID,
	customer *model.Customer,
	c *cart.Cart,
	items []cart.Item,
	notice *model.ShipmentNotice,
) *model.Receipt {
	lines := make([]model.ReceiptLine, len(items))
	for i, item := range items {
		lines[i] = model.ReceiptLine{
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			TotalPrice:  item.TotalPrice(),
		}
	}

	return &model.Receipt{
		ID:           id,
		CustomerName: customer.Name,
		Lines:        lines,
		Subtotal:     c.Subtotal(),
		ShippingFee:  c.ShippingFee(),
		TotalAmount:  c.TotalAmount(),
		BalanceAfter: customer.Balance(),
		Shipment:     notice,
		CreatedAt:    time.Now(),
	}
}
