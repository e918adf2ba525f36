package printer

import (
	"fmt"
	"io"
	"strings"

	"quick-checkout/internal/model"

	"github.com/rs/zerolog"
)

// Printer renders checkout output for a human reader.
type Printer interface {
	// PrintShipmentNotice writes the shipment notice.
	PrintShipmentNotice(notice *model.ShipmentNotice) error

	// PrintReceipt writes the checkout receipt.
	PrintReceipt(receipt *model.Receipt) error
}

const receiptSeparator = "------------------------"

// textPrinter implements Printer with plain text lines.
type textPrinter struct {
	out    io.Writer
	logger zerolog.Logger
}

// NewTextPrinter creates a printer writing plain text to out.
func NewTextPrinter(out io.Writer, logger zerolog.Logger) Printer {
	return &textPrinter{
		out:    out,
		logger: logger.With().Str("component", "printer").Logger(),
	}
}

// PrintShipmentNotice writes one line per shipped item with its weight in
// whole grams, followed by the package weight in kilograms.
func (p *textPrinter) PrintShipmentNotice(notice *model.ShipmentNotice) error {
	var b strings.Builder

	b.WriteString("** Shipment notice **\n")
	for _, line := range notice.Lines {
		fmt.Fprintf(&b, "%dx %s   %dg\n", line.Quantity, line.ProductName, line.Weight.IntPart())
	}
	fmt.Fprintf(&b, "Total package weight %skg\n\n", notice.TotalWeightKg().String())

	return p.write("shipment notice", b.String())
}

// PrintReceipt writes the purchased lines and totals. Amounts are truncated
// toward zero.
func (p *textPrinter) PrintReceipt(receipt *model.Receipt) error {
	var b strings.Builder

	b.WriteString("** Checkout receipt **\n")
	for _, line := range receipt.Lines {
		fmt.Fprintf(&b, "%dx %s   %d\n", line.Quantity, line.ProductName, line.TotalPrice.IntPart())
	}
	b.WriteString(receiptSeparator + "\n")
	fmt.Fprintf(&b, "Subtotal   %d\n", receipt.Subtotal.IntPart())
	fmt.Fprintf(&b, "Shipping   %d\n", receipt.ShippingFee.IntPart())
	fmt.Fprintf(&b, "Amount     %d\n", receipt.TotalAmount.IntPart())
	fmt.Fprintf(&b, "Customer balance after payment: %d\n", receipt.BalanceAfter.IntPart())

	return p.write("receipt", b.String())
}

func (p *textPrinter) write(what, text string) error {
	if _, err := io.WriteString(p.out, text); err != nil {
		p.logger.Error().Err(err).Str("output", what).Msg("failed to write output")
		return fmt.Errorf("failed to print %s: %w", what, err)
	}
	return nil
}

// nopPrinter discards all output.
type nopPrinter struct{}

// NewNop creates a printer that discards all output.
func NewNop() Printer {
	return nopPrinter{}
}

func (nopPrinter) PrintShipmentNotice(*model.ShipmentNotice) error { return nil }

func (nopPrinter) PrintReceipt(*model.Receipt) error { return nil }
