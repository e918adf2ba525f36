package service

import (
	"context"

	"quick-checkout/internal/cart"
	"quick-checkout/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// shippingService implements ShippingService.
type shippingService struct {
	logger zerolog.Logger
}

// NewShippingService creates a new shipping service.
func NewShippingService(logger zerolog.Logger) ShippingService {
	return &shippingService{
		logger: logger.With().Str("service", "shipping").Logger(),
	}
}

// Ship keeps insertion order and skips items that do not require shipping.
func (s *shippingService) Ship(ctx context.Context, items []cart.Item) *model.ShipmentNotice {
	notice := &model.ShipmentNotice{
		Lines:       make([]model.ShipmentLine, 0, len(items)),
		TotalWeight: decimal.Zero,
	}

	for _, item := range items {
		if !item.Product.RequiresShipping {
			continue
		}

		weight := item.TotalWeight()
		notice.Lines = append(notice.Lines, model.ShipmentLine{
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Weight:      weight,
		})
		notice.TotalWeight = notice.TotalWeight.Add(weight)
	}

	s.logger.Debug().
		Int("line_count", len(notice.Lines)).
		Str("total_weight_kg", notice.TotalWeightKg().String()).
		Msg("shipment notice prepared")

	return notice
}
