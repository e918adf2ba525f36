package cart

import (
	"errors"
	"testing"

	"quick-checkout/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string, price, quantity int, ships bool, weight int) *model.Product {
	t.Helper()

	p, err := model.NewProduct(model.ProductParams{
		Name:             name,
		Price:            decimal.NewFromInt(int64(price)),
		Quantity:         quantity,
		RequiresShipping: ships,
		Weight:           decimal.NewFromInt(int64(weight)),
	})
	require.NoError(t, err)
	return p
}

func TestCart_Add(t *testing.T) {
	tests := []struct {
		name        string
		stock       int
		quantity    int
		expectedErr error
	}{
		{name: "Quantity below stock", stock: 10, quantity: 4},
		{name: "Quantity equal to stock", stock: 5, quantity: 5},
		{name: "Quantity above stock", stock: 5, quantity: 6, expectedErr: model.ErrInsufficientStock},
		{name: "Zero quantity", stock: 5, quantity: 0, expectedErr: model.ErrInvalidQuantity},
		{name: "Negative quantity", stock: 5, quantity: -1, expectedErr: model.ErrInvalidQuantity},
		{name: "Out of stock", stock: 0, quantity: 1, expectedErr: model.ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil, zerolog.Nop())
			p := newProduct(t, "Cheese", 100, tt.stock, true, 200)

			err := c.Add(p, tt.quantity)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				assert.True(t, c.IsEmpty())
				assert.Equal(t, 0, c.Len())
			} else {
				require.NoError(t, err)
				require.Equal(t, 1, c.Len())
				assert.Equal(t, tt.quantity, c.Items()[0].Quantity)
				assert.Same(t, p, c.Items()[0].Product)
			}

			// Adding never reserves stock.
			assert.Equal(t, tt.stock, p.Quantity())
		})
	}
}

func TestCart_Add_InsufficientStockNamesProduct(t *testing.T) {
	c := New(nil, zerolog.Nop())
	tv := newProduct(t, "TV", 5000, 5, true, 10000)

	err := c.Add(tv, 6)

	var domainErr *model.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, model.ErrCodeInsufficientStock, domainErr.Code)
	assert.Equal(t, "TV", domainErr.Subject)

	// The failure is non-fatal; the cart keeps accepting items.
	require.NoError(t, c.Add(tv, 5))
	assert.Equal(t, 1, c.Len())
}

func TestCart_Add_NilProduct(t *testing.T) {
	c := New(nil, zerolog.Nop())

	err := c.Add(nil, 1)

	assert.True(t, errors.Is(err, model.ErrInvalidProduct))
	assert.True(t, c.IsEmpty())
}

func TestCart_Items_PreservesOrderAndReturnsCopy(t *testing.T) {
	c := New(nil, zerolog.Nop())
	names := []string{"Cheese", "Biscuits", "ScratchCard", "TV"}
	for _, name := range names {
		require.NoError(t, c.Add(newProduct(t, name, 1, 10, true, 1), 1))
	}

	items := c.Items()
	for i, name := range names {
		assert.Equal(t, name, items[i].Product.Name)
	}

	items[0].Quantity = 99
	items[1] = Item{}
	assert.Equal(t, 1, c.Items()[0].Quantity)
	assert.Equal(t, "Biscuits", c.Items()[1].Product.Name)
	assert.Equal(t, 4, c.Len())
}

func TestCart_Pricing_WorkedExample(t *testing.T) {
	c := New(nil, zerolog.Nop())

	require.NoError(t, c.Add(newProduct(t, "Cheese", 100, 10, true, 200), 4))
	require.NoError(t, c.Add(newProduct(t, "Biscuits", 150, 15, true, 700), 1))
	require.NoError(t, c.Add(newProduct(t, "ScratchCard", 50, 20, false, 0), 1))
	require.NoError(t, c.Add(newProduct(t, "TV", 5000, 5, true, 10000), 2))

	assert.Equal(t, "10600", c.Subtotal().String())
	assert.Equal(t, "21500", c.ShippableWeight().String())
	assert.Equal(t, "215", c.ShippingFee().String())
	assert.Equal(t, "10815", c.TotalAmount().String())
}

func TestCart_ShippingFee(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		ships    bool
		weight   int
		quantity int
		expected string
	}{
		{name: "Empty weight", ships: true, weight: 0, quantity: 1, expected: "0"},
		{name: "One kilogram", ships: true, weight: 1000, quantity: 1, expected: "10"},
		{name: "Fractional kilogram", ships: true, weight: 333, quantity: 1, expected: "3.33"},
		{name: "Quantity multiplies weight", ships: true, weight: 250, quantity: 4, expected: "10"},
		{name: "Not shippable is free", ships: false, weight: 50000, quantity: 3, expected: "0"},
		{
			name:     "Custom rate",
			config:   &Config{ShippingRatePerKg: decimal.RequireFromString("2.5")},
			ships:    true,
			weight:   2000,
			quantity: 1,
			expected: "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.config, zerolog.Nop())
			require.NoError(t, c.Add(newProduct(t, "Item", 10, 100, tt.ships, tt.weight), tt.quantity))

			assert.Equal(t, tt.expected, c.ShippingFee().String())
		})
	}
}

func TestCart_ShippingFee_EmptyCart(t *testing.T) {
	c := New(nil, zerolog.Nop())

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal().IsZero())
	assert.True(t, c.ShippingFee().IsZero())
	assert.True(t, c.TotalAmount().IsZero())
}

func TestCart_ShippingFee_MonotonicInWeight(t *testing.T) {
	previous := decimal.Zero
	for weight := 0; weight <= 5000; weight += 125 {
		c := New(nil, zerolog.Nop())
		require.NoError(t, c.Add(newProduct(t, "Box", 1, 1, true, weight), 1))

		fee := c.ShippingFee()
		assert.True(t, fee.GreaterThanOrEqual(previous), "fee decreased at weight %d", weight)
		previous = fee
	}
}

func TestCart_TotalAmount_NoRoundingDrift(t *testing.T) {
	prices := []string{"0.1", "0.2", "19.99", "3.333", "1000000.01"}
	weights := []string{"0.3", "1", "333.3", "7", "12345.678"}

	c := New(nil, zerolog.Nop())
	for i := range prices {
		p, err := model.NewProduct(model.ProductParams{
			Name:             "P",
			Price:            decimal.RequireFromString(prices[i]),
			Quantity:         100,
			RequiresShipping: i%2 == 0,
			Weight:           decimal.RequireFromString(weights[i]),
		})
		require.NoError(t, err)
		require.NoError(t, c.Add(p, i+1))

		assert.True(t, c.Subtotal().Add(c.ShippingFee()).Equal(c.TotalAmount()))
	}
}
