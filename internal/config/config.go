package config

import (
	"fmt"
	"os"
	"strconv"

	"quick-checkout/internal/cart"

	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	Logger   LoggerConfig
	Checkout CheckoutConfig
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// CheckoutConfig holds pricing and checkout behaviour configuration.
type CheckoutConfig struct {
	ShippingRatePerKg decimal.Decimal

	// DecrementStock re-checks stock before payment and reduces it after a
	// successful checkout. Off by default: stock is only checked when items
	// are added to a cart.
	DecrementStock bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Checkout: CheckoutConfig{
			ShippingRatePerKg: getEnvAsDecimal("SHIPPING_RATE_PER_KG", decimal.NewFromInt(10)),
			DecrementStock:    getEnvAsBool("CHECKOUT_DECREMENT_STOCK", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
		Checkout: CheckoutConfig{
			ShippingRatePerKg: decimal.NewFromInt(10),
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Checkout.ShippingRatePerKg.IsNegative() {
		return fmt.Errorf("invalid shipping rate: %s (must not be negative)", c.Checkout.ShippingRatePerKg)
	}

	return nil
}

// CartConfig returns the cart pricing configuration.
func (c *CheckoutConfig) CartConfig() *cart.Config {
	return &cart.Config{
		ShippingRatePerKg: c.ShippingRatePerKg,
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDecimal retrieves an environment variable as a decimal or returns a default value.
func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if decValue, err := decimal.NewFromString(value); err == nil {
			return decValue
		}
	}
	return defaultValue
}
