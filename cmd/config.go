package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultLocationDesignation = "WA23Issaquah"
	DefaultBasePrice           = "100.00"
)

type Config struct {
	LocationDesignation string
	BasePrice           string
	BillingSchedule     string
	OccupancySchedule   string
	LogLevel            string
}

// WithDefaults fills the fields that have a default and were left empty.
// Empty schedules stay empty and keep their job disabled.
func (c Config) WithDefaults() Config {
	if c.LocationDesignation == "" {
		c.LocationDesignation = DefaultLocationDesignation
	}
	if c.BasePrice == "" {
		c.BasePrice = DefaultBasePrice
	}
	return c
}

func (c Config) ParseBasePrice() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(c.BasePrice)
	if err != nil {
		return decimal.Zero, fmt.Errorf("BASE_PRICE %q: %w", c.BasePrice, err)
	}
	return price, nil
}

func (c Config) ParseLogLevel() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
