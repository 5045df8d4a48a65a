package pricing

import (
	"fmt"
	"strings"

	"github.com/resale/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultFeeCategory is the schedule entry applied when a category has no
// explicit rate
const DefaultFeeCategory = "default"

// FeeSchedule maps marketplace categories to final-value fee rates.
// Lookups are case-insensitive. Immutable after construction.
type FeeSchedule struct {
	rates map[string]decimal.Decimal
}

// NewFeeSchedule builds a FeeSchedule from category -> rate entries.
// Every rate must lie in [0, 1) and a "default" entry must be present.
func NewFeeSchedule(rates map[string]decimal.Decimal) (*FeeSchedule, error) {
	normalized := make(map[string]decimal.Decimal, len(rates))
	for category, rate := range rates {
		key := strings.ToLower(strings.TrimSpace(category))
		if key == "" {
			return nil, fmt.Errorf("fee schedule has an empty category name")
		}
		if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("fee rate for %q must be in [0, 1), got %s", category, rate)
		}
		normalized[key] = rate
	}
	if _, ok := normalized[DefaultFeeCategory]; !ok {
		return nil, fmt.Errorf("fee schedule must contain a %q entry", DefaultFeeCategory)
	}
	return &FeeSchedule{rates: normalized}, nil
}

// FeeRate returns the fee rate for a category, falling back to the default
// entry for unmatched categories. Never fails.
func (s *FeeSchedule) FeeRate(category string) decimal.Decimal {
	if rate, ok := s.rates[strings.ToLower(strings.TrimSpace(category))]; ok {
		return rate
	}
	return s.rates[DefaultFeeCategory]
}

// FeeRateStrict returns the fee rate for a category or ErrUnknownCategory
// when no exact entry exists. The default entry still matches "default".
func (s *FeeSchedule) FeeRateStrict(category string) (decimal.Decimal, error) {
	if rate, ok := s.rates[strings.ToLower(strings.TrimSpace(category))]; ok {
		return rate, nil
	}
	return decimal.Zero, shared.ErrUnknownCategory
}

// Categories returns the number of explicit entries including the default
func (s *FeeSchedule) Categories() int {
	return len(s.rates)
}
