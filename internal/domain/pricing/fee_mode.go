package pricing

import (
	"fmt"

	"github.com/resale/backend/internal/domain/shared"
)

// FeeMode selects how the marketplace fee rate is resolved. The two modes
// are an explicit enumerated option so a calculation never silently mixes
// them.
type FeeMode string

const (
	// FeeModeCategory resolves the rate from the category fee schedule
	FeeModeCategory FeeMode = "category"
	// FeeModeFlat applies the engine's fixed flat rate regardless of category
	FeeModeFlat FeeMode = "flat"
)

// IsValid returns true for a known fee mode
func (m FeeMode) IsValid() bool {
	return m == FeeModeCategory || m == FeeModeFlat
}

// String returns the mode name
func (m FeeMode) String() string {
	return string(m)
}

// ParseFeeMode parses a fee mode name
func ParseFeeMode(s string) (FeeMode, error) {
	switch FeeMode(s) {
	case FeeModeCategory:
		return FeeModeCategory, nil
	case FeeModeFlat:
		return FeeModeFlat, nil
	default:
		return "", shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown fee mode: %q", s))
	}
}
