package shipping

import (
	"fmt"
	"sort"

	"github.com/resale/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OpenEnded marks a bracket with no upper weight bound ("over X grams")
const OpenEnded = 0

// RateEntry is one row of the shipping rate table: a weight bracket for a
// method in a zone, priced in JPY
type RateEntry struct {
	Method       Method
	Zone         Zone
	MinGrams     int
	MaxGrams     int // OpenEnded for the final "over X" bracket
	CostJPY      decimal.Decimal
	DeliveryDays string // e.g. "3-6"
}

// bracket is a validated weight bracket within a method's rate ladder
type bracket struct {
	minGrams     int
	maxGrams     int
	cost         valueobject.Money
	deliveryDays string
}

// covers reports whether the bracket includes the given weight.
// Upper bounds are inclusive: exactly 500g falls in the "up to 500g" bracket.
func (b bracket) covers(weightGrams int) bool {
	if weightGrams < b.minGrams {
		return false
	}
	return b.maxGrams == OpenEnded || weightGrams <= b.maxGrams
}

// RateTable holds the shipping rate brackets for every (zone, method) pair.
// It is immutable after construction; updates require building a new table.
type RateTable struct {
	ladders map[Zone]map[Method][]bracket
}

// NewRateTable builds a RateTable from raw entries and validates that each
// (zone, method) ladder has contiguous, non-overlapping, monotonically
// increasing brackets with at most one open-ended final bracket.
func NewRateTable(entries []RateEntry) (*RateTable, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("rate table has no entries")
	}

	ladders := make(map[Zone]map[Method][]bracket)
	for _, e := range entries {
		if !e.Method.IsValid() {
			return nil, fmt.Errorf("rate entry has unknown method %q", e.Method)
		}
		if e.MinGrams < 0 {
			return nil, fmt.Errorf("%s zone %d: negative minimum weight %d", e.Method, e.Zone, e.MinGrams)
		}
		if e.MaxGrams != OpenEnded && e.MaxGrams < e.MinGrams {
			return nil, fmt.Errorf("%s zone %d: bracket max %dg below min %dg", e.Method, e.Zone, e.MaxGrams, e.MinGrams)
		}
		if e.CostJPY.IsNegative() {
			return nil, fmt.Errorf("%s zone %d: negative cost %s", e.Method, e.Zone, e.CostJPY)
		}
		if ladders[e.Zone] == nil {
			ladders[e.Zone] = make(map[Method][]bracket)
		}
		ladders[e.Zone][e.Method] = append(ladders[e.Zone][e.Method], bracket{
			minGrams:     e.MinGrams,
			maxGrams:     e.MaxGrams,
			cost:         valueobject.NewMoneyJPY(e.CostJPY),
			deliveryDays: e.DeliveryDays,
		})
	}

	for zone, methods := range ladders {
		for method, ladder := range methods {
			sort.Slice(ladder, func(i, j int) bool {
				return ladder[i].minGrams < ladder[j].minGrams
			})
			if err := validateLadder(ladder); err != nil {
				return nil, fmt.Errorf("%s zone %d: %w", method, zone, err)
			}
			methods[method] = ladder
		}
	}

	return &RateTable{ladders: ladders}, nil
}

// validateLadder enforces the bracket invariants on a sorted ladder:
// contiguous, non-overlapping, with at most one trailing open-ended bracket
func validateLadder(ladder []bracket) error {
	for i, b := range ladder {
		if b.maxGrams == OpenEnded && i != len(ladder)-1 {
			return fmt.Errorf("open-ended bracket must be last")
		}
		if i > 0 {
			prev := ladder[i-1]
			if prev.maxGrams == OpenEnded {
				return fmt.Errorf("open-ended bracket must be last")
			}
			// Inclusive upper bounds, so the next bracket starts one gram above
			if b.minGrams != prev.maxGrams+1 {
				return fmt.Errorf("brackets not contiguous at %dg", b.minGrams)
			}
		}
	}
	return nil
}

// Zones returns the zones present in the table, ascending
func (t *RateTable) Zones() []Zone {
	zones := make([]Zone, 0, len(t.ladders))
	for z := range t.ladders {
		zones = append(zones, z)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i] < zones[j] })
	return zones
}

// MethodsForZone returns the methods available in a zone, in priority order
func (t *RateTable) MethodsForZone(zone Zone) []Method {
	methods := t.ladders[zone]
	result := make([]Method, 0, len(methods))
	for _, m := range AllMethods() {
		if _, ok := methods[m]; ok {
			result = append(result, m)
		}
	}
	return result
}

// lookup finds the bracket covering weightGrams for a method in a zone.
// The second return is false when the method is absent or no bracket covers
// the weight.
func (t *RateTable) lookup(zone Zone, method Method, weightGrams int) (bracket, bool) {
	ladder, ok := t.ladders[zone][method]
	if !ok {
		return bracket{}, false
	}
	for _, b := range ladder {
		if b.covers(weightGrams) {
			return b, true
		}
	}
	return bracket{}, false
}
