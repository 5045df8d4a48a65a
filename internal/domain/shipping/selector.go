package shipping

import (
	"sort"

	"github.com/resale/backend/internal/domain/shared"
)

// Selector evaluates the available shipping methods for a destination and
// weight against the rate table and picks the cheapest. All operations are
// pure reads over the immutable tables and safe for concurrent use.
type Selector struct {
	rates *RateTable
	zones *ZoneMap
}

// NewSelector creates a Selector over the given tables
func NewSelector(rates *RateTable, zones *ZoneMap) *Selector {
	return &Selector{rates: rates, zones: zones}
}

// Quote returns the cheapest shipping option for the weight and destination.
// When methods are given, only those are considered; otherwise every method
// present in the destination zone is evaluated. Ties on cost are broken by
// the fixed method priority order.
//
// Returns ErrUnknownDestination when the country has no zone and
// ErrWeightOutOfRange when no eligible bracket covers the weight.
func (s *Selector) Quote(weightGrams int, countryCode string, methods ...Method) (Quote, error) {
	options, err := s.options(weightGrams, countryCode, methods)
	if err != nil {
		return Quote{}, err
	}
	best := options[0]
	for _, q := range options[1:] {
		if q.CheaperThan(best) {
			best = q
		}
	}
	return best, nil
}

// Options returns every eligible shipping option for the weight and
// destination, sorted by cost ascending (priority order on ties)
func (s *Selector) Options(weightGrams int, countryCode string, methods ...Method) ([]Quote, error) {
	options, err := s.options(weightGrams, countryCode, methods)
	if err != nil {
		return nil, err
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].CheaperThan(options[j])
	})
	return options, nil
}

// ZoneInfo returns the country entry behind a destination code
func (s *Selector) ZoneInfo(countryCode string) (Country, error) {
	return s.zones.Country(countryCode)
}

func (s *Selector) options(weightGrams int, countryCode string, methods []Method) ([]Quote, error) {
	if weightGrams <= 0 {
		return nil, shared.ErrInvalidInput
	}

	zone, err := s.zones.Zone(countryCode)
	if err != nil {
		return nil, err
	}

	if len(methods) == 0 {
		methods = s.rates.MethodsForZone(zone)
	}

	var options []Quote
	for _, method := range methods {
		b, ok := s.rates.lookup(zone, method, weightGrams)
		if !ok {
			continue
		}
		options = append(options, Quote{
			Method:       method,
			Cost:         b.cost,
			Zone:         zone,
			DeliveryDays: b.deliveryDays,
		})
	}
	if len(options) == 0 {
		return nil, shared.ErrWeightOutOfRange
	}
	return options, nil
}
