package shipping

import (
	"github.com/resale/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// QuoteService provides application-level shipping quote operations
type QuoteService struct {
	selector *shipping.Selector
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(selector *shipping.Selector) *QuoteService {
	return &QuoteService{selector: selector}
}

// QuoteResponse represents a shipping quote in API responses
type QuoteResponse struct {
	Method       string          `json:"method"`
	CostJPY      decimal.Decimal `json:"cost_jpy"`
	Zone         int             `json:"zone"`
	DeliveryDays string          `json:"delivery_days,omitempty"`
}

// ZoneInfoResponse represents a destination's zone entry
type ZoneInfoResponse struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Zone        int    `json:"zone"`
}

// WeightEstimateResponse represents an estimated packed weight
type WeightEstimateResponse struct {
	Grams int `json:"grams"`
}

func toQuoteResponse(q shipping.Quote) QuoteResponse {
	return QuoteResponse{
		Method:       q.Method.String(),
		CostJPY:      q.Cost.Amount(),
		Zone:         int(q.Zone),
		DeliveryDays: q.DeliveryDays,
	}
}

// Quote returns the cheapest shipping option for a weight and destination.
// Method names are parsed case-insensitively; an empty list means every
// method available in the destination zone.
func (s *QuoteService) Quote(weightGrams int, destination string, methodNames []string) (QuoteResponse, error) {
	methods, err := parseMethods(methodNames)
	if err != nil {
		return QuoteResponse{}, err
	}
	quote, err := s.selector.Quote(weightGrams, destination, methods...)
	if err != nil {
		return QuoteResponse{}, err
	}
	return toQuoteResponse(quote), nil
}

// Options returns every eligible shipping option sorted by cost
func (s *QuoteService) Options(weightGrams int, destination string) ([]QuoteResponse, error) {
	options, err := s.selector.Options(weightGrams, destination)
	if err != nil {
		return nil, err
	}
	responses := make([]QuoteResponse, len(options))
	for i, q := range options {
		responses[i] = toQuoteResponse(q)
	}
	return responses, nil
}

// ZoneInfo resolves a destination country's zone entry
func (s *QuoteService) ZoneInfo(countryCode string) (ZoneInfoResponse, error) {
	c, err := s.selector.ZoneInfo(countryCode)
	if err != nil {
		return ZoneInfoResponse{}, err
	}
	return ZoneInfoResponse{
		CountryCode: c.Code,
		CountryName: c.Name,
		Zone:        int(c.Zone),
	}, nil
}

// EstimateWeight guesses an item's packed weight from category and title
func (s *QuoteService) EstimateWeight(category, title string) WeightEstimateResponse {
	return WeightEstimateResponse{Grams: shipping.EstimateWeight(category, title)}
}

func parseMethods(names []string) ([]shipping.Method, error) {
	if len(names) == 0 {
		return nil, nil
	}
	methods := make([]shipping.Method, len(names))
	for i, name := range names {
		m, err := shipping.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		methods[i] = m
	}
	return methods, nil
}
