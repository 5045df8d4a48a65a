package listing

import (
	"context"
	"time"

	"github.com/resale/backend/internal/domain/listing"
	"github.com/resale/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// DefaultSearchLimit bounds item searches when the caller gives no limit
const DefaultSearchLimit = 20

// SearchService provides application-level item lookup with weight estimates
type SearchService struct {
	provider listing.Provider
}

// NewSearchService creates a new SearchService
func NewSearchService(provider listing.Provider) *SearchService {
	return &SearchService{provider: provider}
}

// ItemResponse represents a marketplace listing in API responses
type ItemResponse struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	PriceUSD       decimal.Decimal `json:"price_usd"`
	Category       string          `json:"category"`
	Condition      string          `json:"condition,omitempty"`
	SoldAt         *time.Time      `json:"sold_at,omitempty"`
	EstimatedGrams int             `json:"estimated_grams"`
}

// Search looks up sold listings and fills in a weight estimate for any item
// the provider returned without one
func (s *SearchService) Search(ctx context.Context, keyword string, limit int) ([]ItemResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultSearchLimit
	}
	items, err := s.provider.Search(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		grams := item.EstimatedGrams
		if grams <= 0 {
			grams = shipping.EstimateWeight(item.Category, item.Title)
		}
		resp := ItemResponse{
			ID:             item.ID,
			Title:          item.Title,
			PriceUSD:       item.PriceUSD,
			Category:       item.Category,
			Condition:      item.Condition,
			EstimatedGrams: grams,
		}
		if !item.SoldAt.IsZero() {
			soldAt := item.SoldAt
			resp.SoldAt = &soldAt
		}
		responses[i] = resp
	}
	return responses, nil
}
