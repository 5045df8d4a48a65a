package listing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Item is a marketplace listing as returned by an item provider
type Item struct {
	ID             string
	Title          string
	PriceUSD       decimal.Decimal
	Category       string
	Condition      string
	SoldAt         time.Time
	EstimatedGrams int
}

// Provider supplies marketplace listings for a search query. Live API
// access sits behind this interface; the engine itself never performs I/O.
type Provider interface {
	// Search returns sold listings matching the keyword, most recent first,
	// at most limit entries
	Search(ctx context.Context, keyword string, limit int) ([]Item, error)
}
