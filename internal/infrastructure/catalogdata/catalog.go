package catalogdata

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/resale/backend/internal/domain/listing"
)

// StaticCatalog serves sold-listing searches from a fixed in-process data
// set. It stands in for a live marketplace API in development and tests.
type StaticCatalog struct {
	items []listing.Item
}

// NewStaticCatalog creates a catalog over the built-in sample listings
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{items: sampleItems()}
}

// NewStaticCatalogWithItems creates a catalog over the given listings
func NewStaticCatalogWithItems(items []listing.Item) *StaticCatalog {
	return &StaticCatalog{items: items}
}

// Search implements listing.Provider. Matching is case-insensitive over
// title and category; results come back most recently sold first.
func (c *StaticCatalog) Search(ctx context.Context, keyword string, limit int) ([]listing.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil, nil
	}

	var results []listing.Item
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Title), keyword) ||
			strings.Contains(strings.ToLower(item.Category), keyword) {
			results = append(results, item)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].SoldAt.After(results[j].SoldAt)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func soldOn(date string) time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return t
}

func sampleItems() []listing.Item {
	return []listing.Item{
		{
			ID:             "265893442181",
			Title:          "Nintendo Switch Console Gray Complete",
			PriceUSD:       decimal.NewFromFloat(220.00),
			Category:       "Video Games & Consoles",
			Condition:      "Used - Good",
			SoldAt:         soldOn("2024-01-15"),
			EstimatedGrams: 800,
		},
		{
			ID:             "394852963741",
			Title:          "Apple iPhone 13 Pro 256GB Gold Unlocked",
			PriceUSD:       decimal.NewFromFloat(550.00),
			Category:       "Cell Phones & Smartphones",
			Condition:      "Used - Very Good",
			SoldAt:         soldOn("2024-01-18"),
			EstimatedGrams: 200,
		},
		{
			ID:             "175629384756",
			Title:          "SONY WH-1000XM5 Wireless Noise Cancelling Headphones",
			PriceUSD:       decimal.NewFromFloat(300.00),
			Category:       "Consumer Electronics",
			Condition:      "Like New",
			SoldAt:         soldOn("2024-01-20"),
			EstimatedGrams: 250,
		},
		{
			ID:             "284751963852",
			Title:          "LEGO Star Wars Millennium Falcon 75257",
			PriceUSD:       decimal.NewFromFloat(150.00),
			Category:       "Toys & Hobbies",
			Condition:      "Used - Acceptable",
			SoldAt:         soldOn("2024-01-22"),
			EstimatedGrams: 1200,
		},
		{
			ID:             "155847296384",
			Title:          "Canon EOS R6 Mark II Mirrorless Camera Body",
			PriceUSD:       decimal.NewFromFloat(1250.00),
			Category:       "Cameras & Photo",
			Condition:      "New",
			SoldAt:         soldOn("2024-01-25"),
			EstimatedGrams: 670,
		},
		{
			ID:             "265742158963",
			Title:          "Rolex Submariner Date 116610LN Automatic Mens",
			PriceUSD:       decimal.NewFromFloat(8500.00),
			Category:       "Jewelry & Watches",
			Condition:      "Used - Very Good",
			SoldAt:         soldOn("2024-01-28"),
			EstimatedGrams: 150,
		},
		{
			ID:             "374839562741",
			Title:          "Pokemon Card Vintage Charizard Holo",
			PriceUSD:       decimal.NewFromFloat(380.00),
			Category:       "Toys & Hobbies",
			Condition:      "Used - Good",
			SoldAt:         soldOn("2024-01-30"),
			EstimatedGrams: 50,
		},
	}
}
