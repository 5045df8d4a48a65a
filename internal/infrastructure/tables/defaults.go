package tables

import (
	"github.com/shopspring/decimal"

	"github.com/resale/backend/internal/domain/shipping"
)

// methodLadder describes the built-in bracket ladder for one shipping method.
// Costs are the zone 1 price per bracket; each further zone adds zoneStep.
type methodLadder struct {
	method       shipping.Method
	baseCosts    []int64 // one per bracket, in JPY
	openEnded    bool    // last bracket covers everything above maxGrams
	maxZone      shipping.Zone
	zoneStep     int64
	deliveryDays string
}

// bracketBounds is the shared 500g bracket grid up to 2kg
var bracketBounds = [][2]int{
	{0, 500},
	{501, 1000},
	{1001, 1500},
	{1501, 2000},
}

var defaultLadders = []methodLadder{
	{shipping.MethodEPacket, []int64{700, 1000, 1300, 1600}, false, 3, 200, "7-14"},
	{shipping.MethodSmallPacket, []int64{650, 950, 1250, 1550}, false, 4, 150, "7-21"},
	{shipping.MethodEMS, []int64{1400, 2000, 2800, 3600, 4400}, true, 4, 400, "3-6"},
	{shipping.MethodAir, []int64{1200, 1800, 2400, 3000, 3600}, true, 4, 300, "6-10"},
	{shipping.MethodSAL, []int64{800, 1200, 1600, 2000, 2400}, true, 4, 200, "14-21"},
	{shipping.MethodSurface, []int64{600, 900, 1200, 1500, 1800}, true, 4, 150, "30-60"},
}

// DefaultRateEntries returns the compiled-in Japan Post rate table used when
// no rates CSV is configured. ePacket stops at zone 3 and, like SmallPacket,
// does not accept parcels above 2kg.
func DefaultRateEntries() []shipping.RateEntry {
	var entries []shipping.RateEntry
	for _, ladder := range defaultLadders {
		for zone := shipping.Zone(1); zone <= ladder.maxZone; zone++ {
			surcharge := int64(zone-1) * ladder.zoneStep
			for i, cost := range ladder.baseCosts {
				entry := shipping.RateEntry{
					Method:       ladder.method,
					Zone:         zone,
					CostJPY:      decimal.NewFromInt(cost + surcharge),
					DeliveryDays: ladder.deliveryDays,
				}
				if i < len(bracketBounds) {
					entry.MinGrams = bracketBounds[i][0]
					entry.MaxGrams = bracketBounds[i][1]
				} else {
					// Open-ended bracket above the 2kg grid
					entry.MinGrams = bracketBounds[len(bracketBounds)-1][1] + 1
					entry.MaxGrams = shipping.OpenEnded
				}
				entries = append(entries, entry)
			}
		}
	}
	return entries
}

// DefaultCountries returns the compiled-in country-to-zone mapping
func DefaultCountries() []shipping.Country {
	return []shipping.Country{
		{Code: "US", Name: "United States", Zone: 1},
		{Code: "CA", Name: "Canada", Zone: 1},
		{Code: "MX", Name: "Mexico", Zone: 1},

		{Code: "AU", Name: "Australia", Zone: 2},
		{Code: "NZ", Name: "New Zealand", Zone: 2},
		{Code: "CN", Name: "China", Zone: 2},
		{Code: "KR", Name: "South Korea", Zone: 2},
		{Code: "TW", Name: "Taiwan", Zone: 2},
		{Code: "HK", Name: "Hong Kong", Zone: 2},
		{Code: "SG", Name: "Singapore", Zone: 2},
		{Code: "TH", Name: "Thailand", Zone: 2},
		{Code: "MY", Name: "Malaysia", Zone: 2},
		{Code: "PH", Name: "Philippines", Zone: 2},
		{Code: "VN", Name: "Vietnam", Zone: 2},
		{Code: "ID", Name: "Indonesia", Zone: 2},
		{Code: "IN", Name: "India", Zone: 2},

		{Code: "GB", Name: "United Kingdom", Zone: 3},
		{Code: "DE", Name: "Germany", Zone: 3},
		{Code: "FR", Name: "France", Zone: 3},
		{Code: "IT", Name: "Italy", Zone: 3},
		{Code: "ES", Name: "Spain", Zone: 3},
		{Code: "NL", Name: "Netherlands", Zone: 3},
		{Code: "BE", Name: "Belgium", Zone: 3},
		{Code: "SE", Name: "Sweden", Zone: 3},
		{Code: "NO", Name: "Norway", Zone: 3},
		{Code: "DK", Name: "Denmark", Zone: 3},
		{Code: "FI", Name: "Finland", Zone: 3},
		{Code: "CH", Name: "Switzerland", Zone: 3},
		{Code: "AT", Name: "Austria", Zone: 3},
		{Code: "PL", Name: "Poland", Zone: 3},
		{Code: "PT", Name: "Portugal", Zone: 3},
		{Code: "IE", Name: "Ireland", Zone: 3},

		{Code: "BR", Name: "Brazil", Zone: 4},
		{Code: "AR", Name: "Argentina", Zone: 4},
		{Code: "CL", Name: "Chile", Zone: 4},
		{Code: "ZA", Name: "South Africa", Zone: 4},
		{Code: "EG", Name: "Egypt", Zone: 4},
		{Code: "NG", Name: "Nigeria", Zone: 4},
		{Code: "TR", Name: "Turkey", Zone: 4},
		{Code: "SA", Name: "Saudi Arabia", Zone: 4},
		{Code: "AE", Name: "United Arab Emirates", Zone: 4},
	}
}

// DefaultFeeRates returns the compiled-in marketplace fee schedule
func DefaultFeeRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"default":             decimal.NewFromFloat(0.1275),
		"motors_vehicles":     decimal.NewFromFloat(0.04),
		"collectibles":        decimal.NewFromFloat(0.15),
		"electronics":         decimal.NewFromFloat(0.0875),
		"business_industrial": decimal.NewFromFloat(0.1275),
		"fashion":             decimal.NewFromFloat(0.1275),
		"home_garden":         decimal.NewFromFloat(0.1275),
		"sports_mem":          decimal.NewFromFloat(0.1275),
		"toys_hobbies":        decimal.NewFromFloat(0.1275),
	}
}
