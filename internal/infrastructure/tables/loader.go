package tables

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/resale/backend/internal/domain/pricing"
	"github.com/resale/backend/internal/domain/shipping"
)

// LoadRateTable builds a shipping rate table from the CSV at path.
// An empty path loads the compiled-in defaults.
//
// Expected columns: method, zone, weight_min_g, weight_max_g, cost_jpy,
// delivery_days. A blank or zero weight_max_g marks an open-ended bracket.
func LoadRateTable(path string) (*shipping.RateTable, error) {
	if path == "" {
		return shipping.NewRateTable(DefaultRateEntries())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rates file: %w", err)
	}
	defer f.Close()

	entries, err := parseRateEntries(f)
	if err != nil {
		return nil, fmt.Errorf("rates file %s: %w", path, err)
	}
	return shipping.NewRateTable(entries)
}

func parseRateEntries(src io.Reader) ([]shipping.RateEntry, error) {
	cr, err := newCSVReader(src)
	if err != nil {
		return nil, err
	}
	if err := cr.requireColumns("method", "zone", "weight_min_g", "weight_max_g", "cost_jpy"); err != nil {
		return nil, err
	}

	var entries []shipping.RateEntry
	for {
		r, err := cr.readRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if r.isEmpty() {
			continue
		}

		method, err := shipping.ParseMethod(r.get("method"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		zone, err := strconv.Atoi(r.get("zone"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid zone %q", r.line, r.get("zone"))
		}
		minGrams, err := strconv.Atoi(r.get("weight_min_g"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid weight_min_g %q", r.line, r.get("weight_min_g"))
		}
		maxGrams := shipping.OpenEnded
		if raw := r.get("weight_max_g"); raw != "" {
			maxGrams, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid weight_max_g %q", r.line, raw)
			}
		}
		cost, err := decimal.NewFromString(r.get("cost_jpy"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid cost_jpy %q", r.line, r.get("cost_jpy"))
		}

		entries = append(entries, shipping.RateEntry{
			Method:       method,
			Zone:         shipping.Zone(zone),
			MinGrams:     minGrams,
			MaxGrams:     maxGrams,
			CostJPY:      cost,
			DeliveryDays: r.get("delivery_days"),
		})
	}
	return entries, nil
}

// LoadZoneMap builds the country-to-zone mapping from the CSV at path.
// An empty path loads the compiled-in defaults. A defaultZone above zero
// makes unmapped countries resolve to that zone instead of failing.
//
// Expected columns: country_code, zone. country_name is optional.
func LoadZoneMap(path string, defaultZone int) (*shipping.ZoneMap, error) {
	var countries []shipping.Country
	if path == "" {
		countries = DefaultCountries()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open zones file: %w", err)
		}
		defer f.Close()

		countries, err = parseCountries(f)
		if err != nil {
			return nil, fmt.Errorf("zones file %s: %w", path, err)
		}
	}

	var opts []shipping.ZoneMapOption
	if defaultZone > 0 {
		opts = append(opts, shipping.WithDefaultZone(shipping.Zone(defaultZone)))
	}
	return shipping.NewZoneMap(countries, opts...)
}

func parseCountries(src io.Reader) ([]shipping.Country, error) {
	cr, err := newCSVReader(src)
	if err != nil {
		return nil, err
	}
	if err := cr.requireColumns("country_code", "zone"); err != nil {
		return nil, err
	}

	var countries []shipping.Country
	for {
		r, err := cr.readRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if r.isEmpty() {
			continue
		}

		zone, err := strconv.Atoi(r.get("zone"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid zone %q", r.line, r.get("zone"))
		}
		countries = append(countries, shipping.Country{
			Code: strings.ToUpper(r.get("country_code")),
			Name: r.get("country_name"),
			Zone: shipping.Zone(zone),
		})
	}
	return countries, nil
}

// LoadFeeSchedule builds the marketplace fee schedule from the CSV at path.
// An empty path loads the compiled-in defaults.
//
// Expected columns: category, rate. Rates are fractions, e.g. 0.1275.
func LoadFeeSchedule(path string) (*pricing.FeeSchedule, error) {
	if path == "" {
		return pricing.NewFeeSchedule(DefaultFeeRates())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fees file: %w", err)
	}
	defer f.Close()

	rates, err := parseFeeRates(f)
	if err != nil {
		return nil, fmt.Errorf("fees file %s: %w", path, err)
	}
	return pricing.NewFeeSchedule(rates)
}

func parseFeeRates(src io.Reader) (map[string]decimal.Decimal, error) {
	cr, err := newCSVReader(src)
	if err != nil {
		return nil, err
	}
	if err := cr.requireColumns("category", "rate"); err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal)
	for {
		r, err := cr.readRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if r.isEmpty() {
			continue
		}

		rate, err := decimal.NewFromString(r.get("rate"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid rate %q", r.line, r.get("rate"))
		}
		rates[strings.ToLower(r.get("category"))] = rate
	}
	return rates, nil
}
