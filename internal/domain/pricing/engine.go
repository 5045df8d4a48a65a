package pricing

import (
	"fmt"

	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
	"github.com/resale/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// DefaultFlatFeeRate is the flat final-value fee applied in FeeModeFlat (13%)
var DefaultFlatFeeRate = decimal.NewFromFloat(0.13)

var hundred = decimal.NewFromInt(100)

// Engine composes shipping selection, fee resolution and currency
// conversion into a single profit calculation. It is a pure function of
// its inputs and the immutable tables behind the selector and schedule,
// so a single Engine is safe for concurrent use.
type Engine struct {
	selector *shipping.Selector
	fees     *FeeSchedule
	flatRate decimal.Decimal
}

// NewEngine creates an Engine. A non-positive flatRate falls back to
// DefaultFlatFeeRate.
func NewEngine(selector *shipping.Selector, fees *FeeSchedule, flatRate decimal.Decimal) *Engine {
	if !flatRate.IsPositive() {
		flatRate = DefaultFlatFeeRate
	}
	return &Engine{selector: selector, fees: fees, flatRate: flatRate}
}

// ComputeInput carries every input of a profit calculation
type ComputeInput struct {
	SellingPriceUSD  decimal.Decimal
	SupplierPriceJPY decimal.Decimal
	WeightGrams      int
	Destination      string
	Category         string
	JPYPerUSD        decimal.Decimal
	FeeMode          FeeMode
	// Methods restricts shipping selection; empty means every method in the zone
	Methods []shipping.Method
	// StrictCategory makes an unmatched category an error instead of the
	// default rate
	StrictCategory bool
}

// Compute runs the full profit calculation:
//
//	supplierUSD = supplierJPY / rate
//	shippingUSD = quote.cost / rate
//	feeUSD      = sellingUSD * feeRate
//	totalUSD    = supplierUSD + shippingUSD + feeUSD
//	profitUSD   = sellingUSD - totalUSD
//	margin%     = profitUSD / sellingUSD * 100
//
// Intermediate arithmetic stays in full decimal precision; the report's
// monetary figures and margins are rounded to two places at the end.
func (e *Engine) Compute(in ComputeInput) (ProfitReport, error) {
	if !in.SellingPriceUSD.IsPositive() {
		return ProfitReport{}, shared.ErrInvalidSellingPrice
	}
	if in.SupplierPriceJPY.IsNegative() {
		return ProfitReport{}, shared.ErrInvalidInput
	}

	rate, err := NewExchangeRate(in.JPYPerUSD)
	if err != nil {
		return ProfitReport{}, err
	}

	feeRate, err := e.resolveFeeRate(in)
	if err != nil {
		return ProfitReport{}, err
	}

	quote, err := e.selector.Quote(in.WeightGrams, in.Destination, in.Methods...)
	if err != nil {
		return ProfitReport{}, err
	}

	supplierCost, err := rate.ToUSD(valueobject.NewMoneyJPY(in.SupplierPriceJPY))
	if err != nil {
		return ProfitReport{}, err
	}
	shippingCost, err := rate.ToUSD(quote.Cost)
	if err != nil {
		return ProfitReport{}, err
	}

	selling := valueobject.NewMoneyUSD(in.SellingPriceUSD)
	feeAmount := selling.Multiply(feeRate)

	totalCost, err := supplierCost.Add(shippingCost)
	if err != nil {
		return ProfitReport{}, err
	}
	totalCost, err = totalCost.Add(feeAmount)
	if err != nil {
		return ProfitReport{}, err
	}

	profit, err := selling.Subtract(totalCost)
	if err != nil {
		return ProfitReport{}, err
	}

	margin := profit.Amount().Div(selling.Amount()).Mul(hundred)
	marginOnCost := decimal.Zero
	if supplierCost.IsPositive() {
		marginOnCost = profit.Amount().Div(supplierCost.Amount()).Mul(hundred)
	}

	return ProfitReport{
		SellingPrice:  selling.Round(2),
		SupplierCost:  supplierCost.Round(2),
		ShippingCost:  shippingCost.Round(2),
		FeeAmount:     feeAmount.Round(2),
		TotalCost:     totalCost.Round(2),
		Profit:        profit.Round(2),
		MarginPercent: margin.Round(2),
		MarginOnCost:  marginOnCost.Round(2),
		FeeRate:       feeRate,
		FeeMode:       in.FeeMode,
		JPYPerUSD:     rate.JPYPerUSD(),
		Quote:         quote,
	}, nil
}

// FeeRate exposes resolution of a fee rate for a category in category mode
func (e *Engine) FeeRate(category string) decimal.Decimal {
	return e.fees.FeeRate(category)
}

// FlatFeeRate returns the rate applied in FeeModeFlat
func (e *Engine) FlatFeeRate() decimal.Decimal {
	return e.flatRate
}

func (e *Engine) resolveFeeRate(in ComputeInput) (decimal.Decimal, error) {
	switch in.FeeMode {
	case FeeModeFlat:
		return e.flatRate, nil
	case FeeModeCategory:
		if in.StrictCategory {
			return e.fees.FeeRateStrict(in.Category)
		}
		return e.fees.FeeRate(in.Category), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown fee mode: %q", in.FeeMode)
	}
}

// MaxPurchasePrice returns the highest supplier price (JPY) that still
// leaves the target margin after the flat marketplace fee, given an expected
// selling price in JPY:
//
//	max = selling / (1 + targetMargin) * (1 - flatFee)
func (e *Engine) MaxPurchasePrice(sellingPriceJPY, targetMargin decimal.Decimal) (valueobject.Money, error) {
	if !sellingPriceJPY.IsPositive() {
		return valueobject.Money{}, shared.ErrInvalidSellingPrice
	}
	if targetMargin.IsNegative() {
		return valueobject.Money{}, shared.ErrInvalidInput
	}
	one := decimal.NewFromInt(1)
	max := sellingPriceJPY.Div(one.Add(targetMargin)).Mul(one.Sub(e.flatRate))
	return valueobject.NewMoneyJPY(max.Round(0)), nil
}
