package pricing

import (
	"fmt"

	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ExchangeRate converts between JPY and USD. The convention is fixed:
// the rate is the number of yen that buy one dollar (JPY per USD), so
// USD = JPY / rate and JPY = USD * rate.
type ExchangeRate struct {
	jpyPerUSD decimal.Decimal
}

// NewExchangeRate creates an ExchangeRate from a JPY-per-USD quote.
// Zero or negative rates are a caller error, never silently coerced.
func NewExchangeRate(jpyPerUSD decimal.Decimal) (ExchangeRate, error) {
	if !jpyPerUSD.IsPositive() {
		return ExchangeRate{}, shared.ErrInvalidRate
	}
	return ExchangeRate{jpyPerUSD: jpyPerUSD}, nil
}

// NewExchangeRateFromFloat creates an ExchangeRate from a float JPY-per-USD quote
func NewExchangeRateFromFloat(jpyPerUSD float64) (ExchangeRate, error) {
	return NewExchangeRate(decimal.NewFromFloat(jpyPerUSD))
}

// JPYPerUSD returns the raw rate
func (r ExchangeRate) JPYPerUSD() decimal.Decimal {
	return r.jpyPerUSD
}

// ToUSD converts a JPY amount to USD (divide by the rate)
func (r ExchangeRate) ToUSD(m valueobject.Money) (valueobject.Money, error) {
	if m.Currency() != valueobject.JPY {
		return valueobject.Money{}, fmt.Errorf("ToUSD expects JPY, got %s", m.Currency())
	}
	return valueobject.NewMoney(m.Amount().Div(r.jpyPerUSD), valueobject.USD)
}

// ToJPY converts a USD amount to JPY (multiply by the rate)
func (r ExchangeRate) ToJPY(m valueobject.Money) (valueobject.Money, error) {
	if m.Currency() != valueobject.USD {
		return valueobject.Money{}, fmt.Errorf("ToJPY expects USD, got %s", m.Currency())
	}
	return valueobject.NewMoney(m.Amount().Mul(r.jpyPerUSD), valueobject.JPY)
}
