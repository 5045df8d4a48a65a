package pricing

import (
	"github.com/resale/backend/internal/domain/shared/valueobject"
	"github.com/resale/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// ProfitReport is the immutable result of one profit calculation.
// All monetary figures are USD rounded to two decimal places.
type ProfitReport struct {
	SellingPrice valueobject.Money `json:"selling_price"`
	SupplierCost valueobject.Money `json:"supplier_cost"`
	ShippingCost valueobject.Money `json:"shipping_cost"`
	FeeAmount    valueobject.Money `json:"fee_amount"`
	TotalCost    valueobject.Money `json:"total_cost"`
	Profit       valueobject.Money `json:"profit"`

	// MarginPercent is profit over selling price; MarginOnCost is profit
	// over the supplier purchase price (zero when the supplier price is zero)
	MarginPercent decimal.Decimal `json:"margin_percent"`
	MarginOnCost  decimal.Decimal `json:"margin_on_cost"`

	FeeRate   decimal.Decimal `json:"fee_rate"`
	FeeMode   FeeMode         `json:"fee_mode"`
	JPYPerUSD decimal.Decimal `json:"jpy_per_usd"`
	Quote     shipping.Quote  `json:"quote"`
}

// Profitable reports whether the calculation came out ahead
func (r ProfitReport) Profitable() bool {
	return r.Profit.IsPositive()
}
