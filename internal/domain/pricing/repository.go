package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportRecord is a persisted profit calculation, one row per Compute call
// the caller chose to keep
type ReportRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string          `gorm:"size:500" json:"title"`
	Category      string          `gorm:"size:200" json:"category"`
	Destination   string          `gorm:"size:2;index" json:"destination"`
	WeightGrams   int             `json:"weight_grams"`
	Method        string          `gorm:"size:50" json:"method"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(14,2)" json:"selling_price"`
	SupplierCost  decimal.Decimal `gorm:"type:decimal(14,2)" json:"supplier_cost"`
	ShippingCost  decimal.Decimal `gorm:"type:decimal(14,2)" json:"shipping_cost"`
	FeeAmount     decimal.Decimal `gorm:"type:decimal(14,2)" json:"fee_amount"`
	TotalCost     decimal.Decimal `gorm:"type:decimal(14,2)" json:"total_cost"`
	Profit        decimal.Decimal `gorm:"type:decimal(14,2)" json:"profit"`
	MarginPercent decimal.Decimal `gorm:"type:decimal(8,2)" json:"margin_percent"`
	FeeRate       decimal.Decimal `gorm:"type:decimal(8,4)" json:"fee_rate"`
	FeeMode       string          `gorm:"size:20" json:"fee_mode"`
	JPYPerUSD     decimal.Decimal `gorm:"type:decimal(10,4)" json:"jpy_per_usd"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
}

// TableName sets the table name for GORM
func (ReportRecord) TableName() string {
	return "profit_reports"
}

// NewReportRecord flattens a ProfitReport into a persistable record
func NewReportRecord(title, category, destination string, weightGrams int, report ProfitReport) *ReportRecord {
	return &ReportRecord{
		ID:            uuid.New(),
		Title:         title,
		Category:      category,
		Destination:   destination,
		WeightGrams:   weightGrams,
		Method:        report.Quote.Method.String(),
		SellingPrice:  report.SellingPrice.Amount(),
		SupplierCost:  report.SupplierCost.Amount(),
		ShippingCost:  report.ShippingCost.Amount(),
		FeeAmount:     report.FeeAmount.Amount(),
		TotalCost:     report.TotalCost.Amount(),
		Profit:        report.Profit.Amount(),
		MarginPercent: report.MarginPercent,
		FeeRate:       report.FeeRate,
		FeeMode:       report.FeeMode.String(),
		JPYPerUSD:     report.JPYPerUSD,
		CreatedAt:     time.Now().UTC(),
	}
}

// ReportRepository persists profit calculation history
type ReportRepository interface {
	Save(ctx context.Context, record *ReportRecord) error
	FindPage(ctx context.Context, page, pageSize int) ([]ReportRecord, int64, error)
	FindAll(ctx context.Context) ([]ReportRecord, error)
}
