package pricing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/pricing"
	"github.com/resale/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// RateInfo is an exchange-rate sample from a provider
type RateInfo struct {
	JPYPerUSD decimal.Decimal `json:"jpy_per_usd"`
	Source    string          `json:"source"` // live, cache or fallback
	FetchedAt time.Time       `json:"fetched_at"`
}

// RateProvider supplies the current JPY/USD exchange rate. Implementations
// may cache or fall back to a fixed rate; the profit engine itself never
// fetches anything.
type RateProvider interface {
	Current(ctx context.Context) (RateInfo, error)
}

// ProfitService provides application-level profit calculation operations
type ProfitService struct {
	engine  *pricing.Engine
	reports pricing.ReportRepository
	rates   RateProvider
}

// NewProfitService creates a new ProfitService
func NewProfitService(engine *pricing.Engine, reports pricing.ReportRepository, rates RateProvider) *ProfitService {
	return &ProfitService{engine: engine, reports: reports, rates: rates}
}

// ComputeRequest represents a request to run a profit calculation
type ComputeRequest struct {
	Title            string          `json:"title"`
	SellingPriceUSD  decimal.Decimal `json:"selling_price_usd" binding:"required"`
	SupplierPriceJPY decimal.Decimal `json:"supplier_price_jpy" binding:"required"`
	WeightGrams      int             `json:"weight_grams" binding:"required,gt=0"`
	Destination      string          `json:"destination" binding:"required,len=2"`
	Category         string          `json:"category"`
	// JPYPerUSD is optional; when zero the configured rate provider is asked
	JPYPerUSD      decimal.Decimal `json:"jpy_per_usd"`
	FeeMode        string          `json:"fee_mode" binding:"omitempty,oneof=category flat"`
	Methods        []string        `json:"methods"`
	StrictCategory bool            `json:"strict_category"`
	// Save persists the result to the calculation history
	Save bool `json:"save"`
}

// ComputeResponse represents a finished profit calculation
type ComputeResponse struct {
	Report     pricing.ProfitReport `json:"report"`
	RateSource string               `json:"rate_source,omitempty"`
	RecordID   *uuid.UUID           `json:"record_id,omitempty"`
}

// MaxPurchaseResponse represents the target-margin purchase price helper result
type MaxPurchaseResponse struct {
	MaxPurchasePriceJPY decimal.Decimal `json:"max_purchase_price_jpy"`
	TargetMargin        decimal.Decimal `json:"target_margin"`
}

// Compute runs the profit calculation, resolving the exchange rate from the
// provider when the request does not carry one, and optionally persists the
// result
func (s *ProfitService) Compute(ctx context.Context, req ComputeRequest) (*ComputeResponse, error) {
	rate := req.JPYPerUSD
	rateSource := "request"
	if rate.IsZero() {
		if s.rates == nil {
			return nil, fmt.Errorf("no exchange rate given and no rate provider configured")
		}
		info, err := s.rates.Current(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve exchange rate: %w", err)
		}
		rate = info.JPYPerUSD
		rateSource = info.Source
	}

	feeMode := pricing.FeeModeCategory
	if req.FeeMode != "" {
		parsed, err := pricing.ParseFeeMode(req.FeeMode)
		if err != nil {
			return nil, err
		}
		feeMode = parsed
	}

	var methods []shipping.Method
	for _, name := range req.Methods {
		m, err := shipping.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	report, err := s.engine.Compute(pricing.ComputeInput{
		SellingPriceUSD:  req.SellingPriceUSD,
		SupplierPriceJPY: req.SupplierPriceJPY,
		WeightGrams:      req.WeightGrams,
		Destination:      req.Destination,
		Category:         req.Category,
		JPYPerUSD:        rate,
		FeeMode:          feeMode,
		Methods:          methods,
		StrictCategory:   req.StrictCategory,
	})
	if err != nil {
		return nil, err
	}

	resp := &ComputeResponse{Report: report, RateSource: rateSource}
	if req.Save && s.reports != nil {
		record := pricing.NewReportRecord(req.Title, req.Category, req.Destination, req.WeightGrams, report)
		if err := s.reports.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save profit report: %w", err)
		}
		resp.RecordID = &record.ID
	}
	return resp, nil
}

// FeeRate resolves the category fee rate, never failing
func (s *ProfitService) FeeRate(category string) decimal.Decimal {
	return s.engine.FeeRate(category)
}

// MaxPurchasePrice returns the highest supplier price that keeps the target
// margin after the flat marketplace fee
func (s *ProfitService) MaxPurchasePrice(sellingPriceJPY, targetMargin decimal.Decimal) (*MaxPurchaseResponse, error) {
	max, err := s.engine.MaxPurchasePrice(sellingPriceJPY, targetMargin)
	if err != nil {
		return nil, err
	}
	return &MaxPurchaseResponse{
		MaxPurchasePriceJPY: max.Amount(),
		TargetMargin:        targetMargin,
	}, nil
}

// History returns a page of persisted profit calculations, newest first
func (s *ProfitService) History(ctx context.Context, page, pageSize int) ([]pricing.ReportRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.reports.FindPage(ctx, page, pageSize)
}

// csvHeader is the column layout of the history export
var csvHeader = []string{
	"id", "created_at", "title", "category", "destination", "weight_grams",
	"method", "selling_price_usd", "supplier_cost_usd", "shipping_cost_usd",
	"fee_amount_usd", "total_cost_usd", "profit_usd", "margin_percent",
	"fee_rate", "fee_mode", "jpy_per_usd",
}

// WriteHistoryCSV streams the full calculation history as CSV
func (s *ProfitService) WriteHistoryCSV(ctx context.Context, w io.Writer) error {
	records, err := s.reports.FindAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.ID.String(),
			r.CreatedAt.Format(time.RFC3339),
			r.Title,
			r.Category,
			r.Destination,
			fmt.Sprintf("%d", r.WeightGrams),
			r.Method,
			r.SellingPrice.StringFixed(2),
			r.SupplierCost.StringFixed(2),
			r.ShippingCost.StringFixed(2),
			r.FeeAmount.StringFixed(2),
			r.TotalCost.StringFixed(2),
			r.Profit.StringFixed(2),
			r.MarginPercent.StringFixed(2),
			r.FeeRate.String(),
			r.FeeMode,
			r.JPYPerUSD.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
