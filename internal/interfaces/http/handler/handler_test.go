package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	applisting "github.com/resale/backend/internal/application/listing"
	apppricing "github.com/resale/backend/internal/application/pricing"
	appshipping "github.com/resale/backend/internal/application/shipping"
	"github.com/resale/backend/internal/domain/pricing"
	"github.com/resale/backend/internal/domain/shipping"
	"github.com/resale/backend/internal/infrastructure/catalogdata"
	"github.com/resale/backend/internal/infrastructure/tables"
	"github.com/resale/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryReportRepository keeps saved reports in a slice
type memoryReportRepository struct {
	records []pricing.ReportRecord
}

func (r *memoryReportRepository) Save(ctx context.Context, record *pricing.ReportRecord) error {
	r.records = append(r.records, *record)
	return nil
}

func (r *memoryReportRepository) FindPage(ctx context.Context, page, pageSize int) ([]pricing.ReportRecord, int64, error) {
	start := (page - 1) * pageSize
	if start >= len(r.records) {
		return nil, int64(len(r.records)), nil
	}
	end := start + pageSize
	if end > len(r.records) {
		end = len(r.records)
	}
	return r.records[start:end], int64(len(r.records)), nil
}

func (r *memoryReportRepository) FindAll(ctx context.Context) ([]pricing.ReportRecord, error) {
	return r.records, nil
}

// fixedRateProvider always reports one rate
type fixedRateProvider struct {
	rate decimal.Decimal
}

func (p fixedRateProvider) Current(ctx context.Context) (apppricing.RateInfo, error) {
	return apppricing.RateInfo{JPYPerUSD: p.rate, Source: "live"}, nil
}

// testSelector runs over the compiled-in default tables
func testSelector(t *testing.T) *shipping.Selector {
	t.Helper()
	rates, err := shipping.NewRateTable(tables.DefaultRateEntries())
	require.NoError(t, err)
	zones, err := shipping.NewZoneMap(tables.DefaultCountries())
	require.NoError(t, err)
	return shipping.NewSelector(rates, zones)
}

func testEngine(t *testing.T) *pricing.Engine {
	t.Helper()
	fees, err := pricing.NewFeeSchedule(tables.DefaultFeeRates())
	require.NoError(t, err)
	return pricing.NewEngine(testSelector(t), fees, decimal.NewFromFloat(0.13))
}

type testEnv struct {
	engine  *gin.Engine
	reports *memoryReportRepository
}

// newTestEnv wires every handler against in-process fixtures
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	reports := &memoryReportRepository{}
	profits := apppricing.NewProfitService(testEngine(t), reports, fixedRateProvider{rate: decimal.NewFromInt(150)})
	quotes := appshipping.NewQuoteService(testSelector(t))
	search := applisting.NewSearchService(catalogdata.NewStaticCatalog())

	engine := gin.New()
	router.NewRouter(engine).
		Register(NewShippingHandler(quotes)).
		Register(NewProfitHandler(profits)).
		Register(NewFXHandler(fixedRateProvider{rate: decimal.NewFromInt(150)})).
		Register(NewItemHandler(search)).
		Setup()
	NewHealthHandler(nil, nil).Register(engine)

	return &testEnv{engine: engine, reports: reports}
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}
