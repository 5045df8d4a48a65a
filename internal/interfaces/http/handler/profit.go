package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apppricing "github.com/resale/backend/internal/application/pricing"
	"github.com/resale/backend/internal/interfaces/http/dto"
)

// ProfitHandler exposes the profit calculation operations
type ProfitHandler struct {
	BaseHandler
	profits *apppricing.ProfitService
}

// NewProfitHandler creates a new ProfitHandler
func NewProfitHandler(profits *apppricing.ProfitService) *ProfitHandler {
	return &ProfitHandler{profits: profits}
}

// RegisterRoutes registers profit and fee routes
func (h *ProfitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/profit")
	g.POST("/compute", h.Compute)
	g.GET("/history", h.History)
	g.GET("/history/export", h.ExportHistory)
	g.GET("/max-purchase-price", h.MaxPurchasePrice)

	rg.GET("/fees/:category", h.FeeRate)
}

// Compute runs a profit calculation and optionally persists it
func (h *ProfitHandler) Compute(c *gin.Context) {
	var req apppricing.ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.profits.Compute(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// History returns a page of persisted calculations, newest first
func (h *ProfitHandler) History(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	records, total, err := h.profits.History(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, total, req.Page, req.PageSize)
}

// ExportHistory streams the full calculation history as a CSV download
func (h *ProfitHandler) ExportHistory(c *gin.Context) {
	filename := fmt.Sprintf("profit-history-%s.csv", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := h.profits.WriteHistoryCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers are already out; all we can do is abort the stream
		_ = c.Error(err)
	}
}

// maxPurchaseQuery is the query of GET /profit/max-purchase-price.
// Amounts arrive as strings so decimal parsing stays exact.
type maxPurchaseQuery struct {
	SellingPriceJPY string `form:"selling_price_jpy" binding:"required"`
	TargetMargin    string `form:"target_margin" binding:"required"`
}

// MaxPurchasePrice returns the highest supplier price that still meets the
// target margin
func (h *ProfitHandler) MaxPurchasePrice(c *gin.Context) {
	var q maxPurchaseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindingError(c, err)
		return
	}

	selling, err := decimal.NewFromString(q.SellingPriceJPY)
	if err != nil {
		h.BadRequest(c, "selling_price_jpy must be a number")
		return
	}
	margin, err := decimal.NewFromString(q.TargetMargin)
	if err != nil {
		h.BadRequest(c, "target_margin must be a number")
		return
	}

	resp, err := h.profits.MaxPurchasePrice(selling, margin)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// FeeRateResponse is the body of GET /fees/:category
type FeeRateResponse struct {
	Category string          `json:"category"`
	Rate     decimal.Decimal `json:"rate"`
}

// FeeRate resolves the fee rate for a category, falling back to the
// default rate for unknown categories
func (h *ProfitHandler) FeeRate(c *gin.Context) {
	category := c.Param("category")
	h.Success(c, FeeRateResponse{
		Category: category,
		Rate:     h.profits.FeeRate(category),
	})
}
