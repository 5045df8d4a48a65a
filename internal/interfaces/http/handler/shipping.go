package handler

import (
	"github.com/gin-gonic/gin"

	appshipping "github.com/resale/backend/internal/application/shipping"
)

// ShippingHandler exposes shipping quote and zone lookups
type ShippingHandler struct {
	BaseHandler
	quotes *appshipping.QuoteService
}

// NewShippingHandler creates a new ShippingHandler
func NewShippingHandler(quotes *appshipping.QuoteService) *ShippingHandler {
	return &ShippingHandler{quotes: quotes}
}

// RegisterRoutes registers shipping routes
func (h *ShippingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/shipping")
	g.POST("/quote", h.Quote)
	g.GET("/options", h.Options)
	g.GET("/zones/:country", h.ZoneInfo)
	g.POST("/estimate-weight", h.EstimateWeight)
}

// QuoteRequest is the body of POST /shipping/quote
type QuoteRequest struct {
	WeightGrams int      `json:"weight_grams" binding:"required,gt=0"`
	Destination string   `json:"destination" binding:"required,len=2"`
	Methods     []string `json:"methods"`
}

// Quote returns the cheapest shipping option for a weight and destination
func (h *ShippingHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	quote, err := h.quotes.Quote(req.WeightGrams, req.Destination, req.Methods)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}

// OptionsRequest is the query of GET /shipping/options
type OptionsRequest struct {
	WeightGrams int    `form:"weight_grams" binding:"required,gt=0"`
	Destination string `form:"destination" binding:"required,len=2"`
}

// Options returns every eligible shipping option sorted by cost
func (h *ShippingHandler) Options(c *gin.Context) {
	var req OptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	options, err := h.quotes.Options(req.WeightGrams, req.Destination)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, options)
}

// ZoneInfo resolves a destination country's shipping zone
func (h *ShippingHandler) ZoneInfo(c *gin.Context) {
	info, err := h.quotes.ZoneInfo(c.Param("country"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// EstimateWeightRequest is the body of POST /shipping/estimate-weight
type EstimateWeightRequest struct {
	Category string `json:"category"`
	Title    string `json:"title"`
}

// EstimateWeight guesses an item's packed weight from category and title
func (h *ShippingHandler) EstimateWeight(c *gin.Context) {
	var req EstimateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	h.Success(c, h.quotes.EstimateWeight(req.Category, req.Title))
}
