package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apppricing "github.com/resale/backend/internal/application/pricing"
	"github.com/resale/backend/internal/interfaces/http/dto"
)

// FXHandler exposes the current exchange rate
type FXHandler struct {
	BaseHandler
	rates apppricing.RateProvider
}

// NewFXHandler creates a new FXHandler
func NewFXHandler(rates apppricing.RateProvider) *FXHandler {
	return &FXHandler{rates: rates}
}

// RegisterRoutes registers exchange-rate routes
func (h *FXHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/fx/rate", h.Rate)
}

// Rate returns the current JPY/USD rate and where it came from
func (h *FXHandler) Rate(c *gin.Context) {
	info, err := h.rates.Current(c.Request.Context())
	if err != nil {
		h.Error(c, http.StatusBadGateway, dto.ErrCodeUpstream, "Exchange rate is unavailable")
		return
	}
	h.Success(c, info)
}
