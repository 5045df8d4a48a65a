package handler

import (
	"github.com/gin-gonic/gin"

	applisting "github.com/resale/backend/internal/application/listing"
)

// ItemHandler exposes sold-listing searches
type ItemHandler struct {
	BaseHandler
	search *applisting.SearchService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(search *applisting.SearchService) *ItemHandler {
	return &ItemHandler{search: search}
}

// RegisterRoutes registers item routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/items/search", h.Search)
}

// searchQuery is the query of GET /items/search
type searchQuery struct {
	Keyword string `form:"keyword" binding:"required"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Search returns sold listings matching the keyword
func (h *ItemHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindingError(c, err)
		return
	}

	items, err := h.search.Search(c.Request.Context(), q.Keyword, q.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
