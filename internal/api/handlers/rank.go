package handlers

import (
	"net/http"

	"product-compare/internal/analysis"
	"product-compare/internal/api/middleware"
	"product-compare/internal/api/models"
	"product-compare/internal/session"

	"github.com/gin-gonic/gin"
)

// RankHandler handles ranking-related requests
type RankHandler struct {
	store *session.Store
}

// NewRankHandler creates a new rank handler
func NewRankHandler(store *session.Store) *RankHandler {
	return &RankHandler{store: store}
}

// RankProducts handles GET /api/v1/products/ranked
func (h *RankHandler) RankProducts(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	snap := h.store.Open(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)

	ranked := analysis.RankByUnitPrice(snap.Products)

	// Apply limit
	if req.Limit > 0 && req.Limit < len(ranked) {
		ranked = ranked[:req.Limit]
	}

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.NewRanking(r)
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
