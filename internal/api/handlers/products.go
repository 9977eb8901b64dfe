package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"product-compare/internal/api/middleware"
	"product-compare/internal/api/models"
	"product-compare/internal/export"
	"product-compare/internal/model"
	"product-compare/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler serves the JSON API over session ledgers.
type ProductHandler struct {
	store  *session.Store
	logger *zap.Logger
}

func NewProductHandler(store *session.Store, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{store: store, logger: logger}
}

// GetState handles GET /api/v1/state
func (h *ProductHandler) GetState(c *gin.Context) {
	snap := h.store.Open(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)
	c.JSON(http.StatusOK, models.StateResponse{Snapshot: snap, Labels: labelsInfo(snap.Language)})
}

// AddProduct handles POST /api/v1/products
func (h *ProductHandler) AddProduct(c *gin.Context) {
	snap := h.store.Open(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)

	var req models.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A field of the wrong type is reported like an unparseable form field.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			writeError(c, fmt.Errorf("%w: %s", model.ErrMissingField, typeErr.Field), snap.Language)
			return
		}
		writeBadRequest(c, err)
		return
	}
	p, err := req.Product()
	if err != nil {
		h.logger.Debug("product rejected", zap.String("session_id", snap.ID), zap.Error(err))
		writeError(c, err, snap.Language)
		return
	}

	stored, snap := h.store.Add(snap.ID, p)
	c.JSON(http.StatusCreated, models.AddProductResponse{Product: stored, Count: len(snap.Products)})
}

// ClearProducts handles DELETE /api/v1/products
func (h *ProductHandler) ClearProducts(c *gin.Context) {
	snap := h.store.Clear(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)
	c.JSON(http.StatusOK, models.StateResponse{Snapshot: snap, Labels: labelsInfo(snap.Language)})
}

// Calculate handles POST /api/v1/calculate
func (h *ProductHandler) Calculate(c *gin.Context) {
	snap, err := h.store.Calculate(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)
	if err != nil {
		writeError(c, err, snap.Language)
		return
	}
	h.logger.Info("comparison calculated",
		zap.String("session_id", snap.ID),
		zap.Int("products", snap.Summary.Count),
		zap.Float64("price_cv_percent", snap.Summary.MetricValue),
		zap.String("best_product_id", snap.Summary.BestProductID))
	c.JSON(http.StatusOK, models.CalculateResponse{Summary: *snap.Summary, Labels: labelsInfo(snap.Language)})
}

// ToggleLanguage handles POST /api/v1/language/toggle
func (h *ProductHandler) ToggleLanguage(c *gin.Context) {
	snap := h.store.ToggleLanguage(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)
	c.JSON(http.StatusOK, models.LanguageResponse{Language: string(snap.Language)})
}

// ExportCSV handles GET /api/v1/products.csv
func (h *ProductHandler) ExportCSV(c *gin.Context) {
	snap := h.store.Open(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "products.csv"))
	c.Status(http.StatusOK)
	if err := export.WriteProductsCSV(c.Writer, snap.Products, snap.Summary); err != nil {
		h.logger.Error("csv export failed", zap.String("session_id", snap.ID), zap.Error(err))
	}
}
