package handlers

import (
	"fmt"
	"net/http"
	"time"

	"product-compare/internal/api/middleware"
	"product-compare/internal/i18n"
	"product-compare/internal/ledger"
	"product-compare/internal/model"
	"product-compare/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the server-rendered comparison form.
// Successful actions redirect back to "/"; failures re-render the page with the
// error and the submitted form values.
type PageHandler struct {
	store       *session.Store
	revealDelay time.Duration
	logger      *zap.Logger
}

func NewPageHandler(store *session.Store, revealDelay time.Duration, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{store: store, revealDelay: revealDelay, logger: logger}
}

// PageData is what templates/index.html renders.
type PageData struct {
	session.Snapshot
	Labels        i18n.Labels
	Form          ledger.Input
	Error         string
	ErrorKind     model.ErrorKind
	RevealDelayMS int64
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	snap := h.store.Open(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)
	h.render(c, http.StatusOK, snap, ledger.Input{}, nil)
}

// AddProduct handles POST /products
func (h *PageHandler) AddProduct(c *gin.Context) {
	snap := h.store.Open(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)

	var in ledger.Input
	if err := c.ShouldBind(&in); err != nil {
		h.render(c, http.StatusBadRequest, snap, in, fmt.Errorf("%w: %v", model.ErrMissingField, err))
		return
	}
	p, err := ledger.ParseInput(in)
	if err != nil {
		h.render(c, statusFor(model.KindOf(err)), snap, in, err)
		return
	}
	h.store.Add(snap.ID, p)
	c.Redirect(http.StatusSeeOther, "/")
}

// Calculate handles POST /calculate
func (h *PageHandler) Calculate(c *gin.Context) {
	snap, err := h.store.Calculate(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)
	if err != nil {
		h.render(c, statusFor(model.KindOf(err)), snap, ledger.Input{}, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Clear handles POST /clear
func (h *PageHandler) Clear(c *gin.Context) {
	snap := h.store.Clear(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)
	c.Redirect(http.StatusSeeOther, "/")
}

// ToggleLanguage handles POST /language
func (h *PageHandler) ToggleLanguage(c *gin.Context) {
	snap := h.store.ToggleLanguage(middleware.SessionID(c))
	middleware.BindSession(c, snap.ID)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) render(c *gin.Context, status int, snap session.Snapshot, form ledger.Input, err error) {
	lb := i18n.For(snap.Language)
	data := PageData{
		Snapshot:      snap,
		Labels:        lb,
		Form:          form,
		RevealDelayMS: h.revealDelay.Milliseconds(),
	}
	if err != nil {
		data.ErrorKind = model.KindOf(err)
		data.Error = lb.Error(data.ErrorKind)
		h.logger.Debug("action rejected", zap.String("session_id", snap.ID), zap.Error(err))
	}
	c.HTML(status, "index.html", data)
}
