package session

import (
	"time"

	"product-compare/internal/analysis"
	"product-compare/internal/i18n"
	"product-compare/internal/ledger"
	"product-compare/internal/model"
)

// Session is the application state behind one UI: language, ledger and the last summary.
// It is only mutated through the Store.
type Session struct {
	id       string
	lang     i18n.Language
	ledger   *ledger.Ledger
	summary  *model.DispersionSummary
	stale    bool
	showBest bool
	delayed  bool
	lastSeen time.Time
}

func newSession(id string, lang i18n.Language, now time.Time) *Session {
	return &Session{
		id:       id,
		lang:     lang,
		ledger:   ledger.New(),
		lastSeen: now,
	}
}

// Snapshot is an immutable copy of a session, handed to renderers.
type Snapshot struct {
	ID       string                   `json:"session_id"`
	Language i18n.Language            `json:"language"`
	Products []model.Product          `json:"products"`
	Summary  *model.DispersionSummary `json:"summary,omitempty"`

	// Stale is set once a product is added after the summary was computed.
	Stale bool `json:"stale"`
	// ShowBest asks the UI to highlight Summary.BestProductID; DelayReveal asks
	// it to fade the highlight in after the configured reveal delay.
	ShowBest    bool `json:"show_best"`
	DelayReveal bool `json:"delay_reveal"`
}

// IsBest reports whether the product should be highlighted.
func (s Snapshot) IsBest(productID string) bool {
	return s.ShowBest && s.Summary.IsBest(productID)
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		ID:          s.id,
		Language:    s.lang,
		Products:    s.ledger.Snapshot(),
		Stale:       s.stale,
		ShowBest:    s.showBest && s.summary != nil,
		DelayReveal: s.delayed,
	}
	if s.summary != nil {
		sum := *s.summary
		sum.UnitPrices = append([]model.UnitPrice(nil), s.summary.UnitPrices...)
		snap.Summary = &sum
	}
	return snap
}

func (s *Session) add(p model.Product) model.Product {
	stored := s.ledger.Append(p)
	if s.summary != nil {
		s.stale = true
	}
	s.delayed = true
	return stored
}

// calculate leaves the session untouched on error.
func (s *Session) calculate() error {
	sum, err := analysis.Summarize(s.ledger.Snapshot())
	if err != nil {
		return err
	}
	s.summary = sum
	s.stale = false
	s.showBest = true
	s.delayed = false
	return nil
}

func (s *Session) clear() {
	s.ledger.Clear()
	s.summary = nil
	s.stale = false
	s.showBest = false
	s.delayed = false
}
