package ledger

import (
	"product-compare/internal/model"

	"github.com/google/uuid"
)

// Ledger is the ordered list of products entered in one session.
// Insertion order is display order and breaks ties when ranking.
// It only ever grows by Append or empties by Clear; records are never edited.
type Ledger struct {
	products []model.Product
}

func New() *Ledger {
	return &Ledger{}
}

// Append adds p at the end and returns the stored record.
// Validation is the caller's job (see ParseInput); Append only assigns an ID when p has none.
func (l *Ledger) Append(p model.Product) model.Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	l.products = append(l.products, p)
	return p
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.products = nil
}

func (l *Ledger) Len() int {
	return len(l.products)
}

// Snapshot returns a copy of the products in insertion order.
func (l *Ledger) Snapshot() []model.Product {
	out := make([]model.Product, len(l.products))
	copy(out, l.products)
	return out
}
