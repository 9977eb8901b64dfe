package model

// Product is one entry in a comparison ledger.
// Units:
// - Price: any currency, >= 0
// - Quantity: units per price, > 0 (fractional allowed, e.g. 1.5 kg)
type Product struct {
	ID       string  `json:"id" yaml:"id,omitempty"`
	Name     string  `json:"name" yaml:"name" validate:"required"`
	Price    float64 `json:"price" yaml:"price" validate:"gte=0"`
	Quantity float64 `json:"quantity" yaml:"quantity" validate:"gt=0"`
}

// UnitPrice is price per one unit of quantity.
// Callers must ensure Quantity > 0; see analysis.Summarize.
func (p Product) UnitPrice() float64 {
	return p.Price / p.Quantity
}
