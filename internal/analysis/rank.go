package analysis

import (
	"sort"

	"product-compare/internal/model"
)

// RankedProduct is a product with its position in a unit price ranking.
type RankedProduct struct {
	model.Product
	Rank      int
	UnitPrice float64
}

// RankByUnitPrice sorts products ascending by price/quantity.
// Equal unit prices keep ledger order, so Rank 1 always matches Summarize's best product.
// Products with a non-positive quantity or a price per unit too large to represent
// cannot be ranked and are skipped.
func RankByUnitPrice(products []model.Product) []RankedProduct {
	out := make([]RankedProduct, 0, len(products))
	for _, p := range products {
		if checkProduct(p) != nil {
			continue
		}
		out = append(out, RankedProduct{Product: p, UnitPrice: p.UnitPrice()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UnitPrice < out[j].UnitPrice
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
