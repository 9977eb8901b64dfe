package models

import (
	"fmt"
	"strings"

	"product-compare/internal/ledger"
	"product-compare/internal/model"
)

// AddProductRequest is the JSON body of POST /api/v1/products.
// Pointers distinguish an absent number from zero.
type AddProductRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *float64 `json:"quantity"`
}

// Product validates the request the same way the HTML form is validated.
func (r AddProductRequest) Product() (model.Product, error) {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if r.Price == nil {
		missing = append(missing, "price")
	}
	if r.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return model.Product{}, fmt.Errorf("%w: %s", model.ErrMissingField, strings.Join(missing, ", "))
	}

	p := model.Product{Name: strings.TrimSpace(r.Name), Price: *r.Price, Quantity: *r.Quantity}
	if err := ledger.ValidateProduct(p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// RankRequest holds the query of GET /api/v1/products/ranked.
type RankRequest struct {
	Limit int `form:"limit,omitempty" binding:"omitempty,gte=0"` // 0 = all
}
