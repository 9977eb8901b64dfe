package models

import (
	"product-compare/internal/analysis"
	"product-compare/internal/model"
	"product-compare/internal/session"
)

// StateResponse is the full session as seen by a client.
type StateResponse struct {
	session.Snapshot
	Labels LabelsInfo `json:"labels"`
}

// LabelsInfo carries the texts a client needs to describe the summary in the current language.
type LabelsInfo struct {
	Metric string `json:"metric"`
	Best   string `json:"best"`
	Mean   string `json:"mean"`
}

// AddProductResponse is returned by POST /api/v1/products.
type AddProductResponse struct {
	Product model.Product `json:"product"`
	Count   int           `json:"count"`
}

// CalculateResponse is returned by POST /api/v1/calculate.
type CalculateResponse struct {
	Summary model.DispersionSummary `json:"summary"`
	Labels  LabelsInfo              `json:"labels"`
}

// LanguageResponse is returned by POST /api/v1/language/toggle.
type LanguageResponse struct {
	Language string `json:"language"`
}

// RankResponse represents the response from ranking products
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked product
type Ranking struct {
	Rank      int     `json:"rank"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func NewRanking(r analysis.RankedProduct) Ranking {
	return Ranking{
		Rank:      r.Rank,
		ProductID: r.ID,
		Name:      r.Name,
		Price:     r.Price,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
