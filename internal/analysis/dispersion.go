package analysis

import (
	"fmt"
	"math"

	"product-compare/internal/model"

	"github.com/montanaflynn/stats"
)

// Summarize compares a ledger snapshot.
//
// MetricValue is the price CV% over every product:
//
//	sqrt(Σ(price - mean)²) / mean * 100
//
// The squared deviations are summed but not divided by n. The best product is
// picked separately, as the lowest price/quantity; ties keep the earliest entry.
//
// Fewer than model.MinProducts products fails with model.ErrInsufficientData.
// A non-positive quantity, a negative or non-finite value, or a zero mean price
// fails with model.ErrInvalidInput before any ratio is taken, as does a price
// per unit too large to represent.
func Summarize(products []model.Product) (*model.DispersionSummary, error) {
	if len(products) < model.MinProducts {
		return nil, fmt.Errorf("%w: need at least %d products, have %d", model.ErrInsufficientData, model.MinProducts, len(products))
	}
	for i, p := range products {
		if err := checkProduct(p); err != nil {
			return nil, fmt.Errorf("product %d: %w", i+1, err)
		}
	}

	// Prices are scaled by the largest one so neither the mean nor the squared
	// deviations overflow for large but finite values. CV% does not depend on the scale.
	scale := 0.0
	for _, p := range products {
		scale = math.Max(scale, p.Price)
	}
	if scale == 0 {
		return nil, fmt.Errorf("%w: mean price is zero", model.ErrInvalidInput)
	}
	scaled := make([]float64, 0, len(products))
	for _, p := range products {
		scaled = append(scaled, p.Price/scale)
	}
	scaledMean, err := stats.Mean(scaled)
	if err != nil {
		return nil, fmt.Errorf("mean price: %w", err)
	}
	if scaledMean == 0 {
		return nil, fmt.Errorf("%w: mean price is zero", model.ErrInvalidInput)
	}

	sumSq := 0.0
	for _, v := range scaled {
		d := v - scaledMean
		sumSq += d * d
	}
	mean := scaledMean * scale

	s := &model.DispersionSummary{
		Metric:      model.MetricPriceCV,
		MetricValue: math.Sqrt(sumSq) / scaledMean * 100,
		MeanPrice:   mean,
		Count:       len(products),
		UnitPrices:  make([]model.UnitPrice, 0, len(products)),
	}

	best := products[0]
	for _, p := range products {
		s.UnitPrices = append(s.UnitPrices, model.UnitPrice{ProductID: p.ID, Name: p.Name, Value: p.UnitPrice()})
		if p.UnitPrice() < best.UnitPrice() {
			best = p
		}
	}
	s.BestProductID = best.ID
	s.BestProductName = best.Name
	s.BestUnitPrice = best.UnitPrice()

	if !finite(s.MetricValue) || !finite(s.MeanPrice) {
		return nil, fmt.Errorf("%w: price dispersion is not a finite number", model.ErrInvalidInput)
	}
	return s, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkProduct(p model.Product) error {
	switch {
	case math.IsNaN(p.Price) || math.IsInf(p.Price, 0):
		return fmt.Errorf("%w: %q price is not a finite number", model.ErrInvalidInput, p.Name)
	case math.IsNaN(p.Quantity) || math.IsInf(p.Quantity, 0):
		return fmt.Errorf("%w: %q quantity is not a finite number", model.ErrInvalidInput, p.Name)
	case p.Quantity <= 0:
		return fmt.Errorf("%w: %q quantity must be > 0", model.ErrInvalidInput, p.Name)
	case p.Price < 0:
		return fmt.Errorf("%w: %q price must be >= 0", model.ErrInvalidInput, p.Name)
	case !finite(p.UnitPrice()):
		return fmt.Errorf("%w: %q price per unit is too large", model.ErrInvalidInput, p.Name)
	}
	return nil
}
