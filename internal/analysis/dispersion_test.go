package analysis

import (
	"math"
	"testing"

	"product-compare/internal/model"

	"github.com/stretchr/testify/require"
)

func p(id, name string, price, qty float64) model.Product {
	return model.Product{ID: id, Name: name, Price: price, Quantity: qty}
}

func TestSummarizePriceCV(t *testing.T) {
	products := []model.Product{
		p("1", "small", 10, 1),
		p("2", "medium", 20, 4),
		p("3", "large", 30, 5),
	}

	s, err := Summarize(products)
	require.NoError(t, err)
	require.Equal(t, model.MetricPriceCV, s.Metric)
	require.Equal(t, 3, s.Count)
	require.InDelta(t, 20.0, s.MeanPrice, 1e-9)
	require.InDelta(t, math.Sqrt(200)/20*100, s.MetricValue, 1e-9)
	require.InDelta(t, 70.71, s.MetricValue, 0.005)

	// 10/1=10, 20/4=5, 30/5=6
	require.Equal(t, "2", s.BestProductID)
	require.Equal(t, "medium", s.BestProductName)
	require.InDelta(t, 5.0, s.BestUnitPrice, 1e-9)

	require.Len(t, s.UnitPrices, 3)
	require.Equal(t, "small", s.UnitPrices[0].Name)
	require.InDelta(t, 6.0, s.UnitPrices[2].Value, 1e-9)
}

func TestSummarizeBestIsIndependentOfMetric(t *testing.T) {
	// Same prices in both cases, so the same CV; only quantities change the winner.
	a, err := Summarize([]model.Product{p("a", "A", 10, 2), p("b", "B", 9, 3)})
	require.NoError(t, err)
	b, err := Summarize([]model.Product{p("a", "A", 10, 5), p("b", "B", 9, 1)})
	require.NoError(t, err)

	require.InDelta(t, a.MetricValue, b.MetricValue, 1e-12)
	require.Equal(t, "B", a.BestProductName)
	require.Equal(t, "A", b.BestProductName)
}

func TestSummarizeTieKeepsFirstInserted(t *testing.T) {
	s, err := Summarize([]model.Product{
		p("x", "pricey", 50, 1),
		p("first", "same", 10, 2),
		p("second", "same", 5, 1),
	})
	require.NoError(t, err)
	require.Equal(t, "first", s.BestProductID)
}

func TestSummarizeIdenticalPrices(t *testing.T) {
	s, err := Summarize([]model.Product{p("1", "A", 7, 1), p("2", "B", 7, 1)})
	require.NoError(t, err)
	require.Zero(t, s.MetricValue)
	require.Equal(t, "1", s.BestProductID)
}

func TestSummarizeInsufficientData(t *testing.T) {
	for _, products := range [][]model.Product{nil, {p("1", "A", 1, 1)}} {
		before := append([]model.Product(nil), products...)
		_, err := Summarize(products)
		require.ErrorIs(t, err, model.ErrInsufficientData)
		require.Equal(t, before, products)
	}
}

func TestSummarizeInvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		products []model.Product
	}{
		{"zero quantity", []model.Product{p("1", "A", 1, 1), p("2", "B", 2, 0)}},
		{"negative quantity", []model.Product{p("1", "A", 1, -1), p("2", "B", 2, 1)}},
		{"zero mean", []model.Product{p("1", "A", 0, 1), p("2", "B", 0, 1)}},
		{"negative price", []model.Product{p("1", "A", -5, 1), p("2", "B", 2, 1)}},
		{"nan price", []model.Product{p("1", "A", math.NaN(), 1), p("2", "B", 2, 1)}},
		{"infinite quantity", []model.Product{p("1", "A", 1, math.Inf(1)), p("2", "B", 2, 1)}},
		{"unit price overflow", []model.Product{p("1", "A", 1e308, 1e-10), p("2", "B", 2, 1)}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := Summarize(tc.products)
			require.ErrorIs(t, err, model.ErrInvalidInput)
			require.Nil(t, s)
		})
	}
}

func TestSummarizeIsFiniteAndNonNegative(t *testing.T) {
	products := []model.Product{
		p("1", "A", 0, 3),
		p("2", "B", 0.01, 0.5),
		p("3", "C", 1e6, 1e-3),
		p("4", "D", 42, 7),
	}
	s, err := Summarize(products)
	require.NoError(t, err)
	require.False(t, math.IsNaN(s.MetricValue) || math.IsInf(s.MetricValue, 0))
	require.GreaterOrEqual(t, s.MetricValue, 0.0)
	for _, u := range s.UnitPrices {
		require.False(t, math.IsNaN(u.Value) || math.IsInf(u.Value, 0))
	}
	require.Equal(t, "1", s.BestProductID)
}

func TestSummarizeLargePricesStayFinite(t *testing.T) {
	testCases := []struct {
		name   string
		prices []float64
		cv     float64
		mean   float64
	}{
		{"one huge one zero", []float64{1e200, 0}, math.Sqrt(0.5) / 0.5 * 100, 5e199},
		{"two at the float limit", []float64{1e308, 1e308}, 0, 1e308},
		{"three near the limit", []float64{1.5e308, 1.5e308, 1.5e308}, 0, 1.5e308},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			products := make([]model.Product, len(tc.prices))
			for i, price := range tc.prices {
				products[i] = p(string(rune('a'+i)), "P", price, 1)
			}
			s, err := Summarize(products)
			require.NoError(t, err)
			require.False(t, math.IsNaN(s.MetricValue) || math.IsInf(s.MetricValue, 0))
			require.False(t, math.IsNaN(s.MeanPrice) || math.IsInf(s.MeanPrice, 0))
			require.InDelta(t, tc.cv, s.MetricValue, 1e-9)
			require.InEpsilon(t, tc.mean, s.MeanPrice, 1e-12)
		})
	}
}
