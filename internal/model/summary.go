package model

// MetricPriceCV names the statistic reported in DispersionSummary.MetricValue:
// sqrt(sum of squared deviations of all prices from their mean) / mean * 100.
// It is a property of the whole list, not of the best product.
const MetricPriceCV = "price_cv_percent"

// DispersionSummary is the structured result of a comparison.
type DispersionSummary struct {
	Metric      string  `json:"metric"`
	MetricValue float64 `json:"metric_value"`
	MeanPrice   float64 `json:"mean_price"`
	Count       int     `json:"count"`

	// Best is chosen by lowest unit price, independently of MetricValue.
	BestProductID   string  `json:"best_product_id"`
	BestProductName string  `json:"best_product_name"`
	BestUnitPrice   float64 `json:"best_unit_price"`

	// UnitPrices holds price/quantity per product, in ledger order.
	UnitPrices []UnitPrice `json:"unit_prices"`
}

// UnitPrice is the price per unit of one product.
type UnitPrice struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
}

// IsBest reports whether the product with the given id won the comparison.
func (s *DispersionSummary) IsBest(productID string) bool {
	return s != nil && productID != "" && s.BestProductID == productID
}
