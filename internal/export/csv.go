package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"product-compare/internal/model"
)

// WriteProductsCSVFile writes the ledger to path, creating parent directories.
func WriteProductsCSVFile(path string, products []model.Product, summary *model.DispersionSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteProductsCSV(f, products, summary)
}

// WriteProductsCSV writes one row per product in ledger order.
// The best column is only filled when a summary is given.
func WriteProductsCSV(out io.Writer, products []model.Product, summary *model.DispersionSummary) error {
	w := csv.NewWriter(out)

	header := []string{
		"index",
		"id",
		"name",
		"price",
		"quantity",
		"unit_price",
		"best",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, p := range products {
		row := []string{
			strconv.Itoa(i + 1),
			p.ID,
			p.Name,
			fmtFloat(p.Price),
			fmtFloat(p.Quantity),
			fmtUnitPrice(p),
			fmtBest(summary, p.ID),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtUnitPrice(p model.Product) string {
	if p.Quantity <= 0 {
		return ""
	}
	return fmtFloat(p.UnitPrice())
}

func fmtBest(summary *model.DispersionSummary, id string) string {
	if summary == nil {
		return ""
	}
	return strconv.FormatBool(summary.IsBest(id))
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
