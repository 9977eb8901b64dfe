package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"product-compare/internal/model"

	"github.com/stretchr/testify/require"
)

func TestWriteProductsCSV(t *testing.T) {
	products := []model.Product{
		{ID: "a", Name: "Rice, jasmine", Price: 10, Quantity: 2},
		{ID: "b", Name: "Noodles", Price: 9, Quantity: 3},
	}
	summary := &model.DispersionSummary{BestProductID: "b"}

	var buf bytes.Buffer
	require.NoError(t, WriteProductsCSV(&buf, products, summary))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"index", "id", "name", "price", "quantity", "unit_price", "best"}, rows[0])
	require.Equal(t, []string{"1", "a", "Rice, jasmine", "10.000000", "2.000000", "5.000000", "false"}, rows[1])
	require.Equal(t, []string{"2", "b", "Noodles", "9.000000", "3.000000", "3.000000", "true"}, rows[2])
}

func TestWriteProductsCSVWithoutSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProductsCSV(&buf, []model.Product{{ID: "a", Name: "A", Price: 1, Quantity: 0}}, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, "", rows[1][5])
	require.Equal(t, "", rows[1][6])
}

func TestWriteProductsCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "products.csv")
	require.NoError(t, WriteProductsCSVFile(path, nil, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "index,id,name,price,quantity,unit_price,best\n", string(raw))
}
