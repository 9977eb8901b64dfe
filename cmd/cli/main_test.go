package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"product-compare/internal/i18n"
	"product-compare/internal/model"

	"github.com/stretchr/testify/require"
)

func TestRunCompare(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "A", Price: 10, Quantity: 1},
		{ID: "2", Name: "B", Price: 20, Quantity: 4},
		{ID: "3", Name: "C", Price: 30, Quantity: 5},
	}
	var out bytes.Buffer
	require.NoError(t, runCompare(&out, products, i18n.English))
	require.Contains(t, out.String(), "Price dispersion (CV%): 70.71%")
	require.Contains(t, out.String(), "Best value (lowest price per unit): B")
}

func TestRunCompareInsufficientData(t *testing.T) {
	var out bytes.Buffer
	err := runCompare(&out, []model.Product{{ID: "1", Name: "A", Price: 1, Quantity: 1}}, i18n.English)
	require.ErrorIs(t, err, model.ErrInsufficientData)
	require.Empty(t, out.String())
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"products":[{"name":"A","price":10,"quantity":2},{"name":"B","price":9,"quantity":3}]}`), 0o644))
	outPath := filepath.Join(dir, "out", "products.csv")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"export", "--data", in, "--out", outPath})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "Wrote 2 rows")

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(raw), "B,9.000000,3.000000,3.000000,true")
}

func TestCompareCommandRejectsLanguage(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"compare", "--lang", "fr"})
	require.Error(t, root.Execute())
}
