package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"product-compare/internal/ledger"
	"product-compare/internal/model"

	"gopkg.in/yaml.v3"
)

// ProductFile is the on-disk shape of a product list (JSON or YAML).
type ProductFile struct {
	Products []model.Product `json:"products" yaml:"products"`
}

// LoadProducts reads a product list from a .json, .yaml or .yml file and
// validates every entry the same way the form does.
func LoadProducts(path string) ([]model.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var f ProductFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &f)
	case ".json":
		err = json.Unmarshal(raw, &f)
	default:
		return nil, fmt.Errorf("unsupported products file %q (want .json, .yaml or .yml)", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse products file: %w", err)
	}

	for i := range f.Products {
		f.Products[i].Name = strings.TrimSpace(f.Products[i].Name)
		if err := ledger.ValidateProduct(f.Products[i]); err != nil {
			return nil, fmt.Errorf("product %d: %w", i+1, err)
		}
	}
	return f.Products, nil
}
