package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"product-compare/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Input is a product as submitted by a form, before parsing.
type Input struct {
	Name     string `form:"name" json:"name"`
	Price    string `form:"price" json:"price"`
	Quantity string `form:"quantity" json:"quantity"`
}

// ParseInput turns raw form values into a product ready for Append.
// Blank or unparseable fields fail with model.ErrMissingField; a negative price,
// a non-positive quantity or a non-finite number fails with model.ErrInvalidInput.
func ParseInput(in Input) (model.Product, error) {
	name := strings.TrimSpace(in.Name)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	price, priceOK := parseNumber(in.Price)
	if !priceOK {
		missing = append(missing, "price")
	}
	qty, qtyOK := parseNumber(in.Quantity)
	if !qtyOK {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return model.Product{}, fmt.Errorf("%w: %s", model.ErrMissingField, strings.Join(missing, ", "))
	}

	p := model.Product{Name: name, Price: price, Quantity: qty}
	if err := ValidateProduct(p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// ValidateProduct checks an already-typed product, e.g. one loaded from a file.
func ValidateProduct(p model.Product) error {
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || math.IsNaN(p.Quantity) || math.IsInf(p.Quantity, 0) {
		return fmt.Errorf("%w: %q has a non-finite price or quantity", model.ErrInvalidInput, p.Name)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name", model.ErrMissingField)
	}
	if err := validate.Struct(p); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return fmt.Errorf("%w: %s", model.ErrMissingField, strings.ToLower(fe.Field()))
			}
		}
		fe := verrs[0]
		return fmt.Errorf("%w: %s must be %s %s", model.ErrInvalidInput, strings.ToLower(fe.Field()), fe.Tag(), fe.Param())
	}
	return nil
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
