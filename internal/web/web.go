package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the page templates with their helper funcs.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

// Static returns the stylesheet tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":   Money,
		"percent": Percent,
		"qty":     Quantity,
	}
}

// Money formats a price with two decimals.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Percent formats a percentage with two decimals and a % sign.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Quantity prints a quantity without trailing zeros (2, 1.5).
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
