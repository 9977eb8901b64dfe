package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"product-compare/internal/analysis"
	"product-compare/internal/data"
	"product-compare/internal/export"
	"product-compare/internal/i18n"
	"product-compare/internal/ledger"
	"product-compare/internal/model"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cli",
		Short:         "Compare products by price dispersion and price per unit",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newCompareCmd(), newExportCmd())
	return root
}

func newCompareCmd() *cobra.Command {
	var (
		dataPath string
		lang     string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print the price CV% and the best product of a products file",
		Example: "  cli compare --data products.json\n" +
			"  cli compare --data products.yaml --lang th",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := i18n.Parse(lang)
			if err != nil {
				return err
			}
			products, err := loadLedger(dataPath)
			if err != nil {
				return err
			}
			return runCompare(cmd.OutOrStdout(), products, l)
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "products.json", "Path to a products file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&lang, "lang", string(i18n.English), "Output language (th or en)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		dataPath string
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a products file to CSV with unit prices and the best product marked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := loadLedger(dataPath)
			if err != nil {
				return err
			}
			// A list too short to compare is still exported, just without the best column.
			summary, err := analysis.Summarize(products)
			if err != nil && !errors.Is(err, model.ErrInsufficientData) {
				return err
			}
			if err := export.WriteProductsCSVFile(outPath, products, summary); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(products), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "products.json", "Path to a products file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&outPath, "out", "results/products.csv", "Output CSV path")
	return cmd
}

// loadLedger reads a products file into a fresh ledger so every record gets an ID.
func loadLedger(path string) ([]model.Product, error) {
	products, err := data.LoadProducts(path)
	if err != nil {
		return nil, err
	}
	l := ledger.New()
	for _, p := range products {
		l.Append(p)
	}
	return l.Snapshot(), nil
}

func runCompare(out io.Writer, products []model.Product, lang i18n.Language) error {
	lb := i18n.For(lang)
	summary, err := analysis.Summarize(products)
	if err != nil {
		return fmt.Errorf("%s: %w", lb.Error(model.KindOf(err)), err)
	}

	fmt.Fprintf(out, "%-4s %-24s %-12s %-10s %-12s\n", "rank", "name", "price", "quantity", "unit_price")
	for _, r := range analysis.RankByUnitPrice(products) {
		fmt.Fprintf(out, "%-4d %-24s %-12.2f %-10g %-12.4f\n", r.Rank, r.Name, r.Price, r.Quantity, r.UnitPrice)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s: %.2f%%\n", lb.MetricLabel, summary.MetricValue)
	fmt.Fprintf(out, "%s: %s\n", lb.BestLabel, summary.BestProductName)
	return nil
}
