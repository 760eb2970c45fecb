package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/abdidvp/shopcart/internal/adapters/outbound/tui"
	"github.com/abdidvp/shopcart/internal/domain"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List, search and inspect catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore(opts.logger())
			if err != nil {
				return err
			}
			return renderProducts(cmd, jsonOutput, "Catalog", store.Catalog.All())
		},
	}
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output products as JSON")

	cmd.AddCommand(newCatalogSearchCmd(opts, &jsonOutput))
	cmd.AddCommand(newCatalogRangeCmd(opts, &jsonOutput))
	cmd.AddCommand(newCatalogShowCmd(opts, &jsonOutput))
	return cmd
}

func newCatalogSearchCmd(opts *rootOptions, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find products whose name contains the query (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore(opts.logger())
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Search: %s", args[0])
			return renderProducts(cmd, *jsonOutput, title, store.Catalog.FindByName(args[0]))
		},
	}
}

func newCatalogRangeCmd(opts *rootOptions, jsonOutput *bool) *cobra.Command {
	var minPrice, maxPrice float64

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Find products priced within [--min, --max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore(opts.logger())
			if err != nil {
				return err
			}
			lo, hi := decimal.NewFromFloat(minPrice), decimal.NewFromFloat(maxPrice)
			products, err := store.Catalog.FindByPriceRange(lo, hi)
			if err != nil {
				return fmt.Errorf("price range: %w", err)
			}
			title := fmt.Sprintf("Price %s to %s", lo.StringFixed(2), hi.StringFixed(2))
			return renderProducts(cmd, *jsonOutput, title, products)
		},
	}
	cmd.Flags().Float64Var(&minPrice, "min", 0, "Lowest price, inclusive")
	cmd.Flags().Float64Var(&maxPrice, "max", 0, "Highest price, inclusive")
	_ = cmd.MarkFlagRequired("max")
	return cmd
}

func newCatalogShowCmd(opts *rootOptions, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show <sku>",
		Short: "Show one product and its stock level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore(opts.logger())
			if err != nil {
				return err
			}
			p, ok := store.Catalog.FindBySKU(args[0])
			if !ok {
				return fmt.Errorf("product not found: %s", args[0])
			}
			available := store.Stock.Available(p.SKU())

			if *jsonOutput {
				return renderJSON(cmd, struct {
					Product   *domain.Product `json:"product"`
					Available int             `json:"available"`
				}{p, available})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProduct(p, available))
			return nil
		},
	}
}

func renderProducts(cmd *cobra.Command, jsonOutput bool, title string, products []*domain.Product) error {
	if jsonOutput {
		return renderJSON(cmd, products)
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderCatalog(title, products))
	return nil
}
