package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/shopcart/internal/adapters/outbound/config"
	"github.com/abdidvp/shopcart/internal/adapters/outbound/gitinfo"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the store file for invalid products and stock levels",
		Long:  "Parses and validates the store file. With --strict, catalog products without a stock record are errors.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(opts.storePath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			missing := cfg.UnstockedSKUs()
			for _, sku := range missing {
				fmt.Fprintf(out, "warning: %s has no stock record and can never be added to a cart\n", sku)
			}
			if strict && len(missing) > 0 {
				return fmt.Errorf("%d product(s) without stock record", len(missing))
			}

			fmt.Fprintf(out, "%s is valid: %d products, %d stocked SKUs\n",
				opts.storePath, len(cfg.Products), len(cfg.Inventory))
			if gitinfo.New().IsGitRepo(opts.storePath) {
				fmt.Fprintln(out, "store file is under version control; carts record its revision")
			} else {
				fmt.Fprintln(out, "store file is not under version control; carts carry no catalog revision")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a product has no stock record")
	return cmd
}
