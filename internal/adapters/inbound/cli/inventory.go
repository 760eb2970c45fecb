package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/shopcart/internal/adapters/outbound/tui"
)

func newInventoryCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show stock levels from the store file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore(opts.logger())
			if err != nil {
				return err
			}
			stock := store.Stock.Snapshot()
			if jsonOutput {
				return renderJSON(cmd, stock)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInventory(stock, store.Config.UnstockedSKUs()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output stock levels as JSON")
	return cmd
}
