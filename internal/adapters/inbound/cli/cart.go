package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/shopcart/internal/adapters/outbound/tui"
	"github.com/abdidvp/shopcart/internal/application"
	"github.com/abdidvp/shopcart/internal/domain"
)

func newCartCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		removes    []string
	)

	cmd := &cobra.Command{
		Use:   "cart [SKU=QTY ...]",
		Short: "Build a cart from add operations, then apply removals",
		Long: "Adds each SKU=QTY argument in order (a bare SKU adds one unit), then removes every --remove SKU. " +
			"An add that exceeds available stock is rejected, the run stops there, and the cart built so far is printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseCartOperations(args, removes)
			if err != nil {
				return err
			}

			logger := opts.logger()
			defer func() { _ = logger.Sync() }()

			store, err := opts.openStore(logger)
			if err != nil {
				return err
			}
			svc, err := application.NewCartService(store, logger)
			if err != nil {
				return err
			}

			_, opErr := svc.Apply(ops)
			summary := svc.Summary()

			if jsonOutput {
				if err := renderJSON(cmd, summary); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCart(summary, opErr))
			}

			if opErr != nil {
				return fmt.Errorf("cart operation failed: %w", opErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the cart as JSON")
	cmd.Flags().StringArrayVar(&removes, "remove", nil, "SKU to remove after all adds (repeatable)")

	return cmd
}

func parseCartOperations(adds, removes []string) ([]domain.CartOperation, error) {
	ops := make([]domain.CartOperation, 0, len(adds)+len(removes))
	for _, arg := range adds {
		op, err := domain.ParseAddOperation(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	for _, sku := range removes {
		ops = append(ops, domain.CartOperation{Kind: domain.OpRemove, SKU: sku})
	}
	return ops, nil
}
