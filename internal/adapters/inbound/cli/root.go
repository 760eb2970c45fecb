package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/shopcart/internal/adapters/outbound/config"
	"github.com/abdidvp/shopcart/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/shopcart/internal/adapters/outbound/inventory"
	"github.com/abdidvp/shopcart/internal/application"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	storePath string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "shopcart",
		Short:         "Build carts against a catalog and live stock levels",
		Long:          "shopcart loads a catalog and its stock levels from a store file and builds carts that never hold more units than the inventory can cover.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.storePath, "store", config.DefaultFileName, "Store file with products and stock levels")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log cart activity to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCatalogCmd(opts))
	cmd.AddCommand(newInventoryCmd(opts))
	cmd.AddCommand(newCartCmd(opts))
	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func (o *rootOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openStore loads the store file named by --store into a fresh in-memory
// inventory.
func (o *rootOptions) openStore(logger *zap.Logger) (*application.Store, error) {
	svc := application.NewStoreService(config.New(), gitinfo.New(), logger)
	store, err := svc.Open(o.storePath, inventory.New())
	if err != nil {
		return nil, err
	}
	return store, nil
}
