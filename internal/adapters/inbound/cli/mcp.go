package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/shopcart/internal/adapters/inbound/mcp"
	"github.com/abdidvp/shopcart/internal/application"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the shopcart MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start shopcart MCP server (stdio)",
		Long:  "Start the shopcart MCP server using stdio transport. The server holds one cart session in memory for its lifetime, so an assistant can browse the catalog, check stock and build a cart.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()
			defer func() { _ = logger.Sync() }()

			store, err := opts.openStore(logger)
			if err != nil {
				return err
			}
			session, err := application.NewCartService(store, logger)
			if err != nil {
				return err
			}
			s := mcpadapter.NewShopcartMCPServer(store, session)
			return server.ServeStdio(s)
		},
	}
}
