package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/shopcart/internal/application"
)

// NewShopcartMCPServer creates a new MCP server with all shopcart tools and
// resources registered. Catalog and stock queries read store; cart tools
// mutate the single session cart for the lifetime of the server.
func NewShopcartMCPServer(store *application.Store, session *application.CartService) *server.MCPServer {
	s := server.NewMCPServer(
		"shopcart",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, store, session)
	registerResources(s, store, session)

	return s
}
