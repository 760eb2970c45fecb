package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/shopcart/internal/application"
)

const productURIPrefix = "shopcart://products/"

// registerResources registers all shopcart MCP resources on the given server.
func registerResources(s *server.MCPServer, store *application.Store, session *application.CartService) {
	// 1. shopcart://catalog - every listed product
	s.AddResource(
		mcplib.NewResource(
			"shopcart://catalog",
			"Catalog",
			mcplib.WithResourceDescription("Every product in the catalog, sorted by SKU"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(store),
	)

	// 2. shopcart://inventory - stock levels
	s.AddResource(
		mcplib.NewResource(
			"shopcart://inventory",
			"Inventory",
			mcplib.WithResourceDescription("Stock levels by SKU"),
			mcplib.WithMIMEType("application/json"),
		),
		handleInventoryResource(store),
	)

	// 3. shopcart://cart - session cart
	s.AddResource(
		mcplib.NewResource(
			"shopcart://cart",
			"Cart",
			mcplib.WithResourceDescription("The session cart with lines and total"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCartResource(session),
	)

	// 4. shopcart://products/{sku} - one product with stock (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			productURIPrefix+"{sku}",
			"Product",
			mcplib.WithTemplateDescription("One catalog product and its stock level"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleProductResource(store),
	)
}

func handleCatalogResource(store *application.Store) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, store.Catalog.All())
	}
}

func handleInventoryResource(store *application.Store) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, newInventoryReport(store))
	}
}

func handleCartResource(session *application.CartService) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, session.Summary())
	}
}

func handleProductResource(store *application.Store) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		sku := templateArg(request, "sku", productURIPrefix)
		if sku == "" {
			return nil, fmt.Errorf("sku is required")
		}

		p, ok := store.Catalog.FindBySKU(sku)
		if !ok {
			return nil, fmt.Errorf("product not found: %s", sku)
		}
		return jsonContents(request.Params.URI, productStock{Product: p, Available: store.Stock.Available(p.SKU())})
	}
}

// templateArg reads a variable populated by template matching. The matcher
// may hand back a string or a []string; when neither is present the value
// is cut from the URI itself.
func templateArg(request mcplib.ReadResourceRequest, name, prefix string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return strings.TrimPrefix(request.Params.URI, prefix)
}

func jsonContents(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
