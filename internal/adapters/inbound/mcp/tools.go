package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/abdidvp/shopcart/internal/application"
	"github.com/abdidvp/shopcart/internal/domain"
)

// registerTools registers all shopcart MCP tools on the given server.
func registerTools(s *server.MCPServer, store *application.Store, session *application.CartService) {
	// 1. shopcart_catalog_search
	s.AddTool(
		mcplib.NewTool("shopcart_catalog_search",
			mcplib.WithDescription("Find catalog products whose name contains the query, ignoring case"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Substring to look for in product names"),
			),
		),
		handleCatalogSearch(store),
	)

	// 2. shopcart_catalog_price_range
	s.AddTool(
		mcplib.NewTool("shopcart_catalog_price_range",
			mcplib.WithDescription("List catalog products priced between min and max, inclusive"),
			mcplib.WithNumber("min", mcplib.Required(), mcplib.Description("Lowest price, >= 0")),
			mcplib.WithNumber("max", mcplib.Required(), mcplib.Description("Highest price, >= min")),
		),
		handleCatalogPriceRange(store),
	)

	// 3. shopcart_product
	s.AddTool(
		mcplib.NewTool("shopcart_product",
			mcplib.WithDescription("Returns one product and the units currently in stock"),
			mcplib.WithString("sku", mcplib.Required(), mcplib.Description("Product SKU")),
		),
		handleProduct(store),
	)

	// 4. shopcart_inventory
	s.AddTool(
		mcplib.NewTool("shopcart_inventory",
			mcplib.WithDescription("Returns stock levels by SKU and the catalog products that have no stock record"),
		),
		handleInventory(store),
	)

	// 5. shopcart_cart_add
	s.AddTool(
		mcplib.NewTool("shopcart_cart_add",
			mcplib.WithDescription("Add units of a product to the session cart. Rejected when the cart would hold more units than are in stock."),
			mcplib.WithString("sku", mcplib.Required(), mcplib.Description("Product SKU")),
			mcplib.WithNumber("quantity", mcplib.Description("Whole number of units to add (default: 1)")),
		),
		handleCartAdd(session),
	)

	// 6. shopcart_cart_remove
	s.AddTool(
		mcplib.NewTool("shopcart_cart_remove",
			mcplib.WithDescription("Remove a product line from the session cart"),
			mcplib.WithString("sku", mcplib.Required(), mcplib.Description("Product SKU")),
		),
		handleCartRemove(session),
	)

	// 7. shopcart_cart_view
	s.AddTool(
		mcplib.NewTool("shopcart_cart_view",
			mcplib.WithDescription("Returns the session cart: lines, item count and total"),
		),
		handleCartView(session),
	)
}

// productStock is a product together with its current stock level.
type productStock struct {
	Product   *domain.Product `json:"product"`
	Available int             `json:"available"`
}

// inventoryReport is the payload of the inventory tool and resource.
type inventoryReport struct {
	Stock     map[string]int `json:"stock"`
	Unstocked []string       `json:"unstocked"`
}

func newInventoryReport(store *application.Store) inventoryReport {
	unstocked := store.Config.UnstockedSKUs()
	if unstocked == nil {
		unstocked = []string{}
	}
	return inventoryReport{Stock: store.Stock.Snapshot(), Unstocked: unstocked}
}

func handleCatalogSearch(store *application.Store) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(store.Catalog.FindByName(name))
	}
}

func handleCatalogPriceRange(store *application.Store) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		lo, err := request.RequireFloat("min")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		hi, err := request.RequireFloat("max")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		products, err := store.Catalog.FindByPriceRange(decimal.NewFromFloat(lo), decimal.NewFromFloat(hi))
		if err != nil {
			return errorResult(fmt.Sprintf("price range: %v", err)), nil
		}
		return jsonResult(products)
	}
}

func handleProduct(store *application.Store) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sku, err := request.RequireString("sku")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		p, ok := store.Catalog.FindBySKU(sku)
		if !ok {
			return errorResult(fmt.Sprintf("product not found: %s", sku)), nil
		}
		return jsonResult(productStock{Product: p, Available: store.Stock.Available(p.SKU())})
	}
}

func handleInventory(store *application.Store) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(newInventoryReport(store))
	}
}

func handleCartAdd(session *application.CartService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sku, err := request.RequireString("sku")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		raw := request.GetFloat("quantity", 1)
		if raw != math.Trunc(raw) {
			return errorResult(fmt.Sprintf("quantity must be a whole number, got %v", raw)), nil
		}

		if err := session.Add(sku, int(raw)); err != nil {
			return errorResult(fmt.Sprintf("add failed: %v", err)), nil
		}
		return jsonResult(session.Summary())
	}
}

func handleCartRemove(session *application.CartService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sku, err := request.RequireString("sku")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if err := session.Remove(sku); err != nil {
			return errorResult(fmt.Sprintf("remove failed: %v", err)), nil
		}
		return jsonResult(session.Summary())
	}
}

func handleCartView(session *application.CartService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(session.Summary())
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
