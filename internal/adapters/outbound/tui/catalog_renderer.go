package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abdidvp/shopcart/internal/domain"
)

// RenderCatalog renders a product listing under title.
func RenderCatalog(title string, products []*domain.Product) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", len(products))))
	b.WriteString("  " + separatorLine + "\n")

	if len(products) == 0 {
		b.WriteString("  " + dimStyle.Render("No products found.") + "\n")
		return b.String()
	}

	for _, p := range products {
		fmt.Fprintf(&b, "  %s %s %s\n",
			dimStyle.Render(padRight(p.SKU(), 12)),
			padRight(p.Name(), 36),
			padLeft(money(p.Price()), 12),
		)
	}
	return b.String()
}

// RenderProduct renders a single product with its stock level.
func RenderProduct(p *domain.Product, available int) string {
	body := titleStyle.Render(p.Name()) + "\n" +
		dimStyle.Render(p.SKU()) + "\n\n" +
		totalStyle.Render("$"+money(p.Price())) + "  " + stockBadge(available)
	return boxStyle.Render(body) + "\n"
}

// RenderInventory renders stock levels sorted by SKU. SKUs listed in
// unstocked have a catalog entry but no stock record.
func RenderInventory(stock map[string]int, unstocked []string) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Inventory"), dimStyle.Render(fmt.Sprintf("(%d)", len(stock))))
	b.WriteString("  " + separatorLine + "\n")

	skus := make([]string, 0, len(stock))
	for sku := range stock {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	for _, sku := range skus {
		fmt.Fprintf(&b, "    %s %s\n", padRight(sku, 16), stockBadge(stock[sku]))
	}

	if len(unstocked) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("No stock record"), dimStyle.Render(fmt.Sprintf("(%d)", len(unstocked))))
		for _, sku := range unstocked {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("●"), sku)
		}
	}
	return b.String()
}

func stockBadge(available int) string {
	switch {
	case available <= 0:
		return failStyle.Render("out of stock")
	case available < 5:
		return warnStyle.Render(fmt.Sprintf("%d left", available))
	default:
		return passStyle.Render(fmt.Sprintf("%d in stock", available))
	}
}
