package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/abdidvp/shopcart/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderCart renders a cart summary as a styled table. A non-nil opErr is
// shown under the table as the operation that stopped the run.
func RenderCart(summary domain.CartSummary, opErr error) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("shopcart")
	subtitle := dimStyle.Render("Cart " + shortID(summary.SessionID))
	totalLine := totalStyle.Render("$" + money(summary.Total))
	countLine := dimStyle.Render(fmt.Sprintf("%d %s", summary.ItemCount, plural(summary.ItemCount, "item", "items")))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + totalLine + "  " + countLine))
	b.WriteString("\n\n")

	// ── Lines ──
	if len(summary.Lines) == 0 {
		b.WriteString("  " + dimStyle.Render("Cart is empty.") + "\n")
	} else {
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			titleStyle.Render(padRight("SKU", 12)),
			titleStyle.Render(padRight("Product", 26)),
			titleStyle.Render(padLeft("Qty", 5)),
			titleStyle.Render(padLeft("Subtotal", 14)),
		)
		for _, line := range summary.Lines {
			renderCartLine(&b, line)
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Total", 45)), totalStyle.Render(padLeft(money(summary.Total), 14)))

	if summary.CatalogRevision != "" {
		b.WriteString("  " + faintStyle.Render("catalog @ "+shortHash(summary.CatalogRevision)) + "\n")
	}

	if opErr != nil {
		b.WriteString("\n")
		b.WriteString("  " + errorTagStyle.Render("rejected") + " " + dimStyle.Render(opErr.Error()) + "\n")
	}

	return b.String()
}

func renderCartLine(b *strings.Builder, line domain.CartLine) {
	name := line.Name
	if name == "" {
		name = faintStyle.Render("(no longer listed)")
	}
	unit := dimStyle.Render("@ " + money(line.UnitPrice))
	fmt.Fprintf(b, "  %s %s %s %s  %s\n",
		padRight(line.SKU, 12),
		padRight(name, 26),
		padLeft(fmt.Sprintf("%d", line.Quantity), 5),
		padLeft(money(line.Subtotal), 14),
		unit,
	)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func padRight(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func padLeft(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-lipgloss.Width(s)) + s
}
