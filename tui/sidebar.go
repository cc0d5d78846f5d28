package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"seatmap-cli/model"
	"seatmap-cli/pricing"
	"seatmap-cli/store"
)

const sidebarWidth = 36

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Width(sidebarWidth)

	panelTitleStyle = lipgloss.NewStyle().Bold(true)
	panelLabelStyle = lipgloss.NewStyle().Faint(true)
	priceStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// detailPanel shows the focused seat resolved through the venue index, or an
// empty-state hint when nothing is focused or the focus id is stale.
func detailPanel(seat *model.SeatWithContext) string {
	if seat == nil {
		return panelStyle.Render(
			panelTitleStyle.Render("Seat Details") + "\n\n" +
				hint("Click or focus a seat to see details."))
	}

	price := pricing.PriceForTier(seat.PriceTier)
	lines := []string{
		panelTitleStyle.Render("Seat Details"),
		"",
		detailRow("Section", seat.SectionLabel),
		detailRow("Row", fmt.Sprintf("%d", seat.RowIndex)),
		detailRow("Seat", fmt.Sprintf("%d", seat.Col)),
		detailRow("Price", pricing.FormatAmount(price)),
		detailRow("Status", string(seat.Status)),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func detailRow(label, value string) string {
	return fmt.Sprintf("%s %s", panelLabelStyle.Render(fmt.Sprintf("%-8s", label)), value)
}

// summaryPanel lists the selected seats in insertion order with per-seat
// price lines, the subtotal, the fixed 10% fee and the total.
func summaryPanel(seats []model.SeatWithContext) string {
	header := panelTitleStyle.Render("Your Selection") +
		fmt.Sprintf("  %d/%d", len(seats), store.MaxSelected)

	if len(seats) == 0 {
		return panelStyle.Render(header + "\n\n" +
			hint("No seats selected yet.") + "\n" +
			hint("Pick available seats on the map."))
	}

	lines := []string{header, ""}
	tiers := make([]int, 0, len(seats))
	for i, seat := range seats {
		tiers = append(tiers, seat.PriceTier)
		lines = append(lines, fmt.Sprintf(
			"%d. %s • Row %d • Seat %d",
			i+1, seat.SectionLabel, seat.RowIndex, seat.Col,
		))
		lines = append(lines, fmt.Sprintf(
			"   %s  %s",
			panelLabelStyle.Render(fmt.Sprintf("Tier %d", seat.PriceTier)),
			pricing.FormatAmount(pricing.PriceForTier(seat.PriceTier)),
		))
	}

	quote := pricing.QuoteFor(tiers)
	lines = append(lines,
		"",
		summaryRow("Subtotal", pricing.FormatAmount(quote.Subtotal)),
		summaryRow("Fees (10%)", pricing.FormatAmount(quote.Fee)),
		summaryRow("Total", priceStyle.Render(pricing.FormatAmount(quote.Total))),
		"",
		hint("c clear selection"),
	)
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func summaryRow(label, value string) string {
	return fmt.Sprintf("%s %s", panelLabelStyle.Render(fmt.Sprintf("%-11s", label)), value)
}
