package cmd

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"

	"github.com/rustyeddy/egolog/classify"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	gainStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	lossStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
)

func currency() string {
	if cfg == nil || cfg.Currency == "" {
		return money.USD
	}
	return cfg.Currency
}

// formatMoney renders an amount in the configured currency.
func formatMoney(amount float64) string {
	return money.NewFromFloat(amount, currency()).Display()
}

// formatPnL renders a signed, colored amount.
func formatPnL(amount float64) string {
	switch {
	case amount > 0:
		return gainStyle.Render("+" + formatMoney(amount))
	case amount < 0:
		return lossStyle.Render(formatMoney(amount))
	}
	return formatMoney(0)
}

// tierLabel renders a stored label in the color of the score's tier.
func tierLabel(score int, label string) string {
	tier := classify.Classify(score)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(tier.Color())).Bold(true).Render(label)
}

func formatTrend(trend int) string {
	switch {
	case trend > 0:
		return gainStyle.Render(fmt.Sprintf("▲ %d", trend))
	case trend < 0:
		return lossStyle.Render(fmt.Sprintf("▼ %d", -trend))
	}
	return "= 0"
}

// progressBar draws pct (0-100) as a fixed-width bar.
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
