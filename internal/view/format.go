package view

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// newPrinter returns a printer for display numbers. Printers are not safe for
// concurrent use, so each render takes its own.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// formatCount renders an integer with thousands separators, e.g. "1,245".
func formatCount(p *message.Printer, n int) string {
	return p.Sprintf("%d", n)
}

// formatMagnitude renders a magnitude with the shortest exact decimal, e.g. "M5.2".
func formatMagnitude(m float64) string {
	return "M" + strconv.FormatFloat(m, 'f', -1, 64)
}

// formatPercent renders a confidence value with one decimal, e.g. "87.4".
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
