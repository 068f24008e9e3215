package views

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount renders amount with two decimals using the grouping and
// decimal separators of locale. Unknown locales fall back to English.
func FormatAmount(locale string, amount float64) string {
	return Printer(locale).Sprintf("%.2f", amount)
}

// FormatPercent renders a funding percentage with one decimal.
func FormatPercent(locale string, pct float64) string {
	return Printer(locale).Sprintf("%.1f%%", pct)
}

// Printer returns a message printer for locale.
func Printer(locale string) *message.Printer {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
