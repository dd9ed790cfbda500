package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPoints форматирует очки с разделителями разрядов: 12345 -> "12,345".
func FormatPoints(n int) string {
	return printer.Sprintf("%d", n)
}
