package inventory

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiah = message.NewPrinter(language.Indonesian)

// FormatPrice renders a price the way the Indonesian locale writes Rupiah,
// e.g. "Rp 1.500.000".
func FormatPrice(price int) string {
	return rupiah.Sprintf("Rp %d", price)
}
