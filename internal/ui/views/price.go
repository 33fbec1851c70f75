package views

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rubPrinter = message.NewPrinter(language.Russian)

// FormatPrice renders a price the way the storefront shows it: Russian digit
// grouping followed by the ruble sign. Whole amounts have no fraction.
func FormatPrice(price decimal.Decimal) string {
	if price.Equal(price.Truncate(0)) {
		return rubPrinter.Sprintf("%d ₽", price.IntPart())
	}
	f, _ := price.Round(2).Float64()
	return rubPrinter.Sprintf("%.2f ₽", f)
}
