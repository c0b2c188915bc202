// Package money formats integer amounts as Vietnamese đồng.
// VND has no minor unit, so amounts are whole đồng throughout.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatVND formats an integer amount as a localized currency string,
// e.g. 100000 -> "100.000 ₫".
func FormatVND(amount int64) string {
	return printer.Sprintf("%v ₫", number.Decimal(amount))
}
