// Package money formats whole-dollar amounts for client-facing
// documents. Amounts are stored as int64 dollars; budget ranges carry
// no cents.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount with thousands separators and no decimal
// places, e.g. 25450 -> "$25,450". Zero renders as "$0".
func FormatUSD(amount int64) string {
	if amount < 0 {
		return printer.Sprintf("-$%d", -amount)
	}

	return printer.Sprintf("$%d", amount)
}

// FormatSignedUSD renders an amount with an explicit sign prefix, the
// way change-order amounts appear on documents: 450 -> "+$450",
// -1200 -> "-$1,200". Zero carries no sign.
func FormatSignedUSD(amount int64) string {
	switch {
	case amount < 0:
		return printer.Sprintf("-$%d", -amount)
	case amount == 0:
		return "$0"
	}

	return printer.Sprintf("+$%d", amount)
}

// FormatRange renders a low/high budget range, e.g. "$25,000 – $35,000".
func FormatRange(low, high int64) string {
	return FormatUSD(low) + " – " + FormatUSD(high)
}
