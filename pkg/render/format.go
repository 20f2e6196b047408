package render

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Invoices are issued in Kwanza with Portuguese digit grouping
// ("1.234.567,89 Kz") and day/month/year dates.
const currencySuffix = " Kz"

var ptPrinter = message.NewPrinter(language.Portuguese)

// FormatAmount renders a monetary value as a grouped two-decimal amount with
// the fixed currency suffix.
func FormatAmount(v float64) string {
	return ptPrinter.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)) + currencySuffix
}

// FormatQuantity renders a quantity without trailing decimal noise: whole
// quantities print as integers, fractional ones keep up to three decimals.
func FormatQuantity(v float64) string {
	return ptPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
