package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// Dollars formats a monetary value with thousands separators, truncated to
// whole dollars ("1,245,000"). Display-only; callers keep the decimal value.
func Dollars(d decimal.Decimal) string {
	return usd.Sprintf("%d", d.Floor().IntPart())
}

// FloorDollars truncates a monetary value to whole dollars.
func FloorDollars(d decimal.Decimal) decimal.Decimal {
	return d.Floor()
}
