package aggregate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders aggregate numbers for display with Spanish locale
// grouping: counts with no decimals, quintales with up to two, kilos with
// none.
type Formatter struct {
	p *message.Printer
}

// NewFormatter builds a Spanish-locale formatter.
func NewFormatter() *Formatter {
	return &Formatter{p: message.NewPrinter(language.Spanish)}
}

// Count formats a record or truck count.
func (f *Formatter) Count(n int) string {
	return f.p.Sprint(number.Decimal(n))
}

// QQs formats a quintal total with at most two decimal places.
func (f *Formatter) QQs(v float64) string {
	return f.p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Kilos formats a kilogram total with no decimal places.
func (f *Formatter) Kilos(v float64) string {
	return f.p.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}
