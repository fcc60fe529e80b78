package cli

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money formats amounts in one currency for one locale.
type Money struct {
	printer *message.Printer
	unit    currency.Unit
	scale   int
}

// NewMoney returns a formatter for unit as written in tag.
func NewMoney(tag language.Tag, unit currency.Unit) *Money {
	scale, _ := currency.Standard.Rounding(unit)
	return &Money{
		printer: message.NewPrinter(tag),
		unit:    unit,
		scale:   scale,
	}
}

// Format renders value with the currency symbol and locale separators,
// e.g. "R$ 1.234,50" for pt-BR.
func (m *Money) Format(value float64) string {
	return m.Symbol() + " " + m.Number(value)
}

// Number renders value without a symbol at the currency's standard scale.
func (m *Money) Number(value float64) string {
	return m.printer.Sprintf("%.*f", m.scale, value)
}

// Symbol is the narrowest symbol the locale knows for the currency.
func (m *Money) Symbol() string {
	return m.printer.Sprint(currency.Symbol(m.unit))
}
