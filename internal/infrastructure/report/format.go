package report

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberFormatter formatea números según el idioma del relatório (pt-BR: 1.234,56).
type numberFormatter struct {
	p *message.Printer
}

func newNumberFormatter(tag language.Tag) numberFormatter {
	return numberFormatter{p: message.NewPrinter(tag)}
}

// Int formatea un entero con separador de miles.
func (f numberFormatter) Int(n int) string {
	return f.p.Sprintf("%d", n)
}

// Money formatea un valor monetario con 2 decimales y prefijo R$.
func (f numberFormatter) Money(d decimal.Decimal) string {
	return "R$ " + f.p.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
