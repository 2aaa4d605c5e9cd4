// Package report genera los relatórios de estoque descargables: PDF con Maroto v2
// y planilha XLSX con excelize.
package report

import (
	"golang.org/x/text/language"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
)

var _ analytics.ReportExporter = (*Exporter)(nil)

// Exporter implementa analytics.ReportExporter.
type Exporter struct {
	num numberFormatter
}

// NewExporter construye el exportador con formato numérico pt-BR.
func NewExporter() *Exporter {
	return &Exporter{num: newNumberFormatter(language.BrazilianPortuguese)}
}
