package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
)

// Nombres de las hojas de la planilha.
const (
	SheetSummary    = "Resumo"
	SheetLowStock   = "Estoque baixo"
	SheetTopSellers = "Mais vendidos"
	SheetCategories = "Por categoria"
)

// XLSX genera la planilha con una hoja por sección.
func (e *Exporter) XLSX(_ context.Context, r *dto.StockReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	w := &sheetWriter{f: f, header: headerStyle}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: renomear planilha: %w", err)
	}
	s := r.Summary
	w.rows(SheetSummary, []string{"Indicador", "Valor"}, [][]any{
		{"Valor do estoque", s.TotalValue.InexactFloat64()},
		{"Produtos", s.TotalProducts},
		{"Sem estoque", s.OutOfStockCount},
		{"Estoque baixo", s.LowStockCount},
		{"Categorias", s.TotalCategories},
		{"Gerado em", formatDate(s.GeneratedAt)},
	})
	w.err = firstErr(w.err, f.SetCellStyle(SheetSummary, "B2", "B2", moneyStyle))

	low := make([][]any, 0, len(r.LowStock))
	for _, p := range r.LowStock {
		low = append(low, []any{p.ProductID, p.Name, p.Quantity, p.MinimumStock})
	}
	w.sheet(SheetLowStock, []string{"ID", "Produto", "Quantidade", "Mínimo"}, low)

	top := make([][]any, 0, len(r.TopSellers))
	for i, p := range r.TopSellers {
		top = append(top, []any{i + 1, p.ProductID, p.Name, p.QuantitySold})
	}
	w.sheet(SheetTopSellers, []string{"#", "ID", "Produto", "Unidades vendidas"}, top)

	cats := make([][]any, 0, len(r.ByCategory))
	for _, c := range r.ByCategory {
		cats = append(cats, []any{c.CategoryID, c.Name, c.Products})
	}
	w.sheet(SheetCategories, []string{"ID", "Categoria", "Produtos"}, cats)

	if w.err != nil {
		return nil, fmt.Errorf("xlsx: %w", w.err)
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: gerar arquivo: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter acumula el primer error para no chequear cada celda.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) sheet(name string, headers []string, data [][]any) {
	if w.err != nil {
		return
	}
	if _, err := w.f.NewSheet(name); err != nil {
		w.err = err
		return
	}
	w.rows(name, headers, data)
}

func (w *sheetWriter) rows(sheet string, headers []string, data [][]any) {
	if w.err != nil {
		return
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			w.err = err
			return
		}
		w.err = firstErr(w.err, w.f.SetCellValue(sheet, cell, h))
		w.err = firstErr(w.err, w.f.SetCellStyle(sheet, cell, cell, w.header))
	}
	for r, values := range data {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				w.err = err
				return
			}
			w.err = firstErr(w.err, w.f.SetCellValue(sheet, cell, v))
		}
	}
	last, _ := excelize.ColumnNumberToName(len(headers))
	w.err = firstErr(w.err, w.f.SetColWidth(sheet, "A", last, 22))
	w.err = firstErr(w.err, w.f.SetPanes(sheet, &excelize.Panes{Freeze: true, Split: true, YSplit: 1}))
}

func firstErr(cur, next error) error {
	if cur != nil {
		return cur
	}
	return next
}
