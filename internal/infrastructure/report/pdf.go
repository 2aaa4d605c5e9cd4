package report

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// PDF genera el relatório de estoque en A4 y devuelve sus bytes.
//
// Secciones: cabecera, resumo, estoque baixo, mais vendidos, produtos por categoria.
func (e *Exporter) PDF(_ context.Context, r *dto.StockReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(e.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(e.summaryRows(r.Summary)...)

	m.AddRows(sectionTitle("Estoque baixo"))
	m.AddRows(tableHeader([]string{"Produto", "Quantidade", "Mínimo"}, []int{6, 3, 3}))
	if len(r.LowStock) == 0 {
		m.AddRows(emptyRow("Nenhum produto abaixo do estoque mínimo."))
	}
	for _, p := range r.LowStock {
		qtyColor := colorGray
		if p.Quantity == 0 {
			qtyColor = colorAlert
		}
		m.AddRows(row.New(6).Add(
			col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(e.num.Int(p.Quantity), props.Text{Size: 8, Top: 1, Align: align.Right, Color: qtyColor})),
			col.New(3).Add(text.New(e.num.Int(p.MinimumStock), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}

	m.AddRows(sectionTitle("Mais vendidos"))
	m.AddRows(tableHeader([]string{"#", "Produto", "Unidades vendidas"}, []int{1, 7, 4}))
	for i, p := range r.TopSellers {
		m.AddRows(row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{Size: 8, Top: 1})),
			col.New(7).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(e.num.Int(p.QuantitySold), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}

	m.AddRows(sectionTitle("Produtos por categoria"))
	m.AddRows(tableHeader([]string{"Categoria", "Produtos"}, []int{8, 4}))
	for _, c := range r.ByCategory {
		m.AddRows(row.New(6).Add(
			col.New(8).Add(text.New(c.Name, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(e.num.Int(c.Products), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (e *Exporter) headerRow(r *dto.StockReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2}),
		),
		col.New(4).Add(
			text.New("Gerado em "+formatDate(r.Summary.GeneratedAt), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func (e *Exporter) summaryRows(s dto.SummaryDTO) []core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return []core.Row{
		row.New(14).Add(
			cell("Valor do estoque", e.num.Money(s.TotalValue)),
			cell("Produtos", e.num.Int(s.TotalProducts)),
			cell("Sem estoque", e.num.Int(s.OutOfStockCount)),
			cell("Estoque baixo", e.num.Int(s.LowStockCount)),
		),
		row.New(10).Add(
			cell("Categorias", e.num.Int(s.TotalCategories)),
		),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 5}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Left
		if i == len(labels)-1 {
			a = align.Right
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 1})))
	}
	return row.New(6).Add(cols...)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(text.New(msg, props.Text{Size: 8, Top: 1, Color: colorGray})))
}
