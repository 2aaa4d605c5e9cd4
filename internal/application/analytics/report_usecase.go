// Package analytics contiene los casos de uso de relatórios de estoque.
// Todo es de sólo lectura y se recalcula en cada petición.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// TopSellersLimit número de productos del relatório "mais vendidos".
const TopSellersLimit = 10

// ErrExporterUnavailable se devuelve cuando no hay exportador configurado.
var ErrExporterUnavailable = errors.New("relatórios: exportador não configurado")

// ReportUseCase genera los relatórios a partir del ReportRepository.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	exporter   ReportExporter
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso. exporter puede ser nil si no se exporta.
func NewReportUseCase(reportRepo repository.ReportRepository, exporter ReportExporter) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, exporter: exporter, now: time.Now}
}

// TopSellers devuelve los 10 productos con más unidades en saídas.
func (uc *ReportUseCase) TopSellers(ctx context.Context) ([]dto.TopSellerDTO, error) {
	rows, err := uc.reportRepo.TopSellers(ctx, TopSellersLimit)
	if err != nil {
		return nil, fmt.Errorf("relatórios: mais vendidos: %w", err)
	}
	out := make([]dto.TopSellerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopSellerDTO{ProductID: r.ProductID, Name: r.ProductName, QuantitySold: r.QuantitySold})
	}
	return out, nil
}

// LowStock devuelve los productos con cantidad <= estoque mínimo.
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	rows, err := uc.reportRepo.LowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatórios: estoque baixo: %w", err)
	}
	out := make([]dto.LowStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockDTO{
			ProductID:    r.ProductID,
			Name:         r.ProductName,
			Quantity:     r.Quantity,
			MinimumStock: r.MinimumStock,
		})
	}
	return out, nil
}

// ProductsByCategory devuelve la cantidad de productos por categoría.
func (uc *ReportUseCase) ProductsByCategory(ctx context.Context) ([]dto.CategoryCountDTO, error) {
	rows, err := uc.reportRepo.ProductsByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatórios: por categoria: %w", err)
	}
	out := make([]dto.CategoryCountDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryCountDTO{CategoryID: r.CategoryID, Name: r.CategoryName, Products: r.ProductCount})
	}
	return out, nil
}

// StockValue devuelve el valor total del inventario y sus contadores.
func (uc *ReportUseCase) StockValue(ctx context.Context) (*dto.StockValueDTO, error) {
	v, err := uc.reportRepo.StockValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatórios: valor do estoque: %w", err)
	}
	return toStockValueDTO(v), nil
}

// Summary construye el resumen general.
//
// Dos consultas en paralelo:
//  1. StockValue       → valor, totales, sem estoque, estoque baixo
//  2. CountCategories  → total de categorias
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.SummaryDTO, error) {
	type valueResult struct {
		v   *repository.StockValueResult
		err error
	}
	type countResult struct {
		n   int
		err error
	}

	valueCh := make(chan valueResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		v, err := uc.reportRepo.StockValue(ctx)
		valueCh <- valueResult{v, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountCategories(ctx)
		countCh <- countResult{n, err}
	}()

	value := <-valueCh
	count := <-countCh

	if value.err != nil {
		return nil, fmt.Errorf("relatórios: resumo: valor do estoque: %w", value.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("relatórios: resumo: categorias: %w", count.err)
	}

	return &dto.SummaryDTO{
		StockValueDTO:   *toStockValueDTO(value.v),
		TotalCategories: count.n,
		GeneratedAt:     uc.now().UTC(),
	}, nil
}

// StockReport reúne resumen, estoque baixo, mais vendidos y por categoria para exportar.
func (uc *ReportUseCase) StockReport(ctx context.Context) (*dto.StockReportDTO, error) {
	type lowResult struct {
		rows []dto.LowStockDTO
		err  error
	}
	type topResult struct {
		rows []dto.TopSellerDTO
		err  error
	}
	type catResult struct {
		rows []dto.CategoryCountDTO
		err  error
	}

	lowCh := make(chan lowResult, 1)
	topCh := make(chan topResult, 1)
	catCh := make(chan catResult, 1)

	go func() {
		rows, err := uc.LowStock(ctx)
		lowCh <- lowResult{rows, err}
	}()
	go func() {
		rows, err := uc.TopSellers(ctx)
		topCh <- topResult{rows, err}
	}()
	go func() {
		rows, err := uc.ProductsByCategory(ctx)
		catCh <- catResult{rows, err}
	}()

	summary, sumErr := uc.Summary(ctx)
	low := <-lowCh
	top := <-topCh
	cat := <-catCh

	for _, err := range []error{sumErr, low.err, top.err, cat.err} {
		if err != nil {
			return nil, err
		}
	}

	return &dto.StockReportDTO{
		Title:      "Relatório de Estoque",
		Summary:    *summary,
		LowStock:   low.rows,
		TopSellers: top.rows,
		ByCategory: cat.rows,
	}, nil
}

// ExportPDF genera el relatório de estoque en PDF.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	if uc.exporter == nil {
		return nil, ErrExporterUnavailable
	}
	report, err := uc.StockReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.exporter.PDF(ctx, report)
}

// ExportXLSX genera el relatório de estoque como planilha.
func (uc *ReportUseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	if uc.exporter == nil {
		return nil, ErrExporterUnavailable
	}
	report, err := uc.StockReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.exporter.XLSX(ctx, report)
}

func toStockValueDTO(v *repository.StockValueResult) *dto.StockValueDTO {
	return &dto.StockValueDTO{
		TotalValue:      v.TotalValue.Round(2),
		TotalProducts:   v.TotalProducts,
		OutOfStockCount: v.OutOfStockCount,
		LowStockCount:   v.LowStockCount,
	}
}
