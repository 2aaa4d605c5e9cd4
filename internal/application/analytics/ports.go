package analytics

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
)

// ReportExporter genera los documentos descargables del relatório de estoque.
type ReportExporter interface {
	PDF(ctx context.Context, report *dto.StockReportDTO) ([]byte, error)
	XLSX(ctx context.Context, report *dto.StockReportDTO) ([]byte, error)
}
