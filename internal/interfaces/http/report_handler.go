package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler maneja los relatórios de estoque (protegido).
type ReportHandler struct {
	uc  *analytics.ReportUseCase
	now func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, now: time.Now}
}

// TopSellers godoc
// @Summary      Produtos mais vendidos
// @Description  Top 10 por unidades em saídas.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.TopSellerDTO]
// @Router       /api/relatorios/mais-vendidos [get]
func (h *ReportHandler) TopSellers(c *fiber.Ctx) error {
	list, err := h.uc.TopSellers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(list))
}

// LowStock godoc
// @Summary      Produtos com estoque baixo
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.LowStockDTO]
// @Router       /api/relatorios/estoque-baixo [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(list))
}

// ProductsByCategory godoc
// @Summary      Produtos por categoria
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.CategoryCountDTO]
// @Router       /api/relatorios/por-categoria [get]
func (h *ReportHandler) ProductsByCategory(c *fiber.Ctx) error {
	list, err := h.uc.ProductsByCategory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(list))
}

// StockValue godoc
// @Summary      Valor total do estoque
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockValueDTO
// @Router       /api/relatorios/valor-estoque [get]
func (h *ReportHandler) StockValue(c *fiber.Ctx) error {
	out, err := h.uc.StockValue(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumo geral do estoque
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Router       /api/relatorios/resumo [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar relatório em PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/relatorios/exportar/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return err
	}
	return h.attachment(c, out, mimePDF, "pdf")
}

// ExportXLSX godoc
// @Summary      Exportar relatório em planilha
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/relatorios/exportar/xlsx [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	out, err := h.uc.ExportXLSX(c.UserContext())
	if err != nil {
		return err
	}
	return h.attachment(c, out, mimeXLSX, "xlsx")
}

func (h *ReportHandler) attachment(c *fiber.Ctx, body []byte, contentType, ext string) error {
	name := fmt.Sprintf("relatorio-estoque-%s.%s", h.now().Format("20060102"), ext)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(body)
}
