package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// MovementHandler expone el ledger de movimientos (protegido).
type MovementHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RecordIn godoc
// @Summary      Registrar entrada
// @Tags         movimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "productId, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/movimentos/entrada [post]
func (h *MovementHandler) RecordIn(c *fiber.Ctx) error {
	return h.record(c, entity.MovementIn)
}

// RecordOut godoc
// @Summary      Registrar saída
// @Tags         movimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "productId, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/movimentos/saida [post]
func (h *MovementHandler) RecordOut(c *fiber.Ctx) error {
	return h.record(c, entity.MovementOut)
}

func (h *MovementHandler) record(c *fiber.Ctx, kind entity.MovementKind) error {
	var in dto.MovementRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.RecordFromRequest(c.UserContext(), kind, GetUserID(c), in)
	if err != nil {
		// Producto inexistente en el body es un error de la petición.
		if domain.IsNotFound(err) {
			return withStatus(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimentos
// @Description  Mais recentes primeiro, com o nome atual do produto.
// @Tags         movimentos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.MovementListItem]
// @Router       /api/movimentos [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(list))
}

// ListByProduct godoc
// @Summary      Histórico de movimentos de um produto
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  dto.ListResponse[dto.MovementListItem]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/movimentos [get]
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	list, err := h.uc.ListByProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(list))
}
