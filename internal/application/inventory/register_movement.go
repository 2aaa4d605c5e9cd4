package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// RegisterMovementUseCase registra entradas y saídas de estoque de forma transaccional:
// bloqueo de fila del producto (SELECT FOR UPDATE), verificación, UPDATE de cantidad e
// INSERT del movimiento, con Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
// movRepo y productRepo se usan para las lecturas fuera de transacción.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *RegisterMovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		movRepo:     movRepo,
		productRepo: productRepo,
		log:         log.Component("ledger"),
		now:         time.Now,
	}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID string
	Quantity  int
	UserID    string
}

// RecordIn registra una entrada: agrega el movimiento y suma la cantidad al producto.
func (uc *RegisterMovementUseCase) RecordIn(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	return uc.record(ctx, entity.MovementIn, in)
}

// RecordOut registra una saída. Falla con ErrInsufficientStock si el estoque no alcanza,
// sin dejar rastro del intento.
func (uc *RegisterMovementUseCase) RecordOut(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	return uc.record(ctx, entity.MovementOut, in)
}

// RecordFromRequest adapta el request HTTP al caso de uso según el tipo de movimiento.
func (uc *RegisterMovementUseCase) RecordFromRequest(ctx context.Context, kind entity.MovementKind, userID string, req dto.MovementRequest) (*dto.MovementResponse, error) {
	in := MovementInput{ProductID: strings.TrimSpace(req.ProductID), Quantity: req.Quantity, UserID: userID}
	switch kind {
	case entity.MovementIn:
		return uc.RecordIn(ctx, in)
	case entity.MovementOut:
		return uc.RecordOut(ctx, in)
	}
	return nil, fmt.Errorf("%w: tipo de movimento %q", domain.ErrInvalidInput, kind)
}

func (uc *RegisterMovementUseCase) record(ctx context.Context, kind entity.MovementKind, in MovementInput) (*dto.MovementResponse, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: productId é obrigatório", domain.ErrInvalidInput)
	}
	if err := inventory.ValidateQuantity(in.Quantity); err != nil {
		return nil, err
	}

	var out *dto.MovementResponse

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace).
	// Si el runner reintenta por conflicto transitorio, el closure se ejecuta de nuevo completo.
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: dos saídas concurrentes se serializan aquí
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		newQty, err := inventory.Apply(product.Quantity, kind, in.Quantity)
		if err != nil {
			return err
		}
		stored, err := productRepo.AdjustQuantity(ctx, product.ID, newQty-product.Quantity)
		if err != nil {
			return err
		}

		now := uc.now().UTC()
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Kind:        kind,
			Quantity:    in.Quantity,
			CreatedAt:   now,
			CreatedBy:   in.UserID,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}

		out = &dto.MovementResponse{
			ID:          mov.ID,
			ProductID:   mov.ProductID,
			Kind:        string(mov.Kind),
			Quantity:    mov.Quantity,
			NewQuantity: stored,
			CreatedAt:   mov.CreatedAt,
		}
		return nil
	})
	if err != nil {
		uc.logFailure(kind, in, err)
		return nil, err
	}

	uc.log.Info().
		Str("product_id", out.ProductID).
		Str("kind", out.Kind).
		Int("quantity", out.Quantity).
		Int("new_quantity", out.NewQuantity).
		Msg("movimento registrado")
	return out, nil
}

func (uc *RegisterMovementUseCase) logFailure(kind entity.MovementKind, in MovementInput, err error) {
	ev := uc.log.Error()
	if domain.IsNotFound(err) || errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrInvalidInput) {
		ev = uc.log.Warn()
	}
	ev.Err(err).
		Str("product_id", in.ProductID).
		Str("kind", string(kind)).
		Int("quantity", in.Quantity).
		Msg("movimento rejeitado")
}

// List devuelve todos los movimientos con el nombre actual del producto, más recientes primero.
func (uc *RegisterMovementUseCase) List(ctx context.Context) ([]dto.MovementListItem, error) {
	list, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toMovementItems(list), nil
}

// ListByProduct devuelve el historial de un producto. ErrProductNotFound si no existe.
func (uc *RegisterMovementUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.MovementListItem, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	list, err := uc.movRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toMovementItems(list), nil
}

func toMovementItems(list []*entity.StockMovement) []dto.MovementListItem {
	items := make([]dto.MovementListItem, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementListItem{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Kind:        string(m.Kind),
			Quantity:    m.Quantity,
			CreatedAt:   m.CreatedAt,
			CreatedBy:   m.CreatedBy,
		})
	}
	return items
}
