package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad se maneja vía movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movRepo      repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movRepo repository.StockMovementRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, movRepo: movRepo}
}

// Create crea un producto con su cantidad inicial. La categoría debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", domain.ErrInvalidInput)
	}
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	quantity := 0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 0 || quantity > entity.MaxQuantity {
		return nil, fmt.Errorf("%w: quantidade deve estar entre 0 e %d", domain.ErrInvalidInput, entity.MaxQuantity)
	}
	minimum := entity.DefaultMinimumStock
	if in.MinimumStock != nil {
		minimum = *in.MinimumStock
	}
	if err := validateMinimumStock(minimum); err != nil {
		return nil, err
	}
	category, err := uc.requireCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Quantity:     quantity,
		Price:        in.Price,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		MinimumStock: minimum,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar la cantidad (se maneja vía movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: nome é obrigatório", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
		product.Price = *in.Price
	}
	if in.MinimumStock != nil {
		if err := validateMinimumStock(*in.MinimumStock); err != nil {
			return nil, err
		}
		product.MinimumStock = *in.MinimumStock
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		category, err := uc.requireCategory(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. Un producto con movimientos no se puede eliminar:
// el ledger conserva su historial completo.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	n, err := uc.movRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrProductHasMovements
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) requireCategory(ctx context.Context, id string) (*entity.Category, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: categoryId é obrigatório", domain.ErrInvalidInput)
	}
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// validatePrice exige precio positivo, menor que MaxPrice y con no más de 2 decimales (NUMERIC(12,2)).
func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: preço deve ser maior que zero", domain.ErrInvalidInput)
	}
	if price.GreaterThanOrEqual(entity.MaxPrice) {
		return fmt.Errorf("%w: preço deve ser menor que %s", domain.ErrInvalidInput, entity.MaxPrice.String())
	}
	if !price.Equal(price.Round(2)) {
		return fmt.Errorf("%w: preço deve ter no máximo 2 casas decimais", domain.ErrInvalidInput)
	}
	return nil
}

func validateMinimumStock(minimum int) error {
	if minimum < 0 || minimum > entity.MaxQuantity {
		return fmt.Errorf("%w: estoque mínimo deve estar entre 0 e %d", domain.ErrInvalidInput, entity.MaxQuantity)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Quantity:     p.Quantity,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		Category:     p.CategoryName,
		MinimumStock: p.MinimumStock,
		LowStock:     p.IsLowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
