// Package inventorytest provee repositorios en memoria para los tests de casos de uso.
// Store implementa TxRunner con las mismas garantías que PostgreSQL para el ledger:
// las unidades de trabajo se serializan y un error deshace todo lo escrito en ella.
package inventorytest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store base de datos en memoria.
type Store struct {
	txMu sync.Mutex // una unidad de trabajo a la vez (equivale al lock de fila)
	mu   sync.RWMutex

	products   map[string]*entity.Product
	categories map[string]*entity.Category
	movements  []*entity.StockMovement
	users      map[string]*entity.User

	failMovementCreate error
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]*entity.Product),
		categories: make(map[string]*entity.Category),
		users:      make(map[string]*entity.User),
	}
}

// FailMovementCreate hace que el próximo INSERT de movimiento falle con err.
// Sirve para comprobar que el UPDATE de cantidad se deshace.
func (s *Store) FailMovementCreate(err error) {
	s.mu.Lock()
	s.failMovementCreate = err
	s.mu.Unlock()
}

// Products repositorio de productos.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Categories repositorio de categorías.
func (s *Store) Categories() repository.CategoryRepository { return &categoryRepo{s: s} }

// Movements repositorio del ledger.
func (s *Store) Movements() repository.StockMovementRepository { return &movementRepo{s: s} }

// Users repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s} }

// Reports consultas de relatórios calculadas sobre los datos en memoria.
func (s *Store) Reports() repository.ReportRepository { return &reportRepo{s: s} }

// Run ejecuta fn como una transacción: serializada y con rollback si devuelve error.
func (s *Store) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snap := s.snapshot()
	if err := fn(s.Movements(), s.Products()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	quantities map[string]int
	movements  int
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := make(map[string]int, len(s.products))
	for id, p := range s.products {
		q[id] = p.Quantity
	}
	return snapshot{quantities: q, movements: len(s.movements)}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, q := range snap.quantities {
		if p, ok := s.products[id]; ok {
			p.Quantity = q
		}
	}
	s.movements = s.movements[:snap.movements]
}

// SeedCategory inserta una categoría y la devuelve.
func (s *Store) SeedCategory(name string) *entity.Category {
	c := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: time.Now().UTC()}
	s.mu.Lock()
	s.categories[c.ID] = c
	s.mu.Unlock()
	return c
}

// SeedProduct inserta un producto con la cantidad inicial dada en la categoría indicada.
func (s *Store) SeedProduct(name string, quantity int, price string, categoryID string) *entity.Product {
	now := time.Now().UTC()
	p := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Quantity:     quantity,
		Price:        decimal.RequireFromString(price),
		CategoryID:   categoryID,
		MinimumStock: entity.DefaultMinimumStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.mu.Lock()
	s.products[p.ID] = p
	s.mu.Unlock()
	return p
}

// SetMinimumStock cambia el estoque mínimo de un producto sembrado.
func (s *Store) SetMinimumStock(productID string, minimum int) {
	s.mu.Lock()
	if p, ok := s.products[productID]; ok {
		p.MinimumStock = minimum
	}
	s.mu.Unlock()
}

// Quantity devuelve la cantidad actual de un producto (-1 si no existe).
func (s *Store) Quantity(productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.products[productID]; ok {
		return p.Quantity
	}
	return -1
}

// MovementCount devuelve cuántos movimientos hay en el ledger.
func (s *Store) MovementCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movements)
}

func (s *Store) copyProduct(p *entity.Product) *entity.Product {
	cp := *p
	if c, ok := s.categories[p.CategoryID]; ok {
		cp.CategoryName = c.Name
	}
	return &cp
}

// ─── productos ────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[p.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return r.s.copyProduct(p), nil
}

// GetForUpdate no necesita bloquear: Run ya serializa las transacciones.
func (r *productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *productRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, r.s.copyProduct(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if _, ok := r.s.categories[p.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	cur.Name = p.Name
	cur.Price = p.Price
	cur.CategoryID = p.CategoryID
	cur.MinimumStock = p.MinimumStock
	cur.UpdatedAt = p.UpdatedAt
	return nil
}

func (r *productRepo) AdjustQuantity(_ context.Context, id string, delta int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	// CHECK (quantity >= 0)
	if p.Quantity+delta < 0 {
		return p.Quantity, domain.ErrInsufficientStock
	}
	p.Quantity += delta
	p.UpdatedAt = time.Now().UTC()
	return p.Quantity, nil
}

func (r *productRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	// ON DELETE RESTRICT
	for _, m := range r.s.movements {
		if m.ProductID == id {
			return domain.ErrProductHasMovements
		}
	}
	delete(r.s.products, id)
	return nil
}

// ─── categorías ───────────────────────────────────────────────────────────────

type categoryRepo struct{ s *Store }

func (r *categoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *categoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *categoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ─── ledger ───────────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failMovementCreate; err != nil {
		r.s.failMovementCreate = nil
		return err
	}
	if _, ok := r.s.products[m.ProductID]; !ok {
		return fmt.Errorf("stock_movements: %w", domain.ErrProductNotFound)
	}
	if !m.Kind.Valid() || m.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	cp := *m
	cp.ProductName = ""
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *movementRepo) List(_ context.Context) ([]*entity.StockMovement, error) {
	return r.filter(func(*entity.StockMovement) bool { return true }), nil
}

func (r *movementRepo) ListByProduct(_ context.Context, productID string) ([]*entity.StockMovement, error) {
	return r.filter(func(m *entity.StockMovement) bool { return m.ProductID == productID }), nil
}

func (r *movementRepo) CountByProduct(_ context.Context, productID string) (int, error) {
	return len(r.filter(func(m *entity.StockMovement) bool { return m.ProductID == productID })), nil
}

// filter devuelve los movimientos más recientes primero, con el nombre actual del producto.
func (r *movementRepo) filter(keep func(*entity.StockMovement) bool) []*entity.StockMovement {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.StockMovement, 0, len(r.s.movements))
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if !keep(m) {
			continue
		}
		cp := *m
		if p, ok := r.s.products[m.ProductID]; ok {
			cp.ProductName = p.Name
		}
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// ─── usuarios ─────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// ─── relatórios ───────────────────────────────────────────────────────────────

type reportRepo struct{ s *Store }

func (r *reportRepo) TopSellers(_ context.Context, limit int) ([]repository.TopSellerResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sold := make(map[string]int, len(r.s.products))
	for _, m := range r.s.movements {
		if m.Kind == entity.MovementOut {
			sold[m.ProductID] += m.Quantity
		}
	}
	out := make([]repository.TopSellerResult, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, repository.TopSellerResult{ProductID: p.ID, ProductName: p.Name, QuantitySold: sold[p.ID]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].QuantitySold == out[j].QuantitySold {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].QuantitySold > out[j].QuantitySold
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *reportRepo) LowStock(_ context.Context) ([]repository.LowStockResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]repository.LowStockResult, 0)
	for _, p := range r.s.products {
		if p.IsLowStock() {
			out = append(out, repository.LowStockResult{
				ProductID:    p.ID,
				ProductName:  p.Name,
				Quantity:     p.Quantity,
				MinimumStock: p.MinimumStock,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity == out[j].Quantity {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].Quantity < out[j].Quantity
	})
	return out, nil
}

func (r *reportRepo) ProductsByCategory(_ context.Context) ([]repository.CategoryCountResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int, len(r.s.categories))
	for _, p := range r.s.products {
		counts[p.CategoryID]++
	}
	out := make([]repository.CategoryCountResult, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, repository.CategoryCountResult{CategoryID: c.ID, CategoryName: c.Name, ProductCount: counts[c.ID]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductCount == out[j].ProductCount {
			return out[i].CategoryName < out[j].CategoryName
		}
		return out[i].ProductCount > out[j].ProductCount
	})
	return out, nil
}

func (r *reportRepo) StockValue(_ context.Context) (*repository.StockValueResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	res := &repository.StockValueResult{TotalValue: decimal.Zero}
	for _, p := range r.s.products {
		res.TotalProducts++
		res.TotalValue = res.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		if p.IsOutOfStock() {
			res.OutOfStockCount++
		}
		if p.IsLowStock() {
			res.LowStockCount++
		}
	}
	return res, nil
}

func (r *reportRepo) CountCategories(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.categories), nil
}
