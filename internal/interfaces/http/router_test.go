package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/inventory/inventorytest"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/report"
	apphttp "github.com/jhoicas/Estoque-api/internal/interfaces/http"
)

const unknownID = "7d1c7f0e-3c1a-4f57-9d58-1f3c7b1d2e4a"

type testAPI struct {
	app   *fiber.App
	store *inventorytest.Store
	admin string
	user  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := inventorytest.NewStore()
	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}).WithBcryptCost(bcrypt.MinCost)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(nil, false)})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		UserUC:     usecase.NewUserUseCase(store.Users()),
		ProductUC:  usecase.NewProductUseCase(store.Products(), store.Categories(), store.Movements()),
		CategoryUC: usecase.NewCategoryUseCase(store.Categories()),
		Ledger:     inventory.NewRegisterMovementUseCase(store, store.Movements(), store.Products(), nil),
		ReportUC:   analytics.NewReportUseCase(store.Reports(), report.NewExporter()),
		JWTSecret:  testJWTSecret,
	})
	return &testAPI{
		app:   app,
		store: store,
		admin: tokenForRole(t, "admin"),
		user:  tokenForRole(t, "user"),
	}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (a *testAPI) seedProduct(qty int) *entity.Product {
	cat := a.store.SeedCategory("Eletrônicos")
	return a.store.SeedProduct("Teclado", qty, "149.90", cat.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegisterYLogin(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Ana", Email: "ana@estoque.dev", Password: "segredo1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "user", user.Role)
	assert.NotEmpty(t, user.ID)

	resp = api.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Ana", Email: "ANA@estoque.dev", Password: "segredo1",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", decode[dto.ErrorResponse](t, resp).Code)

	resp = api.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "ana@estoque.dev", Password: "segredo1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, user.ID, login.User.ID)

	// El token emitido abre las rutas de lectura.
	resp = api.do(t, http.MethodGet, "/api/produtos", "Bearer "+login.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/auth/me", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "ana@estoque.dev", me.Email)
	assert.Equal(t, "user", me.Role)

	// Token válido de un usuario que no existe en la base.
	resp = api.do(t, http.MethodGet, "/api/auth/me", api.admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "ana@estoque.dev", Password: "errada12",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_RegisterValidacion(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "A", "email": "no-es-email", "password": "123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Len(t, body.Details, 3)
	assert.Contains(t, strings.Join(body.Details, "|"), "email: email inválido")

	resp = api.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Ana", "email": "ana@estoque.dev", "password": "segredo1", "role": "root",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Ana", "email": "ana@estoque.dev", "password": strings.Repeat("x", 80),
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	resp = api.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Ana", "email": strings.Repeat("a", 250) + "@estoque.dev", "password": "segredo1",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuth_BodyInvalido(t *testing.T) {
	api := newTestAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Produtos y categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutos_CRUD(t *testing.T) {
	api := newTestAPI(t)
	cat := api.store.SeedCategory("Eletrônicos")

	resp := api.do(t, http.MethodPost, "/api/produtos", api.admin, map[string]any{
		"name": "Teclado", "quantity": 20, "price": "149.90", "categoryId": cat.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, 20, created.Quantity)
	assert.Equal(t, entity.DefaultMinimumStock, created.MinimumStock)
	assert.Equal(t, "Eletrônicos", created.Category)

	resp = api.do(t, http.MethodGet, "/api/produtos/"+created.ID, api.user, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Teclado", decode[dto.ProductResponse](t, resp).Name)

	resp = api.do(t, http.MethodPut, "/api/produtos/"+created.ID, api.admin, map[string]any{
		"name": "Teclado mecânico", "quantity": 999,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Teclado mecânico", updated.Name)
	assert.Equal(t, 20, updated.Quantity, "PUT no cambia la cantidad")

	resp = api.do(t, http.MethodGet, "/api/produtos", api.user, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[dto.ProductResponse]](t, resp)
	assert.Equal(t, 1, list.Total)

	resp = api.do(t, http.MethodDelete, "/api/produtos/"+created.ID, api.admin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/produtos/"+created.ID, api.user, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestProdutos_Permisos(t *testing.T) {
	api := newTestAPI(t)
	p := api.seedProduct(5)

	resp := api.do(t, http.MethodGet, "/api/produtos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/produtos", api.user, map[string]any{
		"name": "Mouse", "quantity": 1, "price": "10", "categoryId": p.CategoryID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(t, http.MethodDelete, "/api/produtos/"+p.ID, api.user, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 5, api.store.Quantity(p.ID))
}

func TestProdutos_Errores(t *testing.T) {
	api := newTestAPI(t)
	cat := api.store.SeedCategory("Eletrônicos")

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{"sin cantidad", map[string]any{"name": "Mouse", "price": "10", "categoryId": cat.ID}, http.StatusBadRequest, "VALIDATION"},
		{"precio cero", map[string]any{"name": "Mouse", "quantity": 1, "price": "0", "categoryId": cat.ID}, http.StatusBadRequest, "VALIDATION"},
		{"categoría no uuid", map[string]any{"name": "Mouse", "quantity": 1, "price": "10", "categoryId": "x"}, http.StatusBadRequest, "VALIDATION"},
		{"categoría inexistente", map[string]any{"name": "Mouse", "quantity": 1, "price": "10", "categoryId": unknownID}, http.StatusBadRequest, "CATEGORY_NOT_FOUND"},
		{"cantidad fuera de int4", map[string]any{"name": "Mouse", "quantity": int64(3000000000), "price": "10", "categoryId": cat.ID}, http.StatusBadRequest, "VALIDATION"},
		{"precio fuera de NUMERIC(12,2)", map[string]any{"name": "Mouse", "quantity": 1, "price": "10000000000", "categoryId": cat.ID}, http.StatusBadRequest, "VALIDATION"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.do(t, http.MethodPost, "/api/produtos", api.admin, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}

	resp := api.do(t, http.MethodPut, "/api/produtos/"+unknownID, api.admin, map[string]any{"name": "Mouse"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(t, http.MethodDelete, "/api/produtos/"+unknownID, api.admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategorias(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/produtos/categorias", api.admin, dto.CreateCategoryRequest{Name: "Papelaria"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Papelaria", decode[dto.CategoryResponse](t, resp).Name)

	resp = api.do(t, http.MethodPost, "/api/produtos/categorias", api.admin, dto.CreateCategoryRequest{Name: "papelaria"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/produtos/categorias", api.user, dto.CreateCategoryRequest{Name: "Limpeza"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/produtos/categorias", api.user, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[dto.CategoryResponse]](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Papelaria", list.Items[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimentos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimentos_Flujo(t *testing.T) {
	api := newTestAPI(t)
	p := api.seedProduct(20)

	resp := api.do(t, http.MethodPost, "/api/movimentos/entrada", api.admin, dto.MovementRequest{ProductID: p.ID, Quantity: 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	in := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, "in", in.Kind)
	assert.Equal(t, 30, in.NewQuantity)

	resp = api.do(t, http.MethodPost, "/api/movimentos/saida", api.admin, dto.MovementRequest{ProductID: p.ID, Quantity: 5})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 25, decode[dto.MovementResponse](t, resp).NewQuantity)

	resp = api.do(t, http.MethodPost, "/api/movimentos/saida", api.admin, dto.MovementRequest{ProductID: p.ID, Quantity: 1000})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, resp).Code)
	assert.Equal(t, 25, api.store.Quantity(p.ID))

	resp = api.do(t, http.MethodGet, "/api/movimentos", api.user, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[dto.MovementListItem]](t, resp)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "out", list.Items[0].Kind, "más reciente primero")
	assert.Equal(t, "Teclado", list.Items[0].ProductName)
	assert.Equal(t, testUserID, list.Items[0].CreatedBy)

	resp = api.do(t, http.MethodGet, "/api/produtos/"+p.ID+"/movimentos", api.user, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[dto.ListResponse[dto.MovementListItem]](t, resp).Total)

	resp = api.do(t, http.MethodDelete, "/api/produtos/"+p.ID, api.admin, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "PRODUCT_HAS_MOVEMENTS", decode[dto.ErrorResponse](t, resp).Code)
}

func TestMovimentos_Errores(t *testing.T) {
	api := newTestAPI(t)
	p := api.seedProduct(3)

	tests := []struct {
		name   string
		path   string
		token  string
		body   any
		status int
		code   string
	}{
		{"producto inexistente", "/api/movimentos/saida", api.admin, dto.MovementRequest{ProductID: unknownID, Quantity: 1}, http.StatusBadRequest, "PRODUCT_NOT_FOUND"},
		{"cantidad cero", "/api/movimentos/entrada", api.admin, dto.MovementRequest{ProductID: p.ID, Quantity: 0}, http.StatusBadRequest, "VALIDATION"},
		{"cantidad negativa", "/api/movimentos/entrada", api.admin, dto.MovementRequest{ProductID: p.ID, Quantity: -3}, http.StatusBadRequest, "VALIDATION"},
		{"sin producto", "/api/movimentos/entrada", api.admin, map[string]any{"quantity": 1}, http.StatusBadRequest, "VALIDATION"},
		{"cantidad fuera de int4", "/api/movimentos/entrada", api.admin, map[string]any{"productId": p.ID, "quantity": int64(3000000000)}, http.StatusBadRequest, "VALIDATION"},
		{"role user", "/api/movimentos/entrada", api.user, dto.MovementRequest{ProductID: p.ID, Quantity: 1}, http.StatusForbidden, "FORBIDDEN"},
		{"sin token", "/api/movimentos/saida", "", dto.MovementRequest{ProductID: p.ID, Quantity: 1}, http.StatusUnauthorized, "MISSING_TOKEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.do(t, http.MethodPost, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
	assert.Equal(t, 3, api.store.Quantity(p.ID))
	assert.Equal(t, 0, api.store.MovementCount())

	resp := api.do(t, http.MethodGet, "/api/produtos/"+unknownID+"/movimentos", api.user, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatórios
// ──────────────────────────────────────────────────────────────────────────────

func TestRelatorios(t *testing.T) {
	api := newTestAPI(t)
	p := api.seedProduct(12)
	api.store.SeedProduct("Mouse", 0, "80.00", p.CategoryID)

	resp := api.do(t, http.MethodPost, "/api/movimentos/saida", api.admin, dto.MovementRequest{ProductID: p.ID, Quantity: 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, path := range []string{"mais-vendidos", "estoque-baixo", "por-categoria", "valor-estoque", "resumo"} {
		resp := api.do(t, http.MethodGet, "/api/relatorios/"+path, api.user, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp = api.do(t, http.MethodGet, "/api/relatorios/resumo", api.user, nil)
	summary := decode[dto.SummaryDTO](t, resp)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.OutOfStockCount)
	assert.Equal(t, 2, summary.LowStockCount)
	assert.Equal(t, "1499", summary.TotalValue.String())

	resp = api.do(t, http.MethodGet, "/api/relatorios/mais-vendidos", api.user, nil)
	top := decode[dto.ListResponse[dto.TopSellerDTO]](t, resp)
	require.Equal(t, 1, top.Total)
	assert.Equal(t, 2, top.Items[0].QuantitySold)

	resp = api.do(t, http.MethodGet, "/api/relatorios/resumo", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRelatorios_Exportar(t *testing.T) {
	api := newTestAPI(t)
	api.seedProduct(4)

	resp := api.do(t, http.MethodGet, "/api/relatorios/exportar/pdf", api.user, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp = api.do(t, http.MethodGet, "/api/relatorios/exportar/xlsx", api.admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("PK")), "xlsx es un zip")
}

// ──────────────────────────────────────────────────────────────────────────────
// 404, errores internos y health
// ──────────────────────────────────────────────────────────────────────────────

func TestRutaDesconocida_404JSON(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/nao-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestErrorHandler_OcultaMensajeInternoEnProduccion(t *testing.T) {
	for _, tt := range []struct {
		hide bool
		want string
	}{{true, "erro interno"}, {false, "boom"}} {
		app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(nil, tt.hide)})
		app.Get("/falla", func(c *fiber.Ctx) error { return errors.New("boom") })

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/falla", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "INTERNAL", body.Code)
		assert.Equal(t, tt.want, body.Message)
		_ = resp.Body.Close()
	}
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealth(t *testing.T) {
	for _, tt := range []struct {
		name   string
		err    error
		status int
		db     string
	}{
		{"db arriba", nil, http.StatusOK, "up"},
		{"db caída", errors.New("connection refused"), http.StatusServiceUnavailable, "down"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			apphttp.Router(app, apphttp.RouterDeps{
				Health:    apphttp.NewHealthHandler(fakePinger{err: tt.err}, "estoque-api", "test"),
				JWTSecret: testJWTSecret,
			})
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			body := decode[apphttp.HealthResponse](t, resp)
			assert.Equal(t, tt.db, body.Database)
			assert.Equal(t, "test", body.Environment)
		})
	}
}

func TestRequestLogger_ResuelveElStatusDelError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(nil, false)})
	app.Use(apphttp.RequestLogger(nil))
	app.Get("/falla", func(c *fiber.Ctx) error { return fiber.ErrTeapot })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/falla", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}
