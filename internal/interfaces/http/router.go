package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	Ledger     *inventory.RegisterMovementUseCase
	ReportUC   *analytics.ReportUseCase
	Health     *HealthHandler // opcional
	JWTSecret  string
}

// Router registra las rutas de la API y el 404 JSON final.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Health != nil {
		app.Get("/health", deps.Health.Check)
	}

	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWTSecret)
	readers := RequireRole(string(entity.RoleAdmin), string(entity.RoleUser))
	admins := RequireRole(string(entity.RoleAdmin))

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authn, authHandler.Me)

	// Produtos y categorías. /categorias va antes de /:id.
	produtos := api.Group("/produtos", authn)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	movementHandler := NewMovementHandler(deps.Ledger)
	produtos.Get("/categorias", readers, categoryHandler.List)
	produtos.Post("/categorias", admins, categoryHandler.Create)
	produtos.Get("/", readers, productHandler.List)
	produtos.Post("/", admins, productHandler.Create)
	produtos.Get("/:id/movimentos", readers, movementHandler.ListByProduct)
	produtos.Get("/:id", readers, productHandler.GetByID)
	produtos.Put("/:id", admins, productHandler.Update)
	produtos.Delete("/:id", admins, productHandler.Delete)

	// Ledger de movimientos
	movimentos := api.Group("/movimentos", authn)
	movimentos.Get("/", readers, movementHandler.List)
	movimentos.Post("/entrada", admins, movementHandler.RecordIn)
	movimentos.Post("/saida", admins, movementHandler.RecordOut)

	// Relatórios
	relatorios := api.Group("/relatorios", authn, readers)
	reportHandler := NewReportHandler(deps.ReportUC)
	relatorios.Get("/mais-vendidos", reportHandler.TopSellers)
	relatorios.Get("/estoque-baixo", reportHandler.LowStock)
	relatorios.Get("/por-categoria", reportHandler.ProductsByCategory)
	relatorios.Get("/valor-estoque", reportHandler.StockValue)
	relatorios.Get("/resumo", reportHandler.Summary)
	relatorios.Get("/exportar/pdf", reportHandler.ExportPDF)
	relatorios.Get("/exportar/xlsx", reportHandler.ExportXLSX)

	app.Use(NotFound)
}
