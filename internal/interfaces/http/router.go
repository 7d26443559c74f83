package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raihanpm/bisnisku-api/internal/application/analytics"
	"github.com/raihanpm/bisnisku-api/internal/application/auth"
	"github.com/raihanpm/bisnisku-api/internal/application/insight"
	"github.com/raihanpm/bisnisku-api/internal/application/inventory"
	"github.com/raihanpm/bisnisku-api/internal/application/sales"
	"github.com/raihanpm/bisnisku-api/internal/application/usecase"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	MaterialUC  *usecase.MaterialUseCase
	ProductUC   *usecase.ProductUseCase
	VariationUC *usecase.VariationUseCase
	BOMUC       *usecase.BOMUseCase
	InsightUC   *insight.InsightUseCase
	ReportUC    *insight.ReportUseCase
	MovementUC  *inventory.RegisterMovementUseCase
	LowStockUC  *inventory.LowStockUseCase
	SaleUC      *sales.CreateSaleUseCase
	DashboardUC *analytics.DashboardUseCase
	AdvisorUC   *usecase.AdvisorUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public entry points)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register-business", authHandler.RegisterBusiness)
	authGroup.Post("/login", authHandler.Login)

	// Everything below requires a Bearer token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Staff management: owner only
	protected.Post("/auth/users", RequireRole(entity.RoleOwner), authHandler.RegisterUser)

	// Materials
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", RequireRole(entity.RoleOwner), materialHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleOwner), productHandler.Delete)

	// Variations nested under products, with flat update/delete
	variationHandler := NewVariationHandler(deps.VariationUC)
	products.Post("/:productId/variations", variationHandler.Create)
	products.Get("/:productId/variations", variationHandler.ListByProduct)
	protected.Put("/variations/:id", variationHandler.Update)
	protected.Delete("/variations/:id", variationHandler.Delete)

	// BOM nested under products, with flat update/delete
	bomHandler := NewBOMHandler(deps.BOMUC)
	products.Post("/:productId/bom", bomHandler.Create)
	products.Get("/:productId/bom", bomHandler.ListByProduct)
	products.Post("/:productId/bom/resnapshot", bomHandler.ResnapshotCosts)
	protected.Put("/bom/:id", bomHandler.Update)
	protected.Delete("/bom/:id", bomHandler.Delete)

	// Insights
	insightHandler := NewInsightHandler(deps.InsightUC)
	insights := protected.Group("/insights")
	insights.Get("/products", insightHandler.ListCostSummaries)
	insights.Get("/products/:productId", insightHandler.GetProductInsight)

	// Stock movements and low-stock suggestions
	stockHandler := NewStockHandler(deps.MovementUC, deps.LowStockUC)
	stock := protected.Group("/stock")
	stock.Post("/movements", stockHandler.RegisterMovement)
	stock.Get("/materials/:materialId/movements", stockHandler.ListByMaterial)
	stock.Get("/low", stockHandler.LowStockSuggestions)

	// Sales
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// PDF report
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/products/:productId", reportHandler.ProductReport)

	// LLM advisor
	advisorHandler := NewAdvisorHandler(deps.AdvisorUC)
	protected.Post("/advisor/narrate", advisorHandler.Narrate)
}
