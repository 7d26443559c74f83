package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/raihanpm/bisnisku-api/internal/application/analytics"
	"github.com/raihanpm/bisnisku-api/internal/application/auth"
	"github.com/raihanpm/bisnisku-api/internal/application/insight"
	"github.com/raihanpm/bisnisku-api/internal/application/inventory"
	"github.com/raihanpm/bisnisku-api/internal/application/ports"
	"github.com/raihanpm/bisnisku-api/internal/application/sales"
	"github.com/raihanpm/bisnisku-api/internal/application/usecase"
	infraai "github.com/raihanpm/bisnisku-api/internal/infrastructure/ai"
	infrapdf "github.com/raihanpm/bisnisku-api/internal/infrastructure/pdf"
	"github.com/raihanpm/bisnisku-api/internal/infrastructure/postgres"
	httpRouter "github.com/raihanpm/bisnisku-api/internal/interfaces/http"
	"github.com/raihanpm/bisnisku-api/pkg/config"
	"github.com/raihanpm/bisnisku-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	businessRepo := postgres.NewBusinessRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	variationRepo := postgres.NewVariationRepository(pool)
	bomRepo := postgres.NewBOMItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, businessRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	variationUC := usecase.NewVariationUseCase(variationRepo, productRepo)
	bomUC := usecase.NewBOMUseCase(bomRepo, materialRepo, productRepo, variationRepo)

	feeModels := insight.FeeModelsFromOverrides(
		cfg.Channels.ShopeeFeePct,
		cfg.Channels.ShopeeFixedFee,
		cfg.Channels.TikTokFeePct,
	)
	insightUC := insight.NewInsightUseCase(productRepo, variationRepo, bomRepo, feeModels)

	movementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo, materialRepo)
	lowStockUC := inventory.NewLowStockUseCase(materialRepo)
	saleUC := sales.NewCreateSaleUseCase(txRunner, productRepo, variationRepo, bomRepo, saleRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := insight.NewReportUseCase(insightUC, businessRepo, pdfGenerator)

	var llm ports.LLMService
	if cfg.AI.Provider == "gemini" {
		llm = infraai.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model)
	} else {
		llm = infraai.NewAnthropicService(cfg.AI.APIKey, cfg.AI.Model)
	}
	advisorUC := usecase.NewAdvisorUseCase(insightUC, llm)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bisnisku API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		MaterialUC:  materialUC,
		ProductUC:   productUC,
		VariationUC: variationUC,
		BOMUC:       bomUC,
		InsightUC:   insightUC,
		ReportUC:    reportUC,
		MovementUC:  movementUC,
		LowStockUC:  lowStockUC,
		SaleUC:      saleUC,
		DashboardUC: dashboardUC,
		AdvisorUC:   advisorUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
