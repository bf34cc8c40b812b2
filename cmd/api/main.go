package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/electrostock-api/internal/application/auth"
	"github.com/jhoicas/electrostock-api/internal/application/sale"
	"github.com/jhoicas/electrostock-api/internal/application/statistics"
	"github.com/jhoicas/electrostock-api/internal/application/stock"
	"github.com/jhoicas/electrostock-api/internal/application/usecase"
	"github.com/jhoicas/electrostock-api/internal/application/warning"
	"github.com/jhoicas/electrostock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/electrostock-api/internal/interfaces/http"
	"github.com/jhoicas/electrostock-api/pkg/config"
	"github.com/jhoicas/electrostock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	typeRepo := postgres.NewProductTypeRepository(pool)
	inRepo := postgres.NewStockInRepository(pool)
	outRepo := postgres.NewStockOutRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatisticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewStockUseCase(txRunner, productRepo, inRepo, outRepo)
	saleUC := sale.NewSaleUseCase(txRunner, productRepo, saleRepo)
	warningUC := warning.NewWarningUseCase(productRepo, cfg.Inventory.WarningThreshold)
	statisticsUC := statistics.NewStatisticsUseCase(statsRepo)
	productUC := usecase.NewProductUseCase(productRepo, typeRepo)
	typeUC := usecase.NewProductTypeUseCase(typeRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		ProductTypeUC: typeUC,
		UserUC:        userUC,
		StockUC:       stockUC,
		SaleUC:        saleUC,
		WarningUC:     warningUC,
		StatisticsUC:  statisticsUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
