package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrostock-api/internal/application/auth"
	"github.com/jhoicas/electrostock-api/internal/application/sale"
	"github.com/jhoicas/electrostock-api/internal/application/statistics"
	"github.com/jhoicas/electrostock-api/internal/application/stock"
	"github.com/jhoicas/electrostock-api/internal/application/usecase"
	"github.com/jhoicas/electrostock-api/internal/application/warning"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	ProductTypeUC *usecase.ProductTypeUseCase
	UserUC        *usecase.UserUseCase
	StockUC       *stock.StockUseCase
	SaleUC        *sale.SaleUseCase
	WarningUC     *warning.WarningUseCase
	StatisticsUC  *statistics.StatisticsUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	almacen := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	ventas := RequireRole(entity.RoleAdmin, entity.RoleVendedor)
	admin := RequireRole(entity.RoleAdmin)

	// Catálogo de productos: lectura para todos, escritura para almacén
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", almacen, productHandler.Create)
	products.Put("/:id", almacen, productHandler.Update)
	products.Delete("/:id", almacen, productHandler.Delete)

	// Tipos de producto
	types := protected.Group("/product-types")
	typeHandler := NewProductTypeHandler(deps.ProductTypeUC)
	types.Get("/", typeHandler.List)
	types.Post("/", almacen, typeHandler.Create)
	types.Put("/:id", almacen, typeHandler.Update)
	types.Delete("/:id", almacen, typeHandler.Delete)

	// Entradas y salidas de mercancía (admin y bodeguero)
	stockGroup := protected.Group("/stock", almacen)
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/in", stockHandler.StockIn)
	stockGroup.Get("/in/records", stockHandler.StockInRecords)
	stockGroup.Put("/in/:id", stockHandler.UpdateStockIn)
	stockGroup.Delete("/in/:id", stockHandler.DeleteStockIn)
	stockGroup.Post("/out", stockHandler.StockOut)
	stockGroup.Get("/out/records", stockHandler.StockOutRecords)
	stockGroup.Put("/out/:id", stockHandler.UpdateStockOut)
	stockGroup.Delete("/out/:id", stockHandler.DeleteStockOut)

	// Ventas (admin y vendedor)
	sales := protected.Group("/sales", ventas)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Sell)
	sales.Get("/records", saleHandler.Records)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Advertencias de stock (cualquier usuario autenticado)
	warnings := protected.Group("/warnings")
	warningHandler := NewWarningHandler(deps.WarningUC)
	warnings.Get("/", warningHandler.List)

	// Estadísticas (cualquier usuario autenticado)
	stats := protected.Group("/statistics")
	statsHandler := NewStatisticsHandler(deps.StatisticsUC)
	stats.Get("/stock-in", statsHandler.StockIn)
	stats.Get("/stock-out", statsHandler.StockOut)
	stats.Get("/sales", statsHandler.Sales)

	// Directorio de usuarios (solo admin)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
}
