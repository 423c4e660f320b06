package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tilestrack-api/internal/application/auth"
	"github.com/jhoicas/tilestrack-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *usecase.SaleUseCase
	ReportUC  *usecase.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Las rutas viven en la raíz (sin prefijo
// /api) porque los clientes existentes llaman /login, /products, /sales, etc.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/change-password", authHandler.ChangePassword)

	// Products (protegido). Las rutas fijas van antes que /:id.
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/products/low-stock/count", productHandler.LowStockCount)
	protected.Get("/products/low-stock", productHandler.LowStock)
	protected.Post("/products", productHandler.Create)
	protected.Get("/products", productHandler.List)
	protected.Put("/products/:id", productHandler.Update)
	protected.Patch("/products/:id/stock", productHandler.AdjustStock)
	protected.Delete("/products/:id", productHandler.Delete)

	// Sales y reporte (protegido)
	saleHandler := NewSaleHandler(deps.SaleUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/sales/report", reportHandler.Report)
	protected.Post("/sales", saleHandler.Record)
	protected.Get("/sales", saleHandler.List)
}
