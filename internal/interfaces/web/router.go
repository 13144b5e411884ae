// Package web compone las vistas HTML a partir del estado de la caché de
// consultas y registra las rutas navegables de la aplicación.
package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/drinktrace-web/internal/application/usecase"
	"github.com/jhoicas/drinktrace-web/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	BrandUC       *usecase.BrandUseCase
	StoreUC       *usecase.StoreUseCase
	Labels        *pdf.LabelGenerator
	PublicBaseURL string
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	productHandler := NewProductHandler(deps.ProductUC, deps.BrandUC, deps.StoreUC, deps.Labels, deps.PublicBaseURL)
	brandHandler := NewBrandHandler(deps.BrandUC)
	storeHandler := NewStoreHandler(deps.StoreUC)

	// Listado (la raíz y /products muestran lo mismo)
	app.Get("/", productHandler.List)
	app.Get("/products", productHandler.List)

	// Creación de producto
	app.Get("/products/new", productHandler.NewForm)
	app.Post("/products/new", productHandler.Create)

	// Historial y ventas por producto
	app.Get("/products/:productId/history", productHandler.HistoryForm)
	app.Post("/products/:productId/history", productHandler.AddHistory)
	app.Get("/products/:productId/sales", productHandler.SaleForm)
	app.Post("/products/:productId/sales", productHandler.RecordSale)

	// Detalle público, QR y etiqueta
	app.Get("/products/:productId/qrcode.png", productHandler.QRCode)
	app.Get("/products/:productId/label.pdf", productHandler.Label)
	app.Get("/products/:productId", productHandler.Detail)

	// Tiendas y marcas
	app.Get("/store/new", storeHandler.NewForm)
	app.Post("/store/new", storeHandler.Create)
	app.Get("/brands/new", brandHandler.NewForm)
	app.Post("/brands/new", brandHandler.Create)
}
