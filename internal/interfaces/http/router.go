package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcamargo/almacen-api/internal/application/inventory"
	"github.com/jcamargo/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	ExtractionUC *inventory.ExtractionUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	extractions := app.Group("/extractions")
	extractionHandler := NewExtractionHandler(deps.ExtractionUC)
	extractions.Get("/", extractionHandler.List)
	extractions.Post("/", extractionHandler.Create)
	extractions.Patch("/:id", extractionHandler.Update)
	extractions.Delete("/:id", extractionHandler.Delete)
}
