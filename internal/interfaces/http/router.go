package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chamador/gestor-inventario/internal/application/auth"
	"github.com/chamador/gestor-inventario/internal/application/inventory"
	"github.com/chamador/gestor-inventario/internal/domain/entity"
	"github.com/chamador/gestor-inventario/internal/infrastructure/jsonstore"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Gestor    *inventory.Gestor
	Store     *jsonstore.Store
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo: categorías, proveedores, responsables
	catalogHandler := NewCatalogHandler(deps.Gestor)
	protected.Post("/categorias", catalogHandler.CreateCategory)
	protected.Post("/proveedores", catalogHandler.CreateSupplier)
	protected.Post("/responsables", catalogHandler.CreateResponsible)

	// Productos
	productHandler := NewProductHandler(deps.Gestor)
	products := protected.Group("/productos")
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.ValidateStock)

	// Movimientos de inventario
	inventoryHandler := NewInventoryHandler(deps.Gestor)
	protected.Post("/inventario/movimientos", inventoryHandler.RegisterMovement)

	// Reportes
	reportHandler := NewReportHandler(deps.Gestor)
	protected.Get("/reportes/:tipo", reportHandler.Generate)

	// Persistencia explícita (solo Administrador)
	dataHandler := NewDataHandler(deps.Gestor, deps.Store)
	data := protected.Group("/datos", RequireRole(entity.RoleAdministrador))
	data.Post("/guardar", dataHandler.Save)
	data.Post("/cargar", dataHandler.Load)
}
