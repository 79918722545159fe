package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	CatalogUC        *usecase.CatalogUseCase
	ReportUC         *usecase.ReportUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	AuthUC           *auth.UseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
// Lecturas: cualquier rol autenticado. Mutaciones de catálogo: ADMIN/ROOT.
// Registro de movimientos: además OPERADOR.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	admin := RequireRole(entity.RoleRoot, entity.RoleAdmin)
	operator := RequireRole(entity.RoleRoot, entity.RoleAdmin, entity.RoleOperador)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Get("/:id/products", supplierHandler.ListProducts)
	suppliers.Post("/", admin, supplierHandler.Create)
	suppliers.Put("/:id", admin, supplierHandler.Update)
	suppliers.Delete("/:id", admin, supplierHandler.Delete)
	suppliers.Post("/:id/products", admin, supplierHandler.LinkProduct)
	suppliers.Delete("/:id/products/:product_id", admin, supplierHandler.UnlinkProduct)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/", admin, warehouseHandler.Create)
	warehouses.Put("/:id", admin, warehouseHandler.Update)
	warehouses.Delete("/:id", admin, warehouseHandler.Delete)

	// Categories y brands
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := protected.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", admin, catalogHandler.CreateCategory)
	categories.Delete("/:id", admin, catalogHandler.DeleteCategory)
	brands := protected.Group("/brands")
	brands.Get("/", catalogHandler.ListBrands)
	brands.Post("/", admin, catalogHandler.CreateBrand)
	brands.Delete("/:id", admin, catalogHandler.DeleteBrand)

	// Inventory movements
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQuery)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/:id", inventoryHandler.GetMovement)
	invGroup.Post("/movements", operator, inventoryHandler.RegisterMovement)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.MovementQuery)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/movements.xlsx", reportHandler.ExportMovements)
	reports.Get("/kardex/:id", reportHandler.Kardex)
	reports.Get("/ledger-check/:id", reportHandler.LedgerCheck)
}
