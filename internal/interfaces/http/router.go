package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/souhailwaf/wareho/internal/application/auth"
	"github.com/souhailwaf/wareho/internal/application/reports"
	"github.com/souhailwaf/wareho/internal/application/stockmovement"
	"github.com/souhailwaf/wareho/internal/domain/entity"
	"github.com/souhailwaf/wareho/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovementUC   *stockmovement.UseCase
	MovementRepo repository.MovementRepository
	StockRepo    repository.StockRepository
	ItemRepo     repository.ItemRepository
	LocationRepo repository.LocationRepository
	KardexUC     *reports.KardexUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
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

	// Gestión de usuarios: solo un admin puede asignar roles privilegiados.
	users := protected.Group("/users")
	users.Post("/", RequireRole(entity.RoleAdmin), authHandler.CreateUser)

	// Movimientos de stock (protegido). El ajuste requiere supervisor o admin.
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.MovementRepo)
	movements.Post("/receive", movementHandler.Receive)
	movements.Post("/putaway", movementHandler.Putaway)
	movements.Post("/pick", movementHandler.Pick)
	movements.Post("/adjust", RequireRole(entity.RoleSupervisor, entity.RoleAdmin), movementHandler.Adjust)
	movements.Get("/", movementHandler.List)

	// Consulta de existencias (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockRepo)
	stockGroup.Get("/", stockHandler.List)

	// Catálogo de artículos (protegido; altas solo supervisor/admin)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemRepo)
	items.Post("/", RequireRole(entity.RoleSupervisor, entity.RoleAdmin), itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)

	// Ubicaciones (protegido; altas solo supervisor/admin)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationRepo)
	locations.Post("/", RequireRole(entity.RoleSupervisor, entity.RoleAdmin), locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Get("/:id/children", locationHandler.Children)

	// Reportes (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.KardexUC)
	reportsGroup.Get("/kardex/:item_id", reportHandler.Kardex)
}
