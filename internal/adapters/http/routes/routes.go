package routes

import (
	"time"

	"baa-logistica/internal/adapters/http/handlers"
	"baa-logistica/internal/adapters/http/middleware"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/config"
	"baa-logistica/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	usuarioRepo := repositories.NewUsuarioRepository(db)
	clienteRepo := repositories.NewClienteRepository(db)
	motoristaRepo := repositories.NewMotoristaRepository(db)
	veiculoRepo := repositories.NewVeiculoRepository(db)
	cargaRepo := repositories.NewCargaRepository(db)
	viagemRepo := repositories.NewViagemRepository(db)

	// Initialize services
	authService := services.NewAuthService(usuarioRepo, cfg)
	clienteService := services.NewClienteService(clienteRepo)
	motoristaService := services.NewMotoristaService(motoristaRepo)
	veiculoService := services.NewVeiculoService(veiculoRepo)
	cargaService := services.NewCargaService(db, cargaRepo, clienteRepo)
	viagemService := services.NewViagemService(db, viagemRepo, cargaRepo, veiculoRepo, motoristaRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	clienteHandler := handlers.NewClienteHandler(clienteService)
	motoristaHandler := handlers.NewMotoristaHandler(motoristaService)
	veiculoHandler := handlers.NewVeiculoHandler(veiculoService)
	cargaHandler := handlers.NewCargaHandler(cargaService)
	viagemHandler := handlers.NewViagemHandler(viagemService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Public routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/alterar-senha", middleware.AuthMiddleware(cfg), authHandler.ChangePassword)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Everything below requires authentication
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	// Clients
	clients := protected.Group("/clients")
	clients.Get("/", clienteHandler.List)
	clients.Get("/:id", clienteHandler.Get)
	clients.Post("/", clienteHandler.Create)
	clients.Put("/:id", clienteHandler.Update)
	clients.Delete("/:id", clienteHandler.Delete)

	// Drivers
	drivers := protected.Group("/drivers")
	drivers.Get("/", motoristaHandler.List)
	drivers.Get("/available", motoristaHandler.ListAvailable)
	drivers.Get("/:id", motoristaHandler.Get)
	drivers.Post("/", motoristaHandler.Create)
	drivers.Put("/:id", motoristaHandler.Update)
	drivers.Delete("/:id", motoristaHandler.Delete)

	// Vehicles
	vehicles := protected.Group("/vehicles")
	vehicles.Get("/", veiculoHandler.List)
	vehicles.Get("/available", veiculoHandler.ListAvailable)
	vehicles.Get("/:id", veiculoHandler.Get)
	vehicles.Post("/", veiculoHandler.Create)
	vehicles.Put("/:id", veiculoHandler.Update)
	vehicles.Delete("/:id", veiculoHandler.Delete)
	vehicles.Post("/:id/maintenance", veiculoHandler.AddManutencao)
	vehicles.Delete("/:id/maintenance/:maintenanceId", veiculoHandler.DeleteManutencao)

	// Cargo
	cargo := protected.Group("/cargo")
	cargo.Get("/", cargaHandler.List)
	cargo.Get("/:id", cargaHandler.Get)
	cargo.Post("/", cargaHandler.Create)
	cargo.Put("/:id", cargaHandler.Update)
	cargo.Delete("/:id", cargaHandler.Delete)

	// Trips
	trips := protected.Group("/trips")
	trips.Get("/", viagemHandler.List)
	trips.Get("/:id", viagemHandler.Get)
	trips.Post("/", viagemHandler.Create)
	trips.Put("/:id", viagemHandler.Update)
	trips.Delete("/:id", viagemHandler.Delete)
	trips.Post("/:id/expenses", viagemHandler.AddDespesa)
	trips.Delete("/:id/expenses/:expenseId", viagemHandler.DeleteDespesa)

	// Dashboard (read-only, short-lived cache)
	dashboard := protected.Group("/dashboard", middleware.CacheControl(30*time.Second))
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/active-trips", dashboardHandler.ActiveTrips)
	dashboard.Get("/recent-cargo", dashboardHandler.RecentCargo)
	dashboard.Get("/trips-by-month", dashboardHandler.TripsByMonth)
}
