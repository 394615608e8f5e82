package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/auth"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/billing"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/usecase"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/workorder"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	WorkOrderUC     *workorder.UseCase
	GenerateInvoice *billing.GenerateInvoiceUseCase
	InvoiceUC       *billing.InvoiceUseCase
	InvoicePDF      *billing.PDFUseCase
	CustomerUC      *usecase.CustomerUseCase
	DeviceUC        *usecase.DeviceUseCase
	InventoryUC     *usecase.InventoryUseCase
	SettingsUC      *usecase.SettingsUseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Facturación es accesible para admin y
// cashier; el resto de secciones protegidas son solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	adminOnly := RequireRole(entity.RoleAdmin)
	billingRoles := RequireRole(entity.RoleAdmin, entity.RoleCashier)

	// Órdenes de trabajo (admin)
	orders := protected.Group("/work-orders", adminOnly)
	orderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Post("/:id/close", orderHandler.Close)
	orders.Delete("/:id", orderHandler.Delete)

	// Facturación (admin + cashier)
	invoices := protected.Group("/invoices", billingRoles)
	invoiceHandler := NewInvoiceHandler(deps.GenerateInvoice, deps.InvoiceUC, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Generate)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id/paid", invoiceHandler.SetPaid)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Clientes (admin)
	customers := protected.Group("/customers", adminOnly)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Equipos (admin)
	devices := protected.Group("/devices", adminOnly)
	deviceHandler := NewDeviceHandler(deps.DeviceUC)
	devices.Post("/", deviceHandler.Create)
	devices.Get("/", deviceHandler.List)
	devices.Get("/:id", deviceHandler.GetByID)
	devices.Put("/:id", deviceHandler.Update)
	devices.Delete("/:id", deviceHandler.Delete)

	// Inventario de refacciones (admin)
	inventory := protected.Group("/inventory", adminOnly)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Post("/:id/adjust", inventoryHandler.AdjustStock)
	inventory.Delete("/:id", inventoryHandler.Delete)

	// Configuración del negocio (admin)
	settings := protected.Group("/settings", adminOnly)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Usuarios (admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id/password", userHandler.ChangePassword)
	users.Put("/:id/active", userHandler.SetActive)
}
