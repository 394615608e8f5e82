package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/auth"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/billing"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/usecase"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/workorder"
	infrapdf "github.com/Uriel-Cruz-Vite/compugestion-api/internal/infrastructure/pdf"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/infrastructure/postgres"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/interfaces/http"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/migrate"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/config"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/logger"
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

	if err := migrate.Up(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	deviceRepo := postgres.NewDeviceRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	if cfg.App.SeedAdmin {
		if err := authUC.SeedInitialAdmin(); err != nil {
			log.Fatal().Err(err).Msg("seed del usuario admin inicial")
		}
	}

	workOrderUC := workorder.NewUseCase(workOrderRepo, log)
	generateInvoiceUC := billing.NewGenerateInvoiceUseCase(txRunner, settingsRepo, log)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, log)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, workOrderRepo, settingsRepo, pdfGenerator)

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	deviceUC := usecase.NewDeviceUseCase(deviceRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, log)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	http.Router(app, http.RouterDeps{
		AuthUC:          authUC,
		WorkOrderUC:     workOrderUC,
		GenerateInvoice: generateInvoiceUC,
		InvoiceUC:       invoiceUC,
		InvoicePDF:      invoicePDFUC,
		CustomerUC:      customerUC,
		DeviceUC:        deviceUC,
		InventoryUC:     inventoryUC,
		SettingsUC:      settingsUC,
		JWTSecret:       cfg.JWT.Secret,
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
