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

	"github.com/jhoicas/Clinica-api/internal/application/auth"
	"github.com/jhoicas/Clinica-api/internal/application/cashier"
	"github.com/jhoicas/Clinica-api/internal/application/catalog"
	"github.com/jhoicas/Clinica-api/internal/application/store"
	"github.com/jhoicas/Clinica-api/internal/infrastructure/postgres"
	infrareceipt "github.com/jhoicas/Clinica-api/internal/infrastructure/receipt"
	httpRouter "github.com/jhoicas/Clinica-api/internal/interfaces/http"
	"github.com/jhoicas/Clinica-api/pkg/config"
	"github.com/jhoicas/Clinica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	consultationRepo := postgres.NewConsultationRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	servicePriceRepo := postgres.NewServicePriceRepository(pool)
	labTestRepo := postgres.NewLabTestRepository(pool)
	storeItemRepo := postgres.NewStoreItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hospital := cashier.HospitalInfo{
		Name:     cfg.Hospital.Name,
		Address:  cfg.Hospital.Address,
		Phone:    cfg.Hospital.Phone,
		TaxID:    cfg.Hospital.TaxID,
		Currency: cfg.Billing.Currency,
	}

	checkoutUC := cashier.NewCheckoutUseCase(
		txRunner, consultationRepo, patientRepo, invoiceRepo,
		cfg.Billing.PaymentMethods,
	)

	// Recibos: un snapshot canónico proyectado a texto, HTML y PDF.
	renderers := map[string]cashier.ReceiptRenderer{
		"text": infrareceipt.NewTextRenderer(),
		"html": infrareceipt.NewHTMLRenderer(),
		"pdf":  infrareceipt.NewPDFRenderer(),
	}
	receiptUC := cashier.NewReceiptUseCase(invoiceRepo, patientRepo, hospital, renderers)

	pricingUC := catalog.NewPricingUseCase(servicePriceRepo)
	labTestUC := catalog.NewLabTestUseCase(labTestRepo)
	storeUC := store.NewStoreUseCase(storeItemRepo, txRunner)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Clinica Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CheckoutUC:     checkoutUC,
		ReceiptUC:      receiptUC,
		PricingUC:      pricingUC,
		LabTestUC:      labTestUC,
		StoreUC:        storeUC,
		PaymentMethods: cfg.Billing.PaymentMethods,
		JWTSecret:      cfg.JWT.Secret,
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
