package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Clinica-api/internal/application/auth"
	"github.com/jhoicas/Clinica-api/internal/application/cashier"
	"github.com/jhoicas/Clinica-api/internal/application/catalog"
	"github.com/jhoicas/Clinica-api/internal/application/store"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CheckoutUC     *cashier.CheckoutUseCase
	ReceiptUC      *cashier.ReceiptUseCase
	PricingUC      *catalog.PricingUseCase
	LabTestUC      *catalog.LabTestUseCase
	StoreUC        *store.StoreUseCase
	PaymentMethods []string
	JWTSecret      string
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

	// Caja (cajero)
	cashierGroup := protected.Group("/cashier", RequireRole(entity.RoleCajero))
	cashierHandler := NewCashierHandler(deps.CheckoutUC, deps.ReceiptUC)
	cashierGroup.Get("/consultations/:id", cashierHandler.GetCheckout)
	cashierGroup.Post("/invoice/create/consultation/:id", cashierHandler.CreateInvoice)
	cashierGroup.Get("/drafts/:id", cashierHandler.LoadDraft)
	cashierGroup.Get("/invoice/:id", cashierHandler.GetInvoice)
	cashierGroup.Patch("/invoice/:id/update", cashierHandler.ConfirmPayment)
	cashierGroup.Get("/invoice/:id/receipt", cashierHandler.GetReceipt)

	// Configuración del hospital (solo admin)
	hospitalGroup := protected.Group("/hospital", RequireRole(entity.RoleAdmin))
	hospitalHandler := NewHospitalHandler(deps.PricingUC, deps.LabTestUC, deps.PaymentMethods)
	hospitalGroup.Post("/prices", hospitalHandler.CreatePrice)
	hospitalGroup.Get("/prices", hospitalHandler.ListPrices)
	hospitalGroup.Get("/prices/:id", hospitalHandler.GetPrice)
	hospitalGroup.Put("/prices/:id", hospitalHandler.UpdatePrice)
	hospitalGroup.Delete("/prices/:id", hospitalHandler.DeletePrice)
	hospitalGroup.Post("/lab-tests", hospitalHandler.CreateLabTest)
	hospitalGroup.Get("/lab-tests", hospitalHandler.ListLabTests)
	hospitalGroup.Get("/lab-tests/:id", hospitalHandler.GetLabTest)
	hospitalGroup.Put("/lab-tests/:id", hospitalHandler.UpdateLabTest)
	hospitalGroup.Delete("/lab-tests/:id", hospitalHandler.DeleteLabTest)
	hospitalGroup.Post("/lab-tests/:id/parameters", hospitalHandler.AddLabParameter)
	hospitalGroup.Put("/lab-tests/:id/parameters/:index", hospitalHandler.UpdateLabParameter)
	hospitalGroup.Delete("/lab-tests/:id/parameters/:index", hospitalHandler.RemoveLabParameter)
	hospitalGroup.Get("/payment-methods", hospitalHandler.ListPaymentMethods)

	// Farmacia / almacén (cajero)
	storeGroup := protected.Group("/store", RequireRole(entity.RoleCajero))
	storeHandler := NewStoreHandler(deps.StoreUC)
	storeGroup.Post("/items", storeHandler.Create)
	storeGroup.Get("/items", storeHandler.List)
	storeGroup.Post("/items/import", storeHandler.ImportCSV)
	storeGroup.Get("/items/:id", storeHandler.GetByID)
	storeGroup.Put("/items/:id", storeHandler.Update)
	storeGroup.Delete("/items/:id", storeHandler.Delete)
}
