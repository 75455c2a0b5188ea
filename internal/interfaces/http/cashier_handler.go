package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Clinica-api/internal/application/cashier"
	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain"
)

// CashierHandler maneja la hoja de cobro de caja: vista de checkout, emisión
// y borradores de factura, confirmación de pago y recibos.
type CashierHandler struct {
	checkoutUC *cashier.CheckoutUseCase
	receiptUC  *cashier.ReceiptUseCase
}

// NewCashierHandler construye el handler.
func NewCashierHandler(checkoutUC *cashier.CheckoutUseCase, receiptUC *cashier.ReceiptUseCase) *CashierHandler {
	return &CashierHandler{checkoutUC: checkoutUC, receiptUC: receiptUC}
}

// GetCheckout arma la vista completa de la hoja de cobro de una consulta.
// GET /api/cashier/consultations/:id
func (h *CashierHandler) GetCheckout(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de consulta requerido"})
	}
	out, err := h.checkoutUC.GetCheckout(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consulta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateInvoice emite una factura o guarda un borrador sobre una consulta.
// POST /api/cashier/invoice/create/consultation/:id
func (h *CashierHandler) CreateInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de consulta requerido"})
	}
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.checkoutUC.CreateInvoice(c.Context(), id, in)
	if err != nil {
		switch err {
		case domain.ErrEmptyInvoice:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_INVOICE", Message: "la factura no tiene conceptos con valor"})
		case domain.ErrMissingDates:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_DATES", Message: "emitir requiere fecha de emisión y de vencimiento"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consulta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// LoadDraft carga un borrador al formulario de la hoja de cobro.
// GET /api/cashier/drafts/:id
func (h *CashierHandler) LoadDraft(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	form, err := h.checkoutUC.LoadDraft(c.Context(), id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador no encontrado"})
		case domain.ErrInvoiceFinalized:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_FINALIZED", Message: "la factura ya fue emitida, no es un borrador"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(form)
}

// GetInvoice obtiene una factura con sus totales derivados.
// GET /api/cashier/invoice/:id
func (h *CashierHandler) GetInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	invoice, err := h.checkoutUC.GetInvoice(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

// ConfirmPayment registra el pago de una factura emitida.
// PATCH /api/cashier/invoice/:id/update
func (h *CashierHandler) ConfirmPayment(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.ConfirmPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.checkoutUC.ConfirmPayment(c.Context(), id, in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		case domain.ErrInvoiceIsDraft:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IS_DRAFT", Message: "no se puede confirmar pago de un borrador"})
		case domain.ErrMissingPayment:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PAYMENT", Message: "medio y fecha de pago son requeridos"})
		case domain.ErrUnknownPayMethod:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_PAY_METHOD", Message: "medio de pago no configurado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

// GetReceipt genera el recibo de una factura emitida.
// GET /api/cashier/invoice/:id/receipt?format=text|html|pdf
func (h *CashierHandler) GetReceipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	format := c.Query("format", "text")
	doc, contentType, err := h.receiptUC.Render(c.Context(), id, format)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FORMAT", Message: "formato desconocido: " + format})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		case domain.ErrInvoiceIsDraft:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IS_DRAFT", Message: "un borrador no tiene recibo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(doc)
}
