package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Clinica-api/internal/application/catalog"
	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain"
)

// HospitalHandler maneja la configuración del hospital: tarifario de
// servicios, esquemas de exámenes de laboratorio y medios de pago.
type HospitalHandler struct {
	pricingUC      *catalog.PricingUseCase
	labTestUC      *catalog.LabTestUseCase
	paymentMethods []string
}

// NewHospitalHandler construye el handler.
func NewHospitalHandler(pricingUC *catalog.PricingUseCase, labTestUC *catalog.LabTestUseCase, paymentMethods []string) *HospitalHandler {
	return &HospitalHandler{pricingUC: pricingUC, labTestUC: labTestUC, paymentMethods: paymentMethods}
}

// mapCatalogError traduce los errores de dominio del catálogo a HTTP.
func mapCatalogError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un registro con ese nombre"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// ── Tarifario ─────────────────────────────────────────────────────────────────

// CreatePrice crea una tarifa de servicio.
// POST /api/hospital/prices
func (h *HospitalHandler) CreatePrice(c *fiber.Ctx) error {
	var in dto.ServicePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.pricingUC.Create(in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPrices lista el tarifario.
// GET /api/hospital/prices
func (h *HospitalHandler) ListPrices(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.pricingUC.List(page)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// GetPrice obtiene una tarifa.
// GET /api/hospital/prices/:id
func (h *HospitalHandler) GetPrice(c *fiber.Ctx) error {
	out, err := h.pricingUC.GetByID(c.Params("id"))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// UpdatePrice actualiza una tarifa.
// PUT /api/hospital/prices/:id
func (h *HospitalHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.ServicePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.pricingUC.Update(c.Params("id"), in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// DeletePrice elimina una tarifa.
// DELETE /api/hospital/prices/:id
func (h *HospitalHandler) DeletePrice(c *fiber.Ctx) error {
	if err := h.pricingUC.Delete(c.Params("id")); err != nil {
		return mapCatalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Esquemas de exámenes ──────────────────────────────────────────────────────

// CreateLabTest crea un esquema de examen.
// POST /api/hospital/lab-tests
func (h *HospitalHandler) CreateLabTest(c *fiber.Ctx) error {
	var in dto.LabTestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.labTestUC.Create(in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLabTests lista los esquemas de exámenes.
// GET /api/hospital/lab-tests
func (h *HospitalHandler) ListLabTests(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.labTestUC.List(page)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// GetLabTest obtiene un esquema.
// GET /api/hospital/lab-tests/:id
func (h *HospitalHandler) GetLabTest(c *fiber.Ctx) error {
	out, err := h.labTestUC.GetByID(c.Params("id"))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// UpdateLabTest actualiza nombre y parámetros de un esquema.
// PUT /api/hospital/lab-tests/:id
func (h *HospitalHandler) UpdateLabTest(c *fiber.Ctx) error {
	var in dto.LabTestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.labTestUC.Update(c.Params("id"), in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// DeleteLabTest elimina un esquema.
// DELETE /api/hospital/lab-tests/:id
func (h *HospitalHandler) DeleteLabTest(c *fiber.Ctx) error {
	if err := h.labTestUC.Delete(c.Params("id")); err != nil {
		return mapCatalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddLabParameter agrega un parámetro al final del esquema.
// POST /api/hospital/lab-tests/:id/parameters
func (h *HospitalHandler) AddLabParameter(c *fiber.Ctx) error {
	var in dto.LabParameterDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.labTestUC.AddParameter(c.Params("id"), in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// UpdateLabParameter modifica el parámetro en la posición dada.
// PUT /api/hospital/lab-tests/:id/parameters/:index
func (h *HospitalHandler) UpdateLabParameter(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	var in dto.LabParameterDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.labTestUC.UpdateParameter(c.Params("id"), index, in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// RemoveLabParameter elimina el parámetro en la posición dada.
// DELETE /api/hospital/lab-tests/:id/parameters/:index
func (h *HospitalHandler) RemoveLabParameter(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	out, err := h.labTestUC.RemoveParameter(c.Params("id"), index)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// ── Medios de pago ────────────────────────────────────────────────────────────

// ListPaymentMethods lista cerrada de medios de pago configurados.
// GET /api/hospital/payment-methods
func (h *HospitalHandler) ListPaymentMethods(c *fiber.Ctx) error {
	return c.JSON(dto.PaymentMethodsResponse{PaymentMethods: h.paymentMethods})
}
