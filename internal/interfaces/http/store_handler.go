package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/application/store"
	"github.com/jhoicas/Clinica-api/internal/domain"
)

// StoreHandler maneja la farmacia/almacén: catálogo de artículos y carga
// masiva por CSV.
type StoreHandler struct {
	uc *store.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *store.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

func mapStoreError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un artículo con ese nombre"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Create crea un artículo.
// POST /api/store/items
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.StoreItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los artículos.
// GET /api/store/items
func (h *StoreHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un artículo.
// GET /api/store/items/:id
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un artículo.
// PUT /api/store/items/:id
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.StoreItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un artículo.
// DELETE /api/store/items/:id
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapStoreError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ImportCSV carga artículos en lote desde un CSV.
// Acepta multipart (campo "file") o el CSV crudo como body.
// POST /api/store/items/import
func (h *StoreHandler) ImportCSV(c *fiber.Ctx) error {
	body := c.Body()
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
		}
		defer f.Close()
		result, err := h.uc.ImportCSV(c.Context(), f)
		if err != nil {
			return mapStoreError(c, err)
		}
		return c.JSON(result)
	}
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera un CSV (multipart 'file' o body crudo)"})
	}
	result, err := h.uc.ImportCSV(c.Context(), bytes.NewReader(body))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(result)
}
