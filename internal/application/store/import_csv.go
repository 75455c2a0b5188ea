package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// csvHeader encabezado esperado del archivo de importación.
var csvHeader = []string{"name", "category", "quantity", "unit_cost", "sale_price"}

// ImportCSV importa artículos desde un CSV. Las filas inválidas se reportan
// con su número de línea (la línea 1 es el encabezado) y no detienen el
// proceso; las válidas se insertan en una sola transacción. Un archivo sin
// ninguna fila válida retorna ErrInvalidInput.
func (uc *StoreUseCase) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !headerMatches(header) {
		return nil, domain.ErrInvalidInput
	}

	var (
		items  []*entity.StoreItem
		result dto.ImportResult
	)
	now := time.Now()
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Rejected++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Message: "fila mal formada"})
			continue
		}
		item, rowErr := parseRow(record, now)
		if rowErr != "" {
			result.Rejected++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Message: rowErr})
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Lote atómico: o entran todas las filas válidas o ninguna.
	err = uc.txRunner.RunStore(ctx, func(itemRepo repository.StoreItemRepository) error {
		for _, item := range items {
			if err := itemRepo.Create(item); err != nil {
				return fmt.Errorf("insertar artículo %q: %w", item.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Imported = len(items)
	return &result, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(csvHeader) {
		return false
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(h), csvHeader[i]) {
			return false
		}
	}
	return true
}

func parseRow(record []string, now time.Time) (*entity.StoreItem, string) {
	if len(record) != len(csvHeader) {
		return nil, "cantidad de columnas incorrecta"
	}
	name := strings.TrimSpace(record[0])
	if name == "" {
		return nil, "nombre vacío"
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil || qty < 0 {
		return nil, "cantidad inválida"
	}
	unitCost, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil || unitCost.IsNegative() {
		return nil, "costo unitario inválido"
	}
	salePrice, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil || salePrice.IsNegative() {
		return nil, "precio de venta inválido"
	}
	return &entity.StoreItem{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  strings.TrimSpace(record[1]),
		Quantity:  qty,
		UnitCost:  unitCost,
		SalePrice: salePrice,
		CreatedAt: now,
		UpdatedAt: now,
	}, ""
}
