package dto

import "github.com/shopspring/decimal"

// StoreItemRequest body para crear/actualizar un artículo del almacén.
type StoreItemRequest struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// StoreItemResponse artículo en respuestas.
type StoreItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// ImportRowError error de una fila del CSV importado (línea 1 = encabezado).
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportResult resumen de la importación CSV del almacén.
type ImportResult struct {
	Imported int              `json:"imported"`
	Rejected int              `json:"rejected"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
