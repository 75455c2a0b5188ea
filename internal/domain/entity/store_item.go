package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreItem artículo del almacén del hospital (insumos, medicamentos de venta).
type StoreItem struct {
	ID        string
	Name      string
	Category  string
	Quantity  int64
	UnitCost  decimal.Decimal
	SalePrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
