package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServicePrice tarifa configurada para un servicio del hospital.
// El cargador de la hoja de cobro la usa para resolver el precio unitario
// de una transacción; si la tarifa no existe, el precio por defecto es 0.
type ServicePrice struct {
	ID        string
	Kind      LineItemKind
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
