package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de caja.
const (
	StatusInitiated           = "initiated"            // Borrador guardado; aún editable
	StatusPendingConfirmation = "pending_confirmation" // Emitida al paciente, pago pendiente
	StatusConfirmed           = "confirmed"            // Pago confirmado por caja
	StatusDeclined            = "declined"             // Rechazada
)

// Invoice representa una factura de caja emitida contra una consulta.
//
// Una factura es borrador (IsDraft=true, todo editable) o emitida
// (IsDraft=false, ítems inmutables; solo los campos de pago admiten cambios).
// Subtotal, saldo y cambio NO se persisten: se derivan de Items y
// PaidTotalAmount en cada lectura.
type Invoice struct {
	ID               string
	ConsultationID   string
	PatientID        string
	Status           string
	IsDraft          bool
	IssuedOn         time.Time // cero = sin definir
	DueOn            time.Time // cero = sin definir
	PaymentDatetime  time.Time // cero = sin pago registrado
	RecipientEmail   string
	Description      string
	AdditionalNotes  string
	RecurringMonthly bool
	PaymentMethod    string // uno de la lista configurada; vacío en borradores
	PaidTotalAmount  decimal.Decimal
	Items            []LineItem // orden de inserción; el orden solo importa para mostrar
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Finalized indica si la factura fue emitida (existe y no es borrador).
func (i *Invoice) Finalized() bool {
	return i != nil && !i.IsDraft
}
