package cashier

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Clinica-api/internal/domain/billing"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de facturas atado a esa tx. Garantiza que cabecera e ítems se
// persistan atómicamente.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// HospitalInfo identidad del hospital para el encabezado de recibos.
type HospitalInfo struct {
	Name     string
	Address  string
	Phone    string
	TaxID    string
	Currency string
}

// ReceiptData snapshot canónico del recibo: un solo modelo interno que los
// renderizadores (texto, HTML, PDF) proyectan, para que los tres formatos no
// puedan divergir entre sí.
type ReceiptData struct {
	Hospital        HospitalInfo
	PatientName     string
	InvoiceID       string
	Status          string
	IssuedOn        time.Time // cero = sin definir
	PaymentMethod   string    // vacío = omitir la línea
	PaymentDatetime time.Time // cero = omitir la línea
	Items           []entity.LineItem
	Paid            decimal.Decimal
	Totals          billing.Aggregates
}

// ReceiptRenderer proyecta el snapshot del recibo a un formato de salida.
type ReceiptRenderer interface {
	ContentType() string
	Render(ctx context.Context, data ReceiptData) ([]byte, error)
}
