package repository

import "github.com/jhoicas/Clinica-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas de caja.
// GetByID y las listas devuelven la factura con sus ítems en orden de inserción.
type InvoiceRepository interface {
	// Create persiste cabecera e ítems (posición = orden del slice).
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// GetFinalizedByConsultation devuelve la factura emitida (no borrador) más
	// reciente de la consulta, o nil si no existe.
	GetFinalizedByConsultation(consultationID string) (*entity.Invoice, error)
	// ListDraftsByConsultation borradores de la consulta, más recientes primero.
	ListDraftsByConsultation(consultationID string) ([]*entity.Invoice, error)
	// UpdatePayment actualiza solo los campos de pago y el estado:
	// payment_method, payment_datetime, status, updated_at. Los ítems de una
	// factura emitida no se tocan.
	UpdatePayment(invoice *entity.Invoice) error
}
