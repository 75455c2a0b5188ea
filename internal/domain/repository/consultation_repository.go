package repository

import "github.com/jhoicas/Clinica-api/internal/domain/entity"

// ConsultationRepository acceso de solo lectura a consultas y sus
// transacciones cobrables. El módulo clínico es el dueño de estos datos.
type ConsultationRepository interface {
	GetByID(id string) (*entity.Consultation, error)
	// ListTransactions transacciones de la consulta en orden de creación,
	// con el precio resuelto desde la configuración de tarifas (nil si no hay tarifa).
	ListTransactions(consultationID string) ([]entity.Transaction, error)
}
