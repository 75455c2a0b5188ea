package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

var _ repository.ConsultationRepository = (*ConsultationRepo)(nil)

// ConsultationRepo lectura de consultas y sus transacciones cobrables.
type ConsultationRepo struct {
	q Querier
}

// NewConsultationRepository construye el adaptador.
func NewConsultationRepository(q Querier) *ConsultationRepo {
	return &ConsultationRepo{q: q}
}

// GetByID obtiene la consulta o nil si no existe.
func (r *ConsultationRepo) GetByID(id string) (*entity.Consultation, error) {
	query := `
		SELECT id, patient_id, doctor_name, created_at
		FROM consultations WHERE id = $1`
	var c entity.Consultation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.PatientID, &c.DoctorName, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consultation: %w", err)
	}
	return &c, nil
}

// ListTransactions transacciones de la consulta en orden de creación, con el
// precio resuelto desde service_prices (NULL si la tarifa no existe) y el
// payload polimórfico aplanado en columnas por variante.
func (r *ConsultationRepo) ListTransactions(consultationID string) ([]entity.Transaction, error) {
	query := `
		SELECT t.id, t.consultation_id, t.paying_for, sp.price,
		       t.doctor_first_name, t.doctor_last_name, t.scan_type,
		       t.test_name, t.bed_name, t.created_at
		FROM transactions t
		LEFT JOIN service_prices sp ON sp.id = t.price_id
		WHERE t.consultation_id = $1
		ORDER BY t.created_at`
	rows, err := r.q.Query(context.Background(), query, consultationID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []entity.Transaction
	for rows.Next() {
		var (
			tx              entity.Transaction
			payingFor       string
			price           *decimal.Decimal
			firstName, lastName, scanType *string
			testName, bedName             *string
		)
		err := rows.Scan(
			&tx.ID, &tx.ConsultationID, &payingFor, &price,
			&firstName, &lastName, &scanType,
			&testName, &bedName, &tx.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.PayingFor = entity.LineItemKind(payingFor)
		tx.Price = price
		tx.Item = itemFromColumns(firstName, lastName, scanType, testName, bedName)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// itemFromColumns reconstruye la unión discriminada desde las columnas por
// variante, con la misma prioridad que usa la derivación de etiquetas:
// médico > imagen > análisis > cama > sin variante.
func itemFromColumns(firstName, lastName, scanType, testName, bedName *string) entity.TransactionItem {
	switch {
	case firstName != nil || lastName != nil:
		return entity.TransactionItem{
			Kind:            entity.DetailDoctor,
			DoctorFirstName: derefStr(firstName),
			DoctorLastName:  derefStr(lastName),
		}
	case scanType != nil:
		return entity.TransactionItem{Kind: entity.DetailScan, ScanType: *scanType}
	case testName != nil:
		return entity.TransactionItem{Kind: entity.DetailInvestigation, TestName: *testName}
	case bedName != nil:
		return entity.TransactionItem{Kind: entity.DetailBed, BedName: *bedName}
	default:
		return entity.TransactionItem{Kind: entity.DetailNone}
	}
}
