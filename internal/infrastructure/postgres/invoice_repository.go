package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Los ítems se guardan en invoice_items con su posición; las lecturas los
// devuelven ordenados por posición para preservar el orden de inserción.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste cabecera e ítems. Llamar dentro de TxRunner.RunInvoice para
// que ambos entren atómicamente.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, consultation_id, patient_id, status, is_draft,
		                      issued_on, due_on, payment_datetime, recipient_email,
		                      description, additional_notes, recurring_monthly,
		                      payment_method, paid_total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.ConsultationID, invoice.PatientID, invoice.Status, invoice.IsDraft,
		nullIfZeroTime(invoice.IssuedOn), nullIfZeroTime(invoice.DueOn), nullIfZeroTime(invoice.PaymentDatetime),
		nullIfEmpty(invoice.RecipientEmail), nullIfEmpty(invoice.Description), nullIfEmpty(invoice.AdditionalNotes),
		invoice.RecurringMonthly, nullIfEmpty(invoice.PaymentMethod), invoice.PaidTotalAmount,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (invoice_id, position, kind, external_ref, quantity, unit_price, label)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, item := range invoice.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			invoice.ID, i, string(item.Kind), item.ExternalRef, item.Quantity, item.UnitPrice, item.Label,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item %d: %w", i, err)
		}
	}
	return nil
}

// GetByID obtiene la factura completa (cabecera + ítems) o nil si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := selectInvoice + ` WHERE id = $1`
	inv, err := r.scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil || inv == nil {
		return nil, err
	}
	if err := r.loadItems(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetFinalizedByConsultation devuelve la factura emitida más reciente de la
// consulta, o nil.
func (r *InvoiceRepo) GetFinalizedByConsultation(consultationID string) (*entity.Invoice, error) {
	query := selectInvoice + `
		WHERE consultation_id = $1 AND is_draft = FALSE
		ORDER BY created_at DESC
		LIMIT 1`
	inv, err := r.scanInvoice(r.q.QueryRow(context.Background(), query, consultationID))
	if err != nil || inv == nil {
		return nil, err
	}
	if err := r.loadItems(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListDraftsByConsultation borradores de la consulta, más recientes primero.
func (r *InvoiceRepo) ListDraftsByConsultation(consultationID string) ([]*entity.Invoice, error) {
	query := selectInvoice + `
		WHERE consultation_id = $1 AND is_draft = TRUE
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, consultationID)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*entity.Invoice
	for rows.Next() {
		inv, err := r.scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	for _, d := range drafts {
		if err := r.loadItems(d); err != nil {
			return nil, err
		}
	}
	return drafts, nil
}

// UpdatePayment actualiza solo los campos de pago y el estado. Los ítems de
// una factura emitida no se tocan.
func (r *InvoiceRepo) UpdatePayment(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET status           = $2,
		    payment_method   = $3,
		    payment_datetime = $4,
		    additional_notes = COALESCE($5, additional_notes),
		    updated_at       = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID,
		invoice.Status,
		nullIfEmpty(invoice.PaymentMethod),
		nullIfZeroTime(invoice.PaymentDatetime),
		nullIfEmpty(invoice.AdditionalNotes),
		invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice payment: %w", err)
	}
	return nil
}

const selectInvoice = `
	SELECT id, consultation_id, patient_id, status, is_draft,
	       issued_on, due_on, payment_datetime, recipient_email,
	       description, additional_notes, recurring_monthly,
	       payment_method, paid_total_amount, created_at, updated_at
	FROM invoices`

func (r *InvoiceRepo) scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var issuedOn, dueOn, paymentAt *time.Time
	var email, description, notes, method *string
	err := row.Scan(
		&inv.ID, &inv.ConsultationID, &inv.PatientID, &inv.Status, &inv.IsDraft,
		&issuedOn, &dueOn, &paymentAt, &email,
		&description, &notes, &inv.RecurringMonthly,
		&method, &inv.PaidTotalAmount, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.IssuedOn = derefTime(issuedOn)
	inv.DueOn = derefTime(dueOn)
	inv.PaymentDatetime = derefTime(paymentAt)
	inv.RecipientEmail = derefStr(email)
	inv.Description = derefStr(description)
	inv.AdditionalNotes = derefStr(notes)
	inv.PaymentMethod = derefStr(method)
	return &inv, nil
}

func (r *InvoiceRepo) loadItems(inv *entity.Invoice) error {
	query := `
		SELECT kind, external_ref, quantity, unit_price, label
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, inv.ID)
	if err != nil {
		return fmt.Errorf("load invoice items: %w", err)
	}
	defer rows.Close()

	var items []entity.LineItem
	for rows.Next() {
		var item entity.LineItem
		var kind string
		if err := rows.Scan(&kind, &item.ExternalRef, &item.Quantity, &item.UnitPrice, &item.Label); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		item.Kind = entity.LineItemKind(kind)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load invoice items: %w", err)
	}
	inv.Items = items
	return nil
}

func nullIfZeroTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func derefTime(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
