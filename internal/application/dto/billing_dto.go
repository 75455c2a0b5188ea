package dto

import "github.com/shopspring/decimal"

// LineItemDTO una línea cobrable en requests y responses.
type LineItemDTO struct {
	Kind        string          `json:"kind"`
	ExternalRef *string         `json:"external_ref"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Label       string          `json:"label"`
}

// CheckoutRequest body para POST /api/cashier/invoice/create/consultation/:id.
// Sirve tanto para emitir como para guardar borrador, discriminado por is_draft.
// Las fechas van como "2006-01-02"; vacío significa sin definir.
type CheckoutRequest struct {
	Items            []LineItemDTO   `json:"transaction_list"`
	IsDraft          bool            `json:"is_draft"`
	IssuedOn         string          `json:"issued_on"`
	DueOn            string          `json:"due_on"`
	RecipientEmail   string          `json:"recipient_email"`
	Description      string          `json:"description"`
	AdditionalNotes  string          `json:"additional_notes"`
	RecurringMonthly bool            `json:"recurring_monthly"`
	PaidTotalAmount  decimal.Decimal `json:"paid_total_amount"`
}

// ConfirmPaymentRequest body para PATCH /api/cashier/invoice/:invoiceId/update.
// payment_datetime en RFC 3339; vacío significa sin definir.
type ConfirmPaymentRequest struct {
	PaymentMethod   string `json:"payment_method"`
	PaymentDatetime string `json:"payment_datetime"`
	AdditionalNotes string `json:"additional_notes"`
}

// InvoiceResponse factura con ítems y valores derivados.
// subtotal, balance_due y change se calculan en cada lectura; nunca se almacenan.
type InvoiceResponse struct {
	ID               string          `json:"id"`
	ConsultationID   string          `json:"consultation_id"`
	PatientID        string          `json:"patient_id"`
	Status           string          `json:"status"`
	IsDraft          bool            `json:"is_draft"`
	IssuedOn         string          `json:"issued_on,omitempty"`
	DueOn            string          `json:"due_on,omitempty"`
	PaymentDatetime  string          `json:"payment_datetime,omitempty"`
	RecipientEmail   string          `json:"recipient_email,omitempty"`
	Description      string          `json:"description,omitempty"`
	AdditionalNotes  string          `json:"additional_notes,omitempty"`
	RecurringMonthly bool            `json:"recurring_monthly"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	PaidTotalAmount  decimal.Decimal `json:"paid_total_amount"`
	Items            []LineItemDTO   `json:"transaction_list"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	BalanceDue       decimal.Decimal `json:"balance_due"`
	Change           decimal.Decimal `json:"change"`
}

// CheckoutFormDTO estado del formulario de cobro: lo que el cargador arma a
// partir de las transacciones de la consulta o de una factura/borrador guardado.
type CheckoutFormDTO struct {
	Items            []LineItemDTO   `json:"transaction_list"`
	IssuedOn         string          `json:"issued_on"`
	DueOn            string          `json:"due_on"`
	RecipientEmail   string          `json:"recipient_email"`
	Description      string          `json:"description"`
	AdditionalNotes  string          `json:"additional_notes"`
	RecurringMonthly bool            `json:"recurring_monthly"`
	PaidTotalAmount  decimal.Decimal `json:"paid_total_amount"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	BalanceDue       decimal.Decimal `json:"balance_due"`
	Change           decimal.Decimal `json:"change"`
}

// DraftSummaryDTO resumen de un borrador para la lista de la hoja de cobro.
type DraftSummaryDTO struct {
	ID        string          `json:"id"`
	CreatedAt string          `json:"created_at"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"item_count"`
}

// PatientDTO datos del paciente para el banner de caja.
type PatientDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

// Modos de la hoja de cobro. Se derivan del estado persistido en cada carga;
// el cliente no guarda este valor.
const (
	ModeEditingDraft     = "editing_draft"
	ModeViewingFinalized = "viewing_finalized"
)

// CheckoutResponse vista completa de la hoja de cobro de una consulta:
// paciente, modo, formulario precargado, factura emitida (si existe) y borradores.
type CheckoutResponse struct {
	Patient PatientDTO        `json:"patient"`
	Mode    string            `json:"mode"`
	Form    CheckoutFormDTO   `json:"form"`
	Invoice *InvoiceResponse  `json:"invoice,omitempty"`
	Drafts  []DraftSummaryDTO `json:"draft_invoices"`
}
