package cashier

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/billing"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// CheckoutUseCase orquesta la hoja de cobro de una consulta: cargar la vista,
// emitir o guardar borrador, cargar un borrador y confirmar el pago.
//
// La hoja tiene exactamente dos modos, derivados del estado persistido en cada
// carga (nunca guardados aparte): editing_draft mientras no exista factura
// emitida y viewing_finalized cuando existe una con is_draft=false.
type CheckoutUseCase struct {
	txRunner         TxRunner
	consultationRepo repository.ConsultationRepository
	patientRepo      repository.PatientRepository
	invoiceRepo      repository.InvoiceRepository
	paymentMethods   []string
}

// NewCheckoutUseCase construye el caso de uso. paymentMethods es la lista
// cerrada de medios de pago aceptados (configuración).
func NewCheckoutUseCase(
	txRunner TxRunner,
	consultationRepo repository.ConsultationRepository,
	patientRepo repository.PatientRepository,
	invoiceRepo repository.InvoiceRepository,
	paymentMethods []string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:         txRunner,
		consultationRepo: consultationRepo,
		patientRepo:      patientRepo,
		invoiceRepo:      invoiceRepo,
		paymentMethods:   paymentMethods,
	}
}

// GetCheckout arma la vista completa de la hoja de cobro para una consulta:
// paciente, modo, formulario precargado (transacciones crudas o factura
// persistida, con la factura mandando), factura emitida y borradores.
func (uc *CheckoutUseCase) GetCheckout(ctx context.Context, consultationID string) (*dto.CheckoutResponse, error) {
	consultation, err := uc.consultationRepo.GetByID(consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, domain.ErrNotFound
	}

	patient, err := uc.patientRepo.GetByID(consultation.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrNotFound
	}

	txs, err := uc.consultationRepo.ListTransactions(consultationID)
	if err != nil {
		return nil, err
	}
	invoice, err := uc.invoiceRepo.GetFinalizedByConsultation(consultationID)
	if err != nil {
		return nil, err
	}
	drafts, err := uc.invoiceRepo.ListDraftsByConsultation(consultationID)
	if err != nil {
		return nil, err
	}

	mode := dto.ModeEditingDraft
	if invoice.Finalized() {
		mode = dto.ModeViewingFinalized
	}

	resp := &dto.CheckoutResponse{
		Patient: dto.PatientDTO{
			ID:        patient.ID,
			FirstName: patient.FirstName,
			LastName:  patient.LastName,
			Email:     patient.Email,
			Phone:     patient.Phone,
			Gender:    patient.Gender,
		},
		Mode:   mode,
		Form:   buildForm(txs, invoice),
		Drafts: toDraftSummaries(drafts),
	}
	if invoice != nil {
		resp.Invoice = toInvoiceResponse(invoice)
	}
	return resp, nil
}

// CreateInvoice emite una factura o guarda un borrador contra la consulta,
// discriminado por in.IsDraft.
//
// Precondiciones (se validan antes de cualquier escritura; si fallan no se
// persiste nada):
//   - emitir: subtotal > 0 y fechas de emisión y vencimiento definidas.
//   - borrador: subtotal > 0 únicamente.
func (uc *CheckoutUseCase) CreateInvoice(ctx context.Context, consultationID string, in dto.CheckoutRequest) (*dto.InvoiceResponse, error) {
	consultation, err := uc.consultationRepo.GetByID(consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, domain.ErrNotFound
	}

	items := fromItemDTOs(in.Items)
	agg := billing.Totals(items, in.PaidTotalAmount)
	if !agg.Subtotal.IsPositive() {
		return nil, domain.ErrEmptyInvoice
	}

	issuedOn, err := parseDate(in.IssuedOn)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueOn, err := parseDate(in.DueOn)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.IsDraft && (issuedOn.IsZero() || dueOn.IsZero()) {
		return nil, domain.ErrMissingDates
	}

	status := entity.StatusPendingConfirmation
	if in.IsDraft {
		status = entity.StatusInitiated
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:               uuid.New().String(),
		ConsultationID:   consultationID,
		PatientID:        consultation.PatientID,
		Status:           status,
		IsDraft:          in.IsDraft,
		IssuedOn:         issuedOn,
		DueOn:            dueOn,
		RecipientEmail:   in.RecipientEmail,
		Description:      in.Description,
		AdditionalNotes:  in.AdditionalNotes,
		RecurringMonthly: in.RecurringMonthly,
		PaidTotalAmount:  in.PaidTotalAmount,
		Items:            items,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Cabecera e ítems en una sola transacción.
	err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		return invoiceRepo.Create(inv)
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// LoadDraft carga un borrador guardado y devuelve el formulario completo:
// reemplazo total del estado de la hoja, sin merge.
func (uc *CheckoutUseCase) LoadDraft(ctx context.Context, draftID string) (*dto.CheckoutFormDTO, error) {
	inv, err := uc.invoiceRepo.GetByID(draftID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !inv.IsDraft {
		return nil, domain.ErrInvoiceFinalized
	}
	form := formFromInvoice(inv)
	agg := billing.Totals(inv.Items, inv.PaidTotalAmount)
	form.Subtotal = agg.Subtotal
	form.BalanceDue = agg.BalanceDue
	form.Change = agg.Change
	return &form, nil
}

// ConfirmPayment registra el pago de una factura emitida.
//
// Precondiciones: la factura existe y no es borrador; payment_datetime y
// payment_method definidos; el medio de pago pertenece a la lista configurada.
// El monto pagado almacenado se preserva; los ítems son inmutables.
func (uc *CheckoutUseCase) ConfirmPayment(ctx context.Context, invoiceID string, in dto.ConfirmPaymentRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.IsDraft {
		return nil, domain.ErrInvoiceIsDraft
	}

	if in.PaymentMethod == "" || in.PaymentDatetime == "" {
		return nil, domain.ErrMissingPayment
	}
	paidAt, err := time.Parse(datetimeLayout, in.PaymentDatetime)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !uc.validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrUnknownPayMethod
	}

	inv.Status = entity.StatusConfirmed
	inv.PaymentMethod = in.PaymentMethod
	inv.PaymentDatetime = paidAt
	if in.AdditionalNotes != "" {
		inv.AdditionalNotes = in.AdditionalNotes
	}
	inv.UpdatedAt = time.Now()

	if err := uc.invoiceRepo.UpdatePayment(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// GetInvoice devuelve la factura con sus valores derivados.
func (uc *CheckoutUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

func (uc *CheckoutUseCase) validPaymentMethod(method string) bool {
	for _, m := range uc.paymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	agg := billing.Totals(inv.Items, inv.PaidTotalAmount)
	return &dto.InvoiceResponse{
		ID:               inv.ID,
		ConsultationID:   inv.ConsultationID,
		PatientID:        inv.PatientID,
		Status:           inv.Status,
		IsDraft:          inv.IsDraft,
		IssuedOn:         formatDate(inv.IssuedOn),
		DueOn:            formatDate(inv.DueOn),
		PaymentDatetime:  formatDatetime(inv.PaymentDatetime),
		RecipientEmail:   inv.RecipientEmail,
		Description:      inv.Description,
		AdditionalNotes:  inv.AdditionalNotes,
		RecurringMonthly: inv.RecurringMonthly,
		PaymentMethod:    inv.PaymentMethod,
		PaidTotalAmount:  inv.PaidTotalAmount,
		Items:            toItemDTOs(inv.Items),
		Subtotal:         agg.Subtotal,
		BalanceDue:       agg.BalanceDue,
		Change:           agg.Change,
	}
}

func toDraftSummaries(drafts []*entity.Invoice) []dto.DraftSummaryDTO {
	out := make([]dto.DraftSummaryDTO, 0, len(drafts))
	for _, d := range drafts {
		agg := billing.Totals(d.Items, d.PaidTotalAmount)
		out = append(out, dto.DraftSummaryDTO{
			ID:        d.ID,
			CreatedAt: d.CreatedAt.Format(datetimeLayout),
			Subtotal:  agg.Subtotal,
			ItemCount: len(d.Items),
		})
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
