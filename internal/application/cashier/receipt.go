package cashier

import (
	"context"

	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/billing"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// ReceiptUseCase arma el snapshot del recibo de una factura y lo proyecta al
// formato pedido. La impresión falla con ErrNotFound si la factura no existe
// y con ErrInvoiceIsDraft si aún es borrador (no hay nada emitido que imprimir).
type ReceiptUseCase struct {
	invoiceRepo repository.InvoiceRepository
	patientRepo repository.PatientRepository
	hospital    HospitalInfo
	renderers   map[string]ReceiptRenderer
}

// NewReceiptUseCase construye el caso de uso. renderers mapea el formato
// pedido ("text", "html", "pdf") a su proyección.
func NewReceiptUseCase(
	invoiceRepo repository.InvoiceRepository,
	patientRepo repository.PatientRepository,
	hospital HospitalInfo,
	renderers map[string]ReceiptRenderer,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		invoiceRepo: invoiceRepo,
		patientRepo: patientRepo,
		hospital:    hospital,
		renderers:   renderers,
	}
}

// Render genera el recibo de la factura en el formato pedido.
// Devuelve el documento, su content type y error.
func (uc *ReceiptUseCase) Render(ctx context.Context, invoiceID, format string) ([]byte, string, error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, "", domain.ErrInvalidInput
	}

	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	if inv.IsDraft {
		return nil, "", domain.ErrInvoiceIsDraft
	}

	patientName := ""
	if patient, err := uc.patientRepo.GetByID(inv.PatientID); err == nil && patient != nil {
		patientName = patient.FullName()
	}

	data := ReceiptData{
		Hospital:        uc.hospital,
		PatientName:     patientName,
		InvoiceID:       inv.ID,
		Status:          inv.Status,
		IssuedOn:        inv.IssuedOn,
		PaymentMethod:   inv.PaymentMethod,
		PaymentDatetime: inv.PaymentDatetime,
		Items:           inv.Items,
		Paid:            inv.PaidTotalAmount,
		Totals:          billing.Totals(inv.Items, inv.PaidTotalAmount),
	}

	doc, err := renderer.Render(ctx, data)
	if err != nil {
		return nil, "", err
	}
	return doc, renderer.ContentType(), nil
}
