package cashier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clinica-api/internal/application/cashier"
	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

// fakeRenderer captura el snapshot recibido para inspeccionarlo.
type fakeRenderer struct {
	last cashier.ReceiptData
}

func (r *fakeRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *fakeRenderer) Render(_ context.Context, data cashier.ReceiptData) ([]byte, error) {
	r.last = data
	return []byte("recibo"), nil
}

func newReceiptFixture() (*cashier.ReceiptUseCase, *fakeInvoiceRepo, *fakeRenderer) {
	invoices := newFakeInvoiceRepo()
	patients := &fakePatientRepo{
		patient: &entity.Patient{ID: testPatientID, FirstName: "Ana", LastName: "Gómez"},
	}
	renderer := &fakeRenderer{}
	uc := cashier.NewReceiptUseCase(invoices, patients,
		cashier.HospitalInfo{Name: "Clínica San Rafael"},
		map[string]cashier.ReceiptRenderer{"text": renderer},
	)
	return uc, invoices, renderer
}

func TestReceiptRender_FormatoDesconocido(t *testing.T) {
	uc, invoices, _ := newReceiptFixture()
	invoices.invoices["inv-1"] = emittedInvoice(500)

	_, _, err := uc.Render(context.Background(), "inv-1", "docx")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceiptRender_FacturaInexistente(t *testing.T) {
	uc, _, _ := newReceiptFixture()

	_, _, err := uc.Render(context.Background(), "nada", "text")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiptRender_Borrador_Rechaza(t *testing.T) {
	uc, invoices, _ := newReceiptFixture()
	draft := emittedInvoice(0)
	draft.IsDraft = true
	draft.Status = entity.StatusInitiated
	invoices.invoices["inv-1"] = draft

	_, _, err := uc.Render(context.Background(), "inv-1", "text")

	assert.ErrorIs(t, err, domain.ErrInvoiceIsDraft)
}

func TestReceiptRender_ArmaSnapshotCompleto(t *testing.T) {
	uc, invoices, renderer := newReceiptFixture()
	invoices.invoices["inv-1"] = emittedInvoice(200)

	doc, contentType, err := uc.Render(context.Background(), "inv-1", "text")
	require.NoError(t, err)

	assert.Equal(t, []byte("recibo"), doc)
	assert.Equal(t, "text/plain; charset=utf-8", contentType)

	snap := renderer.last
	assert.Equal(t, "Clínica San Rafael", snap.Hospital.Name)
	assert.Equal(t, "Ana Gómez", snap.PatientName, "el nombre sale del espejo de pacientes")
	assert.Equal(t, "inv-1", snap.InvoiceID)
	require.Len(t, snap.Items, 1)
	assert.True(t, snap.Totals.Subtotal.Equal(dec(500)))
	assert.True(t, snap.Totals.BalanceDue.Equal(dec(300)), "totales derivados en el snapshot")
	assert.True(t, snap.Paid.Equal(dec(200)))
}
