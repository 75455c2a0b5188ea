package cashier_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clinica-api/internal/application/cashier"
	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetFinalizedByConsultation(consultationID string) (*entity.Invoice, error) {
	var latest *entity.Invoice
	for _, inv := range r.invoices {
		if inv.ConsultationID != consultationID || inv.IsDraft {
			continue
		}
		if latest == nil || inv.CreatedAt.After(latest.CreatedAt) {
			latest = inv
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeInvoiceRepo) ListDraftsByConsultation(consultationID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.ConsultationID == consultationID && inv.IsDraft {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdatePayment(inv *entity.Invoice) error {
	stored, ok := r.invoices[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = inv.Status
	stored.PaymentMethod = inv.PaymentMethod
	stored.PaymentDatetime = inv.PaymentDatetime
	stored.AdditionalNotes = inv.AdditionalNotes
	stored.UpdatedAt = inv.UpdatedAt
	return nil
}

// fakeTxRunner pasa el mismo repo fake; no hay transacción real en memoria.
type fakeTxRunner struct {
	repo *fakeInvoiceRepo
}

func (t *fakeTxRunner) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(t.repo)
}

type fakeConsultationRepo struct {
	consultation *entity.Consultation
	txs          []entity.Transaction
}

func (r *fakeConsultationRepo) GetByID(id string) (*entity.Consultation, error) {
	if r.consultation == nil || r.consultation.ID != id {
		return nil, nil
	}
	return r.consultation, nil
}

func (r *fakeConsultationRepo) ListTransactions(string) ([]entity.Transaction, error) {
	return r.txs, nil
}

type fakePatientRepo struct {
	patient *entity.Patient
}

func (r *fakePatientRepo) GetByID(id string) (*entity.Patient, error) {
	if r.patient == nil || r.patient.ID != id {
		return nil, nil
	}
	return r.patient, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testConsultationID = "c-001"
	testPatientID      = "p-001"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

type fixture struct {
	uc       *cashier.CheckoutUseCase
	invoices *fakeInvoiceRepo
	consRepo *fakeConsultationRepo
}

func newFixture(txs []entity.Transaction) *fixture {
	invoices := newFakeInvoiceRepo()
	consRepo := &fakeConsultationRepo{
		consultation: &entity.Consultation{
			ID:        testConsultationID,
			PatientID: testPatientID,
			CreatedAt: time.Now(),
		},
		txs: txs,
	}
	patients := &fakePatientRepo{
		patient: &entity.Patient{ID: testPatientID, FirstName: "Ana", LastName: "Gómez"},
	}
	uc := cashier.NewCheckoutUseCase(
		&fakeTxRunner{repo: invoices}, consRepo, patients, invoices,
		[]string{"efectivo", "tarjeta"},
	)
	return &fixture{uc: uc, invoices: invoices, consRepo: consRepo}
}

func doctorTx(id string, price float64) entity.Transaction {
	p := dec(price)
	return entity.Transaction{
		ID:             id,
		ConsultationID: testConsultationID,
		PayingFor:      entity.KindConsultation,
		Price:          &p,
		Item: entity.TransactionItem{
			Kind:            entity.DetailDoctor,
			DoctorFirstName: "Carlos",
			DoctorLastName:  "Pérez",
		},
		CreatedAt: time.Now(),
	}
}

func itemDTOs(prices ...float64) []dto.LineItemDTO {
	out := make([]dto.LineItemDTO, 0, len(prices))
	for _, p := range prices {
		out = append(out, dto.LineItemDTO{Kind: "consultation", Quantity: 1, UnitPrice: dec(p)})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// GetCheckout
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCheckout_ConsultaInexistente(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.GetCheckout(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCheckout_SinFactura_ModoEdicionYMapeoDeTransacciones(t *testing.T) {
	f := newFixture([]entity.Transaction{doctorTx("tx-1", 500)})

	resp, err := f.uc.GetCheckout(context.Background(), testConsultationID)
	require.NoError(t, err)

	assert.Equal(t, dto.ModeEditingDraft, resp.Mode)
	assert.Nil(t, resp.Invoice, "sin factura emitida no hay invoice en la vista")
	require.Len(t, resp.Form.Items, 1)

	it := resp.Form.Items[0]
	assert.Equal(t, int64(1), it.Quantity, "cada transacción mapea con cantidad 1")
	assert.True(t, it.UnitPrice.Equal(dec(500)), "el precio viene de la tarifa resuelta")
	assert.Equal(t, "Carlos Pérez", it.Label, "la etiqueta se deriva del payload del médico")
	require.NotNil(t, it.ExternalRef)
	assert.Equal(t, "tx-1", *it.ExternalRef)

	assert.True(t, resp.Form.Subtotal.Equal(dec(500)))
}

func TestGetCheckout_TarifaAusente_PrecioCero(t *testing.T) {
	tx := doctorTx("tx-1", 0)
	tx.Price = nil
	f := newFixture([]entity.Transaction{tx})

	resp, err := f.uc.GetCheckout(context.Background(), testConsultationID)
	require.NoError(t, err)

	require.Len(t, resp.Form.Items, 1)
	assert.True(t, resp.Form.Items[0].UnitPrice.IsZero(), "sin tarifa el precio por defecto es 0")
}

func TestGetCheckout_FacturaEmitida_SobrescribeFormularioCompleto(t *testing.T) {
	// La consulta tiene una transacción de 500, pero existe una factura emitida
	// con otros ítems: el formulario debe salir de la factura, sin merge.
	f := newFixture([]entity.Transaction{doctorTx("tx-1", 500)})
	f.invoices.invoices["inv-1"] = &entity.Invoice{
		ID:              "inv-1",
		ConsultationID:  testConsultationID,
		PatientID:       testPatientID,
		Status:          entity.StatusPendingConfirmation,
		IsDraft:         false,
		IssuedOn:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DueOn:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		PaidTotalAmount: dec(1000),
		Items: []entity.LineItem{
			{Kind: entity.KindLab, Quantity: 2, UnitPrice: dec(750), Label: "Hemograma"},
		},
		CreatedAt: time.Now(),
	}

	resp, err := f.uc.GetCheckout(context.Background(), testConsultationID)
	require.NoError(t, err)

	assert.Equal(t, dto.ModeViewingFinalized, resp.Mode)
	require.NotNil(t, resp.Invoice)
	require.Len(t, resp.Form.Items, 1, "la factura manda: los ítems de transacciones desaparecen")
	assert.Equal(t, "Hemograma", resp.Form.Items[0].Label)
	assert.Equal(t, "2024-03-01", resp.Form.IssuedOn)
	assert.True(t, resp.Form.Subtotal.Equal(dec(1500)))
	assert.True(t, resp.Form.BalanceDue.Equal(dec(500)), "saldo derivado: 1500 - 1000")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_SubtotalCero_RechazaSinPersistir(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.CreateInvoice(context.Background(), testConsultationID, dto.CheckoutRequest{
		Items:   itemDTOs(0),
		IsDraft: false,
	})

	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)
	assert.Empty(t, f.invoices.invoices, "una validación fallida no debe persistir nada")
}

func TestCreateInvoice_EmitirSinFechas_Rechaza(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.CreateInvoice(context.Background(), testConsultationID, dto.CheckoutRequest{
		Items:    itemDTOs(500),
		IsDraft:  false,
		IssuedOn: "2024-03-01",
		// due_on sin definir
	})

	assert.ErrorIs(t, err, domain.ErrMissingDates)
	assert.Empty(t, f.invoices.invoices)
}

func TestCreateInvoice_FechaMalFormada_Rechaza(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.CreateInvoice(context.Background(), testConsultationID, dto.CheckoutRequest{
		Items:    itemDTOs(500),
		IsDraft:  true,
		IssuedOn: "01/03/2024",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoice_BorradorSinFechas_Acepta(t *testing.T) {
	f := newFixture(nil)

	inv, err := f.uc.CreateInvoice(context.Background(), testConsultationID, dto.CheckoutRequest{
		Items:   itemDTOs(500),
		IsDraft: true,
	})
	require.NoError(t, err)

	assert.True(t, inv.IsDraft)
	assert.Equal(t, entity.StatusInitiated, inv.Status, "un borrador queda en initiated")
	assert.Empty(t, inv.IssuedOn)
	assert.Len(t, f.invoices.invoices, 1, "el borrador debe persistirse")
}

func TestCreateInvoice_Emitir_QuedaPendienteDeConfirmacion(t *testing.T) {
	f := newFixture(nil)

	inv, err := f.uc.CreateInvoice(context.Background(), testConsultationID, dto.CheckoutRequest{
		Items:           itemDTOs(500, 1500),
		IsDraft:         false,
		IssuedOn:        "2024-03-01",
		DueOn:           "2024-03-15",
		PaidTotalAmount: dec(1000),
	})
	require.NoError(t, err)

	assert.False(t, inv.IsDraft)
	assert.Equal(t, entity.StatusPendingConfirmation, inv.Status)
	assert.True(t, inv.Subtotal.Equal(dec(2000)))
	assert.True(t, inv.BalanceDue.Equal(dec(1000)))
	assert.True(t, inv.Change.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// LoadDraft
// ──────────────────────────────────────────────────────────────────────────────

func TestLoadDraft_FacturaEmitida_Rechaza(t *testing.T) {
	f := newFixture(nil)
	f.invoices.invoices["inv-1"] = &entity.Invoice{
		ID: "inv-1", ConsultationID: testConsultationID, IsDraft: false,
		Status: entity.StatusPendingConfirmation,
	}

	_, err := f.uc.LoadDraft(context.Background(), "inv-1")

	assert.ErrorIs(t, err, domain.ErrInvoiceFinalized)
}

func TestLoadDraft_DevuelveFormularioConTotales(t *testing.T) {
	f := newFixture(nil)
	f.invoices.invoices["d-1"] = &entity.Invoice{
		ID: "d-1", ConsultationID: testConsultationID, IsDraft: true,
		Status:          entity.StatusInitiated,
		Description:     "control mensual",
		PaidTotalAmount: dec(200),
		Items: []entity.LineItem{
			{Kind: entity.KindConsultation, Quantity: 1, UnitPrice: dec(500), Label: "Consulta"},
		},
	}

	form, err := f.uc.LoadDraft(context.Background(), "d-1")
	require.NoError(t, err)

	assert.Equal(t, "control mensual", form.Description)
	assert.True(t, form.Subtotal.Equal(dec(500)))
	assert.True(t, form.BalanceDue.Equal(dec(300)))
	assert.True(t, form.PaidTotalAmount.Equal(dec(200)))
}

func TestLoadDraft_Inexistente(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.LoadDraft(context.Background(), "nada")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ConfirmPayment
// ──────────────────────────────────────────────────────────────────────────────

func emittedInvoice(paid float64) *entity.Invoice {
	return &entity.Invoice{
		ID: "inv-1", ConsultationID: testConsultationID, PatientID: testPatientID,
		Status: entity.StatusPendingConfirmation, IsDraft: false,
		IssuedOn:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DueOn:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		PaidTotalAmount: dec(paid),
		Items: []entity.LineItem{
			{Kind: entity.KindConsultation, Quantity: 1, UnitPrice: dec(500), Label: "Consulta"},
		},
		CreatedAt: time.Now(),
	}
}

func TestConfirmPayment_Borrador_Rechaza(t *testing.T) {
	f := newFixture(nil)
	draft := emittedInvoice(0)
	draft.IsDraft = true
	draft.Status = entity.StatusInitiated
	f.invoices.invoices["inv-1"] = draft

	_, err := f.uc.ConfirmPayment(context.Background(), "inv-1", dto.ConfirmPaymentRequest{
		PaymentMethod:   "efectivo",
		PaymentDatetime: "2024-03-02T10:30:00Z",
	})

	assert.ErrorIs(t, err, domain.ErrInvoiceIsDraft)
}

func TestConfirmPayment_SinMedioOFecha_Rechaza(t *testing.T) {
	f := newFixture(nil)
	f.invoices.invoices["inv-1"] = emittedInvoice(500)

	_, err := f.uc.ConfirmPayment(context.Background(), "inv-1", dto.ConfirmPaymentRequest{
		PaymentMethod: "efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrMissingPayment)

	_, err = f.uc.ConfirmPayment(context.Background(), "inv-1", dto.ConfirmPaymentRequest{
		PaymentDatetime: "2024-03-02T10:30:00Z",
	})
	assert.ErrorIs(t, err, domain.ErrMissingPayment)
}

func TestConfirmPayment_MedioNoConfigurado_Rechaza(t *testing.T) {
	f := newFixture(nil)
	f.invoices.invoices["inv-1"] = emittedInvoice(500)

	_, err := f.uc.ConfirmPayment(context.Background(), "inv-1", dto.ConfirmPaymentRequest{
		PaymentMethod:   "cheque",
		PaymentDatetime: "2024-03-02T10:30:00Z",
	})

	assert.ErrorIs(t, err, domain.ErrUnknownPayMethod)
}

func TestConfirmPayment_ConfirmaYPreservaMontoPagado(t *testing.T) {
	f := newFixture(nil)
	f.invoices.invoices["inv-1"] = emittedInvoice(200)

	inv, err := f.uc.ConfirmPayment(context.Background(), "inv-1", dto.ConfirmPaymentRequest{
		PaymentMethod:   "tarjeta",
		PaymentDatetime: "2024-03-02T10:30:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusConfirmed, inv.Status)
	assert.Equal(t, "tarjeta", inv.PaymentMethod)
	assert.True(t, inv.PaidTotalAmount.Equal(dec(200)),
		"confirmar no debe alterar el monto pagado almacenado")
	assert.True(t, inv.BalanceDue.Equal(dec(300)), "saldo derivado tras confirmar")

	stored := f.invoices.invoices["inv-1"]
	assert.Equal(t, entity.StatusConfirmed, stored.Status, "el cambio debe persistirse")
	assert.Equal(t, "tarjeta", stored.PaymentMethod)
}
