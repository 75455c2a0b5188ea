package receipt

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clinica-api/internal/application/cashier"
	"github.com/jhoicas/Clinica-api/internal/domain/billing"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func sampleData() cashier.ReceiptData {
	items := []entity.LineItem{
		{Kind: entity.KindConsultation, Quantity: 2, UnitPrice: dec(500), Label: "Consulta general"},
		{Kind: entity.KindLab, Quantity: 1, UnitPrice: dec(1500), Label: "Hemograma completo"},
	}
	paid := dec(1000)
	return cashier.ReceiptData{
		Hospital: cashier.HospitalInfo{
			Name:    "Clínica San Rafael",
			Address: "Calle 10 # 5-34",
			Phone:   "601 555 0100",
			TaxID:   "900123456-7",
		},
		PatientName: "Ana Gómez",
		InvoiceID:   "7f3a2b10-9c4d-4e21-8f00-000000000000",
		IssuedOn:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Items:       items,
		Paid:        paid,
		Totals:      billing.Totals(items, paid),
	}
}

func renderLines(t *testing.T, data cashier.ReceiptData) []string {
	t.Helper()
	out, err := NewTextRenderer().Render(context.Background(), data)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(out), "\n"), "\n")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ancho fijo
// ──────────────────────────────────────────────────────────────────────────────

func TestTextRenderer_NingunaLineaExcede40Columnas(t *testing.T) {
	data := sampleData()
	data.Items[0].Label = "Ecografía abdominal completa con contraste y lectura especializada"

	for _, ln := range renderLines(t, data) {
		assert.LessOrEqual(t, len([]rune(ln)), receiptWidth,
			"línea excede %d columnas: %q", receiptWidth, ln)
	}
}

func TestTextRenderer_EtiquetaTruncadaA24(t *testing.T) {
	data := sampleData()
	data.Items[0].Label = "Resonancia magnética cerebral con contraste"

	lines := renderLines(t, data)

	quiere := truncate("Resonancia magnética cerebral con contraste", maxLabelWidth)
	found := false
	for _, ln := range lines {
		if strings.HasPrefix(ln, quiere) {
			found = true
			assert.NotContains(t, ln, "cerebral con contraste",
				"la etiqueta no debe aparecer completa en modo texto")
		}
	}
	assert.True(t, found, "debe haber una línea con la etiqueta truncada %q", quiere)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pie: exactamente una de SALDO o CAMBIO
// ──────────────────────────────────────────────────────────────────────────────

func TestTextRenderer_PagoParcialMuestraSoloSaldo(t *testing.T) {
	out := strings.Join(renderLines(t, sampleData()), "\n")

	assert.Contains(t, out, "SALDO")
	assert.NotContains(t, out, "CAMBIO", "pago parcial no debe mostrar cambio")
}

func TestTextRenderer_SobrepagoMuestraSoloCambio(t *testing.T) {
	data := sampleData()
	data.Paid = dec(3000)
	data.Totals = billing.Totals(data.Items, data.Paid)

	out := strings.Join(renderLines(t, data), "\n")

	assert.Contains(t, out, "CAMBIO")
	assert.NotContains(t, out, "SALDO", "sobrepago no debe mostrar saldo")
}

func TestTextRenderer_PagoExactoMuestraSaldoCero(t *testing.T) {
	data := sampleData()
	data.Paid = dec(2500)
	data.Totals = billing.Totals(data.Items, data.Paid)

	lines := renderLines(t, data)

	var saldo string
	for _, ln := range lines {
		if strings.HasPrefix(ln, "SALDO") {
			saldo = ln
		}
	}
	require.NotEmpty(t, saldo, "pago exacto debe mostrar línea de saldo")
	assert.True(t, strings.HasSuffix(saldo, "0,00"), "saldo exacto debe ser 0,00, línea: %q", saldo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos opcionales
// ──────────────────────────────────────────────────────────────────────────────

func TestTextRenderer_PacienteYFechaAusentesUsanGuion(t *testing.T) {
	data := sampleData()
	data.PatientName = ""
	data.IssuedOn = time.Time{}

	out := strings.Join(renderLines(t, data), "\n")

	assert.Contains(t, out, "Paciente:")
	assert.Contains(t, out, emDash)
	assert.NotContains(t, out, "15/03/2024")
}

func TestTextRenderer_LineasDePagoSoloSiHayDato(t *testing.T) {
	sin := strings.Join(renderLines(t, sampleData()), "\n")
	assert.NotContains(t, sin, "Medio de pago")
	assert.NotContains(t, sin, "Pago:")

	data := sampleData()
	data.PaymentMethod = "efectivo"
	data.PaymentDatetime = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	con := strings.Join(renderLines(t, data), "\n")
	assert.Contains(t, con, "Medio de pago:")
	assert.Contains(t, con, "15/03/2024 14:30")
}

func TestTextRenderer_DetallePorItem(t *testing.T) {
	out := strings.Join(renderLines(t, sampleData()), "\n")

	assert.Contains(t, out, "Consulta general")
	assert.Contains(t, out, "2 x", "cada ítem lleva línea de detalle cantidad x precio")
}
