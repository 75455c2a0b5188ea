package receipt

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Clinica-api/internal/application/cashier"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 99, Blue: 73}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// PDFRenderer implementa cashier.ReceiptRenderer usando Maroto v2.
type PDFRenderer struct{}

// NewPDFRenderer construye el renderizador.
func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

// ContentType del documento generado.
func (*PDFRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF del recibo y devuelve sus bytes.
func (*PDFRenderer) Render(_ context.Context, data cashier.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Caja", true).
		WithAuthor(data.Hospital.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(patientRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(data.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	if data.PaymentMethod != "" || !data.PaymentDatetime.IsZero() {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(paymentRow(data))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("receipt: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del hospital + NIT (izq) y N° de recibo + fecha (der).
func headerRow(data cashier.ReceiptData) core.Row {
	issued := emDash
	if !data.IssuedOn.IsZero() {
		issued = data.IssuedOn.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Hospital.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(data.Hospital.Address, emDash), props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
			text.New("NIT: "+nonEmpty(data.Hospital.TaxID, emDash), props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(data.InvoiceID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+issued, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// patientRow: datos del paciente.
func patientRow(data cashier.ReceiptData) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("PACIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(data.PatientName, emDash), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de conceptos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Concepto", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por ítem del recibo.
func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Label,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatAmount(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatAmount(it.Total()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: subtotal, pagado y exactamente una de saldo o cambio.
func totalsRow(data cashier.ReceiptData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	settleLabel, settleAmount := settlementLine(data)

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("SUBTOTAL:"),
			label("PAGADO:"),
			grandLabel(settleLabel+":"),
		),
		col.New(4).Add(
			value(formatAmount(data.Totals.Subtotal)),
			value(formatAmount(data.Paid)),
			grandValue(formatAmount(settleAmount)),
		),
	)
}

// paymentRow: medio y fecha de pago, solo cuando existen.
func paymentRow(data cashier.ReceiptData) core.Row {
	parts := ""
	if data.PaymentMethod != "" {
		parts = "Medio de pago: " + data.PaymentMethod
	}
	if !data.PaymentDatetime.IsZero() {
		if parts != "" {
			parts += "   |   "
		}
		parts += "Pago: " + data.PaymentDatetime.Format("02/01/2006 15:04")
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(parts, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
