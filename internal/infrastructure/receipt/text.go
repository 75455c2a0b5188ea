package receipt

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Clinica-api/internal/application/cashier"
)

// Layout del recibo térmico: 40 columnas fijas; las etiquetas de ítem se
// truncan a 24 caracteres solo en este modo.
const (
	receiptWidth  = 40
	maxLabelWidth = 24
)

// TextRenderer recibo de ancho fijo para impresora térmica.
type TextRenderer struct{}

// NewTextRenderer construye el renderizador.
func NewTextRenderer() *TextRenderer { return &TextRenderer{} }

// ContentType del documento generado.
func (*TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render genera el recibo en texto plano.
//
// Cada ítem ocupa dos líneas: etiqueta alineada a la izquierda contra el total
// de la línea a la derecha, y debajo el detalle "cantidad x precio unitario".
// El pie muestra subtotal, pagado y exactamente una de saldo o cambio.
func (*TextRenderer) Render(_ context.Context, data cashier.ReceiptData) ([]byte, error) {
	var b strings.Builder
	divider := strings.Repeat("-", receiptWidth)

	writeCentered(&b, data.Hospital.Name)
	if data.Hospital.Address != "" {
		writeCentered(&b, data.Hospital.Address)
	}
	if data.Hospital.Phone != "" {
		writeCentered(&b, "Tel: "+data.Hospital.Phone)
	}
	if data.Hospital.TaxID != "" {
		writeCentered(&b, "NIT: "+data.Hospital.TaxID)
	}
	b.WriteString(divider + "\n")

	writeCentered(&b, "RECIBO DE CAJA")
	b.WriteString(pairLine("Recibo:", shortID(data.InvoiceID)) + "\n")
	b.WriteString(pairLine("Paciente:", orDash(data.PatientName)) + "\n")
	issued := emDash
	if !data.IssuedOn.IsZero() {
		issued = data.IssuedOn.Format("02/01/2006")
	}
	b.WriteString(pairLine("Fecha:", issued) + "\n")
	b.WriteString(divider + "\n")

	for _, item := range data.Items {
		b.WriteString(pairLine(truncate(item.Label, maxLabelWidth), formatAmount(item.Total())) + "\n")
		b.WriteString(fmt.Sprintf("  %d x %s\n", item.Quantity, formatAmount(item.UnitPrice)))
	}
	b.WriteString(divider + "\n")

	b.WriteString(pairLine("SUBTOTAL", formatAmount(data.Totals.Subtotal)) + "\n")
	b.WriteString(pairLine("PAGADO", formatAmount(data.Paid)) + "\n")
	label, amount := settlementLine(data)
	b.WriteString(pairLine(label, formatAmount(amount)) + "\n")
	b.WriteString(divider + "\n")

	// Líneas de pago: solo si hay dato.
	if data.PaymentMethod != "" {
		b.WriteString(pairLine("Medio de pago:", data.PaymentMethod) + "\n")
	}
	if !data.PaymentDatetime.IsZero() {
		b.WriteString(pairLine("Pago:", data.PaymentDatetime.Format("02/01/2006 15:04")) + "\n")
	}

	return []byte(b.String()), nil
}

// pairLine izquierda y derecha separadas por espacios hasta completar 40
// columnas. Si no caben, se recorta la izquierda.
func pairLine(left, right string) string {
	lr := []rune(left)
	rr := []rune(right)
	gap := receiptWidth - len(lr) - len(rr)
	if gap < 1 {
		keep := receiptWidth - len(rr) - 1
		if keep < 0 {
			keep = 0
		}
		if keep < len(lr) {
			lr = lr[:keep]
		}
		gap = receiptWidth - len(lr) - len(rr)
		if gap < 1 {
			gap = 1
		}
	}
	return string(lr) + strings.Repeat(" ", gap) + string(rr)
}

func writeCentered(b *strings.Builder, s string) {
	r := []rune(s)
	if len(r) >= receiptWidth {
		b.WriteString(string(r[:receiptWidth]) + "\n")
		return
	}
	pad := (receiptWidth - len(r)) / 2
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func orDash(s string) string {
	if s == "" {
		return emDash
	}
	return s
}

// shortID primeros 8 caracteres del UUID: suficiente para referenciar el
// recibo en papel.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
