// Package receipt proyecta el snapshot canónico del recibo (cashier.ReceiptData)
// a sus tres salidas: texto de ancho fijo para impresora térmica, HTML y PDF.
// Los tres renderizadores leen el mismo modelo; la lógica de formato de montos
// y de "saldo o cambio, nunca ambos" vive una sola vez aquí.
package receipt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Clinica-api/internal/application/cashier"
)

// emDash marcador de campo opcional ausente.
const emDash = "—"

var amountPrinter = message.NewPrinter(language.Spanish)

// formatAmount da formato local al monto (separador de miles, dos decimales).
// Solo para mostrar: la aritmética es siempre decimal.
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return amountPrinter.Sprintf("%.2f", f)
}

// settlementLine decide la única línea de cierre del pie: saldo pendiente si
// es positivo, cambio si el pago excede el subtotal; nunca ambas. Con pago
// exacto se muestra el saldo en cero.
func settlementLine(data cashier.ReceiptData) (label string, amount decimal.Decimal) {
	if data.Totals.Change.IsPositive() {
		return "CAMBIO", data.Totals.Change
	}
	return "SALDO", data.Totals.BalanceDue
}
