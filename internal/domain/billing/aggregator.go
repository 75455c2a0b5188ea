// Package billing contiene la lógica pura de la hoja de cobro: agregación de
// ítems, la lista editable de líneas y la derivación de etiquetas desde los
// registros clínicos. No depende de HTTP ni de la base de datos.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

// Aggregates valores derivados de una factura. Nunca se persisten:
// se recalculan en cada lectura a partir de los ítems y el monto pagado.
type Aggregates struct {
	Subtotal   decimal.Decimal
	BalanceDue decimal.Decimal
	Change     decimal.Decimal
}

// Totals calcula subtotal, saldo pendiente y cambio.
//
//	subtotal   = Σ cantidad × precio unitario (fold por la izquierda)
//	balanceDue = subtotal − pagado, si es positivo; 0 en caso contrario
//	change     = pagado − subtotal, si es positivo; 0 en caso contrario
//
// BalanceDue y Change nunca son positivos a la vez. Una lista vacía
// produce los tres valores en cero.
func Totals(items []entity.LineItem, paid decimal.Decimal) Aggregates {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total())
	}

	agg := Aggregates{
		Subtotal:   subtotal,
		BalanceDue: decimal.Zero,
		Change:     decimal.Zero,
	}
	switch {
	case subtotal.GreaterThan(paid):
		agg.BalanceDue = subtotal.Sub(paid)
	case paid.GreaterThan(subtotal) && paid.IsPositive():
		agg.Change = paid.Sub(subtotal)
	}
	return agg
}
