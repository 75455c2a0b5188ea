package cashier

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain/billing"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

// Formatos de fecha del API: fechas de formulario como día calendario y
// momentos de pago en RFC 3339.
const (
	dateLayout     = "2006-01-02"
	datetimeLayout = time.RFC3339
)

// ItemsFromTransactions mapea las transacciones crudas de la consulta a líneas
// cobrables: una línea por transacción, cantidad 1, precio de la tarifa (0 si
// no hay tarifa) y etiqueta derivada del payload polimórfico.
func ItemsFromTransactions(txs []entity.Transaction) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(txs))
	for _, tx := range txs {
		ref := tx.ID
		price := decimal.Zero
		if tx.Price != nil {
			price = *tx.Price
		}
		item := entity.LineItem{
			Kind:        tx.PayingFor,
			ExternalRef: &ref,
			Quantity:    1,
			UnitPrice:   price,
			Label:       billing.ItemLabel(tx),
		}
		item.Normalize()
		items = append(items, item)
	}
	return items
}

// buildForm arma el formulario de cobro. El orden importa y debe preservarse:
// primero el mapeo desde transacciones crudas y después, si existe una factura
// persistida, su mapeo corre incondicionalmente y sobrescribe todo (nunca merge).
func buildForm(txs []entity.Transaction, inv *entity.Invoice) dto.CheckoutFormDTO {
	list := billing.NewLineItemList(ItemsFromTransactions(txs))
	form := dto.CheckoutFormDTO{
		Items:           toItemDTOs(list.Items()),
		PaidTotalAmount: decimal.Zero,
	}

	if inv != nil {
		form = formFromInvoice(inv)
	}

	agg := billing.Totals(fromItemDTOs(form.Items), form.PaidTotalAmount)
	form.Subtotal = agg.Subtotal
	form.BalanceDue = agg.BalanceDue
	form.Change = agg.Change
	return form
}

// formFromInvoice copia el formulario desde una factura o borrador guardado:
// ítems tal cual y campos con coalescencia de nulos a valores seguros.
func formFromInvoice(inv *entity.Invoice) dto.CheckoutFormDTO {
	return dto.CheckoutFormDTO{
		Items:            toItemDTOs(inv.Items),
		IssuedOn:         formatDate(inv.IssuedOn),
		DueOn:            formatDate(inv.DueOn),
		RecipientEmail:   inv.RecipientEmail,
		Description:      inv.Description,
		AdditionalNotes:  inv.AdditionalNotes,
		RecurringMonthly: inv.RecurringMonthly,
		PaidTotalAmount:  inv.PaidTotalAmount,
	}
}

func toItemDTOs(items []entity.LineItem) []dto.LineItemDTO {
	out := make([]dto.LineItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LineItemDTO{
			Kind:        string(it.Kind),
			ExternalRef: it.ExternalRef,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Label:       it.Label,
		})
	}
	return out
}

func fromItemDTOs(items []dto.LineItemDTO) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		item := entity.LineItem{
			Kind:        entity.LineItemKind(it.Kind),
			ExternalRef: it.ExternalRef,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Label:       it.Label,
		}
		item.Normalize()
		out = append(out, item)
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatDatetime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(datetimeLayout)
}
