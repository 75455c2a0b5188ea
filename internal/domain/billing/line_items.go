package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

// ItemField campo editable de una línea.
type ItemField string

const (
	FieldKind        ItemField = "kind"
	FieldQuantity    ItemField = "quantity"
	FieldUnitPrice   ItemField = "unit_price"
	FieldLabel       ItemField = "label"
	FieldExternalRef ItemField = "external_ref"
)

// LineItemList secuencia ordenada y editable de líneas cobrables.
//
// Preserva el orden de inserción; las únicas operaciones que reordenan son
// Remove (corre los índices siguientes hacia abajo) y Add (agrega al final).
// Nunca se aplica un sort. Las operaciones por índice fuera de rango son
// no-ops silenciosos: el llamador no recibe error.
type LineItemList struct {
	items []entity.LineItem
}

// NewLineItemList construye la lista con los ítems dados (se copian).
func NewLineItemList(items []entity.LineItem) *LineItemList {
	l := &LineItemList{}
	l.SetItems(items)
	return l
}

// SetItems reemplaza la secuencia completa. Se usa al cargar un borrador o
// una factura persistida: reemplazo total, nunca merge.
func (l *LineItemList) SetItems(items []entity.LineItem) {
	l.items = make([]entity.LineItem, len(items))
	copy(l.items, items)
}

// Items devuelve una copia de la secuencia en orden de inserción.
func (l *LineItemList) Items() []entity.LineItem {
	out := make([]entity.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len cantidad de líneas.
func (l *LineItemList) Len() int { return len(l.items) }

// Add agrega una línea al final. Con defaults nil se agrega la línea por
// defecto: {kind: consultation, ref: nil, quantity: 1, unitPrice: 0}.
// Si se suministra una línea parcial, se normaliza (cantidad mínima 1,
// precio no negativo).
func (l *LineItemList) Add(defaults *entity.LineItem) {
	item := entity.LineItem{
		Kind:      entity.KindConsultation,
		Quantity:  1,
		UnitPrice: decimal.Zero,
	}
	if defaults != nil {
		item = *defaults
		item.Normalize()
	}
	l.items = append(l.items, item)
}

// Remove elimina la línea en index y corre hacia abajo las siguientes,
// preservando el orden relativo de las sobrevivientes. Fuera de rango: no-op.
func (l *LineItemList) Remove(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
}

// UpdateField reemplaza un solo campo de la línea en index. Fuera de rango o
// con un valor de tipo inesperado es un no-op silencioso; el llamador no debe
// depender de un error de retorno.
func (l *LineItemList) UpdateField(index int, field ItemField, value interface{}) {
	if index < 0 || index >= len(l.items) {
		return
	}
	it := &l.items[index]
	switch field {
	case FieldKind:
		switch v := value.(type) {
		case entity.LineItemKind:
			if entity.ValidLineItemKind(v) {
				it.Kind = v
			}
		case string:
			if entity.ValidLineItemKind(entity.LineItemKind(v)) {
				it.Kind = entity.LineItemKind(v)
			}
		}
	case FieldQuantity:
		switch v := value.(type) {
		case int:
			if v >= 1 {
				it.Quantity = int64(v)
			}
		case int64:
			if v >= 1 {
				it.Quantity = v
			}
		}
	case FieldUnitPrice:
		if v, ok := value.(decimal.Decimal); ok && !v.IsNegative() {
			it.UnitPrice = v
		}
	case FieldLabel:
		if v, ok := value.(string); ok {
			it.Label = v
		}
	case FieldExternalRef:
		switch v := value.(type) {
		case *string:
			it.ExternalRef = v
		case string:
			ref := v
			it.ExternalRef = &ref
		}
	}
}
