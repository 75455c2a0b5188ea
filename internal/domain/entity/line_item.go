package entity

import "github.com/shopspring/decimal"

// LineItemKind categoría de un ítem cobrable.
type LineItemKind string

const (
	KindConsultation LineItemKind = "consultation"
	KindLab          LineItemKind = "lab"
	KindScan         LineItemKind = "scan"
	KindMedication   LineItemKind = "medication"
	KindBed          LineItemKind = "bed"
	KindSurgery      LineItemKind = "surgery"
	KindOther        LineItemKind = "other"
)

// ValidLineItemKind indica si el valor pertenece al catálogo cerrado de categorías.
func ValidLineItemKind(k LineItemKind) bool {
	switch k {
	case KindConsultation, KindLab, KindScan, KindMedication, KindBed, KindSurgery, KindOther:
		return true
	}
	return false
}

// LineItem representa una línea cobrable de una factura de caja.
// Invariantes: Quantity >= 1, UnitPrice >= 0. Todo el dinero es decimal:
// nunca float, nunca centavos implícitos.
type LineItem struct {
	Kind        LineItemKind
	ExternalRef *string // id del registro origen (ej. solicitud de laboratorio); nil si fue agregado a mano
	Quantity    int64
	UnitPrice   decimal.Decimal
	Label       string
}

// Total devuelve Quantity × UnitPrice.
func (li LineItem) Total() decimal.Decimal {
	return decimal.NewFromInt(li.Quantity).Mul(li.UnitPrice)
}

// Normalize aplica los valores por defecto del ítem: categoría "consultation",
// cantidad mínima 1 y precio no negativo.
func (li *LineItem) Normalize() {
	if !ValidLineItemKind(li.Kind) {
		li.Kind = KindConsultation
	}
	if li.Quantity < 1 {
		li.Quantity = 1
	}
	if li.UnitPrice.IsNegative() {
		li.UnitPrice = decimal.Zero
	}
}
