package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consultation encuentro clínico contra el cual se cobran los ítems.
// Este servicio solo lo lee: lo administra el módulo clínico.
type Consultation struct {
	ID         string
	PatientID  string
	DoctorName string
	CreatedAt  time.Time
}

// ItemDetailKind discrimina las variantes conocidas del payload de una transacción.
type ItemDetailKind int

const (
	DetailNone ItemDetailKind = iota
	DetailDoctor
	DetailScan
	DetailInvestigation
	DetailBed
)

// TransactionItem payload polimórfico de una transacción cobrable, modelado
// como unión discriminada: solo los campos de la variante activa tienen valor.
type TransactionItem struct {
	Kind ItemDetailKind

	// DetailDoctor
	DoctorFirstName string
	DoctorLastName  string

	// DetailScan
	ScanType string

	// DetailInvestigation
	TestName string

	// DetailBed
	BedName string
}

// Transaction registro cobrable generado por un módulo clínico
// (consulta, laboratorio, imágenes, cama...). Price es el precio resuelto
// desde la configuración de tarifas; nil si la tarifa no existe.
type Transaction struct {
	ID             string
	ConsultationID string
	PayingFor      LineItemKind
	Price          *decimal.Decimal
	Item           TransactionItem
	CreatedAt      time.Time
}
