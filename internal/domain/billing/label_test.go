package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Clinica-api/internal/domain/billing"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

func TestItemLabel_PorVariante(t *testing.T) {
	creada := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		tx   entity.Transaction
		want string
	}{
		{
			name: "médico: nombre y apellido",
			tx: entity.Transaction{Item: entity.TransactionItem{
				Kind: entity.DetailDoctor, DoctorFirstName: "Ana", DoctorLastName: "Rojas",
			}},
			want: "Ana Rojas",
		},
		{
			name: "médico: solo apellido",
			tx: entity.Transaction{Item: entity.TransactionItem{
				Kind: entity.DetailDoctor, DoctorLastName: "Rojas",
			}},
			want: "Rojas",
		},
		{
			name: "imagen diagnóstica",
			tx: entity.Transaction{Item: entity.TransactionItem{
				Kind: entity.DetailScan, ScanType: "Radiografía de tórax",
			}},
			want: "Radiografía de tórax",
		},
		{
			name: "análisis de laboratorio",
			tx: entity.Transaction{Item: entity.TransactionItem{
				Kind: entity.DetailInvestigation, TestName: "Hemograma completo",
			}},
			want: "Hemograma completo",
		},
		{
			name: "cama",
			tx: entity.Transaction{Item: entity.TransactionItem{
				Kind: entity.DetailBed, BedName: "UCI-03",
			}},
			want: "UCI-03",
		},
		{
			name: "sin variante: fecha de creación formateada",
			tx:   entity.Transaction{CreatedAt: creada},
			want: "14/03/2025 09:30",
		},
		{
			name: "sin variante ni fecha: cadena vacía",
			tx:   entity.Transaction{},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, billing.ItemLabel(tc.tx))
		})
	}
}

// TestItemLabel_PrioridadExplicita verifica que la variante discriminada manda:
// aunque el payload traiga campos de otras variantes con valor, solo se usa
// el de la variante activa.
func TestItemLabel_PrioridadExplicita(t *testing.T) {
	tx := entity.Transaction{
		CreatedAt: time.Now(),
		Item: entity.TransactionItem{
			Kind:            entity.DetailDoctor,
			DoctorFirstName: "Luis",
			DoctorLastName:  "Pardo",
			ScanType:        "Ecografía",
			TestName:        "Glucosa",
			BedName:         "Cama 4",
		},
	}

	assert.Equal(t, "Luis Pardo", billing.ItemLabel(tx))
}
