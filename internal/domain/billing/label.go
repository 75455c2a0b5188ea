package billing

import (
	"strings"

	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

// labelTimeLayout formato de la etiqueta de respaldo (fecha de creación).
const labelTimeLayout = "02/01/2006 15:04"

// ItemLabel deriva la descripción de una línea desde el payload de la
// transacción origen. El orden de prioridad es fijo y explícito:
// médico > tipo de examen de imagen > nombre del análisis > cama >
// fecha de creación formateada > cadena vacía.
func ItemLabel(tx entity.Transaction) string {
	switch tx.Item.Kind {
	case entity.DetailDoctor:
		return strings.TrimSpace(tx.Item.DoctorFirstName + " " + tx.Item.DoctorLastName)
	case entity.DetailScan:
		return tx.Item.ScanType
	case entity.DetailInvestigation:
		return tx.Item.TestName
	case entity.DetailBed:
		return tx.Item.BedName
	default:
		if !tx.CreatedAt.IsZero() {
			return tx.CreatedAt.Format(labelTimeLayout)
		}
		return ""
	}
}
