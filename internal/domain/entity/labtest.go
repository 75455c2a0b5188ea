package entity

import "time"

// LabParameter un parámetro medible dentro del esquema de un examen
// (ej. "Hemoglobina", unidad "g/dL", rango "12-16").
type LabParameter struct {
	Name           string `json:"name"`
	Unit           string `json:"unit"`
	ReferenceRange string `json:"reference_range"`
}

// LabTest esquema configurable de un examen de laboratorio: nombre del examen
// y lista ordenada de parámetros. La lista se edita por índice, igual que los
// ítems de la hoja de cobro: agregar al final, actualizar o eliminar por
// posición, sin reordenamientos implícitos.
type LabTest struct {
	ID         string
	Name       string
	Parameters []LabParameter
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
