package entity

import "time"

// Patient espejo de solo lectura del registro de paciente.
// El dueño del dato es el módulo de admisiones; caja solo lo muestra.
type Patient struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Gender    string
	CreatedAt time.Time
}

// FullName nombre para mostrar en el encabezado de caja y en recibos.
func (p Patient) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
