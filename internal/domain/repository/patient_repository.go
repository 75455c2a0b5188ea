package repository

import "github.com/jhoicas/Clinica-api/internal/domain/entity"

// PatientRepository espejo de solo lectura de pacientes.
type PatientRepository interface {
	GetByID(id string) (*entity.Patient, error)
}
