package repository

import "github.com/jhoicas/Clinica-api/internal/domain/entity"

// LabTestRepository puerto de persistencia para esquemas de exámenes de laboratorio.
// Parameters se persiste como documento JSONB junto con la cabecera.
type LabTestRepository interface {
	Create(test *entity.LabTest) error
	GetByID(id string) (*entity.LabTest, error)
	List(limit, offset int) ([]*entity.LabTest, error)
	// Update reemplaza nombre y lista completa de parámetros.
	Update(test *entity.LabTest) error
	Delete(id string) error
}
