package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo espejo de solo lectura de pacientes.
type PatientRepo struct {
	q Querier
}

// NewPatientRepository construye el adaptador.
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

// GetByID obtiene el paciente o nil si no existe.
func (r *PatientRepo) GetByID(id string) (*entity.Patient, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, gender, created_at
		FROM patients WHERE id = $1`
	var p entity.Patient
	var email, phone, gender *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &email, &phone, &gender, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	p.Email = derefStr(email)
	p.Phone = derefStr(phone)
	p.Gender = derefStr(gender)
	return &p, nil
}
