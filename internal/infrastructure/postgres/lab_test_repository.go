package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

var _ repository.LabTestRepository = (*LabTestRepo)(nil)

// LabTestRepo persistencia de esquemas de exámenes. Parameters va en una
// columna JSONB: el esquema se lee y escribe siempre completo.
type LabTestRepo struct {
	q Querier
}

// NewLabTestRepository construye el adaptador.
func NewLabTestRepository(q Querier) *LabTestRepo {
	return &LabTestRepo{q: q}
}

// Create persiste el esquema.
func (r *LabTestRepo) Create(test *entity.LabTest) error {
	if test.ID == "" {
		test.ID = uuid.New().String()
	}
	params, err := json.Marshal(test.Parameters)
	if err != nil {
		return fmt.Errorf("marshal lab parameters: %w", err)
	}
	query := `
		INSERT INTO lab_tests (id, name, parameters, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.q.Exec(context.Background(), query,
		test.ID, test.Name, params, test.CreatedAt, test.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("lab test already exists: %w", err)
		}
		return fmt.Errorf("insert lab test: %w", err)
	}
	return nil
}

// GetByID obtiene el esquema o nil si no existe.
func (r *LabTestRepo) GetByID(id string) (*entity.LabTest, error) {
	query := `
		SELECT id, name, parameters, created_at, updated_at
		FROM lab_tests WHERE id = $1`
	var t entity.LabTest
	var params []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &params, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lab test: %w", err)
	}
	if err := json.Unmarshal(params, &t.Parameters); err != nil {
		return nil, fmt.Errorf("unmarshal lab parameters: %w", err)
	}
	return &t, nil
}

// List esquemas paginados por nombre.
func (r *LabTestRepo) List(limit, offset int) ([]*entity.LabTest, error) {
	query := `
		SELECT id, name, parameters, created_at, updated_at
		FROM lab_tests
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lab tests: %w", err)
	}
	defer rows.Close()

	var out []*entity.LabTest
	for rows.Next() {
		var t entity.LabTest
		var params []byte
		if err := rows.Scan(&t.ID, &t.Name, &params, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lab test: %w", err)
		}
		if err := json.Unmarshal(params, &t.Parameters); err != nil {
			return nil, fmt.Errorf("unmarshal lab parameters: %w", err)
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lab tests: %w", err)
	}
	return out, nil
}

// Update reemplaza nombre y parámetros completos.
func (r *LabTestRepo) Update(test *entity.LabTest) error {
	params, err := json.Marshal(test.Parameters)
	if err != nil {
		return fmt.Errorf("marshal lab parameters: %w", err)
	}
	query := `
		UPDATE lab_tests
		SET name = $2, parameters = $3, updated_at = $4
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		test.ID, test.Name, params, test.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lab test: %w", err)
	}
	return nil
}

// Delete elimina el esquema.
func (r *LabTestRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lab_tests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lab test: %w", err)
	}
	return nil
}
