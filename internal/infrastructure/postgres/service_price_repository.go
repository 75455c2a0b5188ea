package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

var _ repository.ServicePriceRepository = (*ServicePriceRepo)(nil)

// ServicePriceRepo persistencia de tarifas de servicios.
type ServicePriceRepo struct {
	q Querier
}

// NewServicePriceRepository construye el adaptador.
func NewServicePriceRepository(q Querier) *ServicePriceRepo {
	return &ServicePriceRepo{q: q}
}

// Create persiste la tarifa.
func (r *ServicePriceRepo) Create(price *entity.ServicePrice) error {
	if price.ID == "" {
		price.ID = uuid.New().String()
	}
	query := `
		INSERT INTO service_prices (id, kind, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, string(price.Kind), price.Name, price.Price, price.CreatedAt, price.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("service price already exists: %w", err)
		}
		return fmt.Errorf("insert service price: %w", err)
	}
	return nil
}

// GetByID obtiene la tarifa o nil si no existe.
func (r *ServicePriceRepo) GetByID(id string) (*entity.ServicePrice, error) {
	query := `
		SELECT id, kind, name, price, created_at, updated_at
		FROM service_prices WHERE id = $1`
	var p entity.ServicePrice
	var kind string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &kind, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service price: %w", err)
	}
	p.Kind = entity.LineItemKind(kind)
	return &p, nil
}

// List tarifas paginadas por nombre.
func (r *ServicePriceRepo) List(limit, offset int) ([]*entity.ServicePrice, error) {
	query := `
		SELECT id, kind, name, price, created_at, updated_at
		FROM service_prices
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list service prices: %w", err)
	}
	defer rows.Close()

	var out []*entity.ServicePrice
	for rows.Next() {
		var p entity.ServicePrice
		var kind string
		if err := rows.Scan(&p.ID, &kind, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service price: %w", err)
		}
		p.Kind = entity.LineItemKind(kind)
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list service prices: %w", err)
	}
	return out, nil
}

// Update reemplaza los campos de la tarifa.
func (r *ServicePriceRepo) Update(price *entity.ServicePrice) error {
	query := `
		UPDATE service_prices
		SET kind = $2, name = $3, price = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, string(price.Kind), price.Name, price.Price, price.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service price: %w", err)
	}
	return nil
}

// Delete elimina la tarifa.
func (r *ServicePriceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM service_prices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service price: %w", err)
	}
	return nil
}
