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

var _ repository.StoreItemRepository = (*StoreItemRepo)(nil)

// StoreItemRepo persistencia de artículos del almacén (usable con pool o tx).
type StoreItemRepo struct {
	q Querier
}

// NewStoreItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreItemRepository(q Querier) *StoreItemRepo {
	return &StoreItemRepo{q: q}
}

// Create persiste el artículo.
func (r *StoreItemRepo) Create(item *entity.StoreItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO store_items (id, name, category, quantity, unit_cost, sale_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, nullIfEmpty(item.Category), item.Quantity,
		item.UnitCost, item.SalePrice, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("store item already exists: %w", err)
		}
		return fmt.Errorf("insert store item: %w", err)
	}
	return nil
}

// GetByID obtiene el artículo o nil si no existe.
func (r *StoreItemRepo) GetByID(id string) (*entity.StoreItem, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByName obtiene el artículo por nombre exacto o nil si no existe.
func (r *StoreItemRepo) GetByName(name string) (*entity.StoreItem, error) {
	return r.getBy(`WHERE name = $1`, name)
}

func (r *StoreItemRepo) getBy(where string, arg any) (*entity.StoreItem, error) {
	query := `
		SELECT id, name, category, quantity, unit_cost, sale_price, created_at, updated_at
		FROM store_items ` + where
	var it entity.StoreItem
	var category *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.Name, &category, &it.Quantity,
		&it.UnitCost, &it.SalePrice, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store item: %w", err)
	}
	it.Category = derefStr(category)
	return &it, nil
}

// List artículos paginados por nombre.
func (r *StoreItemRepo) List(limit, offset int) ([]*entity.StoreItem, error) {
	query := `
		SELECT id, name, category, quantity, unit_cost, sale_price, created_at, updated_at
		FROM store_items
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list store items: %w", err)
	}
	defer rows.Close()

	var out []*entity.StoreItem
	for rows.Next() {
		var it entity.StoreItem
		var category *string
		err := rows.Scan(&it.ID, &it.Name, &category, &it.Quantity,
			&it.UnitCost, &it.SalePrice, &it.CreatedAt, &it.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan store item: %w", err)
		}
		it.Category = derefStr(category)
		out = append(out, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list store items: %w", err)
	}
	return out, nil
}

// Update reemplaza los campos del artículo.
func (r *StoreItemRepo) Update(item *entity.StoreItem) error {
	query := `
		UPDATE store_items
		SET name = $2, category = $3, quantity = $4, unit_cost = $5, sale_price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, nullIfEmpty(item.Category), item.Quantity,
		item.UnitCost, item.SalePrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store item: %w", err)
	}
	return nil
}

// Delete elimina el artículo.
func (r *StoreItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM store_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store item: %w", err)
	}
	return nil
}
