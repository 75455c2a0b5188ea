package store

import (
	"context"

	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con un
// repositorio de artículos atado a esa tx. La importación CSV lo usa para que
// el lote de filas válidas entre completo o no entre.
type TxRunner interface {
	RunStore(ctx context.Context, fn func(itemRepo repository.StoreItemRepository) error) error
}
