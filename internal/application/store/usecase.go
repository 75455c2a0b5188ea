// Package store casos de uso del almacén del hospital: CRUD de artículos e
// importación masiva desde CSV.
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// StoreUseCase administra los artículos del almacén.
type StoreUseCase struct {
	repo     repository.StoreItemRepository
	txRunner TxRunner
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreItemRepository, txRunner TxRunner) *StoreUseCase {
	return &StoreUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un artículo.
func (uc *StoreUseCase) Create(in dto.StoreItemRequest) (*dto.StoreItemResponse, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.StoreItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		SalePrice: in.SalePrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update reemplaza los campos del artículo.
func (uc *StoreUseCase) Update(id string, in dto.StoreItemRequest) (*dto.StoreItemResponse, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	item.Category = in.Category
	item.Quantity = in.Quantity
	item.UnitCost = in.UnitCost
	item.SalePrice = in.SalePrice
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista artículos paginados.
func (uc *StoreUseCase) List(page dto.PageRequest) ([]*dto.StoreItemResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StoreItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Delete elimina un artículo.
func (uc *StoreUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validateItem(in dto.StoreItemRequest) error {
	if in.Name == "" || in.Quantity < 0 || in.UnitCost.IsNegative() || in.SalePrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func toItemResponse(it *entity.StoreItem) *dto.StoreItemResponse {
	return &dto.StoreItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		Quantity:  it.Quantity,
		UnitCost:  it.UnitCost,
		SalePrice: it.SalePrice,
	}
}
