package repository

import "github.com/jhoicas/Clinica-api/internal/domain/entity"

// StoreItemRepository puerto de persistencia para artículos del almacén.
type StoreItemRepository interface {
	Create(item *entity.StoreItem) error
	GetByID(id string) (*entity.StoreItem, error)
	GetByName(name string) (*entity.StoreItem, error)
	List(limit, offset int) ([]*entity.StoreItem, error)
	Update(item *entity.StoreItem) error
	Delete(id string) error
}
