package repository

import "github.com/jhoicas/Clinica-api/internal/domain/entity"

// ServicePriceRepository puerto de persistencia para tarifas de servicios.
type ServicePriceRepository interface {
	Create(price *entity.ServicePrice) error
	GetByID(id string) (*entity.ServicePrice, error)
	List(limit, offset int) ([]*entity.ServicePrice, error)
	Update(price *entity.ServicePrice) error
	Delete(id string) error
}
