// Package catalog casos de uso de configuración del hospital: tarifas de
// servicios, esquemas de exámenes de laboratorio y medios de pago.
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// PricingUseCase CRUD de tarifas de servicios.
type PricingUseCase struct {
	repo repository.ServicePriceRepository
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(repo repository.ServicePriceRepository) *PricingUseCase {
	return &PricingUseCase{repo: repo}
}

// Create crea una tarifa nueva.
func (uc *PricingUseCase) Create(in dto.ServicePriceRequest) (*dto.ServicePriceResponse, error) {
	kind := entity.LineItemKind(in.Kind)
	if in.Name == "" || !entity.ValidLineItemKind(kind) || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	price := &entity.ServicePrice{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      in.Name,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(price); err != nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

// Update reemplaza los campos de la tarifa.
func (uc *PricingUseCase) Update(id string, in dto.ServicePriceRequest) (*dto.ServicePriceResponse, error) {
	kind := entity.LineItemKind(in.Kind)
	if in.Name == "" || !entity.ValidLineItemKind(kind) || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	price, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, domain.ErrNotFound
	}
	price.Kind = kind
	price.Name = in.Name
	price.Price = in.Price
	price.UpdatedAt = time.Now()
	if err := uc.repo.Update(price); err != nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

// GetByID obtiene una tarifa.
func (uc *PricingUseCase) GetByID(id string) (*dto.ServicePriceResponse, error) {
	price, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, domain.ErrNotFound
	}
	return toPriceResponse(price), nil
}

// List lista tarifas paginadas.
func (uc *PricingUseCase) List(page dto.PageRequest) ([]*dto.ServicePriceResponse, error) {
	page.DefaultPage()
	prices, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServicePriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, toPriceResponse(p))
	}
	return out, nil
}

// Delete elimina una tarifa.
func (uc *PricingUseCase) Delete(id string) error {
	price, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if price == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPriceResponse(p *entity.ServicePrice) *dto.ServicePriceResponse {
	return &dto.ServicePriceResponse{
		ID:    p.ID,
		Kind:  string(p.Kind),
		Name:  p.Name,
		Price: p.Price,
	}
}
