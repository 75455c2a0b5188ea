package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// LabTestUseCase administra los esquemas de exámenes de laboratorio.
//
// La lista de parámetros se edita con la misma disciplina que las líneas de la
// hoja de cobro: agregar al final, actualizar o eliminar por índice, índices
// fuera de rango son no-ops y nunca se reordena.
type LabTestUseCase struct {
	repo repository.LabTestRepository
}

// NewLabTestUseCase construye el caso de uso.
func NewLabTestUseCase(repo repository.LabTestRepository) *LabTestUseCase {
	return &LabTestUseCase{repo: repo}
}

// Create crea un esquema de examen con sus parámetros iniciales.
func (uc *LabTestUseCase) Create(in dto.LabTestRequest) (*dto.LabTestResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	test := &entity.LabTest{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Parameters: fromParameterDTOs(in.Parameters),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(test); err != nil {
		return nil, err
	}
	return toLabTestResponse(test), nil
}

// Update reemplaza nombre y lista completa de parámetros.
func (uc *LabTestUseCase) Update(id string, in dto.LabTestRequest) (*dto.LabTestResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	test, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, domain.ErrNotFound
	}
	test.Name = in.Name
	test.Parameters = fromParameterDTOs(in.Parameters)
	test.UpdatedAt = time.Now()
	if err := uc.repo.Update(test); err != nil {
		return nil, err
	}
	return toLabTestResponse(test), nil
}

// AddParameter agrega un parámetro al final del esquema.
func (uc *LabTestUseCase) AddParameter(id string, in dto.LabParameterDTO) (*dto.LabTestResponse, error) {
	test, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, domain.ErrNotFound
	}
	test.Parameters = append(test.Parameters, entity.LabParameter{
		Name:           in.Name,
		Unit:           in.Unit,
		ReferenceRange: in.ReferenceRange,
	})
	test.UpdatedAt = time.Now()
	if err := uc.repo.Update(test); err != nil {
		return nil, err
	}
	return toLabTestResponse(test), nil
}

// UpdateParameter reemplaza el parámetro en index. Fuera de rango es un no-op:
// se devuelve el esquema sin cambios.
func (uc *LabTestUseCase) UpdateParameter(id string, index int, in dto.LabParameterDTO) (*dto.LabTestResponse, error) {
	test, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, domain.ErrNotFound
	}
	if index >= 0 && index < len(test.Parameters) {
		test.Parameters[index] = entity.LabParameter{
			Name:           in.Name,
			Unit:           in.Unit,
			ReferenceRange: in.ReferenceRange,
		}
		test.UpdatedAt = time.Now()
		if err := uc.repo.Update(test); err != nil {
			return nil, err
		}
	}
	return toLabTestResponse(test), nil
}

// RemoveParameter elimina el parámetro en index corriendo los siguientes hacia
// abajo. Fuera de rango es un no-op.
func (uc *LabTestUseCase) RemoveParameter(id string, index int) (*dto.LabTestResponse, error) {
	test, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, domain.ErrNotFound
	}
	if index >= 0 && index < len(test.Parameters) {
		test.Parameters = append(test.Parameters[:index], test.Parameters[index+1:]...)
		test.UpdatedAt = time.Now()
		if err := uc.repo.Update(test); err != nil {
			return nil, err
		}
	}
	return toLabTestResponse(test), nil
}

// GetByID obtiene un esquema.
func (uc *LabTestUseCase) GetByID(id string) (*dto.LabTestResponse, error) {
	test, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, domain.ErrNotFound
	}
	return toLabTestResponse(test), nil
}

// List lista esquemas paginados.
func (uc *LabTestUseCase) List(page dto.PageRequest) ([]*dto.LabTestResponse, error) {
	page.DefaultPage()
	tests, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LabTestResponse, 0, len(tests))
	for _, t := range tests {
		out = append(out, toLabTestResponse(t))
	}
	return out, nil
}

// Delete elimina un esquema.
func (uc *LabTestUseCase) Delete(id string) error {
	test, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if test == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func fromParameterDTOs(params []dto.LabParameterDTO) []entity.LabParameter {
	out := make([]entity.LabParameter, 0, len(params))
	for _, p := range params {
		out = append(out, entity.LabParameter{
			Name:           p.Name,
			Unit:           p.Unit,
			ReferenceRange: p.ReferenceRange,
		})
	}
	return out
}

func toLabTestResponse(t *entity.LabTest) *dto.LabTestResponse {
	params := make([]dto.LabParameterDTO, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		params = append(params, dto.LabParameterDTO{
			Name:           p.Name,
			Unit:           p.Unit,
			ReferenceRange: p.ReferenceRange,
		})
	}
	return &dto.LabTestResponse{
		ID:         t.ID,
		Name:       t.Name,
		Parameters: params,
	}
}
