package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clinica-api/internal/application/catalog"
	"github.com/jhoicas/Clinica-api/internal/application/dto"
	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
)

// fakeLabTestRepo repositorio en memoria para los tests de esquemas.
type fakeLabTestRepo struct {
	tests   map[string]*entity.LabTest
	updates int
}

func newFakeLabTestRepo() *fakeLabTestRepo {
	return &fakeLabTestRepo{tests: map[string]*entity.LabTest{}}
}

func (r *fakeLabTestRepo) Create(t *entity.LabTest) error {
	r.tests[t.ID] = t
	return nil
}

func (r *fakeLabTestRepo) GetByID(id string) (*entity.LabTest, error) {
	t, ok := r.tests[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	cp.Parameters = append([]entity.LabParameter(nil), t.Parameters...)
	return &cp, nil
}

func (r *fakeLabTestRepo) List(int, int) ([]*entity.LabTest, error) { return nil, nil }

func (r *fakeLabTestRepo) Update(t *entity.LabTest) error {
	r.updates++
	r.tests[t.ID] = t
	return nil
}

func (r *fakeLabTestRepo) Delete(id string) error {
	delete(r.tests, id)
	return nil
}

func seedTest(repo *fakeLabTestRepo) string {
	repo.tests["lt-1"] = &entity.LabTest{
		ID:   "lt-1",
		Name: "Hemograma",
		Parameters: []entity.LabParameter{
			{Name: "Hemoglobina", Unit: "g/dL", ReferenceRange: "12-16"},
			{Name: "Leucocitos", Unit: "10^3/uL", ReferenceRange: "4.5-11"},
		},
	}
	return "lt-1"
}

func TestLabTest_AddParameter_AgregaAlFinal(t *testing.T) {
	repo := newFakeLabTestRepo()
	uc := catalog.NewLabTestUseCase(repo)
	id := seedTest(repo)

	out, err := uc.AddParameter(id, dto.LabParameterDTO{Name: "Plaquetas", Unit: "10^3/uL"})
	require.NoError(t, err)

	require.Len(t, out.Parameters, 3)
	assert.Equal(t, "Plaquetas", out.Parameters[2].Name, "el parámetro nuevo va al final")
	assert.Equal(t, "Hemoglobina", out.Parameters[0].Name, "los existentes no se mueven")
}

func TestLabTest_UpdateParameter_ReemplazaSoloEseIndice(t *testing.T) {
	repo := newFakeLabTestRepo()
	uc := catalog.NewLabTestUseCase(repo)
	id := seedTest(repo)

	out, err := uc.UpdateParameter(id, 1, dto.LabParameterDTO{Name: "Leucocitos totales", Unit: "10^3/uL", ReferenceRange: "4-10"})
	require.NoError(t, err)

	assert.Equal(t, "Leucocitos totales", out.Parameters[1].Name)
	assert.Equal(t, "Hemoglobina", out.Parameters[0].Name, "los demás índices quedan intactos")
}

func TestLabTest_UpdateParameter_FueraDeRango_NoOp(t *testing.T) {
	repo := newFakeLabTestRepo()
	uc := catalog.NewLabTestUseCase(repo)
	id := seedTest(repo)

	out, err := uc.UpdateParameter(id, 7, dto.LabParameterDTO{Name: "Fantasma"})
	require.NoError(t, err, "índice fuera de rango no es error")

	require.Len(t, out.Parameters, 2)
	assert.Equal(t, 0, repo.updates, "un no-op no debe escribir en el repositorio")
}

func TestLabTest_RemoveParameter_CorreLosSiguientes(t *testing.T) {
	repo := newFakeLabTestRepo()
	uc := catalog.NewLabTestUseCase(repo)
	id := seedTest(repo)

	out, err := uc.RemoveParameter(id, 0)
	require.NoError(t, err)

	require.Len(t, out.Parameters, 1)
	assert.Equal(t, "Leucocitos", out.Parameters[0].Name)
}

func TestLabTest_RemoveParameter_IndiceNegativo_NoOp(t *testing.T) {
	repo := newFakeLabTestRepo()
	uc := catalog.NewLabTestUseCase(repo)
	id := seedTest(repo)

	out, err := uc.RemoveParameter(id, -1)
	require.NoError(t, err)

	require.Len(t, out.Parameters, 2)
	assert.Equal(t, 0, repo.updates)
}

func TestLabTest_OperacionesSobreEsquemaInexistente(t *testing.T) {
	repo := newFakeLabTestRepo()
	uc := catalog.NewLabTestUseCase(repo)

	_, err := uc.AddParameter("nada", dto.LabParameterDTO{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateParameter("nada", 0, dto.LabParameterDTO{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLabTest_Create_SinNombre_Rechaza(t *testing.T) {
	uc := catalog.NewLabTestUseCase(newFakeLabTestRepo())

	_, err := uc.Create(dto.LabTestRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
