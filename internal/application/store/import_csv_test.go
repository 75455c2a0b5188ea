package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clinica-api/internal/application/store"
	"github.com/jhoicas/Clinica-api/internal/domain"
	"github.com/jhoicas/Clinica-api/internal/domain/entity"
	"github.com/jhoicas/Clinica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items     map[string]*entity.StoreItem
	failAfter int // si > 0, Create falla a partir de esa llamada (1-based)
	creates   int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.StoreItem{}}
}

func (r *fakeItemRepo) Create(item *entity.StoreItem) error {
	r.creates++
	if r.failAfter > 0 && r.creates >= r.failAfter {
		return errors.New("fallo simulado de la base de datos")
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.StoreItem, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) GetByName(name string) (*entity.StoreItem, error) {
	for _, it := range r.items {
		if it.Name == name {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) List(int, int) ([]*entity.StoreItem, error) { return nil, nil }
func (r *fakeItemRepo) Update(*entity.StoreItem) error             { return nil }
func (r *fakeItemRepo) Delete(string) error                        { return nil }

// fakeStoreTxRunner simula el lote atómico: si fn falla, descarta lo insertado.
type fakeStoreTxRunner struct {
	repo *fakeItemRepo
}

func (t *fakeStoreTxRunner) RunStore(_ context.Context, fn func(repository.StoreItemRepository) error) error {
	backup := make(map[string]*entity.StoreItem, len(t.repo.items))
	for k, v := range t.repo.items {
		backup[k] = v
	}
	if err := fn(t.repo); err != nil {
		t.repo.items = backup
		return err
	}
	return nil
}

func newStoreFixture() (*store.StoreUseCase, *fakeItemRepo) {
	repo := newFakeItemRepo()
	uc := store.NewStoreUseCase(repo, &fakeStoreTxRunner{repo: repo})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// ImportCSV
// ──────────────────────────────────────────────────────────────────────────────

const validCSV = `name,category,quantity,unit_cost,sale_price
Paracetamol 500mg,medicamento,100,150.50,300
Jeringa 5ml,insumo,500,80,120
`

func TestImportCSV_ArchivoValido_ImportaTodo(t *testing.T) {
	uc, repo := newStoreFixture()

	result, err := uc.ImportCSV(context.Background(), strings.NewReader(validCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Rejected)
	assert.Empty(t, result.Errors)
	assert.Len(t, repo.items, 2)

	item, err := repo.GetByName("Paracetamol 500mg")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(100), item.Quantity)
	assert.Equal(t, "150.5", item.UnitCost.String())
}

func TestImportCSV_EncabezadoIncorrecto_Rechaza(t *testing.T) {
	uc, _ := newStoreFixture()

	csvData := "nombre,categoria,cantidad,costo,precio\nParacetamol,med,1,1,2\n"
	_, err := uc.ImportCSV(context.Background(), strings.NewReader(csvData))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportCSV_FilasInvalidas_SeReportanConNumeroDeLinea(t *testing.T) {
	uc, repo := newStoreFixture()

	// Línea 3: cantidad no numérica. Línea 4: nombre vacío. Línea 5: válida.
	csvData := `name,category,quantity,unit_cost,sale_price
Paracetamol 500mg,medicamento,100,150.50,300
Ibuprofeno 400mg,medicamento,muchos,90,180
,insumo,10,5,8
Gasas estériles,insumo,200,20,35
`
	result, err := uc.ImportCSV(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Rejected)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Line, "la línea 1 es el encabezado")
	assert.Equal(t, "cantidad inválida", result.Errors[0].Message)
	assert.Equal(t, 4, result.Errors[1].Line)
	assert.Equal(t, "nombre vacío", result.Errors[1].Message)
	assert.Len(t, repo.items, 2)
}

func TestImportCSV_SinFilasValidas_Rechaza(t *testing.T) {
	uc, repo := newStoreFixture()

	csvData := `name,category,quantity,unit_cost,sale_price
,medicamento,100,150.50,300
Ibuprofeno,medicamento,-5,90,180
`
	_, err := uc.ImportCSV(context.Background(), strings.NewReader(csvData))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.items, "sin filas válidas no debe insertarse nada")
}

func TestImportCSV_FalloEnElLote_NoDejaFilasParciales(t *testing.T) {
	uc, repo := newStoreFixture()
	repo.failAfter = 2 // la segunda inserción falla

	_, err := uc.ImportCSV(context.Background(), strings.NewReader(validCSV))

	assert.Error(t, err)
	assert.Empty(t, repo.items, "el lote es atómico: o entran todas o ninguna")
}

func TestImportCSV_ArchivoVacio_Rechaza(t *testing.T) {
	uc, _ := newStoreFixture()

	_, err := uc.ImportCSV(context.Background(), strings.NewReader(""))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
