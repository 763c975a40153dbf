package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/inventory"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
	"github.com/jcamargo/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc          *inventory.ExtractionUseCase
	store       *memory.Store
	productRepo repository.ProductRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{
		uc:          inventory.NewExtractionUseCase(store.NewTxRunner(), store.NewExtractionRepository()),
		store:       store,
		productRepo: store.NewProductRepository(),
	}
}

// seedProduct crea un producto con estado ya derivado y devuelve su ID.
func (f *fixture) seedProduct(t *testing.T, description string, stock, stockMinimum int) int64 {
	t.Helper()
	p := &entity.Product{
		Description:  description,
		Stock:        stock,
		StockMinimum: stockMinimum,
		Category:     "General",
	}
	p.RefreshStatus()
	require.NoError(t, f.productRepo.Create(p))
	return p.ID
}

func (f *fixture) product(t *testing.T, id int64) *entity.Product {
	t.Helper()
	p, err := f.productRepo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func items(pairs ...[2]int64) []dto.ExtractionItemRequest {
	out := make([]dto.ExtractionItemRequest, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, dto.ExtractionItemRequest{ProductID: pair[0], Quantity: int(pair[1])})
	}
	return out
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create: fase de validación
// ──────────────────────────────────────────────────────────────────────────────

// TestCreate_DescuentaStockYRecalculaEstado escenario del contrato: producto
// con stock=10, mínimo=5 (InStock); una extracción de 7 deja stock=3 y estado
// LowStock.
func TestCreate_DescuentaStockYRecalculaEstado(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "Producto A", 10, 5)

	out, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Description: strPtr("Retiro de obra"),
		Products:    items([2]int64{id, 7}),
	})
	require.NoError(t, err)
	assert.Equal(t, "Extracción registrada exitosamente", out.Message)
	assert.Equal(t, "Retiro de obra", out.ExtractionDescription)
	require.Len(t, out.StockUpdated, 1)
	assert.Equal(t, id, out.StockUpdated[0].ProductID)
	assert.Equal(t, 3, out.StockUpdated[0].NewStock)

	p := f.product(t, id)
	assert.Equal(t, 3, p.Stock)
	assert.Equal(t, entity.StatusLowStock, p.Status)
}

// TestCreate_StockInsuficiente el segundo retiro del escenario del contrato:
// pedir 5 con stock 3 falla con el mensaje exacto y no toca el stock.
func TestCreate_StockInsuficiente(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "Producto A", 3, 5)

	_, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{id, 5}),
	})
	require.Error(t, err)

	var validationErr *domain.StockValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Detalles, 1)
	assert.Equal(t,
		"Stock insuficiente para Producto A (Stock actual: 3, Se requieren: 5)",
		validationErr.Detalles[0])
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, f.product(t, id).Stock, "el stock no debe cambiar")
}

// TestCreate_RecolectaTodasLasViolaciones la validación no corta en el primer
// error: producto inexistente y stock insuficiente se reportan juntos.
func TestCreate_RecolectaTodasLasViolaciones(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "Cemento", 2, 1)

	_, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{999, 1}, [2]int64{id, 5}),
	})
	var validationErr *domain.StockValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Detalles, 2)
	assert.Equal(t, "Producto ID 999 no existe", validationErr.Detalles[0])
	assert.Equal(t,
		"Stock insuficiente para Cemento (Stock actual: 2, Se requieren: 5)",
		validationErr.Detalles[1])
}

// TestCreate_AtomicaAnteValidacionParcial con un ítem válido y otro que
// referencia un producto inexistente no se descuenta nada y no queda ninguna
// extracción ni detalle.
func TestCreate_AtomicaAnteValidacionParcial(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "Arena", 10, 2)

	_, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{id, 4}, [2]int64{999, 1}),
	})
	require.Error(t, err)

	assert.Equal(t, 10, f.product(t, id).Stock, "el ítem válido no debe aplicarse")
	list, err := f.uc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "no debe quedar extracción ni detalles")
}

// TestCreate_ProductoRepetidoValidaAcumulado dos ítems del mismo producto se
// validan contra el stock ya reservado: 7+7 sobre stock 10 falla y el stock
// nunca queda negativo.
func TestCreate_ProductoRepetidoValidaAcumulado(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "Ladrillos", 10, 2)

	_, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{id, 7}, [2]int64{id, 7}),
	})
	var validationErr *domain.StockValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Detalles, 1)
	assert.Equal(t, 10, f.product(t, id).Stock)

	// 4+4 sí cabe; ambos reportan el stock final.
	out, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{id, 4}, [2]int64{id, 4}),
	})
	require.NoError(t, err)
	require.Len(t, out.StockUpdated, 2)
	assert.Equal(t, 2, out.StockUpdated[0].NewStock)
	assert.Equal(t, 2, out.StockUpdated[1].NewStock)
	assert.Equal(t, 2, f.product(t, id).Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: defaults y listado
// ──────────────────────────────────────────────────────────────────────────────

// TestCreate_DefaultsYListado sin descripción ni timestamp se aplican los
// valores por defecto; el listado anida los detalles en orden.
func TestCreate_DefaultsYListado(t *testing.T) {
	f := newFixture(t)
	idA := f.seedProduct(t, "A", 10, 2)
	idB := f.seedProduct(t, "B", 10, 2)

	before := time.Now().Add(-time.Second)
	out, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{idA, 1}, [2]int64{idB, 2}),
	})
	require.NoError(t, err)
	assert.Equal(t, inventory.DefaultExtractionDescription, out.ExtractionDescription)

	list, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	e := list[0]
	assert.Equal(t, inventory.DefaultExtractionDescription, e.Description)

	ts, err := time.Parse(time.RFC3339, e.Timestamp)
	require.NoError(t, err, "timestamp debe ser ISO-8601")
	assert.True(t, ts.After(before))

	require.Len(t, e.Details, 2)
	assert.Equal(t, idA, e.Details[0].ProductID)
	assert.Equal(t, 1, e.Details[0].Quantity)
	assert.Equal(t, idB, e.Details[1].ProductID)
	assert.Equal(t, 2, e.Details[1].Quantity)
}

// TestCreate_TimestampDelCaller un timestamp ISO-8601 enviado por el caller
// se respeta.
func TestCreate_TimestampDelCaller(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "A", 5, 1)

	_, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Timestamp: strPtr("2026-01-15T10:30:00Z"),
		Products:  items([2]int64{id, 1}),
	})
	require.NoError(t, err)

	list, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2026-01-15T10:30:00Z", list[0].Timestamp)
}

// TestCreate_ListaVacia una lista products vacía (presente) es válida y crea
// una extracción sin detalles, como en el contrato original.
func TestCreate_ListaVacia(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: []dto.ExtractionItemRequest{},
	})
	require.NoError(t, err)
	assert.Empty(t, out.StockUpdated)

	list, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Details)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

// TestUpdate_SoloDescripcion la descripción es el único campo editable.
func TestUpdate_SoloDescripcion(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "A", 5, 1)
	_, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{id, 1}),
	})
	require.NoError(t, err)

	list, err := f.uc.List()
	require.NoError(t, err)
	extractionID := list[0].ID

	out, err := f.uc.Update(extractionID, dto.UpdateExtractionRequest{
		Description: strPtr("Corregida"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Extracción actualizada", out.Message)
	assert.Equal(t, extractionID, out.ID)

	list, err = f.uc.List()
	require.NoError(t, err)
	assert.Equal(t, "Corregida", list[0].Description)
}

// TestUpdate_NoEncontrada falla con ErrNotFound.
func TestUpdate_NoEncontrada(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Update(999, dto.UpdateExtractionRequest{Description: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestDelete_RestauraStock viaje redondo del contrato: crear la extracción y
// eliminarla con restoreStock devuelve el stock a su valor previo y recalcula
// el estado; la extracción y su detalle desaparecen del listado.
func TestDelete_RestauraStock(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "Producto A", 10, 5)

	_, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{id, 7}),
	})
	require.NoError(t, err)
	require.Equal(t, entity.StatusLowStock, f.product(t, id).Status)

	list, err := f.uc.List()
	require.NoError(t, err)
	extractionID := list[0].ID

	out, err := f.uc.Delete(context.Background(), extractionID, true)
	require.NoError(t, err)
	assert.True(t, out.StockRestored)
	assert.True(t, out.DetailsDeleted)

	p := f.product(t, id)
	assert.Equal(t, 10, p.Stock, "el stock vuelve a su valor previo")
	assert.Equal(t, entity.StatusInStock, p.Status)

	list, err = f.uc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "la extracción y su detalle ya no aparecen")
}

// TestDelete_SinRestaurar restoreStock=false elimina la extracción y sus
// detalles sin tocar el stock.
func TestDelete_SinRestaurar(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "B", 10, 2)

	_, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{id, 4}),
	})
	require.NoError(t, err)

	list, err := f.uc.List()
	require.NoError(t, err)
	out, err := f.uc.Delete(context.Background(), list[0].ID, false)
	require.NoError(t, err)
	assert.False(t, out.StockRestored)
	assert.True(t, out.DetailsDeleted)

	assert.Equal(t, 6, f.product(t, id).Stock, "el stock queda como estaba tras la extracción")
	list, err = f.uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

// TestDelete_ProductoEliminadoSeOmite si un producto referenciado ya no
// existe, la restauración lo salta en silencio y el resto se restaura.
func TestDelete_ProductoEliminadoSeOmite(t *testing.T) {
	f := newFixture(t)
	idA := f.seedProduct(t, "A", 10, 2)
	idB := f.seedProduct(t, "B", 10, 2)

	_, err := f.uc.Create(context.Background(), dto.CreateExtractionRequest{
		Products: items([2]int64{idA, 3}, [2]int64{idB, 4}),
	})
	require.NoError(t, err)

	require.NoError(t, f.productRepo.Delete(idA))

	list, err := f.uc.List()
	require.NoError(t, err)
	out, err := f.uc.Delete(context.Background(), list[0].ID, true)
	require.NoError(t, err)
	assert.True(t, out.StockRestored)

	assert.Equal(t, 10, f.product(t, idB).Stock, "el producto vivo se restaura")
	gone, err := f.productRepo.GetByID(idA)
	require.NoError(t, err)
	assert.Nil(t, gone, "el producto eliminado no reaparece")
}

// TestDelete_NoEncontrada falla con ErrNotFound.
func TestDelete_NoEncontrada(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Delete(context.Background(), 999, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
