package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/usecase"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/infrastructure/memory"
)

func newProductUC() (*usecase.ProductUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewProductUseCase(store.NewProductRepository()), store
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *dto.IntField {
	f := dto.IntField(n)
	return &f
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// TestCreate_DerivaEstado crear y leer de inmediato devuelve los mismos
// valores, con el estado ya derivado (nunca ausente ni desactualizado).
func TestCreate_DerivaEstado(t *testing.T) {
	uc, _ := newProductUC()

	out, err := uc.Create(dto.CreateProductRequest{
		Description:  strPtr("Tornillos 3mm"),
		Stock:        intPtr(10),
		StockMinimum: intPtr(5),
		Supplier:     "Ferretería Central",
	})
	require.NoError(t, err)
	assert.Equal(t, "Producto creado exitosamente", out.Message)
	assert.Equal(t, int64(1), out.ID)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	p := list[0]
	assert.Equal(t, "Tornillos 3mm", p.Description)
	assert.Equal(t, 10, p.Stock)
	assert.Equal(t, 5, p.StockMinimum)
	assert.Equal(t, "Ferretería Central", p.Supplier)
	assert.Equal(t, "General", p.Category, "categoría por defecto")
	assert.Equal(t, entity.StatusInStock, p.Status)
}

// TestCreate_CamposObligatorios sin description, stock o stock_minimum la
// creación falla con ErrInvalidInput.
func TestCreate_CamposObligatorios(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{Stock: intPtr(1), StockMinimum: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "description ausente")

	_, err = uc.Create(dto.CreateProductRequest{Description: strPtr("x"), StockMinimum: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock ausente")

	_, err = uc.Create(dto.CreateProductRequest{Description: strPtr("x"), Stock: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock_minimum ausente")
}

// TestCreate_EstadoSegunStockInicial el estado inicial refleja el stock.
func TestCreate_EstadoSegunStockInicial(t *testing.T) {
	uc, _ := newProductUC()

	cases := []struct {
		stock, min int
		want       string
	}{
		{0, 5, entity.StatusOutOfStock},
		{3, 5, entity.StatusLowStock},
		{10, 5, entity.StatusInStock},
	}
	for _, tc := range cases {
		out, err := uc.Create(dto.CreateProductRequest{
			Description:  strPtr("p"),
			Stock:        intPtr(tc.stock),
			StockMinimum: intPtr(tc.min),
		})
		require.NoError(t, err)
		list, err := uc.List()
		require.NoError(t, err)
		assert.Equal(t, tc.want, list[len(list)-1].Status, "producto %d", out.ID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

// TestUpdate_ParcialRecalculaEstado solo se aplican los campos presentes; un
// cambio de stock o stock_minimum recalcula el estado.
func TestUpdate_ParcialRecalculaEstado(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(dto.CreateProductRequest{
		Description:  strPtr("Tuercas"),
		Stock:        intPtr(10),
		StockMinimum: intPtr(5),
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Stock: intPtr(2)})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 2, out.Stock)
	assert.Equal(t, entity.StatusLowStock, out.Status)
	assert.Equal(t, "Tuercas", out.Description, "campos ausentes no se tocan")

	out, err = uc.Update(created.ID, dto.UpdateProductRequest{StockMinimum: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInStock, out.Status, "subir el umbral recalcula")
}

// TestUpdate_StatusExplicitoPrevalece un status enviado en el PATCH se aplica
// al final y pisa el derivado (orden de campos del contrato original).
func TestUpdate_StatusExplicitoPrevalece(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(dto.CreateProductRequest{
		Description:  strPtr("Clavos"),
		Stock:        intPtr(10),
		StockMinimum: intPtr(5),
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Stock:  intPtr(0),
		Status: strPtr(entity.StatusInStock),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInStock, out.Status)
}

// TestUpdate_NoEncontrado devuelve (nil, nil) para un ID desconocido.
func TestUpdate_NoEncontrado(t *testing.T) {
	uc, _ := newProductUC()
	out, err := uc.Update(999, dto.UpdateProductRequest{Description: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// TestDelete_Existente y no existente.
func TestDelete_Existente(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(dto.CreateProductRequest{
		Description:  strPtr("Arandelas"),
		Stock:        intPtr(1),
		StockMinimum: intPtr(1),
	})
	require.NoError(t, err)

	deleted, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "segunda eliminación no encuentra el producto")

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
