package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/almacen-api/internal/application/dto"
)

// TestIntField_Coercion acepta números JSON y strings numéricos, como el
// int() del contrato original.
func TestIntField_Coercion(t *testing.T) {
	var in dto.CreateProductRequest

	require.NoError(t, json.Unmarshal([]byte(`{"description":"Tornillos","stock":10,"stock_minimum":"5"}`), &in))
	require.NotNil(t, in.Stock)
	require.NotNil(t, in.StockMinimum)
	assert.Equal(t, 10, in.Stock.Int())
	assert.Equal(t, 5, in.StockMinimum.Int())
}

// TestIntField_NoConvertible un valor no numérico debe fallar el unmarshal.
func TestIntField_NoConvertible(t *testing.T) {
	var in dto.CreateProductRequest
	err := json.Unmarshal([]byte(`{"description":"Tornillos","stock":"muchos","stock_minimum":5}`), &in)
	assert.Error(t, err)
}

// TestCreateProductRequest_CamposAusentes los punteros distinguen ausente de
// cero.
func TestCreateProductRequest_CamposAusentes(t *testing.T) {
	var in dto.CreateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":"Tornillos"}`), &in))
	assert.Nil(t, in.Stock)
	assert.Nil(t, in.StockMinimum)

	var conCero dto.CreateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":"Tornillos","stock":0,"stock_minimum":0}`), &conCero))
	assert.NotNil(t, conCero.Stock)
	assert.Equal(t, 0, conCero.Stock.Int())
}
