package alerts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abasto-api/internal/domain/entity"
)

const umbralGlobal = int64(10)

func TestThreshold_OverridePorProducto(t *testing.T) {
	products := &fakeProductRepo{byID: map[string]*entity.Product{
		"p-1": {ID: "p-1", CategoryID: "cat-1", LowStockThreshold: int64ptr(25)},
	}}
	categories := &fakeCategoryRepo{byID: map[string]*entity.Category{
		"cat-1": {ID: "cat-1", LowStockThreshold: int64ptr(50)},
	}}
	r := NewChainThresholdResolver(products, categories, umbralGlobal)

	got, err := r.Threshold(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(25), got, "el override del producto gana sobre la categoría")
}

func TestThreshold_DefaultDeCategoria(t *testing.T) {
	products := &fakeProductRepo{byID: map[string]*entity.Product{
		"p-1": {ID: "p-1", CategoryID: "cat-1"},
	}}
	categories := &fakeCategoryRepo{byID: map[string]*entity.Category{
		"cat-1": {ID: "cat-1", LowStockThreshold: int64ptr(50)},
	}}
	r := NewChainThresholdResolver(products, categories, umbralGlobal)

	got, err := r.Threshold(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), got)
}

func TestThreshold_FallbackGlobal(t *testing.T) {
	casos := map[string]*entity.Product{
		// Sin categoría y sin override
		"p-sin-categoria": {ID: "p-sin-categoria"},
		// Con categoría que no define umbral
		"p-cat-sin-umbral": {ID: "p-cat-sin-umbral", CategoryID: "cat-vacia"},
		// Con categoría inexistente (configuración rota degrada, no falla)
		"p-cat-fantasma": {ID: "p-cat-fantasma", CategoryID: "cat-borrada"},
	}
	products := &fakeProductRepo{byID: casos}
	categories := &fakeCategoryRepo{byID: map[string]*entity.Category{
		"cat-vacia": {ID: "cat-vacia"},
	}}
	r := NewChainThresholdResolver(products, categories, umbralGlobal)

	for id := range casos {
		got, err := r.Threshold(context.Background(), id)
		require.NoError(t, err, "producto %s no debe fallar", id)
		assert.Equal(t, umbralGlobal, got, "producto %s debe degradar al umbral global", id)
	}
}

func TestThreshold_ErrorDeAccesoADatosSiPropaga(t *testing.T) {
	boom := errors.New("db caída")
	r := NewChainThresholdResolver(&fakeProductRepo{err: boom}, &fakeCategoryRepo{}, umbralGlobal)

	_, err := r.Threshold(context.Background(), "p-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom, "los fallos de infraestructura sí son errores")
}
