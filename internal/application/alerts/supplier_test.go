package alerts

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

func TestPrimarySupplier_MenorPrecioGana(t *testing.T) {
	repo := &fakeSupplierRepo{edgesByProduct: map[string][]repository.SupplierEdge{
		"p-1": {
			{SupplierID: "s-caro", Name: "Caro SAS", SupplyPrice: decimal.NewFromInt(900)},
			{SupplierID: "s-barato", Name: "Barato Ltda", ContactEmail: "ventas@barato.co", SupplyPrice: decimal.NewFromInt(450)},
			{SupplierID: "s-medio", Name: "Medio SA", SupplyPrice: decimal.NewFromInt(600)},
		},
	}}
	r := NewPrimarySupplierResolver(repo)

	got, err := r.PrimarySupplier(context.Background(), "p-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s-barato", got.ID)
	assert.Equal(t, "Barato Ltda", got.Name)
	assert.Equal(t, "ventas@barato.co", got.ContactEmail)
}

func TestPrimarySupplier_EmpateDesempataPorMenorID(t *testing.T) {
	precio := decimal.NewFromFloat(99.90)
	repo := &fakeSupplierRepo{edgesByProduct: map[string][]repository.SupplierEdge{
		"p-1": {
			{SupplierID: "s-zz", Name: "Zeta", SupplyPrice: precio},
			{SupplierID: "s-aa", Name: "Alfa", SupplyPrice: precio},
			{SupplierID: "s-mm", Name: "Eme", SupplyPrice: precio},
		},
	}}
	r := NewPrimarySupplierResolver(repo)

	got, err := r.PrimarySupplier(context.Background(), "p-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s-aa", got.ID, "a igual precio gana el supplier id menor (determinismo)")
}

func TestPrimarySupplier_SinVinculos_NilSinError(t *testing.T) {
	r := NewPrimarySupplierResolver(&fakeSupplierRepo{edgesByProduct: map[string][]repository.SupplierEdge{}})

	got, err := r.PrimarySupplier(context.Background(), "p-huerfano")
	require.NoError(t, err, "producto sin proveedores no es un error")
	assert.Nil(t, got)
}
