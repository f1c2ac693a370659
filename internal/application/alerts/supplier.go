package alerts

import (
	"context"
	"fmt"

	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

var _ SupplierResolver = (*PrimarySupplierResolver)(nil)

// PrimarySupplierResolver deriva el proveedor primario de un producto: el
// vínculo producto↔proveedor de menor precio de suministro, con desempate por
// menor supplier id para que el resultado sea determinista. No es un flag
// almacenado.
type PrimarySupplierResolver struct {
	supplierRepo repository.SupplierRepository
}

// NewPrimarySupplierResolver construye el resolver.
func NewPrimarySupplierResolver(supplierRepo repository.SupplierRepository) *PrimarySupplierResolver {
	return &PrimarySupplierResolver{supplierRepo: supplierRepo}
}

// PrimarySupplier devuelve la foto del proveedor primario, o nil (sin error)
// si el producto no tiene proveedores vinculados.
func (r *PrimarySupplierResolver) PrimarySupplier(ctx context.Context, productID string) (*SupplierInfo, error) {
	edges, err := r.supplierRepo.ListEdgesByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("proveedores del producto %s: %w", productID, err)
	}
	if len(edges) == 0 {
		return nil, nil
	}
	best := edges[0]
	for _, e := range edges[1:] {
		switch {
		case e.SupplyPrice.LessThan(best.SupplyPrice):
			best = e
		case e.SupplyPrice.Equal(best.SupplyPrice) && e.SupplierID < best.SupplierID:
			best = e
		}
	}
	return &SupplierInfo{
		ID:           best.SupplierID,
		Name:         best.Name,
		ContactEmail: best.ContactEmail,
	}, nil
}
