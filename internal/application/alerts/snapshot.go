package alerts

import (
	"context"
	"fmt"

	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

var _ SnapshotProvider = (*InventorySnapshotProvider)(nil)

// InventorySnapshotProvider lee el stock actual por bodega de un producto.
// Solo lectura; nunca muta estado.
type InventorySnapshotProvider struct {
	invRepo repository.InventoryRepository
}

// NewInventorySnapshotProvider construye el proveedor de fotos de inventario.
func NewInventorySnapshotProvider(invRepo repository.InventoryRepository) *InventorySnapshotProvider {
	return &InventorySnapshotProvider{invRepo: invRepo}
}

// Snapshot devuelve una entrada por bodega con stock del producto, ordenadas
// por warehouse id ascendente. Producto sin filas de inventario → lista vacía.
func (p *InventorySnapshotProvider) Snapshot(ctx context.Context, productID string) ([]repository.WarehouseStock, error) {
	stocks, err := p.invRepo.SnapshotByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("foto de inventario del producto %s: %w", productID, err)
	}
	return stocks, nil
}
