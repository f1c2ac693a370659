package repository

import (
	"context"

	"github.com/jhoicas/Abasto-api/internal/domain/entity"
)

// WarehouseStock es el resultado crudo de la foto de inventario de un producto
// en una bodega (join inventory ⋈ warehouses).
type WarehouseStock struct {
	WarehouseID   string
	WarehouseName string
	Quantity      int64
}

// InventoryRepository define el puerto para las filas de inventario
// (una por par producto+bodega). Usado dentro de transacciones para
// garantizar consistencia con el libro de cambios.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	Get(productID, warehouseID string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.Inventory, error)
	UpdateQuantity(inventoryID string, quantity int64) error

	// SnapshotByProduct devuelve el stock por bodega de un producto, ordenado
	// por warehouse_id ascendente. Lista vacía (no error) si no hay filas.
	SnapshotByProduct(ctx context.Context, productID string) ([]WarehouseStock, error)
}
