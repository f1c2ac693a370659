package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Abasto-api/internal/domain/entity"
)

// InventoryChangeRepository define el puerto de persistencia para el libro de
// cambios de inventario. El libro es append-only: solo Create escribe, el
// resto son proyecciones de lectura.
type InventoryChangeRepository interface {
	Create(change *entity.InventoryChange) error
	ListByInventory(inventoryID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryChange, error)

	// HasChangeSince informa si existe algún cambio (IN u OUT) de cualquier
	// fila de inventario del producto con fecha estrictamente posterior a since.
	HasChangeSince(ctx context.Context, productID string, since time.Time) (bool, error)

	// OutboundTotalSince suma las magnitudes de los cambios OUT del producto
	// (todas sus bodegas) con fecha estrictamente posterior a since.
	OutboundTotalSince(ctx context.Context, productID string, since time.Time) (int64, error)
}
