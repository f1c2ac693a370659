package catalog

import (
	"context"

	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta de producto, su fila de
// inventario y el cambio inicial sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error) error
}
