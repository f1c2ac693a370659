package inventory

import (
	"context"

	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con
// repositorios atados a esa tx. El lock de fila (SELECT FOR UPDATE) solo tiene
// sentido dentro de la transacción que después escribe.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error) error
}
