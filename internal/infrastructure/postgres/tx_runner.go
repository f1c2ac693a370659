package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Abasto-api/internal/application/catalog"
	"github.com/jhoicas/Abasto-api/internal/application/inventory"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner; CatalogTxRunner implements catalog.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ catalog.TxRunner = (*CatalogTxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invRepo := NewInventoryRepository(tx)
	changeRepo := NewInventoryChangeRepository(tx)

	if err := fn(invRepo, changeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// CatalogTxRunner ejecuta el alta de producto (producto + inventario + cambio
// inicial) dentro de una transacción.
type CatalogTxRunner struct {
	pool *pgxpool.Pool
}

// NewCatalogTxRunner construye el runner con el pool.
func NewCatalogTxRunner(pool *pgxpool.Pool) *CatalogTxRunner {
	return &CatalogTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *CatalogTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	invRepo := NewInventoryRepository(tx)
	changeRepo := NewInventoryChangeRepository(tx)

	if err := fn(productRepo, invRepo, changeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
