package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una fila de inventario (única por producto+bodega).
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.WarehouseID, inv.Quantity, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Get obtiene la fila de inventario de un producto en una bodega.
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(query, productID, warehouseID)
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(query, productID, warehouseID)
}

func (r *InventoryRepo) scanOne(query, productID, warehouseID string) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity fija la cantidad de una fila de inventario.
func (r *InventoryRepo) UpdateQuantity(inventoryID string, quantity int64) error {
	query := `UPDATE inventory SET quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, inventoryID, quantity)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// SnapshotByProduct devuelve el stock por bodega de un producto, ordenado por
// warehouse_id ascendente. Lista vacía (no error) si no hay filas.
func (r *InventoryRepo) SnapshotByProduct(ctx context.Context, productID string) ([]repository.WarehouseStock, error) {
	query := `
		SELECT i.warehouse_id, w.name, i.quantity
		FROM inventory i
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE i.product_id = $1
		ORDER BY i.warehouse_id ASC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("snapshot inventory: %w", err)
	}
	defer rows.Close()

	result := make([]repository.WarehouseStock, 0)
	for rows.Next() {
		var ws repository.WarehouseStock
		if err := rows.Scan(&ws.WarehouseID, &ws.WarehouseName, &ws.Quantity); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		result = append(result, ws)
	}
	return result, rows.Err()
}
