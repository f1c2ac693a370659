package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

var _ repository.InventoryChangeRepository = (*InventoryChangeRepo)(nil)

// InventoryChangeRepo implementación del libro de cambios sobre PostgreSQL
// (usable con pool o tx). El libro es append-only: aquí no hay UPDATE ni DELETE.
type InventoryChangeRepo struct {
	q Querier
}

// NewInventoryChangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryChangeRepository(q Querier) *InventoryChangeRepo {
	return &InventoryChangeRepo{q: q}
}

// Create anota un cambio en el libro.
func (r *InventoryChangeRepo) Create(change *entity.InventoryChange) error {
	query := `
		INSERT INTO inventory_changes (id, inventory_id, change_type, change_quantity, change_date, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		change.ID, change.InventoryID, change.Type, change.Quantity,
		change.Date, change.Reason, change.CreatedAt, change.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert inventory change: %w", err)
	}
	return nil
}

// ListByInventory lista los cambios de una fila de inventario, del más
// reciente al más antiguo, con filtro opcional de fechas.
func (r *InventoryChangeRepo) ListByInventory(inventoryID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryChange, error) {
	query := `
		SELECT id, inventory_id, change_type, change_quantity, change_date, reason, created_at, created_by
		FROM inventory_changes
		WHERE inventory_id = $1
		  AND ($2::timestamptz IS NULL OR change_date >= $2)
		  AND ($3::timestamptz IS NULL OR change_date <= $3)
		ORDER BY change_date DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, inventoryID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory changes: %w", err)
	}
	defer rows.Close()

	var result []*entity.InventoryChange
	for rows.Next() {
		var c entity.InventoryChange
		if err := rows.Scan(
			&c.ID, &c.InventoryID, &c.Type, &c.Quantity, &c.Date, &c.Reason, &c.CreatedAt, &c.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan inventory change: %w", err)
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

// HasChangeSince informa si el producto tuvo algún cambio (IN u OUT) en
// cualquiera de sus bodegas con fecha estrictamente posterior a since.
func (r *InventoryChangeRepo) HasChangeSince(ctx context.Context, productID string, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM inventory_changes c
			JOIN inventory i ON i.id = c.inventory_id
			WHERE i.product_id = $1 AND c.change_date > $2
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, productID, since).Scan(&exists); err != nil {
		return false, fmt.Errorf("has change since: %w", err)
	}
	return exists, nil
}

// OutboundTotalSince suma las magnitudes de los OUT del producto (todas sus
// bodegas) con fecha estrictamente posterior a since.
func (r *InventoryChangeRepo) OutboundTotalSince(ctx context.Context, productID string, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(c.change_quantity), 0)
		FROM inventory_changes c
		JOIN inventory i ON i.id = c.inventory_id
		WHERE i.product_id = $1 AND c.change_type = 'OUT' AND c.change_date > $2`
	var total int64
	if err := r.q.QueryRow(ctx, query, productID, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("outbound total since: %w", err)
	}
	return total, nil
}
