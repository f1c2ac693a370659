package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactEmail, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, name, contact_email, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, contact_email = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactEmail, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, contact_email, created_at, updated_at
		FROM suppliers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var result []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		result = append(result, &s)
	}
	return result, rows.Err()
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// UpsertProductSupplier crea o re-precia el vínculo producto↔proveedor.
func (r *SupplierRepo) UpsertProductSupplier(edge *entity.ProductSupplier) error {
	query := `
		INSERT INTO product_suppliers (product_id, supplier_id, supply_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET supply_price = EXCLUDED.supply_price, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		edge.ProductID, edge.SupplierID, edge.SupplyPrice, edge.CreatedAt, edge.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert product supplier: %w", err)
	}
	return nil
}

// ListEdgesByProduct devuelve los vínculos del producto con los datos del
// proveedor ya unidos. Lista vacía (no error) si no tiene proveedores.
func (r *SupplierRepo) ListEdgesByProduct(ctx context.Context, productID string) ([]repository.SupplierEdge, error) {
	query := `
		SELECT ps.supplier_id, s.name, s.contact_email, ps.supply_price
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = $1
		ORDER BY ps.supplier_id ASC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list supplier edges: %w", err)
	}
	defer rows.Close()

	result := make([]repository.SupplierEdge, 0)
	for rows.Next() {
		var e repository.SupplierEdge
		if err := rows.Scan(&e.SupplierID, &e.Name, &e.ContactEmail, &e.SupplyPrice); err != nil {
			return nil, fmt.Errorf("scan supplier edge: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
