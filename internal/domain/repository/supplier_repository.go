package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
)

// SupplierEdge es el resultado crudo de un vínculo producto↔proveedor con los
// datos del proveedor ya unidos (join product_suppliers ⋈ suppliers).
type SupplierEdge struct {
	SupplierID   string
	Name         string
	ContactEmail string
	SupplyPrice  decimal.Decimal
}

// SupplierRepository define el puerto de persistencia para Supplier y sus
// vínculos con productos (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error

	// UpsertProductSupplier crea o actualiza el vínculo con su precio de suministro.
	UpsertProductSupplier(edge *entity.ProductSupplier) error
	// ListEdgesByProduct devuelve todos los vínculos del producto. Lista vacía
	// (no error) si el producto no tiene proveedores.
	ListEdgesByProduct(ctx context.Context, productID string) ([]SupplierEdge, error)
}
