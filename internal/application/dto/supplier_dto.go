package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LinkSupplierRequest body para vincular (o actualizar) un proveedor a un
// producto con su precio de suministro.
type LinkSupplierRequest struct {
	SupplierID  string          `json:"supplier_id" validate:"required,uuid"`
	SupplyPrice decimal.Decimal `json:"supply_price" validate:"required"`
}
