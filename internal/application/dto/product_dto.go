package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con su stock inicial.
// Price viaja como string para poder distinguir "ausente" de "malformado" y
// devolver errores de validación que nombren el campo.
type CreateProductRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	SKU               string `json:"sku" validate:"required,min=1,max=100"`
	Description       string `json:"description"`
	Price             string `json:"price" validate:"required"`
	CategoryID        string `json:"category_id" validate:"omitempty,uuid"`
	LowStockThreshold *int64 `json:"low_stock_threshold" validate:"omitempty,min=0"`
	WarehouseID       string `json:"warehouse_id" validate:"required,uuid"`
	InitialQuantity   *int64 `json:"initial_quantity" validate:"omitempty,min=0"`
}

// CreateProductResponse salida del alta de producto.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// UpdateProductRequest entrada para actualizar un producto. El SKU es
// inmutable y el stock solo cambia vía movimientos de inventario, por eso
// ninguno de los dos aparece aquí.
type UpdateProductRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description"`
	Price             *string `json:"price"`
	CategoryID        *string `json:"category_id" validate:"omitempty,uuid"`
	LowStockThreshold *int64  `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	CategoryID        string          `json:"category_id,omitempty"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold *int64          `json:"low_stock_threshold,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
