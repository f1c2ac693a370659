package dto

import "time"

// RegisterChangeRequest body para POST /api/inventory/changes.
type RegisterChangeRequest struct {
	ProductID   string `json:"product_id" validate:"required,uuid"`
	WarehouseID string `json:"warehouse_id" validate:"required,uuid"`
	Type        string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity    int64  `json:"quantity" validate:"required,min=1"`
	Reason      string `json:"reason"`
}

// InventoryResponse existencia de un producto en una bodega.
type InventoryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryChangeResponse entrada del libro de cambios.
type InventoryChangeResponse struct {
	ID          string    `json:"id"`
	InventoryID string    `json:"inventory_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
	Reason      string    `json:"reason"`
	CreatedBy   string    `json:"created_by"`
}

// InventoryChangeListResponse lista paginada de cambios.
type InventoryChangeListResponse struct {
	Items []InventoryChangeResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}
