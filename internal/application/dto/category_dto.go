package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	Code              string `json:"code" validate:"required,min=1,max=50"`
	LowStockThreshold *int64 `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=200"`
	LowStockThreshold *int64  `json:"low_stock_threshold" validate:"omitempty,min=0"`
	Status            *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	LowStockThreshold *int64    `json:"low_stock_threshold,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
