package entity

import "time"

// Category representa una categoría de productos. Puede definir un umbral de
// stock bajo por defecto para sus productos (segundo eslabón de la cadena de
// resolución: producto → categoría → global).
type Category struct {
	ID                string
	CompanyID         string
	Name              string
	Code              string // código único por empresa
	LowStockThreshold *int64 // nil = sin umbral por categoría
	Status            string // active, inactive
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
