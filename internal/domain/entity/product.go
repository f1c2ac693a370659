package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El SKU es único global e
// inmutable una vez asignado. El stock se maneja por bodega en Inventory;
// LowStockThreshold es el override por producto para las alertas de stock bajo
// (nil = se usa el de la categoría o el global).
type Product struct {
	ID                string
	CompanyID         string
	CategoryID        string // vacío si no tiene categoría
	SKU               string
	Name              string
	Description       string
	Price             decimal.Decimal // precio de venta
	LowStockThreshold *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
