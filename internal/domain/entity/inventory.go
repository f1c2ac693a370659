package entity

import "time"

// Inventory representa la existencia actual de un producto en una bodega.
// Una fila por par (producto, bodega); la unicidad la garantiza la BD.
// Quantity puede quedar negativa por ajustes defectuosos: el motor de alertas
// la tolera y la reporta tal cual.
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
