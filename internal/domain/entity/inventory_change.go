package entity

import "time"

// Tipos de cambio de inventario.
const (
	ChangeTypeIN  = "IN"  // entrada
	ChangeTypeOUT = "OUT" // salida
)

// InventoryChange es una entrada del libro de cambios de inventario
// (append-only). Inmutable una vez escrita: es la pista de auditoría de la que
// se derivan la actividad reciente y la velocidad de venta. Las correcciones
// de cantidad son nuevas entradas, nunca mutaciones del libro.
// Invariante asumida: la suma con signo de los cambios de una fila de
// Inventory es igual a su Quantity actual.
type InventoryChange struct {
	ID          string
	InventoryID string
	Type        string // IN | OUT
	Quantity    int64  // magnitud, siempre positiva
	Date        time.Time
	Reason      string
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
