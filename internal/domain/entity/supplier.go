package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplier es la relación muchos-a-muchos producto↔proveedor con su
// precio de suministro. El proveedor "primario" no se almacena: se deriva como
// el de menor precio (desempate por menor supplier_id).
type ProductSupplier struct {
	ProductID   string
	SupplierID  string
	SupplyPrice decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
