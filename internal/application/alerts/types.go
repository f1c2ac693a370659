package alerts

// SupplierInfo es la foto del proveedor primario adjunta a una alerta.
type SupplierInfo struct {
	ID           string
	Name         string
	ContactEmail string
}

// Alert es el resultado del motor para un par (producto, bodega) con stock en
// o por debajo del umbral. No se persiste.
//
// DaysUntilStockout nil significa quiebre no previsible (velocidad cero);
// el centinela numérico solo existe en la frontera HTTP, nunca aquí.
type Alert struct {
	ProductID         string
	ProductName       string
	SKU               string
	WarehouseID       string
	WarehouseName     string
	CurrentStock      int64
	Threshold         int64
	DaysUntilStockout *int64
	Supplier          *SupplierInfo
}
