package dto

import "github.com/jhoicas/Abasto-api/internal/application/alerts"

// UnboundedStockout es el centinela de days_until_stockout cuando no hay
// ventas en la ventana y el quiebre no es proyectable. Los clientes deben
// tratar este valor como "sin proyección", no como una fecha lejana.
const UnboundedStockout int64 = 2147483647

// SupplierInfoDTO proveedor primario sugerido para reordenar.
type SupplierInfoDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo por (producto, bodega).
type LowStockAlertDTO struct {
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	WarehouseID       string           `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	CurrentStock      int64            `json:"current_stock"`
	Threshold         int64            `json:"threshold"`
	DaysUntilStockout int64            `json:"days_until_stockout"`
	Supplier          *SupplierInfoDTO `json:"supplier,omitempty"`
}

// LowStockAlertListResponse respuesta de GET /companies/:companyId/alerts/low-stock.
type LowStockAlertListResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}

// NewLowStockAlertList mapea las alertas del motor al contrato de la API.
// La proyección nil del motor sale al cable como UnboundedStockout.
func NewLowStockAlertList(in []alerts.Alert) LowStockAlertListResponse {
	out := make([]LowStockAlertDTO, 0, len(in))
	for _, a := range in {
		d := LowStockAlertDTO{
			ProductID:         a.ProductID,
			ProductName:       a.ProductName,
			SKU:               a.SKU,
			WarehouseID:       a.WarehouseID,
			WarehouseName:     a.WarehouseName,
			CurrentStock:      a.CurrentStock,
			Threshold:         a.Threshold,
			DaysUntilStockout: UnboundedStockout,
		}
		if a.DaysUntilStockout != nil {
			d.DaysUntilStockout = *a.DaysUntilStockout
		}
		if a.Supplier != nil {
			d.Supplier = &SupplierInfoDTO{
				ID:           a.Supplier.ID,
				Name:         a.Supplier.Name,
				ContactEmail: a.Supplier.ContactEmail,
			}
		}
		out = append(out, d)
	}
	return LowStockAlertListResponse{Alerts: out, TotalAlerts: len(out)}
}
