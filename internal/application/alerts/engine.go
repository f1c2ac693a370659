package alerts

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	domainalerts "github.com/jhoicas/Abasto-api/internal/domain/alerts"
)

// maxConcurrentProducts acota los productos evaluados en paralelo. El cálculo
// es de solo lectura y request-scoped; la concurrencia no debe filtrarse al
// orden de salida, por eso los resultados se arman indexados por producto.
const maxConcurrentProducts = 8

// LowStockAlertEngine orquesta actividad, foto de inventario, umbral y
// proveedor para producir la lista de alertas de stock bajo de una empresa.
type LowStockAlertEngine struct {
	products   ProductLister
	activity   ActivityAnalyzer
	snapshots  SnapshotProvider
	thresholds ThresholdResolver
	suppliers  SupplierResolver
}

// NewLowStockAlertEngine construye el motor.
func NewLowStockAlertEngine(
	products ProductLister,
	activity ActivityAnalyzer,
	snapshots SnapshotProvider,
	thresholds ThresholdResolver,
	suppliers SupplierResolver,
) *LowStockAlertEngine {
	return &LowStockAlertEngine{
		products:   products,
		activity:   activity,
		snapshots:  snapshots,
		thresholds: thresholds,
		suppliers:  suppliers,
	}
}

// ComputeAlerts calcula las alertas de la empresa: una por par
// (producto, bodega) con stock ≤ umbral, en orden producto→bodega.
//
// Empresa sin productos (o sin pares calificados) → lista vacía, no error.
// Cualquier fallo de acceso a datos aborta el cálculo completo: no hay modo de
// resultados parciales.
func (e *LowStockAlertEngine) ComputeAlerts(ctx context.Context, companyID string) ([]Alert, error) {
	products, err := e.products.ListAllByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar productos de la empresa %s: %w", companyID, err)
	}

	// Evaluación por producto en paralelo acotado. results va indexado por la
	// posición del producto para preservar el orden determinista al aplanar.
	results := make([][]Alert, len(products))
	sem := make(chan struct{}, maxConcurrentProducts)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, p := range products {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p *entity.Product) {
			defer wg.Done()
			defer func() { <-sem }()

			alerts, err := e.evaluateProduct(ctx, p)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = alerts
		}(i, p)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	out := make([]Alert, 0)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// evaluateProduct aplica los pasos 2–5 del cálculo para un producto: gate de
// actividad, foto por bodega contra el umbral, proyección de quiebre y
// proveedor primario. Devuelve las alertas del producto en orden de bodega.
func (e *LowStockAlertEngine) evaluateProduct(ctx context.Context, p *entity.Product) ([]Alert, error) {
	active, err := e.activity.HasRecentActivity(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if !active {
		// Producto sin movimiento en la ventana: se omite por completo,
		// aunque alguna bodega esté en cero.
		return nil, nil
	}

	stocks, err := e.snapshots.Snapshot(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if len(stocks) == 0 {
		return nil, nil
	}

	threshold, err := e.thresholds.Threshold(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	var alerts []Alert
	var velocity decimal.Decimal
	velocityLoaded := false
	for _, ws := range stocks {
		if ws.Quantity > threshold {
			continue
		}
		// La velocidad se consulta una sola vez por producto y solo cuando
		// hay al menos una bodega calificada.
		if !velocityLoaded {
			velocity, err = e.activity.DailyVelocity(ctx, p.ID)
			if err != nil {
				return nil, err
			}
			velocityLoaded = true
		}
		alerts = append(alerts, Alert{
			ProductID:         p.ID,
			ProductName:       p.Name,
			SKU:               p.SKU,
			WarehouseID:       ws.WarehouseID,
			WarehouseName:     ws.WarehouseName,
			CurrentStock:      ws.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: domainalerts.DaysUntilStockout(ws.Quantity, velocity),
		})
	}
	if len(alerts) == 0 {
		return nil, nil
	}

	supplier, err := e.suppliers.PrimarySupplier(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if supplier != nil {
		for i := range alerts {
			alerts[i].Supplier = supplier
		}
	}
	return alerts, nil
}
