package alerts

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// Puertos que consume el motor de alertas. Las implementaciones de este mismo
// paquete los cubren en producción; los tests inyectan dobles.

// ProductLister enumera los productos de una empresa en orden determinista
// (product id ascendente).
type ProductLister interface {
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Product, error)
}

// SnapshotProvider entrega la foto de stock por bodega de un producto,
// ordenada por warehouse id ascendente. Solo lectura.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, productID string) ([]repository.WarehouseStock, error)
}

// ActivityAnalyzer evalúa la actividad de venta reciente de un producto sobre
// el libro de cambios.
type ActivityAnalyzer interface {
	// HasRecentActivity informa si hubo algún cambio dentro de la ventana,
	// agregado entre todas las bodegas del producto.
	HasRecentActivity(ctx context.Context, productID string) (bool, error)
	// DailyVelocity es la tasa de salida en unidades/día dentro de la ventana.
	// Cero exacto si no hubo salidas.
	DailyVelocity(ctx context.Context, productID string) (decimal.Decimal, error)
}

// ThresholdResolver resuelve el umbral de stock bajo aplicable a un producto.
// Nunca falla por falta de configuración: degrada al valor global.
type ThresholdResolver interface {
	Threshold(ctx context.Context, productID string) (int64, error)
}

// SupplierResolver resuelve el proveedor primario (menor precio de suministro)
// de un producto. nil sin error cuando el producto no tiene proveedores.
type SupplierResolver interface {
	PrimarySupplier(ctx context.Context, productID string) (*SupplierInfo, error)
}
