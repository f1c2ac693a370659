package alerts

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func listerDe(products ...*entity.Product) stubLister {
	return func(context.Context, string) ([]*entity.Product, error) {
		return products, nil
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios del motor
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeAlerts_ProductoInactivoSeOmiteAunqueEsteEnCero(t *testing.T) {
	p := producto("p-1", "Tornillos", "TOR-001")
	engine := NewLowStockAlertEngine(
		listerDe(p),
		stubActivity{active: map[string]bool{}}, // sin actividad en la ventana
		stubSnapshots{byProduct: map[string][]repository.WarehouseStock{
			"p-1": {{WarehouseID: "w-1", WarehouseName: "Norte", Quantity: 0}},
		}},
		stubThresholds{fallback: 20},
		stubSuppliers{},
	)

	alerts, err := engine.ComputeAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	assert.Empty(t, alerts, "producto sin movimientos recientes no genera alertas, ni con stock 0")
}

func TestComputeAlerts_ProyeccionConVelocidad(t *testing.T) {
	// quantity=5, threshold=20, velocidad=0.5/día → ceil(5/0.5) = 10 días
	p := producto("p-1", "Tornillos", "TOR-001")
	engine := NewLowStockAlertEngine(
		listerDe(p),
		stubActivity{
			active:   map[string]bool{"p-1": true},
			velocity: map[string]decimal.Decimal{"p-1": decimal.NewFromFloat(0.5)},
		},
		stubSnapshots{byProduct: map[string][]repository.WarehouseStock{
			"p-1": {{WarehouseID: "w-1", WarehouseName: "Norte", Quantity: 5}},
		}},
		stubThresholds{byProduct: map[string]int64{"p-1": 20}},
		stubSuppliers{},
	)

	alerts, err := engine.ComputeAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, "p-1", a.ProductID)
	assert.Equal(t, "TOR-001", a.SKU)
	assert.Equal(t, "w-1", a.WarehouseID)
	assert.Equal(t, "Norte", a.WarehouseName)
	assert.Equal(t, int64(5), a.CurrentStock)
	assert.Equal(t, int64(20), a.Threshold)
	require.NotNil(t, a.DaysUntilStockout)
	assert.Equal(t, int64(10), *a.DaysUntilStockout)
}

func TestComputeAlerts_VelocidadCero_QuiebreNoAcotado(t *testing.T) {
	// Activo por un IN dentro de la ventana pero sin salidas: velocidad 0 →
	// alerta con proyección nil, nunca un número grande disfrazado.
	p := producto("p-1", "Tuercas", "TUE-001")
	engine := NewLowStockAlertEngine(
		listerDe(p),
		stubActivity{
			active:   map[string]bool{"p-1": true},
			velocity: map[string]decimal.Decimal{"p-1": decimal.Zero},
		},
		stubSnapshots{byProduct: map[string][]repository.WarehouseStock{
			"p-1": {{WarehouseID: "w-1", WarehouseName: "Norte", Quantity: 3}},
		}},
		stubThresholds{byProduct: map[string]int64{"p-1": 10}},
		stubSuppliers{},
	)

	alerts, err := engine.ComputeAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Nil(t, alerts[0].DaysUntilStockout, "velocidad cero → proyección no acotada")
}

func TestComputeAlerts_SoloLaBodegaBajoUmbral(t *testing.T) {
	p := producto("p-1", "Arandelas", "ARA-001")
	engine := NewLowStockAlertEngine(
		listerDe(p),
		stubActivity{
			active:   map[string]bool{"p-1": true},
			velocity: map[string]decimal.Decimal{"p-1": decimal.NewFromInt(1)},
		},
		stubSnapshots{byProduct: map[string][]repository.WarehouseStock{
			"p-1": {
				{WarehouseID: "w-1", WarehouseName: "Norte", Quantity: 4},   // ≤ 10 → alerta
				{WarehouseID: "w-2", WarehouseName: "Sur", Quantity: 80},    // > 10 → no
			},
		}},
		stubThresholds{byProduct: map[string]int64{"p-1": 10}},
		stubSuppliers{},
	)

	alerts, err := engine.ComputeAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1, "exactamente una alerta: solo la bodega bajo umbral")
	assert.Equal(t, "w-1", alerts[0].WarehouseID)
}

func TestComputeAlerts_UmbralEsInclusivo(t *testing.T) {
	// quantity == threshold también califica (stock "en o por debajo").
	p := producto("p-1", "Pernos", "PER-001")
	engine := NewLowStockAlertEngine(
		listerDe(p),
		stubActivity{
			active:   map[string]bool{"p-1": true},
			velocity: map[string]decimal.Decimal{"p-1": decimal.NewFromInt(2)},
		},
		stubSnapshots{byProduct: map[string][]repository.WarehouseStock{
			"p-1": {{WarehouseID: "w-1", WarehouseName: "Norte", Quantity: 10}},
		}},
		stubThresholds{byProduct: map[string]int64{"p-1": 10}},
		stubSuppliers{},
	)

	alerts, err := engine.ComputeAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestComputeAlerts_SinProveedor_CampoNil(t *testing.T) {
	p := producto("p-1", "Clavos", "CLA-001")
	engine := NewLowStockAlertEngine(
		listerDe(p),
		stubActivity{
			active:   map[string]bool{"p-1": true},
			velocity: map[string]decimal.Decimal{"p-1": decimal.NewFromInt(1)},
		},
		stubSnapshots{byProduct: map[string][]repository.WarehouseStock{
			"p-1": {{WarehouseID: "w-1", WarehouseName: "Norte", Quantity: 2}},
		}},
		stubThresholds{byProduct: map[string]int64{"p-1": 10}},
		stubSuppliers{byProduct: map[string]*SupplierInfo{}}, // sin vínculos
	)

	alerts, err := engine.ComputeAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Nil(t, alerts[0].Supplier, "sin proveedores el campo queda nil, no es un error")
}

func TestComputeAlerts_AdjuntaProveedorPrimario(t *testing.T) {
	p := producto("p-1", "Clavos", "CLA-001")
	engine := NewLowStockAlertEngine(
		listerDe(p),
		stubActivity{
			active:   map[string]bool{"p-1": true},
			velocity: map[string]decimal.Decimal{"p-1": decimal.NewFromInt(1)},
		},
		stubSnapshots{byProduct: map[string][]repository.WarehouseStock{
			"p-1": {{WarehouseID: "w-1", WarehouseName: "Norte", Quantity: 2}},
		}},
		stubThresholds{byProduct: map[string]int64{"p-1": 10}},
		stubSuppliers{byProduct: map[string]*SupplierInfo{
			"p-1": {ID: "s-1", Name: "Ferrepartes", ContactEmail: "compras@ferrepartes.co"},
		}},
	)

	alerts, err := engine.ComputeAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.NotNil(t, alerts[0].Supplier)
	assert.Equal(t, "s-1", alerts[0].Supplier.ID)
}

func TestComputeAlerts_EmpresaSinProductos_ListaVacia(t *testing.T) {
	engine := NewLowStockAlertEngine(
		listerDe(), stubActivity{}, stubSnapshots{}, stubThresholds{}, stubSuppliers{},
	)

	alerts, err := engine.ComputeAlerts(context.Background(), "co-vacia")
	require.NoError(t, err, "empresa sin productos es un resultado válido, no un error")
	assert.NotNil(t, alerts)
	assert.Len(t, alerts, 0)
}

func TestComputeAlerts_FalloDeDatosAbortaTodo(t *testing.T) {
	boom := errors.New("conexión perdida")
	products := []*entity.Product{
		producto("p-1", "Uno", "SKU-1"),
		producto("p-2", "Dos", "SKU-2"),
	}
	engine := NewLowStockAlertEngine(
		listerDe(products...),
		stubActivity{
			active:   map[string]bool{"p-1": true, "p-2": true},
			velocity: map[string]decimal.Decimal{},
		},
		stubSnapshots{err: boom}, // fallo a mitad del cálculo
		stubThresholds{fallback: 10},
		stubSuppliers{},
	)

	alerts, err := engine.ComputeAlerts(context.Background(), "co-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, alerts, "no hay modo de resultados parciales")
}

func TestComputeAlerts_OrdenDeterministaProductoLuegoBodega(t *testing.T) {
	// Varios productos y bodegas: el orden de salida debe ser producto
	// ascendente y, dentro de cada producto, bodega ascendente, aunque la
	// evaluación interna sea concurrente.
	products := []*entity.Product{
		producto("p-1", "Uno", "SKU-1"),
		producto("p-2", "Dos", "SKU-2"),
		producto("p-3", "Tres", "SKU-3"),
	}
	activity := stubActivity{
		active: map[string]bool{"p-1": true, "p-2": true, "p-3": true},
		velocity: map[string]decimal.Decimal{
			"p-1": decimal.NewFromInt(1),
			"p-2": decimal.NewFromInt(1),
			"p-3": decimal.NewFromInt(1),
		},
	}
	snapshots := stubSnapshots{byProduct: map[string][]repository.WarehouseStock{
		"p-1": {
			{WarehouseID: "w-1", WarehouseName: "Norte", Quantity: 1},
			{WarehouseID: "w-2", WarehouseName: "Sur", Quantity: 2},
		},
		"p-2": {{WarehouseID: "w-1", WarehouseName: "Norte", Quantity: 3}},
		"p-3": {{WarehouseID: "w-3", WarehouseName: "Centro", Quantity: 4}},
	}}
	engine := NewLowStockAlertEngine(
		listerDe(products...), activity, snapshots,
		stubThresholds{fallback: 10}, stubSuppliers{},
	)

	// Repetir varias veces: el orden no puede depender del scheduling.
	for i := 0; i < 20; i++ {
		alerts, err := engine.ComputeAlerts(context.Background(), "co-1")
		require.NoError(t, err)
		require.Len(t, alerts, 4)

		type par struct{ p, w string }
		got := make([]par, 0, len(alerts))
		for _, a := range alerts {
			got = append(got, par{a.ProductID, a.WarehouseID})
		}
		assert.Equal(t, []par{
			{"p-1", "w-1"}, {"p-1", "w-2"}, {"p-2", "w-1"}, {"p-3", "w-3"},
		}, got)
	}
}
