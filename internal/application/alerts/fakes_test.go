package alerts

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

// fakeChangeRepo responde actividad y salidas por producto desde mapas.
type fakeChangeRepo struct {
	activeByProduct   map[string]bool
	outboundByProduct map[string]int64
	err               error

	// lastSince registra el límite temporal recibido, para verificar la ventana.
	lastSince time.Time
}

func (f *fakeChangeRepo) Create(*entity.InventoryChange) error { return nil }

func (f *fakeChangeRepo) ListByInventory(string, *time.Time, *time.Time, int, int) ([]*entity.InventoryChange, error) {
	return nil, nil
}

func (f *fakeChangeRepo) HasChangeSince(_ context.Context, productID string, since time.Time) (bool, error) {
	f.lastSince = since
	if f.err != nil {
		return false, f.err
	}
	return f.activeByProduct[productID], nil
}

func (f *fakeChangeRepo) OutboundTotalSince(_ context.Context, productID string, since time.Time) (int64, error) {
	f.lastSince = since
	if f.err != nil {
		return 0, f.err
	}
	return f.outboundByProduct[productID], nil
}

// fakeProductRepo sirve GetByID desde un mapa (para el resolver de umbral).
type fakeProductRepo struct {
	byID map[string]*entity.Product
	err  error
}

func (f *fakeProductRepo) Create(*entity.Product) error          { return nil }
func (f *fakeProductRepo) Update(*entity.Product) error          { return nil }
func (f *fakeProductRepo) Delete(string) error                   { return nil }
func (f *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) ListAllByCompany(context.Context, string) ([]*entity.Product, error) {
	return nil, nil
}

// fakeCategoryRepo sirve GetByID desde un mapa.
type fakeCategoryRepo struct {
	byID map[string]*entity.Category
	err  error
}

func (f *fakeCategoryRepo) Create(*entity.Category) error { return nil }

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeCategoryRepo) ListByCompany(string, int, int) ([]*entity.Category, error) {
	return nil, nil
}

// fakeSupplierRepo sirve los vínculos producto↔proveedor desde un mapa.
type fakeSupplierRepo struct {
	edgesByProduct map[string][]repository.SupplierEdge
	err            error
}

func (f *fakeSupplierRepo) Create(*entity.Supplier) error                    { return nil }
func (f *fakeSupplierRepo) GetByID(string) (*entity.Supplier, error)         { return nil, nil }
func (f *fakeSupplierRepo) Update(*entity.Supplier) error                    { return nil }
func (f *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error)        { return nil, nil }
func (f *fakeSupplierRepo) Delete(string) error                              { return nil }
func (f *fakeSupplierRepo) UpsertProductSupplier(*entity.ProductSupplier) error { return nil }

func (f *fakeSupplierRepo) ListEdgesByProduct(_ context.Context, productID string) ([]repository.SupplierEdge, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.edgesByProduct[productID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de los puertos del motor (basados en funciones)
// ──────────────────────────────────────────────────────────────────────────────

type stubLister func(ctx context.Context, companyID string) ([]*entity.Product, error)

func (s stubLister) ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Product, error) {
	return s(ctx, companyID)
}

type stubActivity struct {
	active   map[string]bool
	velocity map[string]decimal.Decimal
	err      error
}

func (s stubActivity) HasRecentActivity(_ context.Context, productID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.active[productID], nil
}

func (s stubActivity) DailyVelocity(_ context.Context, productID string) (decimal.Decimal, error) {
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.velocity[productID], nil
}

type stubSnapshots struct {
	byProduct map[string][]repository.WarehouseStock
	err       error
}

func (s stubSnapshots) Snapshot(_ context.Context, productID string) ([]repository.WarehouseStock, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byProduct[productID], nil
}

type stubThresholds struct {
	byProduct map[string]int64
	fallback  int64
}

func (s stubThresholds) Threshold(_ context.Context, productID string) (int64, error) {
	if t, ok := s.byProduct[productID]; ok {
		return t, nil
	}
	return s.fallback, nil
}

type stubSuppliers struct {
	byProduct map[string]*SupplierInfo
	err       error
}

func (s stubSuppliers) PrimarySupplier(_ context.Context, productID string) (*SupplierInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byProduct[productID], nil
}

// producto arma un producto mínimo para los tests del motor.
func producto(id, name, sku string) *entity.Product {
	return &entity.Product{ID: id, CompanyID: "co-1", Name: name, SKU: sku}
}

func int64ptr(v int64) *int64 { return &v }
