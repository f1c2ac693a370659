package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abasto-api/internal/application/dto"
	"github.com/jhoicas/Abasto-api/internal/domain"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	inventory []*entity.Inventory
	changes   []*entity.InventoryChange
}

type memInvRepo struct{ s *memState }

func (r *memInvRepo) Create(inv *entity.Inventory) error {
	r.s.inventory = append(r.s.inventory, inv)
	return nil
}

func (r *memInvRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	return r.GetForUpdate(productID, warehouseID)
}

func (r *memInvRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	for _, inv := range r.s.inventory {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *memInvRepo) UpdateQuantity(inventoryID string, quantity int64) error {
	for _, inv := range r.s.inventory {
		if inv.ID == inventoryID {
			inv.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memInvRepo) SnapshotByProduct(context.Context, string) ([]repository.WarehouseStock, error) {
	return nil, nil
}

type memChangeRepo struct{ s *memState }

func (r *memChangeRepo) Create(c *entity.InventoryChange) error {
	r.s.changes = append(r.s.changes, c)
	return nil
}

func (r *memChangeRepo) ListByInventory(string, *time.Time, *time.Time, int, int) ([]*entity.InventoryChange, error) {
	return nil, nil
}

func (r *memChangeRepo) HasChangeSince(context.Context, string, time.Time) (bool, error) {
	return false, nil
}

func (r *memChangeRepo) OutboundTotalSince(context.Context, string, time.Time) (int64, error) {
	return 0, nil
}

type memTxRunner struct{ s *memState }

func (t *memTxRunner) Run(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
) error) error {
	nInv, nChanges := len(t.s.inventory), len(t.s.changes)
	quantities := make(map[string]int64, nInv)
	for _, inv := range t.s.inventory {
		quantities[inv.ID] = inv.Quantity
	}
	err := fn(&memInvRepo{t.s}, &memChangeRepo{t.s})
	if err != nil {
		t.s.inventory = t.s.inventory[:nInv]
		t.s.changes = t.s.changes[:nChanges]
		for _, inv := range t.s.inventory {
			inv.Quantity = quantities[inv.ID]
		}
		return err
	}
	return nil
}

type stubProductRepo struct{ byID map[string]*entity.Product }

func (r *stubProductRepo) Create(*entity.Product) error { return nil }
func (r *stubProductRepo) Update(*entity.Product) error { return nil }
func (r *stubProductRepo) Delete(string) error          { return nil }

func (r *stubProductRepo) GetByID(id string) (*entity.Product, error)   { return r.byID[id], nil }
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error)     { return nil, nil }

func (r *stubProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) ListAllByCompany(context.Context, string) ([]*entity.Product, error) {
	return nil, nil
}

type stubWarehouseRepo struct{ byID map[string]*entity.Warehouse }

func (r *stubWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (r *stubWarehouseRepo) Update(*entity.Warehouse) error { return nil }
func (r *stubWarehouseRepo) Delete(string) error            { return nil }

func (r *stubWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.byID[id], nil }

func (r *stubWarehouseRepo) ListByCompany(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyID = "co-1"
	userID    = "u-1"
	productID = "p-1"
	whID      = "w-1"
)

func newFixture(initialQty *int64) (*RegisterChangeUseCase, *memState) {
	s := &memState{}
	if initialQty != nil {
		s.inventory = append(s.inventory, &entity.Inventory{
			ID: "inv-1", ProductID: productID, WarehouseID: whID, Quantity: *initialQty,
		})
	}
	products := &stubProductRepo{byID: map[string]*entity.Product{
		productID: {ID: productID, CompanyID: companyID, SKU: "SKU-1"},
	}}
	warehouses := &stubWarehouseRepo{byID: map[string]*entity.Warehouse{
		whID: {ID: whID, CompanyID: companyID},
	}}
	return NewRegisterChangeUseCase(&memTxRunner{s}, products, warehouses), s
}

func qty(v int64) *int64 { return &v }

func req(tipo string, cantidad int64) dto.RegisterChangeRequest {
	return dto.RegisterChangeRequest{
		ProductID:   productID,
		WarehouseID: whID,
		Type:        tipo,
		Quantity:    cantidad,
		Reason:      "ajuste",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterChange_EntradaSumaYAnotaEnElLibro(t *testing.T) {
	uc, s := newFixture(qty(10))

	resulting, err := uc.RegisterChange(context.Background(), companyID, userID, req(entity.ChangeTypeIN, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(15), resulting)
	assert.Equal(t, int64(15), s.inventory[0].Quantity)

	require.Len(t, s.changes, 1)
	assert.Equal(t, entity.ChangeTypeIN, s.changes[0].Type)
	assert.Equal(t, int64(5), s.changes[0].Quantity)
	assert.Equal(t, userID, s.changes[0].CreatedBy)
}

func TestRegisterChange_SalidaDescuenta(t *testing.T) {
	uc, s := newFixture(qty(10))

	resulting, err := uc.RegisterChange(context.Background(), companyID, userID, req(entity.ChangeTypeOUT, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(6), resulting)
	assert.Equal(t, int64(6), s.inventory[0].Quantity)
}

func TestRegisterChange_SalidaMayorQueStockSeRechaza(t *testing.T) {
	uc, s := newFixture(qty(3))

	_, err := uc.RegisterChange(context.Background(), companyID, userID, req(entity.ChangeTypeOUT, 4))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), s.inventory[0].Quantity, "el stock no debe cambiar")
	assert.Empty(t, s.changes, "un movimiento rechazado no entra al libro")
}

func TestRegisterChange_EntradaCreaFilaDeInventarioSiNoExiste(t *testing.T) {
	uc, s := newFixture(nil)

	resulting, err := uc.RegisterChange(context.Background(), companyID, userID, req(entity.ChangeTypeIN, 7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), resulting)

	require.Len(t, s.inventory, 1)
	assert.Equal(t, int64(7), s.inventory[0].Quantity)
	require.Len(t, s.changes, 1)
	assert.Equal(t, s.inventory[0].ID, s.changes[0].InventoryID)
}

func TestRegisterChange_SalidaSinFilaDeInventario(t *testing.T) {
	uc, s := newFixture(nil)

	_, err := uc.RegisterChange(context.Background(), companyID, userID, req(entity.ChangeTypeOUT, 1))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, s.inventory, "un OUT rechazado no debe dejar fila creada")
}

func TestRegisterChange_Validaciones(t *testing.T) {
	uc, s := newFixture(qty(10))

	casos := []struct {
		nombre string
		mutate func(*dto.RegisterChangeRequest)
		campo  string
	}{
		{"tipo desconocido", func(r *dto.RegisterChangeRequest) { r.Type = "TRANSFER" }, "type"},
		{"cantidad cero", func(r *dto.RegisterChangeRequest) { r.Quantity = 0 }, "quantity"},
		{"cantidad negativa", func(r *dto.RegisterChangeRequest) { r.Quantity = -3 }, "quantity"},
		{"producto vacío", func(r *dto.RegisterChangeRequest) { r.ProductID = "" }, "product_id"},
		{"bodega vacía", func(r *dto.RegisterChangeRequest) { r.WarehouseID = "" }, "warehouse_id"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := req(entity.ChangeTypeIN, 5)
			c.mutate(&in)

			_, err := uc.RegisterChange(context.Background(), companyID, userID, in)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, c.campo, vErr.Field)
		})
	}
	assert.Equal(t, int64(10), s.inventory[0].Quantity)
}

func TestRegisterChange_ProductoDeOtraEmpresaNoExisteParaElCaller(t *testing.T) {
	uc, _ := newFixture(qty(10))

	_, err := uc.RegisterChange(context.Background(), "co-ajena", userID, req(entity.ChangeTypeIN, 5))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterChange_ProductoInexistente(t *testing.T) {
	uc, _ := newFixture(qty(10))
	in := req(entity.ChangeTypeIN, 5)
	in.ProductID = "p-fantasma"

	_, err := uc.RegisterChange(context.Background(), companyID, userID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
