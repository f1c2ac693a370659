package catalog

import (
	"context"
	"errors"
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
// Dobles en memoria con semántica de rollback
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products  []*entity.Product
	inventory []*entity.Inventory
	changes   []*entity.InventoryChange

	failInventoryCreate bool
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.s.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate // emula el constraint UNIQUE de la BD
		}
	}
	r.s.products = append(r.s.products, p)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(*entity.Product) error { return nil }
func (r *memProductRepo) Delete(string) error          { return nil }

func (r *memProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) ListAllByCompany(context.Context, string) ([]*entity.Product, error) {
	return nil, nil
}

type memInventoryRepo struct{ s *memStore }

func (r *memInventoryRepo) Create(inv *entity.Inventory) error {
	if r.s.failInventoryCreate {
		return errors.New("insert inventory: disco lleno")
	}
	r.s.inventory = append(r.s.inventory, inv)
	return nil
}

func (r *memInventoryRepo) Get(string, string) (*entity.Inventory, error)          { return nil, nil }
func (r *memInventoryRepo) GetForUpdate(string, string) (*entity.Inventory, error) { return nil, nil }
func (r *memInventoryRepo) UpdateQuantity(string, int64) error                     { return nil }

func (r *memInventoryRepo) SnapshotByProduct(context.Context, string) ([]repository.WarehouseStock, error) {
	return nil, nil
}

type memChangeRepo struct{ s *memStore }

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

type memWarehouseRepo struct{ byID map[string]*entity.Warehouse }

func (r *memWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (r *memWarehouseRepo) Update(*entity.Warehouse) error { return nil }
func (r *memWarehouseRepo) Delete(string) error            { return nil }

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.byID[id], nil
}

func (r *memWarehouseRepo) ListByCompany(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

// memTxRunner ejecuta fn sobre el store y deshace las escrituras si fn falla,
// emulando el Rollback de una transacción real.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
) error) error {
	nProducts, nInv, nChanges := len(t.s.products), len(t.s.inventory), len(t.s.changes)
	err := fn(&memProductRepo{t.s}, &memInventoryRepo{t.s}, &memChangeRepo{t.s})
	if err != nil {
		t.s.products = t.s.products[:nProducts]
		t.s.inventory = t.s.inventory[:nInv]
		t.s.changes = t.s.changes[:nChanges]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "co-1"
	testUserID    = "u-1"
	testWhID      = "w-1"
)

func newUseCase(s *memStore) *CreateProductUseCase {
	warehouses := &memWarehouseRepo{byID: map[string]*entity.Warehouse{
		testWhID: {ID: testWhID, CompanyID: testCompanyID, Name: "Bodega Norte"},
	}}
	return NewCreateProductUseCase(&memTxRunner{s}, &memProductRepo{s}, warehouses)
}

func requestValida() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Tornillo 3/4",
		SKU:         "TOR-034",
		Price:       "1250.50",
		WarehouseID: testWhID,
	}
}

func int64ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_ExitoCreaProductoEInventario(t *testing.T) {
	s := &memStore{}
	in := requestValida()
	in.InitialQuantity = int64ptr(40)

	id, err := newUseCase(s).CreateProduct(context.Background(), testCompanyID, testUserID, in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, s.products, 1, "exactamente una fila de producto")
	require.Len(t, s.inventory, 1, "exactamente una fila de inventario")
	assert.Equal(t, id, s.products[0].ID)
	assert.Equal(t, id, s.inventory[0].ProductID)
	assert.Equal(t, int64(40), s.inventory[0].Quantity)

	// El stock inicial queda en el libro de cambios como IN.
	require.Len(t, s.changes, 1)
	assert.Equal(t, entity.ChangeTypeIN, s.changes[0].Type)
	assert.Equal(t, int64(40), s.changes[0].Quantity)
	assert.Equal(t, s.inventory[0].ID, s.changes[0].InventoryID)
}

func TestCreateProduct_CantidadAusenteQuedaEnCero(t *testing.T) {
	s := &memStore{}

	_, err := newUseCase(s).CreateProduct(context.Background(), testCompanyID, testUserID, requestValida())
	require.NoError(t, err)

	require.Len(t, s.inventory, 1)
	assert.Equal(t, int64(0), s.inventory[0].Quantity)
	assert.Empty(t, s.changes, "cantidad cero no genera cambio en el libro")
}

func TestCreateProduct_CamposRequeridos(t *testing.T) {
	s := &memStore{}
	uc := newUseCase(s)

	casos := []struct {
		campo  string
		mutate func(*dto.CreateProductRequest)
	}{
		{"name", func(r *dto.CreateProductRequest) { r.Name = "" }},
		{"sku", func(r *dto.CreateProductRequest) { r.SKU = "" }},
		{"price", func(r *dto.CreateProductRequest) { r.Price = "" }},
		{"warehouse_id", func(r *dto.CreateProductRequest) { r.WarehouseID = "" }},
	}
	for _, c := range casos {
		in := requestValida()
		c.mutate(&in)

		_, err := uc.CreateProduct(context.Background(), testCompanyID, testUserID, in)
		require.Error(t, err, "falta %s debe rechazarse", c.campo)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, c.campo, vErr.Field, "el error debe nombrar el campo ofensor")
	}
	assert.Empty(t, s.products, "ninguna validación fallida debe escribir filas")
}

func TestCreateProduct_PrecioNoNumericoSeRechazaAntesDeEscribir(t *testing.T) {
	s := &memStore{}
	in := requestValida()
	in.Price = "doce mil"

	_, err := newUseCase(s).CreateProduct(context.Background(), testCompanyID, testUserID, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.products)
	assert.Empty(t, s.inventory)
}

func TestCreateProduct_CantidadInicialNegativaSeRechaza(t *testing.T) {
	s := &memStore{}
	in := requestValida()
	in.InitialQuantity = int64ptr(-5)

	_, err := newUseCase(s).CreateProduct(context.Background(), testCompanyID, testUserID, in)
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "initial_quantity", vErr.Field)
}

func TestCreateProduct_SKUDuplicadoNoEscribeFilas(t *testing.T) {
	s := &memStore{}
	uc := newUseCase(s)

	_, err := uc.CreateProduct(context.Background(), testCompanyID, testUserID, requestValida())
	require.NoError(t, err)

	// Mismo SKU otra vez: rechazo sin filas nuevas.
	in := requestValida()
	in.Name = "Otro producto"
	_, err = uc.CreateProduct(context.Background(), testCompanyID, testUserID, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "SKU duplicado es un error de validación")
	assert.Len(t, s.products, 1)
	assert.Len(t, s.inventory, 1)
}

func TestCreateProduct_ViolacionDeConstraintSeReclasifica(t *testing.T) {
	// Un escritor concurrente insertó el SKU entre el pre-chequeo y el insert:
	// el ErrDuplicate del repositorio debe salir como error de validación,
	// no como error interno.
	s := &memStore{
		products: []*entity.Product{{ID: "p-previo", SKU: "TOR-034"}},
	}
	warehouses := &memWarehouseRepo{byID: map[string]*entity.Warehouse{
		testWhID: {ID: testWhID, CompanyID: testCompanyID},
	}}
	// productRepo del pre-chequeo sin el producto, para forzar la carrera.
	preCheck := &memProductRepo{&memStore{}}
	uc := NewCreateProductUseCase(&memTxRunner{s}, preCheck, warehouses)

	_, err := uc.CreateProduct(context.Background(), testCompanyID, testUserID, requestValida())
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr, "la violación del constraint se reclasifica como validación")
	assert.Equal(t, "sku", vErr.Field)
	assert.Len(t, s.products, 1, "no debe quedar fila nueva")
}

func TestCreateProduct_FalloParcialNoDejaHuerfanos(t *testing.T) {
	s := &memStore{failInventoryCreate: true}

	_, err := newUseCase(s).CreateProduct(context.Background(), testCompanyID, testUserID, requestValida())
	require.Error(t, err)
	assert.Empty(t, s.products, "el producto debe deshacerse si el inventario falla")
	assert.Empty(t, s.inventory)
	assert.Empty(t, s.changes)
}

func TestCreateProduct_BodegaDeOtraEmpresa(t *testing.T) {
	s := &memStore{}
	warehouses := &memWarehouseRepo{byID: map[string]*entity.Warehouse{
		testWhID: {ID: testWhID, CompanyID: "co-ajena"},
	}}
	uc := NewCreateProductUseCase(&memTxRunner{s}, &memProductRepo{s}, warehouses)

	_, err := uc.CreateProduct(context.Background(), testCompanyID, testUserID, requestValida())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.products)
}
