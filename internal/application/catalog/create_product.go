package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Abasto-api/internal/application/dto"
	"github.com/jhoicas/Abasto-api/internal/domain"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// CreateProductUseCase crea un producto junto con su fila de inventario
// inicial en una sola transacción (ambas escrituras o ninguna).
type CreateProductUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateProduct valida la entrada, verifica el SKU y escribe producto +
// inventario (+ cambio IN inicial si hay cantidad) de forma atómica.
// Devuelve el id del producto creado.
//
// Las validaciones se rechazan antes de cualquier escritura. El pre-chequeo de
// SKU da un rechazo rápido, pero el guardián real es el constraint UNIQUE de la
// BD: una violación en el insert se reclasifica como el mismo error de
// validación que habría producido el pre-chequeo (carrera check-then-act).
func (uc *CreateProductUseCase) CreateProduct(ctx context.Context, companyID, userID string, in dto.CreateProductRequest) (string, error) {
	if in.Name == "" {
		return "", domain.NewValidationError("name", "es requerido")
	}
	if in.SKU == "" {
		return "", domain.NewValidationError("sku", "es requerido")
	}
	if in.WarehouseID == "" {
		return "", domain.NewValidationError("warehouse_id", "es requerido")
	}
	if in.Price == "" {
		return "", domain.NewValidationError("price", "es requerido")
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return "", domain.NewValidationError("price", "debe ser un decimal válido")
	}
	if price.IsNegative() {
		return "", domain.NewValidationError("price", "no puede ser negativo")
	}
	// Cantidad inicial ausente → 0.
	qty := int64(0)
	if in.InitialQuantity != nil {
		if *in.InitialQuantity < 0 {
			return "", domain.NewValidationError("initial_quantity", "no puede ser negativa")
		}
		qty = *in.InitialQuantity
	}
	if in.LowStockThreshold != nil && *in.LowStockThreshold < 0 {
		return "", domain.NewValidationError("low_stock_threshold", "no puede ser negativo")
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return "", err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return "", domain.ErrNotFound
	}

	// Pre-chequeo de SKU para rechazo temprano y amigable.
	existing, _ := uc.productRepo.GetBySKU(in.SKU)
	if existing != nil {
		return "", domain.NewValidationError("sku", "ya está en uso")
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		CategoryID:        in.CategoryID,
		SKU:               in.SKU,
		Name:              in.Name,
		Description:       in.Description,
		Price:             price,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	inv := &entity.Inventory{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		WarehouseID: in.WarehouseID,
		Quantity:    qty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Las dos (o tres) escrituras van en una sola transacción: Commit si todo
	// ok, Rollback ante cualquier fallo (TxRunner.Run lo garantiza).
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				// Escritor concurrente ganó la carrera: mismo error que el pre-chequeo.
				return domain.NewValidationError("sku", "ya está en uso")
			}
			return err
		}
		if err := invRepo.Create(inv); err != nil {
			return err
		}
		if qty > 0 {
			// El stock inicial queda registrado en el libro para que la suma
			// de cambios iguale la cantidad desde el primer día.
			return changeRepo.Create(&entity.InventoryChange{
				ID:          uuid.New().String(),
				InventoryID: inv.ID,
				Type:        entity.ChangeTypeIN,
				Quantity:    qty,
				Date:        now,
				Reason:      "stock inicial",
				CreatedAt:   now,
				CreatedBy:   userID,
			})
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return product.ID, nil
}
