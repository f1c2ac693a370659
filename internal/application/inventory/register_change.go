package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Abasto-api/internal/application/dto"
	"github.com/jhoicas/Abasto-api/internal/domain"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// RegisterChangeUseCase registra una entrada o salida de stock: bloquea la
// fila de inventario, ajusta la cantidad y anota el cambio en el libro, todo
// en una transacción.
type RegisterChangeUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterChangeUseCase construye el caso de uso.
func NewRegisterChangeUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterChangeUseCase {
	return &RegisterChangeUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// RegisterChange aplica un movimiento IN/OUT sobre (producto, bodega) y
// devuelve la cantidad resultante.
//
// Un IN sobre un par sin fila de inventario la crea con cantidad cero antes de
// sumar. Un OUT mayor que la existencia actual se rechaza con
// ErrInsufficientStock y no escribe nada.
func (uc *RegisterChangeUseCase) RegisterChange(ctx context.Context, companyID, userID string, in dto.RegisterChangeRequest) (int64, error) {
	if in.ProductID == "" {
		return 0, domain.NewValidationError("product_id", "es requerido")
	}
	if in.WarehouseID == "" {
		return 0, domain.NewValidationError("warehouse_id", "es requerido")
	}
	if in.Type != entity.ChangeTypeIN && in.Type != entity.ChangeTypeOUT {
		return 0, domain.NewValidationError("type", "debe ser IN u OUT")
	}
	if in.Quantity <= 0 {
		return 0, domain.NewValidationError("quantity", "debe ser positiva")
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		// Producto de otra empresa: para el caller no existe.
		return 0, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return 0, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return 0, domain.ErrNotFound
	}

	now := time.Now()
	var resulting int64
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error {
		inv, err := invRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			if in.Type == entity.ChangeTypeOUT {
				return domain.ErrInsufficientStock
			}
			inv = &entity.Inventory{
				ID:          uuid.New().String(),
				ProductID:   in.ProductID,
				WarehouseID: in.WarehouseID,
				Quantity:    0,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := invRepo.Create(inv); err != nil {
				return err
			}
		}

		switch in.Type {
		case entity.ChangeTypeIN:
			resulting = inv.Quantity + in.Quantity
		case entity.ChangeTypeOUT:
			if in.Quantity > inv.Quantity {
				return domain.ErrInsufficientStock
			}
			resulting = inv.Quantity - in.Quantity
		}
		if err := invRepo.UpdateQuantity(inv.ID, resulting); err != nil {
			return err
		}
		return changeRepo.Create(&entity.InventoryChange{
			ID:          uuid.New().String(),
			InventoryID: inv.ID,
			Type:        in.Type,
			Quantity:    in.Quantity,
			Date:        now,
			Reason:      in.Reason,
			CreatedAt:   now,
			CreatedBy:   userID,
		})
	})
	if err != nil {
		return 0, err
	}
	return resulting, nil
}
