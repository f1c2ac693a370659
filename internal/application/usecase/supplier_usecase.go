package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Abasto-api/internal/application/dto"
	"github.com/jhoicas/Abasto-api/internal/domain"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// SupplierUseCase casos de uso de proveedores y sus vínculos con productos.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:           uuid.New().String(),
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return entityToSupplierResponse(s), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return entityToSupplierResponse(s), nil
}

// Update actualiza nombre o email de contacto.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.ContactEmail != nil {
		s.ContactEmail = *in.ContactEmail
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return entityToSupplierResponse(s), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *entityToSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// LinkProduct vincula (o re-precia) un proveedor a un producto de la empresa.
func (uc *SupplierUseCase) LinkProduct(companyID, productID string, in dto.LinkSupplierRequest) error {
	if in.SupplierID == "" {
		return domain.NewValidationError("supplier_id", "es requerido")
	}
	if in.SupplyPrice.IsNegative() {
		return domain.NewValidationError("supply_price", "no puede ser negativo")
	}
	p, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if p == nil || p.CompanyID != companyID {
		return domain.ErrNotFound
	}
	s, err := uc.repo.GetByID(in.SupplierID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	return uc.repo.UpsertProductSupplier(&entity.ProductSupplier{
		ProductID:   productID,
		SupplierID:  in.SupplierID,
		SupplyPrice: in.SupplyPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func entityToSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
