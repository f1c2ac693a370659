package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Abasto-api/internal/application/dto"
	"github.com/jhoicas/Abasto-api/internal/domain"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías. El umbral de stock bajo por
// categoría es el segundo eslabón de la cadena de resolución de umbrales.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría para la empresa.
func (uc *CategoryUseCase) Create(companyID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Code == "" {
		return nil, domain.NewValidationError("code", "es requerido")
	}
	if in.LowStockThreshold != nil && *in.LowStockThreshold < 0 {
		return nil, domain.NewValidationError("low_stock_threshold", "no puede ser negativo")
	}
	now := time.Now()
	c := &entity.Category{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Name:              in.Name,
		Code:              in.Code,
		LowStockThreshold: in.LowStockThreshold,
		Status:            "active",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return entityToCategoryResponse(c), nil
}

// GetByID obtiene una categoría; de otra empresa se responde como inexistente.
func (uc *CategoryUseCase) GetByID(companyID, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.CompanyID != companyID {
		return nil, nil
	}
	return entityToCategoryResponse(c), nil
}

// List lista las categorías de la empresa con paginación.
func (uc *CategoryUseCase) List(companyID string, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func entityToCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:                c.ID,
		CompanyID:         c.CompanyID,
		Name:              c.Name,
		Code:              c.Code,
		LowStockThreshold: c.LowStockThreshold,
		Status:            c.Status,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
