package repository

import (
	"context"

	"github.com/jhoicas/Abasto-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetBySKU busca por SKU (único global).
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	// ListAllByCompany devuelve todos los productos de la empresa ordenados por
	// id ascendente. Lo usa el motor de alertas para un recorrido determinista.
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Product, error)
	Delete(id string) error
}
