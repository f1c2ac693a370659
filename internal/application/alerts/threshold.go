package alerts

import (
	"context"
	"fmt"

	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

var _ ThresholdResolver = (*ChainThresholdResolver)(nil)

// ChainThresholdResolver resuelve el umbral de stock bajo con una cadena de
// fallback explícita y ordenada: override por producto → umbral por categoría
// → constante global. La ausencia de configuración degrada al siguiente
// eslabón, nunca a un error; solo los fallos de acceso a datos son errores.
type ChainThresholdResolver struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	fallback     int64
}

// NewChainThresholdResolver construye el resolver con el umbral global de
// respaldo (configuración de la aplicación).
func NewChainThresholdResolver(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	fallback int64,
) *ChainThresholdResolver {
	return &ChainThresholdResolver{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		fallback:     fallback,
	}
}

// Threshold devuelve el umbral aplicable al producto.
func (r *ChainThresholdResolver) Threshold(ctx context.Context, productID string) (int64, error) {
	product, err := r.productRepo.GetByID(productID)
	if err != nil {
		return 0, fmt.Errorf("resolver umbral del producto %s: %w", productID, err)
	}
	if product == nil {
		// Producto desaparecido entre la enumeración y la resolución: degradar
		// al umbral global en vez de abortar el cálculo completo.
		return r.fallback, nil
	}
	if product.LowStockThreshold != nil {
		return *product.LowStockThreshold, nil
	}
	if product.CategoryID != "" {
		category, err := r.categoryRepo.GetByID(product.CategoryID)
		if err != nil {
			return 0, fmt.Errorf("resolver umbral por categoría %s: %w", product.CategoryID, err)
		}
		if category != nil && category.LowStockThreshold != nil {
			return *category.LowStockThreshold, nil
		}
	}
	return r.fallback, nil
}
