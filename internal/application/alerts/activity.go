package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

var _ ActivityAnalyzer = (*SalesActivityAnalyzer)(nil)

// SalesActivityAnalyzer deriva actividad reciente y velocidad de venta del
// libro de cambios (proyecciones de solo lectura; el libro nunca se muta).
//
// La actividad se evalúa por producto, agregada entre todas sus bodegas: una
// venta en la bodega A mantiene al producto elegible para alertas en la bodega
// B. Decisión de alcance deliberada, no un error.
type SalesActivityAnalyzer struct {
	changeRepo repository.InventoryChangeRepository
	windowDays int
	now        func() time.Time
}

// NewSalesActivityAnalyzer construye el analizador. windowDays debe ser un
// entero positivo; se valida aquí (una vez) para que DailyVelocity nunca
// divida por cero.
func NewSalesActivityAnalyzer(changeRepo repository.InventoryChangeRepository, windowDays int) (*SalesActivityAnalyzer, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("alerts: la ventana de actividad debe ser positiva, recibido %d", windowDays)
	}
	return &SalesActivityAnalyzer{
		changeRepo: changeRepo,
		windowDays: windowDays,
		now:        time.Now,
	}, nil
}

// windowStart devuelve el inicio de la ventana: ahora − windowDays días.
func (a *SalesActivityAnalyzer) windowStart() time.Time {
	return a.now().AddDate(0, 0, -a.windowDays)
}

// HasRecentActivity informa si algún cambio del producto (IN u OUT, cualquier
// bodega) tiene fecha estrictamente posterior al inicio de la ventana.
func (a *SalesActivityAnalyzer) HasRecentActivity(ctx context.Context, productID string) (bool, error) {
	active, err := a.changeRepo.HasChangeSince(ctx, productID, a.windowStart())
	if err != nil {
		return false, fmt.Errorf("actividad reciente del producto %s: %w", productID, err)
	}
	return active, nil
}

// DailyVelocity calcula la tasa de salida: suma de magnitudes OUT dentro de la
// ventana dividida por windowDays. Las entradas (IN) no cuentan en el
// numerador: sumarlas invertiría o subestimaría la tasa de agotamiento.
// Sin salidas en la ventana la velocidad es exactamente cero.
func (a *SalesActivityAnalyzer) DailyVelocity(ctx context.Context, productID string) (decimal.Decimal, error) {
	total, err := a.changeRepo.OutboundTotalSince(ctx, productID, a.windowStart())
	if err != nil {
		return decimal.Zero, fmt.Errorf("velocidad de venta del producto %s: %w", productID, err)
	}
	if total == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(a.windowDays))), nil
}
