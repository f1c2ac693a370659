package alerts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntilStockout_CeilDeDivisionFraccionaria(t *testing.T) {
	// 5 unidades a 0.5/día → ceil(10) = 10 días
	got := DaysUntilStockout(5, decimal.NewFromFloat(0.5))
	require.NotNil(t, got, "con velocidad positiva debe haber proyección finita")
	assert.Equal(t, int64(10), *got)
}

func TestDaysUntilStockout_RedondeaHaciaArriba(t *testing.T) {
	// 7 unidades a 2/día → ceil(3.5) = 4 días
	got := DaysUntilStockout(7, decimal.NewFromInt(2))
	require.NotNil(t, got)
	assert.Equal(t, int64(4), *got)
}

func TestDaysUntilStockout_VelocidadCero_SinQuiebrePrevisible(t *testing.T) {
	got := DaysUntilStockout(5, decimal.Zero)
	assert.Nil(t, got, "velocidad cero → proyección no acotada (nil)")
}

func TestDaysUntilStockout_StockCeroONegativo_QuiebreInmediato(t *testing.T) {
	got := DaysUntilStockout(0, decimal.NewFromInt(3))
	require.NotNil(t, got)
	assert.Equal(t, int64(0), *got, "stock 0 → quiebre ya ocurrido")

	// Cantidades negativas (ajustes defectuosos) se toleran y se reportan como quiebre.
	got = DaysUntilStockout(-4, decimal.NewFromInt(3))
	require.NotNil(t, got)
	assert.Equal(t, int64(0), *got)
}

func TestDaysUntilStockout_DivisionExacta(t *testing.T) {
	// 10 unidades a 2/día → exactamente 5 días, sin redondeo extra
	got := DaysUntilStockout(10, decimal.NewFromInt(2))
	require.NotNil(t, got)
	assert.Equal(t, int64(5), *got)
}
