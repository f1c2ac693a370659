package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalesActivityAnalyzer_VentanaInvalida(t *testing.T) {
	_, err := NewSalesActivityAnalyzer(&fakeChangeRepo{}, 0)
	assert.Error(t, err, "ventana cero debe rechazarse en construcción")

	_, err = NewSalesActivityAnalyzer(&fakeChangeRepo{}, -7)
	assert.Error(t, err, "ventana negativa debe rechazarse en construcción")

	_, err = NewSalesActivityAnalyzer(&fakeChangeRepo{}, 30)
	assert.NoError(t, err)
}

func TestHasRecentActivity_UsaInicioDeVentanaCorrecto(t *testing.T) {
	repo := &fakeChangeRepo{activeByProduct: map[string]bool{"p-1": true}}
	analyzer, err := NewSalesActivityAnalyzer(repo, 30)
	require.NoError(t, err)

	// Congelar el reloj para verificar el límite de la ventana.
	fixed := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	analyzer.now = func() time.Time { return fixed }

	active, err := analyzer.HasRecentActivity(context.Background(), "p-1")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, fixed.AddDate(0, 0, -30), repo.lastSince,
		"el límite debe ser ahora − windowDays")
}

func TestHasRecentActivity_ProductoSinMovimientos(t *testing.T) {
	repo := &fakeChangeRepo{activeByProduct: map[string]bool{}}
	analyzer, err := NewSalesActivityAnalyzer(repo, 30)
	require.NoError(t, err)

	active, err := analyzer.HasRecentActivity(context.Background(), "p-dormido")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestDailyVelocity_SoloSalidasCuentan(t *testing.T) {
	// 15 unidades OUT en ventana de 30 días → 0.5/día. Las entradas IN no
	// forman parte del numerador (el repo solo suma OUT).
	repo := &fakeChangeRepo{outboundByProduct: map[string]int64{"p-1": 15}}
	analyzer, err := NewSalesActivityAnalyzer(repo, 30)
	require.NoError(t, err)

	v, err := analyzer.DailyVelocity(context.Background(), "p-1")
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromFloat(0.5)), "velocidad esperada 0.5, obtenida %s", v)
}

func TestDailyVelocity_SinSalidas_CeroExacto(t *testing.T) {
	repo := &fakeChangeRepo{outboundByProduct: map[string]int64{}}
	analyzer, err := NewSalesActivityAnalyzer(repo, 30)
	require.NoError(t, err)

	v, err := analyzer.DailyVelocity(context.Background(), "p-solo-entradas")
	require.NoError(t, err)
	assert.True(t, v.IsZero(), "sin OUT en la ventana la velocidad es exactamente cero")
}

func TestDailyVelocity_FraccionExacta(t *testing.T) {
	// 10 OUT en 30 días: decimal conserva 1/3 sin el error de un float.
	repo := &fakeChangeRepo{outboundByProduct: map[string]int64{"p-1": 10}}
	analyzer, err := NewSalesActivityAnalyzer(repo, 30)
	require.NoError(t, err)

	v, err := analyzer.DailyVelocity(context.Background(), "p-1")
	require.NoError(t, err)
	expected := decimal.NewFromInt(10).Div(decimal.NewFromInt(30))
	assert.True(t, v.Equal(expected))
}
