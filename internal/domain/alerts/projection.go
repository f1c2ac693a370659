package alerts

import "github.com/shopspring/decimal"

// DaysUntilStockout proyecta los días restantes de stock a la velocidad de
// venta actual (servicio de dominio).
// DíasRestantes = ceil(StockActual / VelocidadDiaria)
//
// Devuelve nil si la velocidad es cero o negativa: sin salidas recientes no hay
// quiebre previsible (nunca se usa un número grande como centinela en esta capa).
// Si el stock ya es cero o negativo, devuelve 0: el quiebre ya ocurrió.
func DaysUntilStockout(quantity int64, dailyVelocity decimal.Decimal) *int64 {
	if dailyVelocity.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	if quantity <= 0 {
		days := int64(0)
		return &days
	}
	days := decimal.NewFromInt(quantity).Div(dailyVelocity).Ceil().IntPart()
	return &days
}
