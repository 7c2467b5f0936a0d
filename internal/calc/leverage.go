package calc

import (
	"fmt"
	"math"

	"perp_risk/internal/assets"
	"perp_risk/internal/helper"
	"perp_risk/internal/models"
)

// SafeLeverage подбирает безопасное плечо по волатильности и профилю риска.
//
// base = clamp(10/volatility, 1, 50), затем множитель профиля
// (conservative 0.5 / moderate 1.0 / aggressive 1.5), округление и клэмп.
// Дополнительно режем по максимуму конкретного актива.
// Волатильность — внешняя (статический справочник), здесь не считается.
func SafeLeverage(reg *assets.Registry, symbol string, volatility float64, tolerance models.RiskTolerance) (float64, error) {
	asset, ok := reg.Lookup(symbol)
	if !ok {
		return 0, fmt.Errorf("unsupported asset: %q", symbol)
	}
	if volatility <= 0 || volatility > 1 {
		return 0, fmt.Errorf("volatility must be in (0, 1], got %v", volatility)
	}
	mult, ok := riskMultipliers[string(tolerance)]
	if !ok {
		return 0, fmt.Errorf("unknown risk tolerance: %q", tolerance)
	}

	base := helper.Clamp(10/volatility, MinLeverage, MaxLeverage)
	recommended := helper.Clamp(math.Round(base*mult), MinLeverage, MaxLeverage)

	if recommended > asset.MaxLeverage {
		recommended = asset.MaxLeverage
	}
	if recommended < asset.MinLeverage {
		recommended = asset.MinLeverage
	}

	return recommended, nil
}
