package calc

import (
	"fmt"
	"math"

	"perp_risk/internal/assets"
	"perp_risk/internal/models"
)

// LiquidationPrice считает цену ликвидации.
//
// marginRatio = 1/leverage; порог — фиксированные 85% маржи.
// long:  liq = entry * (1 - marginRatio*0.85)
// short: liq = entry * (1 + marginRatio*0.85)
//
// Параметры считаются уже провалидированными (leverage >= 1).
// Неизвестный актив — жёсткая ошибка: без справочной записи не считаем.
func LiquidationPrice(reg *assets.Registry, p models.PositionParams) (models.LiquidationResult, error) {
	if _, ok := reg.Lookup(p.Symbol); !ok {
		return models.LiquidationResult{}, fmt.Errorf("unsupported asset: %q", p.Symbol)
	}

	marginRatio := 1 / p.Leverage

	var liq float64
	if p.IsShort() {
		liq = p.EntryPrice * (1 + marginRatio*LiquidationThreshold)
	} else {
		liq = p.EntryPrice * (1 - marginRatio*LiquidationThreshold)
	}

	dist := math.Abs(p.EntryPrice - liq)

	return models.LiquidationResult{
		LiquidationPrice: liq,
		Distance:         dist,
		DistancePct:      dist / p.EntryPrice * 100,
		MarginRatioPct:   marginRatio * 100,
	}, nil
}
