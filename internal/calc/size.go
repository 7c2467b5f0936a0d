package calc

import "perp_risk/internal/models"

// PositionSize — номинал позиции. Единственный источник правды:
// размер нигде не хранится, всегда пересчитывается отсюда.
func PositionSize(collateral, leverage float64) float64 {
	return collateral * leverage
}

// MarginRequirement — маржа под заданный номинал.
func MarginRequirement(positionSize, leverage float64) float64 {
	if leverage <= 0 {
		return 0
	}
	return positionSize / leverage
}

// MaxPositionSize — максимальный номинал при максимальном плече актива.
func MaxPositionSize(collateral float64, asset models.AssetConfig) float64 {
	return collateral * asset.MaxLeverage
}
