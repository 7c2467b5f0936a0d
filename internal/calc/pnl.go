package calc

import "perp_risk/internal/models"

// PnL считает прибыль/убыток позиции при гипотетической текущей цене.
//
// positionSize = collateral * leverage;
// long:  pnl = size * priceChangePct / 100, pnlPct = priceChangePct * leverage;
// short: знак перевёрнут. roi = pnl / collateral * 100.
func PnL(p models.PositionParams, currentPrice float64) models.PnLResult {
	size := PositionSize(p.Collateral, p.Leverage)
	priceChangePct := (currentPrice - p.EntryPrice) / p.EntryPrice * 100

	pnl := size * priceChangePct / 100
	pnlPct := priceChangePct * p.Leverage
	if p.IsShort() {
		pnl = -pnl
		pnlPct = -pnlPct
	}

	return models.PnLResult{
		PnL:            pnl,
		PnLPct:         pnlPct,
		ROI:            pnl / p.Collateral * 100,
		BreakevenPrice: breakevenPrice(p, size),
	}
}

// breakevenPrice — цена, при которой PnL ровно покрывает комиссии.
// Горизонт комиссий зафиксирован на BreakevenFeeHours независимо от
// таймфрейма, который анализирует вызывающий.
func breakevenPrice(p models.PositionParams, size float64) float64 {
	fees := TotalFees(p, BreakevenFeeHours)
	feePct := fees.Total / size * 100

	// Двигаем цену в сторону, которая отбивает комиссии:
	// лонгу нужен рост, шорту — падение.
	if p.IsShort() {
		return p.EntryPrice * (1 - feePct/100)
	}
	return p.EntryPrice * (1 + feePct/100)
}
