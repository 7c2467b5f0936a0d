package calc

import (
	"math"

	"perp_risk/internal/models"
)

// RiskReward считает соотношение риск/прибыль по уровням SL/TP.
//
// maxLoss и maxProfit — дистанции по цене (long: |entry-sl| и |tp-entry|,
// short — зеркально, по модулю то же самое).
//
// При нулевой дистанции стопа ratio уходит в +Inf — это задокументированный
// край, вызывающий обязан отсечь стоп на уровне входа сам.
//
// probabilityOfProfit = 1/(1+ratio) — именованная эвристика (чем больше
// потенциальная прибыль, тем ниже вес), а не статистическая модель.
func RiskReward(p models.PositionParams, stopLoss, takeProfit float64) models.RiskRewardResult {
	maxLoss := math.Abs(p.EntryPrice - stopLoss)
	maxProfit := math.Abs(takeProfit - p.EntryPrice)

	ratio := maxProfit / maxLoss
	probability := 1 / (1 + ratio)
	expected := maxProfit*probability - maxLoss*(1-probability)

	return models.RiskRewardResult{
		Ratio:               ratio,
		ProbabilityOfProfit: probability,
		ExpectedValue:       expected,
		MaxLoss:             maxLoss,
		MaxProfit:           maxProfit,
	}
}
