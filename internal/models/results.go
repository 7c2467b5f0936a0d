package models

// Результаты расчётов. Все записи неизменяемые, считаются заново при каждом
// вызове — никакого кэширования.

type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type LiquidationResult struct {
	LiquidationPrice float64 `json:"liquidationPrice"`
	Distance         float64 `json:"distance"`    // |entry - liq|
	DistancePct      float64 `json:"distancePct"` // в процентах от entry
	MarginRatioPct   float64 `json:"marginRatioPct"`
}

type PnLResult struct {
	PnL            float64 `json:"pnl"` // USD
	PnLPct         float64 `json:"pnlPct"`
	ROI            float64 `json:"roi"`
	BreakevenPrice float64 `json:"breakevenPrice"`
}

type FeeResult struct {
	PositionFee  float64 `json:"positionFee"` // разовая
	BorrowingFee float64 `json:"borrowingFee"`
	FundingFee   float64 `json:"fundingFee"`
	Total        float64 `json:"total"`
}

type RiskRewardResult struct {
	Ratio               float64 `json:"ratio"`
	ProbabilityOfProfit float64 `json:"probabilityOfProfit"`
	ExpectedValue       float64 `json:"expectedValue"`
	MaxLoss             float64 `json:"maxLoss"`   // дистанция по цене до стопа
	MaxProfit           float64 `json:"maxProfit"` // дистанция по цене до тейка
}
