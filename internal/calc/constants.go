package calc

// Константы модели. Это осознанные упрощения, а не параметры протокола:
// реальный GMX считает порог ликвидации динамически, а funding зависит от
// рынка. Здесь — фиксированные ставки, как в исходной учебной модели.
const (
	// Порог ликвидации: позиция закрывается, когда цена съедает 85% маржи.
	LiquidationThreshold = 0.85

	// Ставки комиссий. Position fee — разовая, borrowing/funding — в час.
	PositionFeeRate  = 0.0001
	BorrowingFeeRate = 0.0001
	FundingFeeRate   = 0.0001

	// Горизонт комиссий для расчёта breakeven. Всегда 24 часа, даже если
	// сценарий анализируется на другом таймфрейме.
	BreakevenFeeHours = 24.0

	// Глобальные границы плеча. Уточняются максимумом конкретного актива.
	MinLeverage = 1.0
	MaxLeverage = 50.0
)

// Множители профиля риска для подбора безопасного плеча.
var riskMultipliers = map[string]float64{
	"conservative": 0.5,
	"moderate":     1.0,
	"aggressive":   1.5,
}
