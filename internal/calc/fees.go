package calc

import "perp_risk/internal/models"

// TotalFees считает комиссии позиции за hours часов удержания.
//
// Position fee разовая: от аргумента hours не зависит. Borrowing и funding
// линейно растут со временем. Ставки плоские, не зависят от актива —
// упрощение модели, реальные рынки варьируют funding по активам.
func TotalFees(p models.PositionParams, hours float64) models.FeeResult {
	if hours < 0 {
		hours = 0
	}

	size := PositionSize(p.Collateral, p.Leverage)

	positionFee := size * PositionFeeRate
	borrowingFee := size * BorrowingFeeRate * hours
	fundingFee := size * FundingFeeRate * hours

	return models.FeeResult{
		PositionFee:  positionFee,
		BorrowingFee: borrowingFee,
		FundingFee:   fundingFee,
		Total:        positionFee + borrowingFee + fundingFee,
	}
}
