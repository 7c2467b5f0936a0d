package models

type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// PositionParams — входное описание позиции.
// Размер позиции НЕ храним: всегда collateral * leverage, чтобы не разъезжалось.
type PositionParams struct {
	Symbol     string    `json:"symbol"`
	Collateral float64   `json:"collateral"` // USD
	Leverage   float64   `json:"leverage"`
	Direction  Direction `json:"direction"` // long/short
	EntryPrice float64   `json:"entryPrice"`
}

func (p PositionParams) IsShort() bool { return p.Direction == Short }
