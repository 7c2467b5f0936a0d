package calc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"perp_risk/internal/models"
)

func TestPnL_AvaxScenarioPlus10Pct(t *testing.T) {
	// AVAX, залог 1000, плечо 5, лонг, вход 25.50, цена +10%
	res := PnL(avaxLong(5), 28.05)

	require.InDelta(t, 500.0, res.PnL, 1e-9)
	require.InDelta(t, 50.0, res.PnLPct, 1e-9)
	require.InDelta(t, 50.0, res.ROI, 1e-9)
}

func TestPnL_ZeroAtEntryPrice(t *testing.T) {
	p := avaxLong(5)
	res := PnL(p, p.EntryPrice)

	require.Zero(t, res.PnL)
	require.Zero(t, res.PnLPct)
	require.Zero(t, res.ROI)
}

func TestPnL_LinearInLeverage(t *testing.T) {
	// Удвоение плеча удваивает pnlPercentage при фиксированном изменении цены.
	res5 := PnL(avaxLong(5), 28.05)
	res10 := PnL(avaxLong(10), 28.05)

	require.InDelta(t, res5.PnLPct*2, res10.PnLPct, 1e-9)
	require.InDelta(t, res5.PnL*2, res10.PnL, 1e-9)
}

func TestPnL_ShortSignFlipped(t *testing.T) {
	long := avaxLong(5)
	short := long
	short.Direction = models.Short

	up := 28.05
	resLong := PnL(long, up)
	resShort := PnL(short, up)

	require.InDelta(t, -resLong.PnL, resShort.PnL, 1e-9)
	require.InDelta(t, -resLong.PnLPct, resShort.PnLPct, 1e-9)
	require.InDelta(t, -resLong.ROI, resShort.ROI, 1e-9)
}

func TestPnL_BreakevenOffsets24hFees(t *testing.T) {
	p := avaxLong(5)

	// size = 5000; комиссии за 24ч = 5000*(0.0001 + 0.0002*24) = 24.5;
	// 0.49% от номинала => лонг отбивается на 25.50*1.0049.
	res := PnL(p, p.EntryPrice)
	require.InDelta(t, 25.62495, res.BreakevenPrice, 1e-9)

	p.Direction = models.Short
	res = PnL(p, p.EntryPrice)
	require.InDelta(t, 25.37505, res.BreakevenPrice, 1e-9)
}

func TestPnL_BreakevenIndependentOfCurrentPrice(t *testing.T) {
	// Горизонт комиссий для breakeven зафиксирован (24ч), от сценария не зависит.
	p := avaxLong(5)

	a := PnL(p, 20)
	b := PnL(p, 30)
	require.Equal(t, a.BreakevenPrice, b.BreakevenPrice)
}
