package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_LookupCaseInsensitive(t *testing.T) {
	reg := Default()

	for _, s := range []string{"AVAX", "avax", " Avax "} {
		a, ok := reg.Lookup(s)
		require.True(t, ok, "symbol %q", s)
		require.Equal(t, "AVAX", a.Symbol)
	}

	_, ok := reg.Lookup("DOGE")
	require.False(t, ok)
}

func TestDefault_TableSanity(t *testing.T) {
	reg := Default()

	for _, a := range reg.All() {
		require.NotEmpty(t, a.Address, a.Symbol)
		require.Positive(t, a.Decimals, a.Symbol)
		require.GreaterOrEqual(t, a.MinLeverage, 1.0, a.Symbol)
		require.GreaterOrEqual(t, a.MaxLeverage, a.MinLeverage, a.Symbol)
		require.GreaterOrEqual(t, a.DefaultLeverage, a.MinLeverage, a.Symbol)
		require.LessOrEqual(t, a.DefaultLeverage, a.MaxLeverage, a.Symbol)
	}
}

func TestAll_SortedBySymbol(t *testing.T) {
	reg := Default()

	all := reg.All()
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].Symbol, all[i].Symbol)
	}
}

func TestVolatility(t *testing.T) {
	reg := Default()

	v, ok := reg.Volatility("avax")
	require.True(t, ok)
	require.Equal(t, 0.85, v)

	_, ok = reg.Volatility("DOGE")
	require.False(t, ok)
}
