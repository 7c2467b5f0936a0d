package calc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"perp_risk/internal/assets"
)

func TestPositionSize(t *testing.T) {
	require.Equal(t, 5000.0, PositionSize(1000, 5))
	require.Equal(t, 0.0, PositionSize(0, 5))
}

func TestMarginRequirement(t *testing.T) {
	require.Equal(t, 1000.0, MarginRequirement(5000, 5))
	require.Equal(t, 0.0, MarginRequirement(5000, 0))
}

func TestMaxPositionSize(t *testing.T) {
	reg := assets.Default()

	avax, ok := reg.Lookup("AVAX")
	require.True(t, ok)
	require.Equal(t, 30000.0, MaxPositionSize(1000, avax))
}
