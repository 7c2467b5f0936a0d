package assets

import (
	"sort"
	"strings"

	"perp_risk/internal/models"
)

// Registry — статический справочник активов и их годовых волатильностей.
// После создания не мутируется, поэтому безопасен для конкурентных читателей.
type Registry struct {
	bySymbol map[string]models.AssetConfig
	vol      map[string]float64
}

func New(cfgs []models.AssetConfig, vol map[string]float64) *Registry {
	r := &Registry{
		bySymbol: make(map[string]models.AssetConfig, len(cfgs)),
		vol:      make(map[string]float64, len(vol)),
	}
	for _, c := range cfgs {
		r.bySymbol[strings.ToUpper(c.Symbol)] = c
	}
	for s, v := range vol {
		r.vol[strings.ToUpper(s)] = v
	}
	return r
}

// Default — встроенный справочник (рынки GMX на Avalanche).
// Волатильности — статические оценки, ядро их не пересчитывает по истории.
func Default() *Registry {
	return New(
		[]models.AssetConfig{
			{
				Symbol:          "AVAX",
				Name:            "Avalanche",
				Address:         "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7",
				Decimals:        18,
				MinLeverage:     1,
				MaxLeverage:     30,
				DefaultLeverage: 5,
			},
			{
				Symbol:          "BTC",
				Name:            "Bitcoin (BTC.b)",
				Address:         "0x152b9d0FdC40C096757F570A51E494bd4b943E50",
				Decimals:        8,
				MinLeverage:     1,
				MaxLeverage:     50,
				DefaultLeverage: 10,
			},
			{
				Symbol:          "ETH",
				Name:            "Ethereum (WETH.e)",
				Address:         "0x49D5c2BdFfac6CE2BFdB6640F4F80f226bc10bAB",
				Decimals:        18,
				MinLeverage:     1,
				MaxLeverage:     50,
				DefaultLeverage: 10,
			},
		},
		map[string]float64{
			"AVAX": 0.85,
			"BTC":  0.55,
			"ETH":  0.65,
		},
	)
}

// Lookup ищет актив по символу без учёта регистра.
func (r *Registry) Lookup(symbol string) (models.AssetConfig, bool) {
	c, ok := r.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return c, ok
}

// Volatility возвращает статическую годовую волатильность актива.
func (r *Registry) Volatility(symbol string) (float64, bool) {
	v, ok := r.vol[strings.ToUpper(strings.TrimSpace(symbol))]
	return v, ok
}

// All возвращает активы, отсортированные по символу.
func (r *Registry) All() []models.AssetConfig {
	out := make([]models.AssetConfig, 0, len(r.bySymbol))
	for _, c := range r.bySymbol {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
