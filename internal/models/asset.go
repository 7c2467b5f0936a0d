package models

// AssetConfig — статическая справочная запись по активу.
// Плечи в "иксах": границы проверяет валидатор, ядро их не пересчитывает.
type AssetConfig struct {
	Symbol          string  `yaml:"symbol" mapstructure:"symbol" json:"symbol"`
	Name            string  `yaml:"name" mapstructure:"name" json:"name"`
	Address         string  `yaml:"address" mapstructure:"address" json:"address"`
	Decimals        int     `yaml:"decimals" mapstructure:"decimals" json:"decimals"`
	MinLeverage     float64 `yaml:"min_leverage" mapstructure:"min_leverage" json:"minLeverage"`
	MaxLeverage     float64 `yaml:"max_leverage" mapstructure:"max_leverage" json:"maxLeverage"`
	DefaultLeverage float64 `yaml:"default_leverage" mapstructure:"default_leverage" json:"defaultLeverage"`
}

// RiskTolerance — профиль риска для подбора безопасного плеча.
type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "conservative"
	ToleranceModerate     RiskTolerance = "moderate"
	ToleranceAggressive   RiskTolerance = "aggressive"
)
