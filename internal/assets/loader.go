package assets

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"perp_risk/internal/models"
)

type fileSchema struct {
	Assets     []models.AssetConfig `mapstructure:"assets"`
	Volatility map[string]float64   `mapstructure:"volatility"`
}

// LoadFile читает справочник активов из YAML (формат — configs/assets.yaml).
// Пустой путь в конфиге означает встроенный справочник, сюда не попадает.
func LoadFile(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read assets file %s", path)
	}

	var schema fileSchema
	if err := v.Unmarshal(&schema); err != nil {
		return nil, errors.Wrap(err, "unmarshal assets file")
	}

	if len(schema.Assets) == 0 {
		return nil, errors.Errorf("assets file %s: empty asset list", path)
	}
	for i, a := range schema.Assets {
		if err := checkAsset(a); err != nil {
			return nil, errors.Wrapf(err, "assets[%d]", i)
		}
	}
	for s, vol := range schema.Volatility {
		if vol <= 0 || vol > 1 {
			return nil, errors.Errorf("volatility[%s]: must be in (0, 1], got %v", s, vol)
		}
	}

	return New(schema.Assets, schema.Volatility), nil
}

func checkAsset(a models.AssetConfig) error {
	if a.Symbol == "" {
		return fmt.Errorf("empty symbol")
	}
	if a.Decimals <= 0 {
		return fmt.Errorf("%s: decimals <= 0", a.Symbol)
	}
	if a.MinLeverage < 1 {
		return fmt.Errorf("%s: min_leverage < 1", a.Symbol)
	}
	if a.MaxLeverage < a.MinLeverage {
		return fmt.Errorf("%s: max_leverage < min_leverage", a.Symbol)
	}
	if a.DefaultLeverage < a.MinLeverage || a.DefaultLeverage > a.MaxLeverage {
		return fmt.Errorf("%s: default_leverage outside [min, max]", a.Symbol)
	}
	return nil
}
