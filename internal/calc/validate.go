package calc

import (
	"fmt"

	"perp_risk/internal/assets"
	"perp_risk/internal/models"
)

// ValidatePosition проверяет параметры позиции и накапливает ВСЕ нарушения,
// не останавливаясь на первом — вызывающий показывает их разом.
// Ничего не бросает: любое нарушение даёт IsValid=false.
func ValidatePosition(reg *assets.Registry, p models.PositionParams) models.ValidationResult {
	var errs []string

	asset, known := reg.Lookup(p.Symbol)
	if !known {
		errs = append(errs, fmt.Sprintf("unsupported asset: %q", p.Symbol))
	}

	if p.Collateral <= 0 {
		errs = append(errs, "collateral must be positive")
	}

	if p.Leverage < MinLeverage || p.Leverage > MaxLeverage {
		errs = append(errs, fmt.Sprintf("leverage must be between %.0fx and %.0fx", MinLeverage, MaxLeverage))
	}

	if p.EntryPrice <= 0 {
		errs = append(errs, "entry price must be positive")
	}

	if p.Direction != models.Long && p.Direction != models.Short {
		errs = append(errs, fmt.Sprintf("direction must be %q or %q", models.Long, models.Short))
	}

	// Проверка против лимита конкретного актива — только если актив нашёлся.
	if known && p.Leverage > asset.MaxLeverage {
		errs = append(errs, fmt.Sprintf("leverage %.0fx exceeds %.0fx max for %s", p.Leverage, asset.MaxLeverage, asset.Symbol))
	}

	return models.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
