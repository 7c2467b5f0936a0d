package service

import (
	"fmt"
	"time"

	"perp_risk/internal/assets"
	"perp_risk/internal/calc"
	"perp_risk/internal/models"
	appcfg "perp_risk/internal/modules/config"
	healthsvc "perp_risk/internal/modules/health/service"
)

// Service — тонкая обёртка над чистым ядром calc для HTTP-слоя:
// подставляет дефолты из конфига и отмечает расчёты в health-state.
// Сама ничего не считает и не кэширует.
type Service struct {
	reg   *assets.Registry
	state *healthsvc.State

	defaultHoldHours float64
	defaultTolerance models.RiskTolerance
}

func New(cfg *appcfg.Config, reg *assets.Registry, state *healthsvc.State) *Service {
	return &Service{
		reg:              reg,
		state:            state,
		defaultHoldHours: cfg.DefaultHoldHours,
		defaultTolerance: models.RiskTolerance(cfg.DefaultTolerance),
	}
}

func (s *Service) Registry() *assets.Registry { return s.reg }

func (s *Service) Validate(p models.PositionParams) models.ValidationResult {
	return calc.ValidatePosition(s.reg, p)
}

func (s *Service) Liquidation(p models.PositionParams) (models.LiquidationResult, error) {
	res, err := calc.LiquidationPrice(s.reg, p)
	if err != nil {
		return models.LiquidationResult{}, err
	}
	s.touch()
	return res, nil
}

func (s *Service) PnL(p models.PositionParams, currentPrice float64) models.PnLResult {
	defer s.touch()
	return calc.PnL(p, currentPrice)
}

// Fees: hours == nil означает горизонт по умолчанию из конфига.
func (s *Service) Fees(p models.PositionParams, hours *float64) models.FeeResult {
	h := s.defaultHoldHours
	if hours != nil {
		h = *hours
	}
	defer s.touch()
	return calc.TotalFees(p, h)
}

func (s *Service) RiskReward(p models.PositionParams, stopLoss, takeProfit float64) (models.RiskRewardResult, error) {
	// Нулевая дистанция стопа уводит ratio в +Inf — отсекаем на границе API,
	// ядро этот край осознанно не обрабатывает.
	if stopLoss == p.EntryPrice {
		return models.RiskRewardResult{}, fmt.Errorf("stop loss must differ from entry price")
	}
	defer s.touch()
	return calc.RiskReward(p, stopLoss, takeProfit), nil
}

// SafeLeverage: volatility == 0 берётся из статического справочника,
// пустой tolerance — из конфига.
func (s *Service) SafeLeverage(symbol string, volatility float64, tolerance models.RiskTolerance) (float64, error) {
	if volatility == 0 {
		v, ok := s.reg.Volatility(symbol)
		if !ok {
			return 0, fmt.Errorf("no volatility data for %q, pass it explicitly", symbol)
		}
		volatility = v
	}
	if tolerance == "" {
		tolerance = s.defaultTolerance
	}

	rec, err := calc.SafeLeverage(s.reg, symbol, volatility, tolerance)
	if err != nil {
		return 0, err
	}
	s.touch()
	return rec, nil
}

func (s *Service) Assets() []models.AssetConfig { return s.reg.All() }

func (s *Service) touch() {
	if s.state != nil {
		s.state.TouchCalc(time.Now())
	}
}
