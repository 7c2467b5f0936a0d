package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"perp_risk/internal/assets"
	"perp_risk/internal/calc"
	"perp_risk/internal/helper"
	"perp_risk/internal/models"
)

// riskcalc — разовый расчёт риска позиции из командной строки.
//
// Пример:
//
//	riskcalc -asset AVAX -collateral 1000 -leverage 5 -entry 25.50 -price 28.05 -sl 24 -tp 30
type options struct {
	assetsFile string
	symbol     string
	collateral float64
	leverage   float64
	short      bool
	entry      float64
	price      float64
	hours      float64
	stopLoss   float64
	takeProfit float64
	volatility float64
	tolerance  string
	asJSON     bool
}

type report struct {
	Params       models.PositionParams    `json:"params"`
	PositionSize float64                  `json:"positionSize"`
	Liquidation  models.LiquidationResult `json:"liquidation"`
	Fees         models.FeeResult         `json:"fees"`
	PnL          *models.PnLResult        `json:"pnl,omitempty"`
	RiskReward   *models.RiskRewardResult `json:"riskReward,omitempty"`
	SafeLeverage float64                  `json:"safeLeverage"`
}

func main() {
	var opts options
	flag.StringVar(&opts.assetsFile, "assets", "", "YAML со справочником активов (пусто => встроенный)")
	flag.StringVar(&opts.symbol, "asset", "AVAX", "символ актива")
	flag.Float64Var(&opts.collateral, "collateral", 1000, "залог, USD")
	flag.Float64Var(&opts.leverage, "leverage", 0, "плечо (0 => дефолт актива)")
	flag.BoolVar(&opts.short, "short", false, "шорт вместо лонга")
	flag.Float64Var(&opts.entry, "entry", 0, "цена входа")
	flag.Float64Var(&opts.price, "price", 0, "гипотетическая текущая цена (0 => не считать PnL)")
	flag.Float64Var(&opts.hours, "hours", 24, "горизонт удержания для комиссий, часов")
	flag.Float64Var(&opts.stopLoss, "sl", 0, "стоп-лосс (0 => не считать risk/reward)")
	flag.Float64Var(&opts.takeProfit, "tp", 0, "тейк-профит")
	flag.Float64Var(&opts.volatility, "vol", 0, "годовая волатильность (0 => из справочника)")
	flag.StringVar(&opts.tolerance, "tolerance", "moderate", "профиль риска: conservative|moderate|aggressive")
	flag.BoolVar(&opts.asJSON, "json", false, "вывод в JSON")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "riskcalc: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	reg := assets.Default()
	if opts.assetsFile != "" {
		var err error
		reg, err = assets.LoadFile(opts.assetsFile)
		if err != nil {
			return errors.Wrap(err, "load assets")
		}
	}

	asset, ok := reg.Lookup(opts.symbol)
	if !ok {
		return errors.Errorf("unsupported asset: %q", opts.symbol)
	}
	if opts.leverage == 0 {
		opts.leverage = asset.DefaultLeverage
	}

	direction := models.Long
	if opts.short {
		direction = models.Short
	}
	params := models.PositionParams{
		Symbol:     asset.Symbol,
		Collateral: opts.collateral,
		Leverage:   opts.leverage,
		Direction:  direction,
		EntryPrice: opts.entry,
	}

	if v := calc.ValidatePosition(reg, params); !v.IsValid {
		return errors.Errorf("invalid position:\n  - %s", strings.Join(v.Errors, "\n  - "))
	}

	liq, err := calc.LiquidationPrice(reg, params)
	if err != nil {
		return err
	}

	vol := opts.volatility
	if vol == 0 {
		vol, ok = reg.Volatility(asset.Symbol)
		if !ok {
			return errors.Errorf("no volatility data for %s, pass -vol", asset.Symbol)
		}
	}
	safeLev, err := calc.SafeLeverage(reg, asset.Symbol, vol, models.RiskTolerance(opts.tolerance))
	if err != nil {
		return err
	}

	rep := report{
		Params:       params,
		PositionSize: calc.PositionSize(params.Collateral, params.Leverage),
		Liquidation:  liq,
		Fees:         calc.TotalFees(params, opts.hours),
		SafeLeverage: safeLev,
	}
	if opts.price > 0 {
		pnl := calc.PnL(params, opts.price)
		rep.PnL = &pnl
	}
	if opts.stopLoss > 0 && opts.takeProfit > 0 {
		if opts.stopLoss == params.EntryPrice {
			return errors.New("stop loss must differ from entry price")
		}
		rr := calc.RiskReward(params, opts.stopLoss, opts.takeProfit)
		rep.RiskReward = &rr
	}

	if opts.asJSON {
		data, err := sonic.MarshalIndent(rep, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal report")
		}
		fmt.Println(string(data))
		return nil
	}

	printReport(rep, opts.hours)
	return nil
}

func printReport(rep report, hours float64) {
	p := rep.Params
	fmt.Printf("Позиция: %s %s, залог %s USD, плечо %sx, вход %s\n",
		p.Symbol, p.Direction, helper.F2(p.Collateral), helper.F2(p.Leverage), helper.F2(p.EntryPrice))
	fmt.Printf("Номинал: %s USD\n\n", helper.F2(rep.PositionSize))

	fmt.Printf("Ликвидация: %.4f (дистанция %.4f, %s%%; маржа %s%%)\n",
		rep.Liquidation.LiquidationPrice,
		rep.Liquidation.Distance,
		helper.F2(rep.Liquidation.DistancePct),
		helper.F2(rep.Liquidation.MarginRatioPct),
	)

	fmt.Printf("Комиссии за %s ч: position %.4f + borrowing %.4f + funding %.4f = %.4f USD\n",
		helper.F2(hours), rep.Fees.PositionFee, rep.Fees.BorrowingFee, rep.Fees.FundingFee, rep.Fees.Total)

	if rep.PnL != nil {
		fmt.Printf("PnL: %s USD (%s%%), ROI %s%%, breakeven %.4f\n",
			helper.F2(rep.PnL.PnL), helper.F2(rep.PnL.PnLPct), helper.F2(rep.PnL.ROI), rep.PnL.BreakevenPrice)
	}
	if rep.RiskReward != nil {
		rr := rep.RiskReward
		fmt.Printf("Risk/Reward: %s (риск %.4f / прибыль %.4f), P(profit) %s%%, EV %.4f\n",
			helper.F2(rr.Ratio), rr.MaxLoss, rr.MaxProfit, helper.F2(rr.ProbabilityOfProfit*100), rr.ExpectedValue)
	}
	fmt.Printf("Безопасное плечо: %sx\n", helper.F2(rep.SafeLeverage))
}
