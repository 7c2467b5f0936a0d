package main

import (
	"context"
	"log"

	"perp_risk/internal/modules/config"
	"perp_risk/internal/modules/health"
	"perp_risk/internal/modules/riskapi"
	"perp_risk/pkg/logger"
	"perp_risk/pkg/tracing"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
		),
		config.Module(),
		fx.Invoke(setupObservability),
		health.Module(),
		riskapi.Module(),
	)
	if err := app.Err(); err != nil {
		log.Fatal(err)
	}
	app.Run()
}

func setupObservability(lc fx.Lifecycle, cfg *config.Config) error {
	logger.SetServiceName("perp_risk")
	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}

	if cfg.Jaeger.Enabled {
		_, closeTracer, err := tracing.InitTracer(tracing.Config{
			ServiceName: "perp_risk",
			Host:        cfg.Jaeger.Host,
			Port:        cfg.Jaeger.Port,
		})
		if err != nil {
			return err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				closeTracer()
				return nil
			},
		})
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Sync()
			return nil
		},
	})
	return nil
}
