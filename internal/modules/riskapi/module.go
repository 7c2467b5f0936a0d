package riskapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"

	"perp_risk/internal/assets"
	appcfg "perp_risk/internal/modules/config"
	healthsvc "perp_risk/internal/modules/health/service"
	"perp_risk/internal/modules/riskapi/service"
	"perp_risk/pkg/logger"
)

// newRegistry: справочник активов — либо встроенный, либо YAML из конфига.
func newRegistry(cfg *appcfg.Config) (*assets.Registry, error) {
	if cfg.AssetsFile == "" {
		return assets.Default(), nil
	}
	return assets.LoadFile(cfg.AssetsFile)
}

func RunHTTP(lc fx.Lifecycle, cfg *appcfg.Config, h http.Handler, state *healthsvc.State) {
	addr := fmt.Sprintf("%s:%d", cfg.Service.Host, cfg.Service.PublicPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			go func() { _ = srv.Serve(ln) }()
			state.SetReady(true)
			logger.Info("risk api listening on %s", addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			state.SetReady(false)
			return srv.Shutdown(ctx)
		},
	})
}

func Module() fx.Option {
	return fx.Module("riskapi",
		fx.Provide(
			newRegistry,
			service.New,
			service.NewHandler,
		),
		fx.Invoke(RunHTTP),
	)
}
