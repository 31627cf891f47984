// Package main provides the Telnet server for the damage and turns-to-knockout
// calculator. Every connection gets its own roster, settings and opponent list.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ttkcalc/internal/config"
	"github.com/cory-johannsen/ttkcalc/internal/frontend/handlers"
	"github.com/cory-johannsen/ttkcalc/internal/frontend/telnet"
	"github.com/cory-johannsen/ttkcalc/internal/observability"
	"github.com/cory-johannsen/ttkcalc/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "ttkserver")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting calculator server",
		zap.String("telnet_addr", cfg.Telnet.Addr()),
		zap.String("formula", cfg.Calc.Formula),
	)

	calcHandler, err := handlers.NewCalcHandlerFromConfig(cfg.Calc, cfg.Telnet.Color, logger)
	if err != nil {
		logger.Fatal("building calculator", zap.Error(err))
	}
	telnetAcceptor := telnet.NewAcceptor(cfg.Telnet, calcHandler, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("telnet", &server.FuncService{
		StartFn: func() error {
			return telnetAcceptor.ListenAndServe()
		},
		StopFn: func() {
			telnetAcceptor.Stop()
		},
	})

	logger.Info("server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("telnet_addr", cfg.Telnet.Addr()),
		zap.Int("max_sessions", cfg.Telnet.MaxSessions),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
