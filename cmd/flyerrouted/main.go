// Command flyerrouted runs the flyer-route-planning HTTP service: a thin
// fiber server wiring internal/config, internal/planner, and
// internal/transport together behind the request/response contract.
package main

import (
	"log"
	"strconv"

	"go.uber.org/zap"

	"github.com/flyermap/planner/internal/config"
	"github.com/flyermap/planner/internal/planner"
	"github.com/flyermap/planner/internal/provider"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("flyerrouted: loading config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("flyerrouted: building logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	static := &provider.StaticProvider{}
	orch := &planner.Orchestrator{
		Roads:                static,
		Buildings:            static,
		Store:                planner.NewStore(),
		Logger:               logger,
		ProviderTimeout:      cfg.ProviderTimeout,
		BuildingMaxDistanceM: cfg.BuildingMaxDistanceM,
	}

	app := newApp(orch, logger)

	addr := cfg.Host + ":" + strconv.Itoa(cfg.Port)
	logger.Info("flyerrouted listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("flyerrouted: server stopped", zap.Error(err))
	}
}
