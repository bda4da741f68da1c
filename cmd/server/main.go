package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/http"
	"github.com/lintang-b-s/drivingroute/pkg/http/usecases"
	"github.com/lintang-b-s/drivingroute/pkg/logger"
	"github.com/lintang-b-s/drivingroute/pkg/metrics"
	"github.com/lintang-b-s/drivingroute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", true, "limit requests per second with API_RATE_LIMIT / API_RATE_BURST")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	routingEngine, err := engine.NewEngineFromFile(viper.GetString("DISTANCE_TABLE_PATH"),
		viper.GetInt("GRAPH_CAPACITY"), logger)
	if err != nil {
		logger.Fatal("failed to load road network", zap.Error(err))
	}
	routingEngine.SetObserver(metrics.NewPlanRecorder())

	routingService, err := usecases.NewRoutingService(logger, routingEngine, viper.GetInt("RESULT_CACHE_SIZE"))
	if err != nil {
		logger.Fatal("failed to create routing service", zap.Error(err))
	}

	ctx, stop := http.GracefulShutdown(context.Background())
	defer stop()

	api := http.NewServer(logger)
	if err := api.Use(ctx, logger, *useRateLimit, routingService); err != nil {
		logger.Error("Routing server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Routing server stopped")
}
