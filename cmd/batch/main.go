package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/drivingroute/pkg/batch"
	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/logger"
	"github.com/lintang-b-s/drivingroute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	requestDir = flag.String("requests", "./requests", "directory holding *.txt request files")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := batch.NewRunner(routingEngine, logger, viper.GetInt("BATCH_WORKERS"))
	outcomes, err := runner.Run(ctx, *requestDir)
	if err != nil {
		logger.Fatal("failed to run batch", zap.Error(err))
	}

	failed := 0
	for _, out := range outcomes {
		if out.Err != nil {
			failed++
		}
	}
	logger.Info("Batch finished", zap.Int("requests", len(outcomes)), zap.Int("failed", failed))
	if failed > 0 {
		stop()
		logger.Sync()
		os.Exit(1)
	}
}
