package main

import (
	"strings"

	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/logger"
	"github.com/lintang-b-s/drivingroute/pkg/report"
	"github.com/lintang-b-s/drivingroute/pkg/request"
	"github.com/lintang-b-s/drivingroute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// planner resolves one request file against the distance table and writes the text report.
func main() {
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	distanceTablePath := viper.GetString("DISTANCE_TABLE_PATH")
	requestPath := viper.GetString("REQUEST_PATH")
	reportPath := viper.GetString("REPORT_PATH")

	var (
		graph *da.Graph
		req   *request.Request
	)
	g := errgroup.Group{}
	g.Go(func() error {
		var err error
		graph, err = da.ReadDistanceTable(distanceTablePath, viper.GetInt("GRAPH_CAPACITY"))
		return err
	})
	g.Go(func() error {
		var err error
		req, err = request.ReadRequestFile(requestPath)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Fatal("failed to read input", zap.Error(err))
	}

	logger.Debug("request parsed",
		zap.String("mode", req.GetMode()),
		zap.Uint32("source", uint32(req.GetSource())),
		zap.Uint32("destination", uint32(req.GetDestination())),
		zap.String("request", strings.ReplaceAll(req.String(), "\n", " ")),
		zap.Bool("restricted", req.IsRestricted()))

	network := graph.Freeze()
	logger.Info("Road network loaded",
		zap.Int("locations", network.NumberOfVertices()), zap.Int("segments", network.NumberOfEdges()),
		zap.Int("components", network.NumberOfComponents()))
	routingEngine := engine.NewEngine(network, logger)

	res, err := routingEngine.Plan(req)
	if err != nil {
		logger.Fatal("failed to resolve request", zap.Error(err))
	}

	if err := report.WriteFile(reportPath, res); err != nil {
		logger.Fatal("failed to write report", zap.String("report", reportPath), zap.Error(err))
	}
	logger.Info("Result saved", zap.String("report", reportPath))
}
