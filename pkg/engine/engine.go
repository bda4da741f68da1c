package engine

import (
	"time"

	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/engine/routing"
	"github.com/lintang-b-s/drivingroute/pkg/request"
	"github.com/lintang-b-s/drivingroute/pkg/util"
	"go.uber.org/zap"
)

// PlanObserver is notified after every resolved request.
type PlanObserver interface {
	ObservePlan(restricted bool, routesFound int, elapsed time.Duration)
}

// Engine resolves requests against one immutable road network. It is safe for concurrent use:
// each request works on its own copy of the network.
type Engine struct {
	network  *da.RoadNetwork
	logger   *zap.Logger
	observer PlanObserver
}

func NewEngine(network *da.RoadNetwork, logger *zap.Logger) *Engine {
	return &Engine{
		network: network,
		logger:  logger,
	}
}

// NewEngineFromFile reads the distance table and freezes it into the engine's network.
func NewEngineFromFile(distanceTablePath string, capacity int, logger *zap.Logger) (*Engine, error) {
	logger.Info("Reading distance table", zap.String("distanceTablePath", distanceTablePath))
	g, err := da.ReadDistanceTable(distanceTablePath, capacity)
	if err != nil {
		return nil, err
	}
	network := g.Freeze()
	logger.Info("Road network loaded",
		zap.Int("locations", network.NumberOfVertices()), zap.Int("segments", network.NumberOfEdges()),
		zap.Int("components", network.NumberOfComponents()))
	return NewEngine(network, logger), nil
}

func (e *Engine) SetObserver(observer PlanObserver) {
	e.observer = observer
}

func (e *Engine) GetNetwork() *da.RoadNetwork {
	return e.network
}

// Plan validates req and resolves it. A missing route is reported inside the Result, never
// as an error.
func (e *Engine) Plan(req *request.Request) (*Result, error) {
	start := time.Now()
	if err := request.Validate(req, e.network.NumberOfVertices()); err != nil {
		return nil, err
	}

	var (
		res *Result
		err error
	)
	if req.IsRestricted() {
		res, err = e.planRestricted(req)
	} else {
		res, err = e.planPlain(req)
	}
	if err != nil {
		return nil, err
	}

	found := 0
	for _, nr := range res.routes {
		if nr.Route != nil {
			found++
		}
	}
	elapsed := time.Since(start)
	e.logger.Debug("request resolved",
		zap.Bool("restricted", res.restricted), zap.Int("routesFound", found), zap.Duration("elapsed", elapsed))
	if e.observer != nil {
		e.observer.ObservePlan(res.restricted, found, elapsed)
	}
	return res, nil
}

// planRestricted applies exclusions to a working copy, then routes directly or via the
// forced waypoint.
func (e *Engine) planRestricted(req *request.Request) (*Result, error) {
	s, t := req.GetSource(), req.GetDestination()
	w, via := req.GetIncludeNode()
	if !e.network.Connected(s, t) || (via && !e.network.Connected(s, w)) {
		e.logger.Debug("restricted mode: locations are disconnected")
		return newRestrictedResult(s, t, nil), nil
	}
	working := e.network.WorkingCopy()

	if err := routing.ExcludeNodes(working, req.GetAvoidNodes()); err != nil {
		return nil, err
	}
	if err := routing.ExcludeSegments(working, req.GetAvoidSegments()); err != nil {
		return nil, err
	}

	var (
		route *da.Route
		err   error
	)
	if via {
		e.logger.Debug("restricted mode via waypoint", zap.Uint32("waypoint", uint32(w)))
		route, err = routing.RouteVia(working, s, t, w)
	} else {
		router := routing.NewDijkstra(working)
		route, err = router.ShortestPath(s, t)
		e.logger.Debug("restricted mode", zap.Int("settled", router.NumSettledNodes()))
	}
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "restricted route %d -> %d", s, t)
	}
	return newRestrictedResult(s, t, route), nil
}

// planPlain finds the best route on the untouched network, then the alternative on a working
// copy with the best route stripped out.
func (e *Engine) planPlain(req *request.Request) (*Result, error) {
	s, t := req.GetSource(), req.GetDestination()
	e.logger.Debug("plain mode")
	if !e.network.Connected(s, t) {
		return newPlainResult(s, t, nil, nil), nil
	}

	bestRouter := routing.NewDijkstra(e.network)
	best, err := bestRouter.ShortestPath(s, t)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "best route %d -> %d", s, t)
	}

	working := e.network.WorkingCopy()
	if err := routing.StripRoute(working, best); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "strip best route")
	}
	alternativeRouter := routing.NewDijkstra(working)
	alternative, err := alternativeRouter.ShortestPath(s, t)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "alternative route %d -> %d", s, t)
	}
	e.logger.Debug("plain mode searched",
		zap.Int("bestSettled", bestRouter.NumSettledNodes()),
		zap.Int("alternativeSettled", alternativeRouter.NumSettledNodes()))
	return newPlainResult(s, t, best, alternative), nil
}
