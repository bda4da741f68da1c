package usecases

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/metrics"
	"github.com/lintang-b-s/drivingroute/pkg/request"
	"go.uber.org/zap"
)

type RoutingService struct {
	log         *zap.Logger
	engine      RoutingEngine
	resultCache *lru.Cache[string, *engine.Result]
}

// NewRoutingService caches up to cacheSize results; cacheSize <= 0 disables the cache.
func NewRoutingService(log *zap.Logger, routingEngine RoutingEngine, cacheSize int) (*RoutingService, error) {
	rs := &RoutingService{
		log:    log,
		engine: routingEngine,
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, *engine.Result](cacheSize)
		if err != nil {
			return nil, err
		}
		rs.resultCache = cache
	}
	return rs, nil
}

// Route resolves req, answering repeated requests from the cache. The network never changes
// while the service runs, so cached results stay valid.
func (rs *RoutingService) Route(req *request.Request) (*engine.Result, bool, error) {
	key := req.String()
	if rs.resultCache != nil {
		// github.com/hashicorp/golang-lru/v2 is thread-safe
		if res, ok := rs.resultCache.Get(key); ok {
			metrics.ResultCacheHits.Inc()
			return res, true, nil
		}
	}

	res, err := rs.engine.Plan(req)
	if err != nil {
		return nil, false, err
	}
	if rs.resultCache != nil {
		rs.resultCache.Add(key, res)
	}
	return res, false, nil
}
