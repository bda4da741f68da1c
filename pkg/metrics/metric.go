package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry of the routing service.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Plans counts resolved requests by mode and by how many of their routes exist.
	Plans = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_plans_total", Help: "Resolved routing requests."},
		[]string{"mode", "routes_found"},
	)
	PlanDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "route_plan_duration_seconds", Help: "Time to resolve one routing request.",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05}},
		[]string{"mode"},
	)
	ResultCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "route_result_cache_hits_total", Help: "Requests answered from the result cache."},
	)
)

var regOnce sync.Once

func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Plans)
		Registry.MustRegister(PlanDuration)
		Registry.MustRegister(ResultCacheHits)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// PlanRecorder feeds planner outcomes into Plans and PlanDuration.
type PlanRecorder struct{}

func NewPlanRecorder() *PlanRecorder {
	return &PlanRecorder{}
}

func (PlanRecorder) ObservePlan(restricted bool, routesFound int, elapsed time.Duration) {
	mode := "plain"
	if restricted {
		mode = "restricted"
	}
	Plans.WithLabelValues(mode, strconv.Itoa(routesFound)).Inc()
	PlanDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}
