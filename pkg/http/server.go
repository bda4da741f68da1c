package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/drivingroute/pkg/http/router"
	"github.com/lintang-b-s/drivingroute/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/drivingroute/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use runs the routing API until ctx is cancelled and returns the first serving error.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	routingService controllers.RoutingService,
) error {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	var limiter *rate.Limiter
	if useRateLimit {
		limiter = rate.NewLimiter(rate.Limit(viper.GetFloat64("API_RATE_LIMIT")), viper.GetInt("API_RATE_BURST"))
	}

	server := http_router.NewAPI(log)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gCtx, config, limiter, routingService)
	})

	return g.Wait()
}

// GracefulShutdown returns a context that is cancelled on SIGINT or SIGTERM.
func GracefulShutdown(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
