package batch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lintang-b-s/drivingroute/pkg/concurrent"
	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/report"
	"github.com/lintang-b-s/drivingroute/pkg/request"
	"github.com/lintang-b-s/drivingroute/pkg/util"
	"go.uber.org/zap"
)

const (
	requestExt = ".txt"
	reportExt  = ".out"
)

type Outcome struct {
	RequestPath string
	ReportPath  string
	Err         error
}

// Runner resolves every request file of a directory against one engine.
type Runner struct {
	engine     *engine.Engine
	logger     *zap.Logger
	numWorkers int
}

func NewRunner(engine *engine.Engine, logger *zap.Logger, numWorkers int) *Runner {
	return &Runner{
		engine:     engine,
		logger:     logger,
		numWorkers: numWorkers,
	}
}

// Run writes "<name>.out" next to every "<name>.txt" in dir. One failing request does not stop
// the others; outcomes are returned sorted by request path.
func (r *Runner) Run(ctx context.Context, dir string) ([]Outcome, error) {
	requestPaths, err := listRequests(dir)
	if err != nil {
		return nil, err
	}
	r.logger.Info("Resolving request batch", zap.String("dir", dir),
		zap.Int("requests", len(requestPaths)), zap.Int("workers", r.numWorkers))

	outcomes := concurrent.Run(ctx, r.numWorkers, requestPaths, r.resolve)
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].RequestPath < outcomes[j].RequestPath
	})
	return outcomes, nil
}

func (r *Runner) resolve(ctx context.Context, requestPath string) Outcome {
	out := Outcome{
		RequestPath: requestPath,
		ReportPath:  strings.TrimSuffix(requestPath, requestExt) + reportExt,
	}
	if util.StopConcurrentOperation(ctx) {
		out.Err = ctx.Err()
		return out
	}

	req, err := request.ReadRequestFile(requestPath)
	if err != nil {
		out.Err = err
		r.logger.Error("failed to read request", zap.String("request", requestPath), zap.Error(err))
		return out
	}
	res, err := r.engine.Plan(req)
	if err != nil {
		out.Err = err
		r.logger.Error("failed to resolve request", zap.String("request", requestPath), zap.Error(err))
		return out
	}
	if err := report.WriteFile(out.ReportPath, res); err != nil {
		out.Err = err
		r.logger.Error("failed to write report", zap.String("report", out.ReportPath), zap.Error(err))
		return out
	}
	return out
}

func listRequests(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != requestExt {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
