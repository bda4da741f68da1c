package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/drivingroute/pkg"
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunnerRun(t *testing.T) {
	g, err := da.NewGraph(pkg.DEFAULT_GRAPH_CAPACITY)
	require.NoError(t, err)
	require.NoError(t, g.InsertOrUpdateEdge(0, 1, 10))
	require.NoError(t, g.InsertOrUpdateEdge(1, 2, 10))
	require.NoError(t, g.InsertOrUpdateEdge(0, 2, 30))
	e := engine.NewEngine(g.Freeze(), zap.NewNop())

	dir := t.TempDir()
	plain := writeFile(t, dir, "a_plain.txt", "Mode:driving\nSource:0\nDestination:2\n")
	restricted := writeFile(t, dir, "b_restricted.txt",
		"Mode:driving\nSource:0\nDestination:2\nAvoidNodes:1\nAvoidSegments:\nIncludeNode:\n")
	outOfRange := writeFile(t, dir, "c_out_of_range.txt", "Source:0\nDestination:9\n")
	malformed := writeFile(t, dir, "d_malformed.txt", "Source:zero\nDestination:2\n")
	writeFile(t, dir, "notes.md", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755))

	outcomes, err := NewRunner(e, zap.NewNop(), 3).Run(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	assert.Equal(t, plain, outcomes[0].RequestPath)
	assert.NoError(t, outcomes[0].Err)
	got, err := os.ReadFile(filepath.Join(dir, "a_plain.out"))
	require.NoError(t, err)
	assert.Equal(t, "Source:0\nDestination:2\nBestDrivingRoute:0,1,2,(20)\nAlternativeDrivingRoute:0,2,(30)\n", string(got))

	assert.Equal(t, restricted, outcomes[1].RequestPath)
	assert.NoError(t, outcomes[1].Err)
	got, err = os.ReadFile(outcomes[1].ReportPath)
	require.NoError(t, err)
	assert.Equal(t, "Source:0\nDestination:2\nRestrictedDrivingRoute:0,2,(30)\n", string(got))

	assert.Equal(t, outOfRange, outcomes[2].RequestPath)
	assert.True(t, util.IsCode(outcomes[2].Err, util.ErrBadParamInput))
	assert.NoFileExists(t, outcomes[2].ReportPath)

	assert.Equal(t, malformed, outcomes[3].RequestPath)
	assert.True(t, util.IsCode(outcomes[3].Err, util.ErrBadParamInput))
	assert.NoFileExists(t, outcomes[3].ReportPath)
}

func TestRunnerMissingDir(t *testing.T) {
	g, err := da.NewGraph(4)
	require.NoError(t, err)
	e := engine.NewEngine(g.Freeze(), zap.NewNop())

	_, err = NewRunner(e, zap.NewNop(), 1).Run(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunnerCancelledContext(t *testing.T) {
	g, err := da.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.InsertOrUpdateEdge(0, 1, 1))
	e := engine.NewEngine(g.Freeze(), zap.NewNop())

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "Source:0\nDestination:1\n")
	writeFile(t, dir, "b.txt", "Source:1\nDestination:0\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := NewRunner(e, zap.NewNop(), 2).Run(ctx, dir)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	for _, out := range outcomes {
		assert.ErrorIs(t, out.Err, context.Canceled)
		assert.NoFileExists(t, out.ReportPath)
	}
}
