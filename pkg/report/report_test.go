package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/drivingroute/pkg"
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	g, err := da.NewGraph(pkg.DEFAULT_GRAPH_CAPACITY)
	require.NoError(t, err)
	require.NoError(t, g.InsertOrUpdateEdge(0, 1, 10))
	require.NoError(t, g.InsertOrUpdateEdge(1, 2, 10))
	require.NoError(t, g.InsertOrUpdateEdge(0, 2, 30))
	require.NoError(t, g.InsertOrUpdateEdge(3, 3, 0))
	return engine.NewEngine(g.Freeze(), zap.NewNop())
}

func TestWrite(t *testing.T) {
	e := newEngine(t)

	testCases := []struct {
		name string
		req  *request.Request
		want string
	}{
		{
			name: "plain",
			req:  request.NewRequest(0, 2),
			want: "Source:0\nDestination:2\nBestDrivingRoute:0,1,2,(20)\nAlternativeDrivingRoute:0,2,(30)\n",
		},
		{
			name: "restricted",
			req:  request.NewRequest(0, 2, request.WithAvoidNodes(1)),
			want: "Source:0\nDestination:2\nRestrictedDrivingRoute:0,2,(30)\n",
		},
		{
			name: "plain unreachable",
			req:  request.NewRequest(0, 3),
			want: "Source:0\nDestination:3\nBestDrivingRoute:none\nAlternativeDrivingRoute:none\n",
		},
		{
			name: "restricted unreachable",
			req:  request.NewRequest(0, 3, request.WithIncludeNode(1)),
			want: "Source:0\nDestination:3\nRestrictedDrivingRoute:none\n",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Plan(tt.req)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, res))
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.want, Format(res))
		})
	}
}

func TestFormatRoute(t *testing.T) {
	assert.Equal(t, "none", FormatRoute(nil))
	assert.Equal(t, "3,(0)", FormatRoute(da.NewRoute([]da.Index{3}, 0)))
}

func TestWriteFile(t *testing.T) {
	e := newEngine(t)
	res, err := e.Plan(request.NewRequest(0, 2, request.WithAvoidSegments(da.NewSegment(0, 2))))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
	require.NoError(t, WriteFile(path, res))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Source:0\nDestination:2\nRestrictedDrivingRoute:0,1,2,(20)\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.Error(t, WriteFile(filepath.Join(dir, "missing", "output.txt"), res))
}
