package routing

import (
	"math/rand"
	"strings"
	"testing"

	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge struct {
	from, to da.Index
	cost     int
}

func buildGraph(t *testing.T, capacity int, edges []edge) *da.Graph {
	t.Helper()
	g, err := da.NewGraph(capacity)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.InsertOrUpdateEdge(e.from, e.to, e.cost))
	}
	return g
}

func triangle(t *testing.T) *da.Graph {
	return buildGraph(t, 10, []edge{{0, 1, 10}, {1, 2, 10}, {0, 2, 30}})
}

func routeCost(t *testing.T, g RoadGraph, path []da.Index) int {
	t.Helper()
	total := 0
	for i := 0; i+1 < len(path); i++ {
		found := false
		g.ForNeighborsOf(path[i], func(v da.Index, cost int) {
			if v == path[i+1] {
				total += cost
				found = true
			}
		})
		require.True(t, found, "segment (%d,%d) is not in the graph", path[i], path[i+1])
	}
	return total
}

// bruteForce returns the cheapest simple path cost from s to t, or -1 when there is none.
func bruteForce(g *da.Graph, s, t da.Index) int {
	best := -1
	visited := make([]bool, g.NumberOfVertices())
	var dfs func(u da.Index, cost int)
	dfs = func(u da.Index, cost int) {
		if u == t {
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		visited[u] = true
		g.ForNeighborsOf(u, func(v da.Index, c int) {
			if !visited[v] {
				dfs(v, cost+c)
			}
		})
		visited[u] = false
	}
	dfs(s, 0)
	return best
}

func randomGraph(t *testing.T, rng *rand.Rand, n int, density float64) *da.Graph {
	edges := []edge{}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if rng.Float64() < density {
				edges = append(edges, edge{da.Index(a), da.Index(b), rng.Intn(20)})
			}
		}
	}
	g := buildGraph(t, n, edges)
	// make sure every id is counted even when its row is empty
	require.NoError(t, g.InsertOrUpdateEdge(da.Index(n-1), da.Index(n-1), 0))
	return g
}

func TestShortestPath(t *testing.T) {
	g := buildGraph(t, 10, []edge{{0, 1, 10}, {1, 2, 10}, {0, 2, 30}, {3, 4, 1}})

	testCases := []struct {
		name     string
		s, t     da.Index
		wantPath []da.Index
		wantCost int
		noRoute  bool
	}{
		{name: "via intermediate", s: 0, t: 2, wantPath: []da.Index{0, 1, 2}, wantCost: 20},
		{name: "reverse direction", s: 2, t: 0, wantPath: []da.Index{2, 1, 0}, wantCost: 20},
		{name: "source equals destination", s: 1, t: 1, wantPath: []da.Index{1}, wantCost: 0},
		{name: "different component", s: 0, t: 4, noRoute: true},
		{name: "isolated pair", s: 3, t: 4, wantPath: []da.Index{3, 4}, wantCost: 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			route, err := ShortestPath(g, tt.s, tt.t)
			require.NoError(t, err)
			if tt.noRoute {
				assert.Nil(t, route)
				return
			}
			require.NotNil(t, route)
			assert.Equal(t, tt.wantPath, route.GetPath())
			assert.Equal(t, tt.wantCost, route.GetTravelTime())
		})
	}
}

func TestShortestPathRejectsUnknownLocations(t *testing.T) {
	g := triangle(t)
	_, err := ShortestPath(g, 0, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, da.ErrVertexOutOfRange)
	assert.True(t, util.IsCode(err, util.ErrBadParamInput))

	_, err = ShortestPath(g, 7, 0)
	assert.ErrorIs(t, err, da.ErrVertexOutOfRange)
}

func TestShortestPathZeroCostSegments(t *testing.T) {
	g := buildGraph(t, 5, []edge{{0, 1, 0}, {1, 2, 0}, {0, 2, 1}})
	route, err := ShortestPath(g, 0, 2)
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.Equal(t, 0, route.GetTravelTime())
	assert.Equal(t, []da.Index{0, 1, 2}, route.GetPath())
}

// With equal-cost alternatives the lowest id is settled first, so the route through the lower
// id wins. This is one shortest route among several.
func TestShortestPathTieBreakIsDeterministic(t *testing.T) {
	g := buildGraph(t, 10, []edge{{0, 2, 5}, {2, 3, 5}, {0, 1, 5}, {1, 3, 5}})

	for i := 0; i < 5; i++ {
		route, err := ShortestPath(g, 0, 3)
		require.NoError(t, err)
		require.NotNil(t, route)
		assert.Equal(t, []da.Index{0, 1, 3}, route.GetPath())
		assert.Equal(t, 10, route.GetTravelTime())
	}
}

func TestShortestPathMatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 60; iter++ {
		n := 2 + rng.Intn(7)
		g := randomGraph(t, rng, n, 0.45)
		router := NewDijkstra(g)

		for s := 0; s < n; s++ {
			for d := 0; d < n; d++ {
				route, err := router.ShortestPath(da.Index(s), da.Index(d))
				require.NoError(t, err)
				want := bruteForce(g, da.Index(s), da.Index(d))
				if want < 0 {
					assert.Nil(t, route, "iter %d: %d -> %d should be unreachable", iter, s, d)
					continue
				}
				require.NotNil(t, route, "iter %d: %d -> %d should be reachable", iter, s, d)
				assert.Equal(t, want, route.GetTravelTime())
				assert.Equal(t, route.GetTravelTime(), routeCost(t, g, route.GetPath()))
				assert.Equal(t, da.Index(s), route.Source())
				assert.Equal(t, da.Index(d), route.Destination())

				seen := map[da.Index]bool{}
				for _, v := range route.GetPath() {
					assert.False(t, seen[v], "location %d repeated", v)
					seen[v] = true
				}
			}
		}
	}
}

func TestShortestPathLargeCostsDoNotOverflow(t *testing.T) {
	edges := make([]edge, 0, 9)
	for v := 0; v < 9; v++ {
		edges = append(edges, edge{da.Index(v), da.Index(v + 1), da.MAX_COST})
	}
	g := buildGraph(t, 10, edges)

	route, err := ShortestPath(g, 0, 9)
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.Equal(t, 9*da.MAX_COST, route.GetTravelTime())
	assert.Positive(t, route.GetTravelTime())

	_, err = da.ParseDistanceTable(strings.NewReader("a,b,c\n0,1,9223372036854775807\n1,2,1\n"), 10)
	assert.ErrorIs(t, err, da.ErrCostTooLarge)
}

func TestNumSettledNodes(t *testing.T) {
	g := buildGraph(t, 10, []edge{{0, 1, 10}, {1, 2, 10}, {0, 2, 30}, {2, 3, 100}})
	router := NewDijkstra(g)

	_, err := router.ShortestPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, router.NumSettledNodes())

	_, err = router.ShortestPath(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, router.NumSettledNodes())
}

func TestRelaxReportsHeapErrors(t *testing.T) {
	g := triangle(t)
	router := NewDijkstra(g)
	router.preallocate(g.NumberOfVertices())

	router.info[0].settled = true
	// location 2 carries a label whose heap node was never inserted
	router.info[2].labelled = true
	router.info[2].travelTime = 100
	router.info[2].hnode = da.NewPriorityQueueNode(100, da.Index(2))

	assert.Error(t, router.relax(0))
}
