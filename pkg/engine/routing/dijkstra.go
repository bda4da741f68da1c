package routing

import (
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/util"
)

// Dijkstra answers single-pair shortest path queries on one RoadGraph.
//
// Among locations with equal tentative travel time the lowest id is settled first. When several
// routes share the minimum travel time the returned one is therefore deterministic, but it is
// only "a" shortest route, not a canonical one.
type Dijkstra struct {
	graph RoadGraph

	info []vertexInfo
	pq   *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph RoadGraph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
		pq: da.NewFourAryHeap(func(a, b da.Index) bool {
			return a < b
		}),
	}
}

func (us *Dijkstra) NumSettledNodes() int {
	return us.numSettledNodes
}

// ShortestPath returns a shortest route from s to t, or nil when t is unreachable.
// s and t must be in [0, NumberOfVertices).
func (us *Dijkstra) ShortestPath(s, t da.Index) (*da.Route, error) {
	n := us.graph.NumberOfVertices()
	if int(s) >= n || int(t) >= n {
		return nil, util.WrapErrorf(da.ErrVertexOutOfRange, util.ErrBadParamInput,
			"shortest path %d -> %d on a graph with %d locations", s, t, n)
	}

	us.numSettledNodes = 0
	if s == t {
		return da.NewRoute([]da.Index{s}, 0), nil
	}

	us.preallocate(n)

	sNode := da.NewPriorityQueueNode(0, s)
	us.info[s].travelTime = 0
	us.info[s].labelled = true
	us.info[s].hnode = sNode
	us.pq.Insert(sNode)

	for !us.pq.IsEmpty() {
		uNode, _ := us.pq.ExtractMin()
		u := uNode.GetItem()
		us.info[u].settled = true
		us.numSettledNodes++

		if u == t {
			break
		}
		if err := us.relax(u); err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "relax location %d", u)
		}
	}

	if !us.info[t].settled {
		return nil, nil
	}
	return us.retrievePath(s, t), nil
}

// relax tries to improve every unsettled neighbour of u through a present segment.
func (us *Dijkstra) relax(u da.Index) error {
	var relaxErr error
	uTravelTime := us.info[u].travelTime
	us.graph.ForNeighborsOf(u, func(v da.Index, cost int) {
		if relaxErr != nil || us.info[v].settled {
			return
		}
		newTravelTime := uTravelTime + cost
		if us.info[v].labelled && newTravelTime >= us.info[v].travelTime {
			return
		}
		us.info[v].travelTime = newTravelTime
		us.info[v].parent = u
		if us.info[v].labelled {
			relaxErr = us.pq.DecreaseKey(us.info[v].hnode, newTravelTime)
			return
		}
		vNode := da.NewPriorityQueueNode(newTravelTime, v)
		us.info[v].labelled = true
		us.info[v].hnode = vNode
		us.pq.Insert(vNode)
	})
	return relaxErr
}

func (us *Dijkstra) retrievePath(s, t da.Index) *da.Route {
	path := make([]da.Index, 0, 8)
	for cur := t; cur != da.INVALID_VERTEX_ID; cur = us.info[cur].parent {
		path = append(path, cur)
		if len(path) > len(us.info) {
			break
		}
	}
	if path[len(path)-1] != s {
		return nil
	}
	return da.NewRoute(util.ReverseG(path), us.info[t].travelTime)
}

func (us *Dijkstra) preallocate(n int) {
	if cap(us.info) < n {
		us.info = make([]vertexInfo, n)
	}
	us.info = us.info[:n]
	for i := range us.info {
		us.info[i] = newVertexInfo()
	}
	us.pq.Preallocate(n)
}

// ShortestPath is a convenience wrapper for a one-off query.
func ShortestPath(g RoadGraph, s, t da.Index) (*da.Route, error) {
	return NewDijkstra(g).ShortestPath(s, t)
}
