package datastructure

import (
	"errors"
	"fmt"
	"math"
)

type Index uint32

const INVALID_VERTEX_ID Index = math.MaxUint32

// MAX_COST bounds a single segment's travel time. A route visits fewer than capacity locations
// and capacity*capacity cells must fit in memory, so summing segment costs along any route, or
// along two joined routes, stays far below math.MaxInt.
const MAX_COST = math.MaxInt32

var (
	ErrNegativeCost        = errors.New("datastructure: travel time must be non-negative")
	ErrCostTooLarge        = errors.New("datastructure: travel time exceeds the maximum segment cost")
	ErrVertexOutOfCapacity = errors.New("datastructure: location id exceeds graph capacity")
	ErrVertexOutOfRange    = errors.New("datastructure: location id is not part of the graph")
	ErrInvalidCapacity     = errors.New("datastructure: graph capacity must be positive")
	ErrSnapshotMismatch    = errors.New("datastructure: snapshot was taken from a graph of different capacity")
)

// cell is one entry of the cost matrix. ok == false means there is no road segment.
type cell struct {
	cost int
	ok   bool
}

// Graph is a dense, symmetric cost matrix over locations [0, capacity).
// Every mutation writes both (a,b) and (b,a) before returning.
type Graph struct {
	capacity    int
	numVertices int
	costs       []cell // row-major, capacity*capacity
}

func NewGraph(capacity int) (*Graph, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	g := &Graph{
		capacity: capacity,
		costs:    make([]cell, capacity*capacity),
	}
	for i := 0; i < capacity; i++ {
		g.costs[g.offset(Index(i), Index(i))] = cell{cost: 0, ok: true}
	}
	return g, nil
}

func (g *Graph) offset(a, b Index) int {
	return int(a)*g.capacity + int(b)
}

func (g *Graph) Capacity() int {
	return g.capacity
}

// NumberOfVertices is one plus the largest location id seen in an inserted edge.
func (g *Graph) NumberOfVertices() int {
	return g.numVertices
}

func (g *Graph) IsValidVertex(v Index) bool {
	return int(v) < g.numVertices
}

// InsertOrUpdateEdge sets the travel time of the segment {a,b} in both directions.
// A self-loop leaves the diagonal at zero but still extends the vertex count.
func (g *Graph) InsertOrUpdateEdge(a, b Index, cost int) error {
	if cost < 0 {
		return fmt.Errorf("%w: segment (%d,%d) has cost %d", ErrNegativeCost, a, b, cost)
	}
	if cost > MAX_COST {
		return fmt.Errorf("%w: segment (%d,%d) has cost %d, maximum is %d", ErrCostTooLarge, a, b, cost, MAX_COST)
	}
	if int(a) >= g.capacity || int(b) >= g.capacity {
		return fmt.Errorf("%w: segment (%d,%d), capacity %d", ErrVertexOutOfCapacity, a, b, g.capacity)
	}

	if a != b {
		g.costs[g.offset(a, b)] = cell{cost: cost, ok: true}
		g.costs[g.offset(b, a)] = cell{cost: cost, ok: true}
	}

	if int(a) >= g.numVertices {
		g.numVertices = int(a) + 1
	}
	if int(b) >= g.numVertices {
		g.numVertices = int(b) + 1
	}
	return nil
}

// RemoveNode disconnects v from every other location. v itself stays counted.
func (g *Graph) RemoveNode(v Index) error {
	if !g.IsValidVertex(v) {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	for u := Index(0); int(u) < g.capacity; u++ {
		if u == v {
			continue
		}
		g.costs[g.offset(v, u)] = cell{}
		g.costs[g.offset(u, v)] = cell{}
	}
	return nil
}

// RemoveEdge deletes the segment {a,b}. Removing a missing segment is a no-op.
func (g *Graph) RemoveEdge(a, b Index) error {
	if !g.IsValidVertex(a) || !g.IsValidVertex(b) {
		return fmt.Errorf("%w: segment (%d,%d)", ErrVertexOutOfRange, a, b)
	}
	if a == b {
		return nil
	}
	g.costs[g.offset(a, b)] = cell{}
	g.costs[g.offset(b, a)] = cell{}
	return nil
}

// Cost returns the travel time of segment {a,b}; ok is false when there is none.
func (g *Graph) Cost(a, b Index) (int, bool) {
	if int(a) >= g.capacity || int(b) >= g.capacity {
		return 0, false
	}
	c := g.costs[g.offset(a, b)]
	return c.cost, c.ok
}

// ForNeighborsOf calls handle for every location adjacent to u.
func (g *Graph) ForNeighborsOf(u Index, handle func(v Index, cost int)) {
	row := g.costs[g.offset(u, 0):g.offset(u, 0)+g.numVertices]
	for v, c := range row {
		if !c.ok || Index(v) == u {
			continue
		}
		handle(Index(v), c.cost)
	}
}

func (g *Graph) NumberOfEdges() int {
	m := 0
	for a := Index(0); int(a) < g.numVertices; a++ {
		for b := a + 1; int(b) < g.numVertices; b++ {
			if _, ok := g.Cost(a, b); ok {
				m++
			}
		}
	}
	return m
}

// Clone returns a deep copy that shares no memory with g.
func (g *Graph) Clone() *Graph {
	costs := make([]cell, len(g.costs))
	copy(costs, g.costs)
	return &Graph{
		capacity:    g.capacity,
		numVertices: g.numVertices,
		costs:       costs,
	}
}

// Snapshot is a verbatim copy of a graph's matrix and vertex count.
type Snapshot struct {
	capacity    int
	numVertices int
	costs       []cell
}

func (g *Graph) Snapshot() Snapshot {
	costs := make([]cell, len(g.costs))
	copy(costs, g.costs)
	return Snapshot{
		capacity:    g.capacity,
		numVertices: g.numVertices,
		costs:       costs,
	}
}

func (g *Graph) Restore(s Snapshot) error {
	if s.capacity != g.capacity {
		return ErrSnapshotMismatch
	}
	copy(g.costs, s.costs)
	g.numVertices = s.numVertices
	return nil
}

// Equal reports whether both graphs have the same vertex count and identical cells.
func (g *Graph) Equal(other *Graph) bool {
	if g.capacity != other.capacity || g.numVertices != other.numVertices {
		return false
	}
	for i := range g.costs {
		if g.costs[i] != other.costs[i] {
			return false
		}
	}
	return true
}

// Freeze returns an immutable RoadNetwork built from a copy of g.
func (g *Graph) Freeze() *RoadNetwork {
	frozen := g.Clone()
	componentOf, numComponents := frozen.RunConnectedComponents()
	return &RoadNetwork{
		graph:         frozen,
		componentOf:   componentOf,
		numComponents: numComponents,
	}
}

// RoadNetwork is the read-only base graph shared by every request. Restrictions are applied to
// a WorkingCopy, never to the network itself.
type RoadNetwork struct {
	graph         *Graph
	componentOf   []Index
	numComponents int
}

// Connected reports whether a and b lie in the same connected component of the network.
// Restrictions only remove segments, so false here means no restricted route exists either.
func (rn *RoadNetwork) Connected(a, b Index) bool {
	if int(a) >= len(rn.componentOf) || int(b) >= len(rn.componentOf) {
		return false
	}
	return rn.componentOf[a] == rn.componentOf[b]
}

func (rn *RoadNetwork) NumberOfComponents() int {
	return rn.numComponents
}

func (rn *RoadNetwork) WorkingCopy() *Graph {
	return rn.graph.Clone()
}

func (rn *RoadNetwork) Cost(a, b Index) (int, bool) {
	return rn.graph.Cost(a, b)
}

func (rn *RoadNetwork) NumberOfVertices() int {
	return rn.graph.NumberOfVertices()
}

func (rn *RoadNetwork) NumberOfEdges() int {
	return rn.graph.NumberOfEdges()
}

func (rn *RoadNetwork) Capacity() int {
	return rn.graph.Capacity()
}

func (rn *RoadNetwork) ForNeighborsOf(u Index, handle func(v Index, cost int)) {
	rn.graph.ForNeighborsOf(u, handle)
}
