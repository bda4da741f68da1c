package routing

import (
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
)

// RoadGraph is the read side of a graph the solver can search. Both the immutable
// *da.RoadNetwork and a mutable working *da.Graph satisfy it.
type RoadGraph interface {
	NumberOfVertices() int
	ForNeighborsOf(u da.Index, handle func(v da.Index, cost int))
}

// MutableRoadGraph is a RoadGraph that restrictions can be applied to.
type MutableRoadGraph interface {
	RoadGraph
	RemoveNode(v da.Index) error
	RemoveEdge(a, b da.Index) error
}
