package routing

import (
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
)

// vertexInfo is the search label of one location.
type vertexInfo struct {
	travelTime int
	labelled   bool
	settled    bool
	parent     da.Index
	hnode      *da.PriorityQueueNode[da.Index]
}

func newVertexInfo() vertexInfo {
	return vertexInfo{parent: da.INVALID_VERTEX_ID}
}
