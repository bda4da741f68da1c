package routing

import (
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/util"
)

// ExcludeNodes disconnects every given location from the rest of g.
func ExcludeNodes(g MutableRoadGraph, nodes []da.Index) error {
	for _, v := range nodes {
		if err := g.RemoveNode(v); err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "exclude location %d", v)
		}
	}
	return nil
}

// ExcludeSegments deletes every given segment from g.
func ExcludeSegments(g MutableRoadGraph, segments []da.Segment) error {
	for _, seg := range segments {
		if err := g.RemoveEdge(seg.GetFrom(), seg.GetTo()); err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "exclude segment %s", seg)
		}
	}
	return nil
}

// RouteVia joins a shortest route s -> w with a shortest route w -> t, both computed on g.
// It returns nil when either leg does not exist. The two legs are searched independently and
// may share locations, so the joined route is not guaranteed to be simple.
func RouteVia(g RoadGraph, s, t, w da.Index) (*da.Route, error) {
	router := NewDijkstra(g)
	first, err := router.ShortestPath(s, w)
	if err != nil || first == nil {
		return nil, err
	}
	second, err := router.ShortestPath(w, t)
	if err != nil || second == nil {
		return nil, err
	}

	path := make([]da.Index, 0, first.Len()+second.Len()-1)
	path = append(path, first.GetPath()...)
	path = append(path, second.GetPath()[1:]...)
	return da.NewRoute(path, first.GetTravelTime()+second.GetTravelTime()), nil
}

// StripRoute removes every intermediate location of route from g, then every segment between
// consecutive locations of route. The second step also cuts a direct source-destination
// segment when the route is exactly that segment. g must be a working copy.
func StripRoute(g MutableRoadGraph, route *da.Route) error {
	if route == nil {
		return nil
	}
	if err := ExcludeNodes(g, route.Intermediates()); err != nil {
		return err
	}
	return ExcludeSegments(g, route.Segments())
}
