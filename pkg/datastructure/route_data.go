package datastructure

import (
	"strconv"
	"strings"
)

// Route is an ordered sequence of distinct locations from source to destination.
// A nil *Route means no route exists.
type Route struct {
	path       []Index
	travelTime int
}

func NewRoute(path []Index, travelTime int) *Route {
	p := make([]Index, len(path))
	copy(p, path)
	return &Route{path: p, travelTime: travelTime}
}

func (r *Route) GetPath() []Index {
	return r.path
}

func (r *Route) GetTravelTime() int {
	return r.travelTime
}

func (r *Route) Source() Index {
	return r.path[0]
}

func (r *Route) Destination() Index {
	return r.path[len(r.path)-1]
}

func (r *Route) Len() int {
	return len(r.path)
}

// Intermediates returns the locations strictly between the first and last one.
func (r *Route) Intermediates() []Index {
	if len(r.path) <= 2 {
		return []Index{}
	}
	return r.path[1 : len(r.path)-1]
}

// Segments returns every consecutive pair along the route.
func (r *Route) Segments() []Segment {
	segs := make([]Segment, 0, len(r.path))
	for i := 0; i+1 < len(r.path); i++ {
		segs = append(segs, NewSegment(r.path[i], r.path[i+1]))
	}
	return segs
}

// String renders the route as "n0,n1,...,nk,(cost)".
func (r *Route) String() string {
	var sb strings.Builder
	for _, v := range r.path {
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
		sb.WriteByte(',')
	}
	sb.WriteByte('(')
	sb.WriteString(strconv.Itoa(r.travelTime))
	sb.WriteByte(')')
	return sb.String()
}

// Segment is an unordered pair of locations.
type Segment struct {
	from Index
	to   Index
}

func NewSegment(from, to Index) Segment {
	return Segment{from: from, to: to}
}

func (s Segment) GetFrom() Index {
	return s.from
}

func (s Segment) GetTo() Index {
	return s.to
}

// Key returns the pair with the smaller id first, so {a,b} and {b,a} compare equal.
func (s Segment) Key() Segment {
	if s.from > s.to {
		return Segment{from: s.to, to: s.from}
	}
	return s
}

func (s Segment) String() string {
	return "(" + strconv.FormatUint(uint64(s.from), 10) + "," + strconv.FormatUint(uint64(s.to), 10) + ")"
}
