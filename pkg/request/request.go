package request

import (
	"strconv"
	"strings"

	"github.com/lintang-b-s/drivingroute/pkg"
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
)

// Request is one routing query. It is built once by Parse or NewRequest and never modified.
type Request struct {
	mode          string
	source        da.Index
	destination   da.Index
	avoidNodes    []da.Index
	avoidSegments []da.Segment
	includeNode   *da.Index
}

type Option func(*Request)

func WithMode(mode string) Option {
	return func(r *Request) {
		r.mode = mode
	}
}

func WithAvoidNodes(nodes ...da.Index) Option {
	return func(r *Request) {
		r.avoidNodes = append(r.avoidNodes, nodes...)
	}
}

func WithAvoidSegments(segments ...da.Segment) Option {
	return func(r *Request) {
		r.avoidSegments = append(r.avoidSegments, segments...)
	}
}

func WithIncludeNode(v da.Index) Option {
	return func(r *Request) {
		r.includeNode = &v
	}
}

func NewRequest(source, destination da.Index, opts ...Option) *Request {
	r := &Request{
		source:      source,
		destination: destination,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Request) GetMode() string {
	return r.mode
}

func (r *Request) GetSource() da.Index {
	return r.source
}

func (r *Request) GetDestination() da.Index {
	return r.destination
}

func (r *Request) GetAvoidNodes() []da.Index {
	return append([]da.Index(nil), r.avoidNodes...)
}

func (r *Request) GetAvoidSegments() []da.Segment {
	return append([]da.Segment(nil), r.avoidSegments...)
}

// GetIncludeNode returns the forced waypoint, if any.
func (r *Request) GetIncludeNode() (da.Index, bool) {
	if r.includeNode == nil {
		return 0, false
	}
	return *r.includeNode, true
}

// IsRestricted reports whether any avoid or include restriction is present.
func (r *Request) IsRestricted() bool {
	return len(r.avoidNodes) > 0 || len(r.avoidSegments) > 0 || r.includeNode != nil
}

// String renders the request in the request-file syntax. Two requests with the same
// restrictions render identically, so the result doubles as a cache key.
func (r *Request) String() string {
	var sb strings.Builder
	if r.mode != "" {
		writeLine(&sb, pkg.KEY_MODE, r.mode)
	}
	writeLine(&sb, pkg.KEY_SOURCE, strconv.FormatUint(uint64(r.source), 10))
	writeLine(&sb, pkg.KEY_DESTINATION, strconv.FormatUint(uint64(r.destination), 10))

	nodes := make([]string, 0, len(r.avoidNodes))
	for _, v := range r.avoidNodes {
		nodes = append(nodes, strconv.FormatUint(uint64(v), 10))
	}
	writeLine(&sb, pkg.KEY_AVOID_NODES, joinOrNone(nodes))

	segs := make([]string, 0, len(r.avoidSegments))
	for _, seg := range r.avoidSegments {
		segs = append(segs, seg.String())
	}
	writeLine(&sb, pkg.KEY_AVOID_SEGMENTS, joinOrNone(segs))

	include := pkg.NONE_VALUE
	if r.includeNode != nil {
		include = strconv.FormatUint(uint64(*r.includeNode), 10)
	}
	writeLine(&sb, pkg.KEY_INCLUDE_NODE, include)
	return sb.String()
}

func writeLine(sb *strings.Builder, key, value string) {
	sb.WriteString(key)
	sb.WriteByte(':')
	sb.WriteString(value)
	sb.WriteByte('\n')
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return pkg.NONE_VALUE
	}
	return strings.Join(items, ",")
}
