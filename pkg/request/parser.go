package request

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lintang-b-s/drivingroute/pkg"
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/util"
)

var recognizedKeys = map[string]struct{}{
	pkg.KEY_MODE:           {},
	pkg.KEY_SOURCE:         {},
	pkg.KEY_DESTINATION:    {},
	pkg.KEY_AVOID_NODES:    {},
	pkg.KEY_AVOID_SEGMENTS: {},
	pkg.KEY_INCLUDE_NODE:   {},
}

func ReadRequestFile(filename string) (*Request, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	req, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return req, nil
}

// Parse reads "Key:value" lines. Unrecognized keys and lines without a colon are ignored; when a
// key repeats, the last value wins.
func Parse(r io.Reader) (*Request, error) {
	fields := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if _, ok := recognizedKeys[key]; !ok {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return Build(fields)
}

// Build assembles a Request from raw key/value pairs using the request-file value syntax.
// Source and Destination are mandatory; every other key is optional.
func Build(fields map[string]string) (*Request, error) {
	sourceStr, ok := fields[pkg.KEY_SOURCE]
	if !ok || sourceStr == "" {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "%s is required", pkg.KEY_SOURCE)
	}
	destinationStr, ok := fields[pkg.KEY_DESTINATION]
	if !ok || destinationStr == "" {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "%s is required", pkg.KEY_DESTINATION)
	}

	source, err := parseLocation(pkg.KEY_SOURCE, sourceStr)
	if err != nil {
		return nil, err
	}
	destination, err := parseLocation(pkg.KEY_DESTINATION, destinationStr)
	if err != nil {
		return nil, err
	}

	opts := []Option{WithMode(fields[pkg.KEY_MODE])}

	avoidNodes, err := ParseAvoidNodes(fields[pkg.KEY_AVOID_NODES])
	if err != nil {
		return nil, err
	}
	if len(avoidNodes) > 0 {
		opts = append(opts, WithAvoidNodes(avoidNodes...))
	}

	avoidSegments, err := ParseAvoidSegments(fields[pkg.KEY_AVOID_SEGMENTS])
	if err != nil {
		return nil, err
	}
	if len(avoidSegments) > 0 {
		opts = append(opts, WithAvoidSegments(avoidSegments...))
	}

	includeNode, ok, err := ParseIncludeNode(fields[pkg.KEY_INCLUDE_NODE])
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, WithIncludeNode(includeNode))
	}

	return NewRequest(source, destination, opts...), nil
}

func isUnset(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, pkg.NONE_VALUE)
}

func parseLocation(key, value string) (da.Index, error) {
	v, err := util.ParseInteger[da.Index](value)
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrBadParamInput, "%s: %q is not a valid location id", key, value)
	}
	return v, nil
}

// ParseAvoidNodes parses "3,5,8". An empty value or "none" yields no locations.
func ParseAvoidNodes(value string) ([]da.Index, error) {
	if isUnset(value) {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	nodes := make([]da.Index, 0, len(parts))
	for _, part := range parts {
		v, err := parseLocation(pkg.KEY_AVOID_NODES, part)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, v)
	}
	return nodes, nil
}

// ParseAvoidSegments parses "(1,2),(3,4)". An empty value or "none" yields no segments.
func ParseAvoidSegments(value string) ([]da.Segment, error) {
	if isUnset(value) {
		return nil, nil
	}

	segments := make([]da.Segment, 0, 4)
	rest := strings.TrimSpace(value)
	for rest != "" {
		if rest[0] != '(' {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "%s: expected '(' in %q", pkg.KEY_AVOID_SEGMENTS, value)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "%s: unbalanced parentheses in %q", pkg.KEY_AVOID_SEGMENTS, value)
		}

		fromStr, toStr, found := strings.Cut(rest[1:end], ",")
		if !found {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "%s: segment %q needs two locations", pkg.KEY_AVOID_SEGMENTS, rest[:end+1])
		}
		from, err := parseLocation(pkg.KEY_AVOID_SEGMENTS, fromStr)
		if err != nil {
			return nil, err
		}
		to, err := parseLocation(pkg.KEY_AVOID_SEGMENTS, toStr)
		if err != nil {
			return nil, err
		}
		segments = append(segments, da.NewSegment(from, to))

		rest = strings.TrimSpace(rest[end+1:])
		if strings.HasPrefix(rest, ",") {
			rest = strings.TrimSpace(rest[1:])
			if rest == "" {
				return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "%s: trailing ',' in %q", pkg.KEY_AVOID_SEGMENTS, value)
			}
		}
	}
	return segments, nil
}

// ParseIncludeNode parses a single location id. ok is false for an empty value or "none".
func ParseIncludeNode(value string) (da.Index, bool, error) {
	if isUnset(value) {
		return 0, false, nil
	}
	v, err := parseLocation(pkg.KEY_INCLUDE_NODE, value)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
