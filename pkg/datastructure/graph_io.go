package datastructure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/drivingroute/pkg/util"
)

// ReadDistanceTable loads a road network from a "from,to,cost" table. Files ending in .bz2 are
// decompressed on the fly.
func ReadDistanceTable(filename string, capacity int) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".bz2") {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	g, err := ParseDistanceTable(r, capacity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return g, nil
}

// ParseDistanceTable reads the header line, then one segment per row. Blank rows are skipped.
func ParseDistanceTable(r io.Reader, capacity int) (*Graph, error) {
	g, err := NewGraph(capacity)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		from, to, cost, err := parseSegmentRow(line)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d: malformed row %q", lineNo, line)
		}
		if err := g.InsertOrUpdateEdge(from, to, cost); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseSegmentRow(line string) (Index, Index, int, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	from, err := util.ParseInteger[Index](fields[0])
	if err != nil {
		return 0, 0, 0, err
	}
	to, err := util.ParseInteger[Index](fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	cost, err := util.ParseInteger[int](fields[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return from, to, cost, nil
}

// WriteDistanceTable writes every present segment of g once, smaller id first.
func (g *Graph) WriteDistanceTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Location1,Location2,Driving")
	for a := Index(0); int(a) < g.numVertices; a++ {
		for b := a + 1; int(b) < g.numVertices; b++ {
			if cost, ok := g.Cost(a, b); ok {
				fmt.Fprintf(bw, "%d,%d,%d\n", a, b, cost)
			}
		}
	}
	return bw.Flush()
}
