package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/drivingroute/pkg"
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/engine"
)

// FormatRoute renders a route as "n0,n1,...,nk,(cost)" or "none".
func FormatRoute(route *da.Route) string {
	if route == nil {
		return pkg.NONE_VALUE
	}
	return route.String()
}

// Write emits the Source and Destination lines followed by one line per named route.
func Write(w io.Writer, res *engine.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s:%d\n", pkg.KEY_SOURCE, res.GetSource())
	fmt.Fprintf(bw, "%s:%d\n", pkg.KEY_DESTINATION, res.GetDestination())
	for _, nr := range res.GetRoutes() {
		fmt.Fprintf(bw, "%s:%s\n", nr.Name, FormatRoute(nr.Route))
	}
	return bw.Flush()
}

func Format(res *engine.Result) string {
	var sb strings.Builder
	_ = Write(&sb, res)
	return sb.String()
}

// WriteFile writes the report to a temporary file next to filename and renames it into place,
// so a failed run never leaves a partial report behind.
func WriteFile(filename string, res *engine.Result) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := Write(tmp, res); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, filename)
}
