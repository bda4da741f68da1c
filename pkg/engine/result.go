package engine

import (
	"github.com/lintang-b-s/drivingroute/pkg"
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
)

// NamedRoute pairs a report name with its route; Route is nil when no route exists.
type NamedRoute struct {
	Name  string
	Route *da.Route
}

// Result is what one request resolves to: one restricted route, or a best and an
// alternative route.
type Result struct {
	source      da.Index
	destination da.Index
	restricted  bool
	routes      []NamedRoute
}

func newRestrictedResult(s, t da.Index, route *da.Route) *Result {
	return &Result{
		source:      s,
		destination: t,
		restricted:  true,
		routes:      []NamedRoute{{Name: pkg.RESTRICTED_DRIVING_ROUTE, Route: route}},
	}
}

func newPlainResult(s, t da.Index, best, alternative *da.Route) *Result {
	return &Result{
		source:      s,
		destination: t,
		routes: []NamedRoute{
			{Name: pkg.BEST_DRIVING_ROUTE, Route: best},
			{Name: pkg.ALTERNATIVE_DRIVING_ROUTE, Route: alternative},
		},
	}
}

func (r *Result) GetSource() da.Index {
	return r.source
}

func (r *Result) GetDestination() da.Index {
	return r.destination
}

func (r *Result) IsRestricted() bool {
	return r.restricted
}

// GetRoutes returns the named routes in report order.
func (r *Result) GetRoutes() []NamedRoute {
	return r.routes
}

// GetRoute returns the route stored under name and whether that name is part of the result.
func (r *Result) GetRoute(name string) (*da.Route, bool) {
	for _, nr := range r.routes {
		if nr.Name == name {
			return nr.Route, true
		}
	}
	return nil, false
}
