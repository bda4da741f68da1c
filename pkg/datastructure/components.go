package datastructure

// RunConnectedComponents labels every location with the id of its connected component.
// Component ids are assigned in order of the smallest location they contain. Segments are
// undirected, so one depth-first pass per unvisited location finds the whole component.
func (g *Graph) RunConnectedComponents() ([]Index, int) {
	n := g.numVertices
	componentOf := make([]Index, n)
	for i := range componentOf {
		componentOf[i] = INVALID_VERTEX_ID
	}

	numComponents := 0
	stack := make([]Index, 0, n)
	for root := Index(0); int(root) < n; root++ {
		if componentOf[root] != INVALID_VERTEX_ID {
			continue
		}
		id := Index(numComponents)
		numComponents++

		componentOf[root] = id
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			g.ForNeighborsOf(u, func(v Index, _ int) {
				if componentOf[v] == INVALID_VERTEX_ID {
					componentOf[v] = id
					stack = append(stack, v)
				}
			})
		}
	}
	return componentOf, numComponents
}
