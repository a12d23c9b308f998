package scc

import "github.com/veligo/cyclegraph/digraph"

// frame holds the per-node state of one suspended DFS visit: the node, its
// successor list, and the cursor into it. Together the frames form an
// explicit heap-allocated recursion stack, so visitation order matches the
// textbook recursive formulation without risking native stack exhaustion.
type frame struct {
	v    int   // node being visited
	succ []int // successors of v, fetched once on entry
	next int   // cursor into succ
}

// Analyze partitions graph g into strongly connected components using
// Tarjan's single-pass algorithm and derives cycle statistics from the
// component sizes.
//
// DFS roots are taken in increasing index order over all unvisited nodes,
// so disconnected graphs are covered deterministically. Returns ErrGraphNil
// if g is nil; the analysis itself is total over any finite graph.
func Analyze(g digraph.Reader) (*Result, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Trivial case: the empty graph has no components and no cycles.
	n := g.NodeCount()
	res := &Result{}
	if n == 0 {
		return res, nil
	}

	// 3. Allocate the per-call bookkeeping: discovery indices, low-links,
	//    on-stack flags, the Tarjan node stack, and the DFS frame stack.
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for v := 0; v < n; v++ {
		index[v] = unvisited
	}
	stack := make([]int, 0, n)    // nodes awaiting component assignment
	frames := make([]frame, 0, n) // explicit DFS recursion stack
	counter := 0                  // next discovery index

	// enter assigns v its discovery index, pushes it on both stacks, and
	// fetches its successor list once (mirroring a recursive call entry).
	enter := func(v int) {
		index[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true
		frames = append(frames, frame{v: v, succ: g.Successors(v)})
	}

	// 4. Run one DFS machine per unvisited root, increasing index order.
	for root := 0; root < n; root++ {
		if index[root] != unvisited {
			continue
		}
		enter(root)

		for len(frames) > 0 {
			f := &frames[len(frames)-1]

			// 4a. Advance through the remaining successors of f.v.
			if f.next < len(f.succ) {
				w := f.succ[f.next]
				f.next++
				if index[w] == unvisited {
					// Tree edge: descend into w.
					enter(w)
				} else if onStack[w] {
					// Back/cross edge into the active stack: w belongs to
					// the same component, fold its discovery index in.
					if index[w] < lowlink[f.v] {
						lowlink[f.v] = index[w]
					}
				}
				continue
			}

			// 4b. All successors explored: f.v is leaving the recursion.
			//     If it is a component root, pop the stack down to it.
			v := f.v
			if lowlink[v] == index[v] {
				var comp []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				res.Components = append(res.Components, comp)
			}

			// 4c. Return to the caller frame, propagating the low-link.
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				p := &frames[len(frames)-1]
				if lowlink[v] < lowlink[p.v] {
					lowlink[p.v] = lowlink[v]
				}
			}
		}
	}

	// 5. Derive cycle statistics from component sizes.
	for _, comp := range res.Components {
		if len(comp) > 1 {
			res.CycleCount++
		}
	}
	res.HasCycles = res.CycleCount > 0

	return res, nil
}

// HasCycles reports whether g contains any cycle, including self-loops.
//
// The SCC partition only reveals cycles spanning two or more nodes (a
// self-loop forms a singleton component), so this check scans each node's
// successors for a self-edge before falling back to the component sizes.
func HasCycles(g digraph.Reader) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	// 1. Direct adjacency scan for length-1 cycles.
	n := g.NodeCount()
	for v := 0; v < n; v++ {
		for _, w := range g.Successors(v) {
			if w == v {
				return true, nil
			}
		}
	}

	// 2. Fall back to the component-size criterion for longer cycles.
	res, err := Analyze(g)
	if err != nil {
		return false, err
	}

	return res.HasCycles, nil
}
