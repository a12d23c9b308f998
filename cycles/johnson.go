package cycles

import "github.com/veligo/cyclegraph/digraph"

// frame holds the suspended state of one circuit-search visit: the node, its
// successor list, the cursor into it, and whether any cycle was completed in
// the subtree rooted here. The frame slice is an explicit heap-allocated
// recursion stack, preserving the recursive formulation's visitation order.
type frame struct {
	v     int   // node being visited
	succ  []int // successors of v, fetched once on entry
	next  int   // cursor into succ
	found bool  // a cycle was closed somewhere at or below v
}

// enumerator owns the scratch state of a single Enumerate call. Nothing here
// survives the call: every invocation allocates fresh bookkeeping, so
// concurrent enumerations of the same read-only graph are independent.
type enumerator struct {
	graph     digraph.Reader
	maxCycles int

	blocked   []bool             // node may not be entered in this round
	blockedBy []map[int]struct{} // node → dependents awaiting its unblock
	path      []int              // nodes on the current search path
	frames    []frame            // explicit circuit-search stack
	cycles    [][]int            // accumulated output
	stopped   bool               // cap reached: unwind without exploring
}

// Enumerate lists the elementary cycles of graph g, at most maxCycles of
// them, using Johnson's algorithm with per-start-node pruning.
//
// Start nodes are taken in increasing index order; within a round only nodes
// with index ≥ the start participate, since cycles through smaller indices
// were exhausted by earlier rounds. The moment the running count reaches
// maxCycles the search stops dead — no further successors are explored at
// any depth — so exactly min(maxCycles, total) cycles are returned.
//
// A zero maxCycles or an empty graph yields an empty, non-truncated result.
// Returns ErrGraphNil for a nil graph and ErrNegativeLimit for a negative
// cap; the enumeration itself is total over any finite graph.
func Enumerate(g digraph.Reader, maxCycles int) (*Result, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxCycles < 0 {
		return nil, ErrNegativeLimit
	}

	// 2. Trivial cases: nothing to search, nothing to report.
	res := &Result{}
	n := g.NodeCount()
	if n == 0 || maxCycles == 0 {
		return res, nil
	}

	// 3. Allocate per-call scratch state.
	e := &enumerator{
		graph:     g,
		maxCycles: maxCycles,
		blocked:   make([]bool, n),
		blockedBy: make([]map[int]struct{}, n),
		path:      make([]int, 0, n),
		frames:    make([]frame, 0, n),
	}

	// 4. One round per candidate start node, increasing index order.
	for start := 0; start < n && !e.stopped; start++ {
		e.resetRound()
		e.search(start)
	}

	// 5. Package the result. Truncated keeps the conservative "count ≥ cap"
	//    convention (see Result.Truncated).
	res.Cycles = e.cycles
	res.Count = len(e.cycles)
	res.Truncated = res.Count >= maxCycles

	return res, nil
}

// resetRound clears all blocked/blocking state so a new start node begins
// with a clean slate; leaking blocks across rounds would hide cycles.
func (e *enumerator) resetRound() {
	for i := range e.blocked {
		e.blocked[i] = false
		e.blockedBy[i] = nil
	}
}

// enter begins visiting node v: it joins the current path and is blocked so
// the path stays elementary.
func (e *enumerator) enter(v int) {
	e.path = append(e.path, v)
	e.blocked[v] = true
	e.frames = append(e.frames, frame{v: v, succ: e.graph.Successors(v)})
}

// search runs one circuit-search round rooted at start. Every cycle whose
// smallest node index equals start is discovered exactly once here.
func (e *enumerator) search(start int) {
	e.enter(start)

	for len(e.frames) > 0 {
		f := &e.frames[len(e.frames)-1]

		// 1. Explore the remaining successors of f.v, unless the cap hit:
		//    once stopped, every frame falls straight through to its exit.
		if !e.stopped && f.next < len(f.succ) {
			w := f.succ[f.next]
			f.next++

			// 1a. Nodes below the start were exhausted by earlier rounds.
			if w < start {
				continue
			}

			// 1b. An edge back to the start closes the current path into
			//     an elementary cycle.
			if w == start {
				e.record()
				f.found = true
				continue
			}

			// 1c. Descend into unblocked nodes only; blocked ones are on
			//     the path or known fruitless for now.
			if !e.blocked[w] {
				e.enter(w)
			}
			continue
		}

		// 2. Exit f.v. On success, unblock it (new cycles through it may
		//    exist once the path changes). On failure, leave it blocked and
		//    register it as a dependent of each qualifying successor so a
		//    later unblock of any of them reactivates it transitively.
		v, found := f.v, f.found
		if !e.stopped {
			if found {
				e.unblock(v)
			} else {
				for _, w := range f.succ {
					if w >= start {
						e.dependOn(w, v)
					}
				}
			}
		}

		// 3. Pop the path and the frame, propagating success to the caller.
		e.path = e.path[:len(e.path)-1]
		e.frames = e.frames[:len(e.frames)-1]
		if found && len(e.frames) > 0 {
			e.frames[len(e.frames)-1].found = true
		}
	}
}

// record copies the current path into the output and raises the stop signal
// if the cap is now reached. The cap is enforced on the very first cycle as
// much as on the last: recording never overshoots maxCycles.
func (e *enumerator) record() {
	cycle := make([]int, len(e.path))
	copy(cycle, e.path)
	e.cycles = append(e.cycles, cycle)
	if len(e.cycles) >= e.maxCycles {
		e.stopped = true
	}
}

// dependOn registers v as a dependent of w: when w is unblocked, v must be
// unblocked too, because a fresh cycle may now run through w and then v.
func (e *enumerator) dependOn(w, v int) {
	if e.blockedBy[w] == nil {
		e.blockedBy[w] = make(map[int]struct{})
	}
	e.blockedBy[w][v] = struct{}{}
}

// unblock clears u's block and transitively releases every node waiting on
// it, walking the dependency relation with an explicit work stack. The set
// of nodes released is a closure, so the processing order is immaterial to
// the final state.
func (e *enumerator) unblock(u int) {
	work := []int{u}
	for len(work) > 0 {
		x := work[len(work)-1]
		work = work[:len(work)-1]
		e.blocked[x] = false
		for w := range e.blockedBy[x] {
			if e.blocked[w] {
				work = append(work, w)
			}
		}
		e.blockedBy[x] = nil
	}
}
