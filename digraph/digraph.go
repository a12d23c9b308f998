package digraph

// Graph is a dense, index-based directed graph backed by adjacency lists.
// Nodes are identified by zero-based indices handed out by AddNode in
// insertion order; each node also carries a unique string label.
//
// Successor lists preserve AddEdge call order, which fixes the iteration
// order the analyses depend on. Self-loops and parallel edges are allowed.
type Graph struct {
	labels    []string       // index → label, insertion order
	indexOf   map[string]int // label → index
	adjacency [][]int        // index → successor indices, AddEdge order
	edgeCount int            // total number of edges added
}

// New returns an empty Graph ready for node and edge insertion.
func New() *Graph {
	return &Graph{
		indexOf: make(map[string]int),
	}
}

// AddNode ensures a node labeled label exists and returns its dense index.
// Adding the same label twice is idempotent: the existing index is returned.
func (g *Graph) AddNode(label string) int {
	// 1. Reuse the existing node if the label is already known.
	if idx, ok := g.indexOf[label]; ok {
		return idx
	}

	// 2. Append a fresh node: next dense index, empty successor list.
	idx := len(g.labels)
	g.labels = append(g.labels, label)
	g.adjacency = append(g.adjacency, nil)
	g.indexOf[label] = idx

	return idx
}

// AddEdge appends a directed edge from → to. Both endpoints must be valid
// indices in [0, NodeCount); otherwise ErrIndexOutOfRange is returned.
// Self-loops (from == to) and parallel edges are permitted.
func (g *Graph) AddEdge(from, to int) error {
	if from < 0 || from >= len(g.labels) || to < 0 || to >= len(g.labels) {
		return ErrIndexOutOfRange
	}

	g.adjacency[from] = append(g.adjacency[from], to)
	g.edgeCount++

	return nil
}

// AddEdgeByLabel adds a directed edge between labeled nodes, creating either
// endpoint if it does not exist yet.
func (g *Graph) AddEdgeByLabel(from, to string) error {
	u := g.AddNode(from)
	v := g.AddNode(to)

	return g.AddEdge(u, v)
}

// NodeCount reports the number of nodes. Part of the Reader contract.
func (g *Graph) NodeCount() int {
	return len(g.labels)
}

// EdgeCount reports the number of edges added so far.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Successors returns the successor indices of node v in AddEdge order.
// The returned slice is the graph's internal storage: callers must not
// mutate it. Out-of-range indices yield nil. Part of the Reader contract.
func (g *Graph) Successors(v int) []int {
	if v < 0 || v >= len(g.adjacency) {
		return nil
	}

	return g.adjacency[v]
}

// Label returns the label of node v, or ErrIndexOutOfRange if v is invalid.
func (g *Graph) Label(v int) (string, error) {
	if v < 0 || v >= len(g.labels) {
		return "", ErrIndexOutOfRange
	}

	return g.labels[v], nil
}

// IndexOf reports the index of the node labeled label, if present.
func (g *Graph) IndexOf(label string) (int, bool) {
	idx, ok := g.indexOf[label]

	return idx, ok
}

// Labels translates a slice of node indices (e.g. one component or one
// cycle) into the corresponding labels. Any invalid index yields
// ErrIndexOutOfRange.
func (g *Graph) Labels(indices []int) ([]string, error) {
	out := make([]string, len(indices))
	for i, v := range indices {
		if v < 0 || v >= len(g.labels) {
			return nil, ErrIndexOutOfRange
		}
		out[i] = g.labels[v]
	}

	return out, nil
}

// compile-time check: *Graph satisfies the read contract.
var _ Reader = (*Graph)(nil)
