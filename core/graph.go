package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts an isolated vertex with the given ID.
// Adding an existing ID is a no-op.
// Returns ErrEmptyVertexID if id == "".
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge connects from→to with the given weight, implicitly creating
// missing endpoints (mirrors how adjacency lists are usually built by hand).
// Returns the new edge's ID.
//
// Errors:
//   - ErrEmptyVertexID  if either endpoint ID is empty.
//   - ErrBadWeight      if weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if weight != 0 && !g.weighted {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// Auto-create endpoints so callers can build graphs edge-first.
	g.ensureVertex(from)
	g.ensureVertex(to)

	// Mint a unique, ordered edge ID.
	g.nextEdgeID++
	eid := fmt.Sprintf("e%06d", g.nextEdgeID)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e

	// Register adjacency; undirected edges are visible from both ends.
	g.link(from, to, eid)
	if !g.directed && from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// For undirected graphs the orientation of the query does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[from][to]

	return ok && len(set) > 0
}

// Vertices returns all vertex IDs in ascending order.
// The sorted order is what makes every traversal in this module deterministic.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges sorted by ascending edge ID,
// i.e. in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Neighbors returns the edges incident to id, oriented outward: each
// returned Edge has From == id, with To the neighboring endpoint (the
// stored direction is flipped for undirected edges when needed).
// Results are sorted by (To, ID) for deterministic iteration.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	var out []Edge
	for to, set := range g.adjacency[id] {
		for eid := range set {
			e := *g.edges[eid]
			if e.From != id {
				// Undirected edge stored as to→id: flip so From is the query vertex.
				e.From, e.To = id, to
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}

// NeighborIDs returns the IDs of vertices adjacent to id, deduplicated
// and sorted ascending.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for to, set := range g.adjacency[id] {
		if len(set) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of stored edges (an undirected edge counts once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// VerticesMap exposes the internal vertex map for metadata access.
// Mutating the map itself (adding/removing keys) is the caller's misuse;
// mutating a Vertex.Metadata entry is the intended use.
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices
}

// Clone returns a deep copy of the graph structure. Vertex Metadata maps
// are shared, not copied.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}
	for from, tos := range g.adjacency {
		c.adjacency[from] = make(map[string]map[string]struct{}, len(tos))
		for to, set := range tos {
			cset := make(map[string]struct{}, len(set))
			for eid := range set {
				cset[eid] = struct{}{}
			}
			c.adjacency[from][to] = cset
		}
	}

	return c
}

// ensureVertex creates the vertex and its adjacency slot if missing.
// Caller must hold mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// link records edge eid under adjacency[from][to]. Caller must hold mu.
func (g *Graph) link(from, to, eid string) {
	if _, ok := g.adjacency[from][to]; !ok {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}
