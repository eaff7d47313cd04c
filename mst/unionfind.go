package mst

// DisjointSet is a union-find structure over string IDs, with path
// compression on Find and union by rank on Union. It is the cycle
// detector behind Kruskal's algorithm, exported because it is useful on
// its own (connectivity queries, clustering).
//
// Amortized complexity per operation: O(α(n)), effectively constant.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
	sets   int
}

// NewDisjointSet creates one singleton set per ID.
// Duplicate IDs are collapsed. Complexity: O(n).
func NewDisjointSet(ids []string) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.Add(id)
	}

	return d
}

// Add inserts id as a new singleton set; a known id is a no-op.
// Complexity: O(1).
func (d *DisjointSet) Add(id string) {
	if _, ok := d.parent[id]; ok {
		return
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.sets++
}

// Find returns the representative of id's set, compressing the path so
// repeated lookups flatten the tree. Unknown IDs are auto-added as
// singletons, mirroring how core.Graph auto-creates edge endpoints.
func (d *DisjointSet) Find(id string) string {
	d.Add(id)
	// Walk up until the root (parent == itself).
	for d.parent[id] != id {
		// Path compression: point id at its grandparent.
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union merges the sets containing a and b, attaching the smaller-rank
// root under the larger. Reports whether a merge happened (false means
// the two were already connected — in Kruskal terms, the edge would
// close a cycle).
func (d *DisjointSet) Union(a, b string) bool {
	rootA, rootB := d.Find(a), d.Find(b)
	if rootA == rootB {
		return false
	}

	// Union by rank keeps the trees shallow.
	if d.rank[rootA] < d.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	d.parent[rootB] = rootA
	if d.rank[rootA] == d.rank[rootB] {
		d.rank[rootA]++
	}
	d.sets--

	return true
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b string) bool {
	return d.Find(a) == d.Find(b)
}

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int {
	return d.sets
}
