// Package grid treats a rectangular field with blocked cells as a graph
// whose vertices are free cells and whose edges connect neighbors.
package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algokit/astar"
	"github.com/katalvlaran/algokit/core"
)

// Grid is an immutable rectangular field of free and blocked cells.
// It implements astar.Graph[Cell]: orthogonal steps cost 1, diagonal
// steps (Conn8) cost √2, and blocked cells are never expanded.
type Grid struct {
	width, height   int
	blocked         [][]bool
	conn            Connectivity
	neighborOffsets [][2]int
}

// New constructs an open width×height Grid with the given options.
// Returns ErrEmptyGrid when either dimension is < 1.
// Complexity: O(W×H).
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	blocked := make([][]bool, height)
	for y := range blocked {
		blocked[y] = make([]bool, width)
	}

	return &Grid{
		width:           width,
		height:          height,
		blocked:         blocked,
		conn:            o.Conn,
		neighborOffsets: offsets(o.Conn),
	}, nil
}

// FromRows constructs a Grid from a rectangular 2D slice where a non-zero
// value marks a blocked cell. The input is deep-copied for immutability.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
// Complexity: O(W×H).
func FromRows(rows [][]int, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(w, len(rows), opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, v := range row {
			g.blocked[y][x] = v != 0
		}
	}

	return g, nil
}

// offsets returns the neighbor displacement table for the connectivity.
func offsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Width returns the number of columns. Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows. Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Block marks cell (x,y) as an obstacle.
// Returns ErrOutOfBounds for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) Block(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.blocked[y][x] = true

	return nil
}

// Blocked reports whether cell (x,y) is an obstacle; out-of-bounds cells
// count as blocked so callers can treat the border uniformly.
// Complexity: O(1).
func (g *Grid) Blocked(x, y int) bool {
	return !g.InBounds(x, y) || g.blocked[y][x]
}

// Neighbors expands a cell into its passable neighbors, satisfying
// astar.Graph[Cell]. Orthogonal steps cost 1; diagonal steps cost √2.
// Offsets are visited in a fixed order, so expansion is deterministic.
// Complexity: O(1) (at most 8 offsets).
func (g *Grid) Neighbors(c Cell) []astar.Neighbor[Cell] {
	if g.Blocked(c.X, c.Y) {
		return nil
	}
	out := make([]astar.Neighbor[Cell], 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if g.Blocked(nx, ny) {
			continue
		}
		cost := 1.0
		if d[0] != 0 && d[1] != 0 {
			cost = math.Sqrt2
		}
		out = append(out, astar.Neighbor[Cell]{ID: Cell{X: nx, Y: ny}, Cost: cost})
	}

	return out
}

// ShortestPath runs A* between two cells with the heuristic matching the
// grid's connectivity (Manhattan for Conn4, Chebyshev for Conn8 — both
// admissible for their step model).
//
// Errors:
//   - ErrOutOfBounds / ErrBlockedCell for invalid endpoints.
//   - astar.ErrNoPath when the goal is walled off.
//
// Complexity: O(W×H log(W×H)) worst case.
func (g *Grid) ShortestPath(start, goal Cell, opts ...astar.Option[Cell]) (astar.Result[Cell], error) {
	for _, c := range []Cell{start, goal} {
		if !g.InBounds(c.X, c.Y) {
			return astar.Result[Cell]{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
		}
		if g.blocked[c.Y][c.X] {
			return astar.Result[Cell]{}, fmt.Errorf("%w: (%d,%d)", ErrBlockedCell, c.X, c.Y)
		}
	}

	h := Manhattan
	if g.conn == Conn8 {
		h = Chebyshev
	}

	return astar.Search[Cell](g, start, goal, h, opts...)
}

// Manhattan is the |dx|+|dy| heuristic, admissible on Conn4 unit grids.
func Manhattan(from, goal Cell) float64 {
	return math.Abs(float64(from.X-goal.X)) + math.Abs(float64(from.Y-goal.Y))
}

// Chebyshev is the max(|dx|,|dy|) heuristic, admissible on Conn8 grids
// where diagonal steps cost at least 1.
func Chebyshev(from, goal Cell) float64 {
	return math.Max(math.Abs(float64(from.X-goal.X)), math.Abs(float64(from.Y-goal.Y)))
}

// ToCoreGraph converts the grid into a weighted, undirected *core.Graph.
// Each free cell at (x,y) becomes a vertex with ID "x,y" and metadata
// {x,y}; unit-weight edges connect passable neighbor pairs (each pair
// once). Useful for running the traversal and MST packages over terrain.
// Complexity: O(W×H) time and memory.
func (g *Grid) ToCoreGraph() *core.Graph {
	cg := core.NewGraph(core.WithWeighted())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.blocked[y][x] {
				continue
			}
			id := vertexID(x, y)
			_ = cg.AddVertex(id)
			v := cg.VerticesMap()[id]
			v.Metadata["x"] = x
			v.Metadata["y"] = y
		}
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.blocked[y][x] {
				continue
			}
			for _, d := range g.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if g.Blocked(nx, ny) {
					continue
				}
				// Add each undirected pair once.
				if ny < y || (ny == y && nx < x) {
					continue
				}
				_, _ = cg.AddEdge(vertexID(x, y), vertexID(nx, ny), 1)
			}
		}
	}

	return cg
}

// vertexID formats the unique vertex identifier for cell (x,y).
func vertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}
