package vispath

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// rectPad keeps R-tree rectangles strictly positive in both dimensions;
// rtreego rejects zero-length sides, which degenerate (axis-aligned)
// segments and thin polygons would otherwise produce.
const rectPad = 1e-9

// obstacleEntry wraps one polygon for R-tree storage.
type obstacleEntry struct {
	poly orb.Polygon
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.rect
}

// obstacleIndex answers "which obstacles could this segment touch?"
// through an R-tree over polygon bounding boxes, so visibility checks
// only test nearby polygons instead of every obstacle.
type obstacleIndex struct {
	tree *rtreego.Rtree
}

// newObstacleIndex bulk-loads the polygons. Empty polygons are skipped.
func newObstacleIndex(obstacles []orb.Polygon) *obstacleIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for _, poly := range obstacles {
		if len(poly) == 0 || len(poly[0]) == 0 {
			continue
		}
		rect, err := boundRect(poly.Bound())
		if err != nil {
			continue
		}
		tree.Insert(&obstacleEntry{poly: poly, rect: rect})
	}

	return &obstacleIndex{tree: tree}
}

// candidates returns the polygons whose bounding box intersects the
// bounding box of segment ab.
func (idx *obstacleIndex) candidates(a, b orb.Point) []orb.Polygon {
	rect, err := boundRect(orb.MultiPoint{a, b}.Bound())
	if err != nil {
		return nil
	}

	hits := idx.tree.SearchIntersect(rect)
	polys := make([]orb.Polygon, 0, len(hits))
	for _, h := range hits {
		polys = append(polys, h.(*obstacleEntry).poly)
	}

	return polys
}

// boundRect converts an orb.Bound into a padded rtreego.Rect.
func boundRect(b orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.Min[0] - rectPad, b.Min[1] - rectPad},
		[]float64{
			math.Max(b.Max[0]-b.Min[0], 0) + 2*rectPad,
			math.Max(b.Max[1]-b.Min[1], 0) + 2*rectPad,
		},
	)
}
