package vispath

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// direction returns the cross product sign of (p2-p1)×(p3-p1): positive
// for counter-clockwise turns, negative for clockwise, zero for collinear.
func direction(p1, p2, p3 orb.Point) float64 {
	return (p3[0]-p1[0])*(p2[1]-p1[1]) - (p2[0]-p1[0])*(p3[1]-p1[1])
}

// onSegment reports whether collinear point q lies within the bounding
// box of segment pr.
func onSegment(p, r, q orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}

// segmentsCross reports whether segments p1p2 and p3p4 intersect.
// Segments that merely share an endpoint do not count: visibility edges
// are allowed to touch obstacle corners and run along boundary edges.
func segmentsCross(p1, p2, p3, p4 orb.Point) bool {
	if (p1 == p3 && p2 == p4) || (p1 == p4 && p2 == p3) {
		return false
	}
	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	// Proper crossing: each segment straddles the other's supporting line.
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear overlap cases.
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

// ringEdges visits every boundary edge of ring, handling both closed
// rings (first point repeated last) and open ones.
func ringEdges(ring orb.Ring, visit func(a, b orb.Point) bool) bool {
	n := len(ring)
	if n < 2 {
		return false
	}
	if ring[0] == ring[n-1] {
		n-- // closed ring: skip the duplicated closing point
	}
	if n < 2 {
		return false
	}
	for i := 0; i < n; i++ {
		if visit(ring[i], ring[(i+1)%n]) {
			return true
		}
	}

	return false
}

// pointOnBoundary reports whether p lies on an edge of the polygon.
func pointOnBoundary(poly orb.Polygon, p orb.Point) bool {
	for _, ring := range poly {
		if ringEdges(ring, func(a, b orb.Point) bool {
			return direction(a, b, p) == 0 && onSegment(a, b, p)
		}) {
			return true
		}
	}

	return false
}

// pointBlocked reports whether p lies strictly inside the polygon.
// Boundary points are considered free so routes may hug obstacle edges.
func pointBlocked(poly orb.Polygon, p orb.Point) bool {
	return planar.PolygonContains(poly, p) && !pointOnBoundary(poly, p)
}

// segmentBlocked reports whether segment ab is obstructed by the polygon:
// either it properly crosses a boundary edge, or its midpoint sits
// strictly inside (the chord-through-the-interior case, where the segment
// touches the boundary only at shared vertices).
func segmentBlocked(poly orb.Polygon, a, b orb.Point) bool {
	for _, ring := range poly {
		if ringEdges(ring, func(e1, e2 orb.Point) bool {
			return segmentsCross(a, b, e1, e2)
		}) {
			return true
		}
	}

	mid := orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}

	return pointBlocked(poly, mid)
}
