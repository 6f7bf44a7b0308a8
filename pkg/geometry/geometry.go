// Package geometry provides pure distance and intersection primitives
// over the canonical board types. All functions are side-effect free and
// operate in millimeters.
package geometry

import (
	"math"
	"strings"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/board"
)

// DefaultPadExpansion is the margin added around pad extents when
// deriving a component bounding box, in mm.
const DefaultPadExpansion = 0.5

// BBoxDistance returns the minimum distance between two bounding boxes,
// 0 if they overlap or touch.
func BBoxDistance(a, b board.BoundingBox) float64 {
	dx := math.Max(0, math.Max(b.MinX-a.MaxX, a.MinX-b.MaxX))
	dy := math.Max(0, math.Max(b.MinY-a.MaxY, a.MinY-b.MaxY))
	return math.Sqrt(dx*dx + dy*dy)
}

// PointDistance returns the Euclidean distance between two points.
func PointDistance(p, q board.Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointToBBoxDistance returns the distance from a point to the nearest
// point on the box, 0 if the point is inside.
func PointToBBoxDistance(p board.Point, bb board.BoundingBox) float64 {
	cx := math.Max(bb.MinX, math.Min(p.X, bb.MaxX))
	cy := math.Max(bb.MinY, math.Min(p.Y, bb.MaxY))
	dx := p.X - cx
	dy := p.Y - cy
	return math.Sqrt(dx*dx + dy*dy)
}

// PointToSegmentDistance returns the minimum distance from a point to
// the segment (a, b). A degenerate segment reduces to point distance.
func PointToSegmentDistance(p, a, b board.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return PointDistance(p, a)
	}

	// Project p onto the line through a,b, clamped to the segment.
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))

	cx := a.X + t*dx
	cy := a.Y + t*dy
	ddx := p.X - cx
	ddy := p.Y - cy
	return math.Sqrt(ddx*ddx + ddy*ddy)
}

// ccw reports whether a, b, c are in counter-clockwise order.
func ccw(a, b, c board.Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// SegmentsIntersect reports whether segments (p1,p2) and (p3,p4)
// intersect. Two segments intersect iff their endpoints straddle each
// other on both segments.
func SegmentsIntersect(p1, p2, p3, p4 board.Point) bool {
	return ccw(p1, p3, p4) != ccw(p2, p3, p4) &&
		ccw(p1, p2, p3) != ccw(p1, p2, p4)
}

// SegmentDistance returns the minimum distance between segments (p1,p2)
// and (p3,p4), 0 if they intersect.
func SegmentDistance(p1, p2, p3, p4 board.Point) float64 {
	if SegmentsIntersect(p1, p2, p3, p4) {
		return 0.0
	}

	d := PointToSegmentDistance(p1, p3, p4)
	if v := PointToSegmentDistance(p2, p3, p4); v < d {
		d = v
	}
	if v := PointToSegmentDistance(p3, p1, p2); v < d {
		d = v
	}
	if v := PointToSegmentDistance(p4, p1, p2); v < d {
		d = v
	}
	return d
}

// PointToPolygonDistance returns the minimum distance from a point to
// the polygon boundary, +Inf for degenerate polygons (<3 points).
func PointToPolygonDistance(p board.Point, poly board.Polygon) float64 {
	if len(poly.Points) < 3 {
		return math.Inf(1)
	}

	minDist := math.Inf(1)
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[(i+1)%n]
		if d := PointToSegmentDistance(p, a, b); d < minDist {
			minDist = d
		}
	}
	return minDist
}

// PolygonDistance returns the minimum distance between two polygon
// boundaries by checking every edge pair, +Inf if either is empty.
func PolygonDistance(a, b board.Polygon) float64 {
	if len(a.Points) == 0 || len(b.Points) == 0 {
		return math.Inf(1)
	}

	minDist := math.Inf(1)
	na, nb := len(a.Points), len(b.Points)
	for i := 0; i < na; i++ {
		p1 := a.Points[i]
		p2 := a.Points[(i+1)%na]
		for j := 0; j < nb; j++ {
			p3 := b.Points[j]
			p4 := b.Points[(j+1)%nb]
			if d := SegmentDistance(p1, p2, p3, p4); d < minDist {
				minDist = d
			}
		}
	}
	return minDist
}

// CreepageDistance approximates the creepage (surface path) distance
// between two polygons as their Euclidean boundary distance. True
// creepage follows the board surface around cutouts and holes; the rule
// profiles are calibrated against this approximation.
func CreepageDistance(a, b board.Polygon) float64 {
	return PolygonDistance(a, b)
}

// ComponentBoundingBox derives a bounding box for a component. Priority:
// an explicit bbox, then the extent of the pad positions expanded by
// padExpansion per side, then a square estimated from the footprint
// name. Returns false only when the component has no position.
func ComponentBoundingBox(c *board.Component, padExpansion float64) (board.BoundingBox, bool) {
	if c.Position == nil {
		return board.BoundingBox{}, false
	}

	if c.BBox != nil {
		return *c.BBox, true
	}

	if len(c.Pads) > 0 {
		bb := board.BoundingBox{
			MinX: math.Inf(1), MinY: math.Inf(1),
			MaxX: math.Inf(-1), MaxY: math.Inf(-1),
		}
		found := false
		for _, pad := range c.Pads {
			if pad.Position == nil {
				continue
			}
			bb.Expand(*pad.Position)
			found = true
		}
		if found {
			bb.MinX -= padExpansion
			bb.MinY -= padExpansion
			bb.MaxX += padExpansion
			bb.MaxY += padExpansion
			return bb, true
		}
	}

	// Fall back to a square estimated from the footprint name.
	size := footprintSize(c.Footprint)
	half := size / 2.0
	return board.BoundingBox{
		MinX: c.Position.X - half,
		MinY: c.Position.Y - half,
		MaxX: c.Position.X + half,
		MaxY: c.Position.Y + half,
	}, true
}

// footprintSize estimates a package's edge length in mm from common
// footprint-name substrings.
func footprintSize(footprint string) float64 {
	switch {
	case strings.Contains(footprint, "0603"):
		return 1.6
	case strings.Contains(footprint, "0805"):
		return 2.0
	case strings.Contains(footprint, "1206"):
		return 3.2
	case strings.Contains(footprint, "SOT23"), strings.Contains(footprint, "SOT-23"):
		return 3.0
	case strings.Contains(footprint, "SOIC"):
		return 6.0
	case strings.Contains(footprint, "QFN"), strings.Contains(footprint, "DFN"):
		return 5.0
	case strings.Contains(footprint, "BGA"):
		return 10.0
	default:
		return 5.0
	}
}

// TrackToZoneClearance returns the copper clearance between a track and
// a zone polygon. Same-net pairs need no clearance and return +Inf. The
// track is sampled at its endpoints plus 5 interior points; the result
// is reduced by half the track width, floored at 0.
func TrackToZoneClearance(track board.Track, zone board.Zone) float64 {
	if track.Net == zone.Net {
		return math.Inf(1)
	}
	if track.Start == nil || track.End == nil || zone.Polygon == nil {
		return math.Inf(1)
	}

	minDist := PointToPolygonDistance(*track.Start, *zone.Polygon)
	if d := PointToPolygonDistance(*track.End, *zone.Polygon); d < minDist {
		minDist = d
	}

	// Tracks can be long and run past a zone; sampling interior points
	// catches approaches the endpoints miss.
	const samples = 5
	for i := 1; i < samples; i++ {
		t := float64(i) / samples
		p := board.Point{
			X: track.Start.X + t*(track.End.X-track.Start.X),
			Y: track.Start.Y + t*(track.End.Y-track.Start.Y),
		}
		if d := PointToPolygonDistance(p, *zone.Polygon); d < minDist {
			minDist = d
		}
	}

	return math.Max(0, minDist-track.Width/2.0)
}

// ViaToComponentClearance returns the clearance between a via barrel and
// a component bounding box, reduced by the via radius and floored at 0.
// +Inf when either side has no usable geometry.
func ViaToComponentClearance(via board.Via, c *board.Component, padExpansion float64) float64 {
	if via.Position == nil {
		return math.Inf(1)
	}
	bb, ok := ComponentBoundingBox(c, padExpansion)
	if !ok {
		return math.Inf(1)
	}

	clearance := PointToBBoxDistance(*via.Position, bb)
	return math.Max(0, clearance-via.Size/2.0)
}
