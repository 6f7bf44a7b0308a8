package geometry

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/board"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBBoxDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b board.BoundingBox
		want float64
	}{
		{
			name: "overlapping boxes",
			a:    board.BoundingBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2},
			b:    board.BoundingBox{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3},
			want: 0,
		},
		{
			name: "touching edges",
			a:    board.BoundingBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:    board.BoundingBox{MinX: 1, MinY: 0, MaxX: 2, MaxY: 1},
			want: 0,
		},
		{
			name: "horizontal separation",
			a:    board.BoundingBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:    board.BoundingBox{MinX: 3, MinY: 0, MaxX: 4, MaxY: 1},
			want: 2,
		},
		{
			name: "diagonal separation",
			a:    board.BoundingBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:    board.BoundingBox{MinX: 4, MinY: 5, MaxX: 5, MaxY: 6},
			want: 5, // 3-4-5 triangle
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BBoxDistance(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("BBoxDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointToBBoxDistance(t *testing.T) {
	box := board.BoundingBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}

	tests := []struct {
		name string
		p    board.Point
		want float64
	}{
		{"inside", board.Point{X: 1, Y: 1}, 0},
		{"on edge", board.Point{X: 2, Y: 1}, 0},
		{"right of box", board.Point{X: 5, Y: 1}, 3},
		{"diagonal corner", board.Point{X: 5, Y: 6}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointToBBoxDistance(tt.p, box)
			if !almostEqual(got, tt.want) {
				t.Errorf("PointToBBoxDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointToSegmentDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b board.Point
		want    float64
	}{
		{
			name: "perpendicular foot inside segment",
			p:    board.Point{X: 1, Y: 1},
			a:    board.Point{X: 0, Y: 0},
			b:    board.Point{X: 2, Y: 0},
			want: 1,
		},
		{
			name: "beyond segment end clamps to endpoint",
			p:    board.Point{X: 5, Y: 0},
			a:    board.Point{X: 0, Y: 0},
			b:    board.Point{X: 2, Y: 0},
			want: 3,
		},
		{
			name: "degenerate segment is point distance",
			p:    board.Point{X: 3, Y: 4},
			a:    board.Point{X: 0, Y: 0},
			b:    board.Point{X: 0, Y: 0},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointToSegmentDistance(tt.p, tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("PointToSegmentDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentsIntersectAndDistance(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 board.Point
		intersect      bool
	}{
		{
			name: "crossing segments",
			p1:   board.Point{X: 0, Y: 0}, p2: board.Point{X: 2, Y: 2},
			p3: board.Point{X: 0, Y: 2}, p4: board.Point{X: 2, Y: 0},
			intersect: true,
		},
		{
			name: "parallel segments",
			p1:   board.Point{X: 0, Y: 0}, p2: board.Point{X: 2, Y: 0},
			p3: board.Point{X: 0, Y: 1}, p4: board.Point{X: 2, Y: 1},
			intersect: false,
		},
		{
			name: "far apart",
			p1:   board.Point{X: 0, Y: 0}, p2: board.Point{X: 1, Y: 0},
			p3: board.Point{X: 5, Y: 5}, p4: board.Point{X: 6, Y: 5},
			intersect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentsIntersect(tt.p1, tt.p2, tt.p3, tt.p4)
			if got != tt.intersect {
				t.Errorf("SegmentsIntersect() = %v, want %v", got, tt.intersect)
			}

			// Intersecting segments must measure exactly zero distance.
			if tt.intersect {
				if d := SegmentDistance(tt.p1, tt.p2, tt.p3, tt.p4); d != 0.0 {
					t.Errorf("SegmentDistance() = %v, want exactly 0", d)
				}
			}
		})
	}
}

func TestSegmentDistanceTouchingEndpoint(t *testing.T) {
	// A segment ending exactly on another: the strict ccw test does not
	// count endpoint touches as intersection, but the distance is 0.
	p1 := board.Point{X: 0, Y: 0}
	p2 := board.Point{X: 1, Y: 1}
	p3 := board.Point{X: 1, Y: 1}
	p4 := board.Point{X: 2, Y: 0}

	if d := SegmentDistance(p1, p2, p3, p4); d != 0.0 {
		t.Errorf("SegmentDistance() touching endpoints = %v, want exactly 0", d)
	}
}

func TestPointToPolygonDistance(t *testing.T) {
	square := board.Polygon{Points: []board.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	}}

	if got := PointToPolygonDistance(board.Point{X: 4, Y: 1}, square); !almostEqual(got, 2) {
		t.Errorf("PointToPolygonDistance() = %v, want 2", got)
	}

	degenerate := board.Polygon{Points: []board.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	if got := PointToPolygonDistance(board.Point{X: 0, Y: 0}, degenerate); !math.IsInf(got, 1) {
		t.Errorf("PointToPolygonDistance() degenerate = %v, want +Inf", got)
	}
}

func TestPolygonDistance(t *testing.T) {
	a := board.Polygon{Points: []board.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}}
	b := board.Polygon{Points: []board.Point{
		{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 3, Y: 1},
	}}

	if got := PolygonDistance(a, b); !almostEqual(got, 2) {
		t.Errorf("PolygonDistance() = %v, want 2", got)
	}

	if got := PolygonDistance(a, board.Polygon{}); !math.IsInf(got, 1) {
		t.Errorf("PolygonDistance() empty = %v, want +Inf", got)
	}

	// Creepage is the documented Euclidean approximation of the same measure.
	if got := CreepageDistance(a, b); !almostEqual(got, 2) {
		t.Errorf("CreepageDistance() = %v, want 2", got)
	}
}

func TestComponentBoundingBox(t *testing.T) {
	pos := board.Point{X: 10, Y: 10}

	tests := []struct {
		name      string
		comp      board.Component
		wantWidth float64
		wantOK    bool
	}{
		{
			name:   "no position",
			comp:   board.Component{Refdes: "R1"},
			wantOK: false,
		},
		{
			name: "explicit bbox wins",
			comp: board.Component{
				Refdes:    "R1",
				Position:  &pos,
				Footprint: "R_0603",
				BBox:      &board.BoundingBox{MinX: 0, MinY: 0, MaxX: 7, MaxY: 7},
			},
			wantWidth: 7,
			wantOK:    true,
		},
		{
			name: "pads expanded by margin",
			comp: board.Component{
				Refdes:   "U1",
				Position: &pos,
				Pads: []board.Pad{
					{ID: "1", Position: &board.Point{X: 9, Y: 10}},
					{ID: "2", Position: &board.Point{X: 11, Y: 10}},
				},
			},
			wantWidth: 3, // 2mm pad span + 0.5mm each side
			wantOK:    true,
		},
		{
			name:      "0603 heuristic",
			comp:      board.Component{Refdes: "R1", Position: &pos, Footprint: "R_0603_1608Metric"},
			wantWidth: 1.6,
			wantOK:    true,
		},
		{
			name:      "BGA heuristic",
			comp:      board.Component{Refdes: "U2", Position: &pos, Footprint: "BGA-256"},
			wantWidth: 10.0,
			wantOK:    true,
		},
		{
			name:      "unknown footprint default",
			comp:      board.Component{Refdes: "J1", Position: &pos, Footprint: "PinHeader_1x04"},
			wantWidth: 5.0,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb, ok := ComponentBoundingBox(&tt.comp, DefaultPadExpansion)
			if ok != tt.wantOK {
				t.Fatalf("ComponentBoundingBox() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !almostEqual(bb.Width(), tt.wantWidth) {
				t.Errorf("ComponentBoundingBox() width = %v, want %v", bb.Width(), tt.wantWidth)
			}
		})
	}
}

func TestTrackToZoneClearance(t *testing.T) {
	zonePoly := board.Polygon{Points: []board.Point{
		{X: 10, Y: 0}, {X: 12, Y: 0}, {X: 12, Y: 2}, {X: 10, Y: 2},
	}}

	track := board.Track{
		ID:    "t1",
		Net:   "SIG1",
		Start: &board.Point{X: 0, Y: 1},
		End:   &board.Point{X: 5, Y: 1},
		Width: 0.2,
	}

	zone := board.Zone{ID: "z1", Net: "GND", Polygon: &zonePoly}

	// Nearest approach is the track end at x=5 to the zone edge at
	// x=10, minus half the track width.
	got := TrackToZoneClearance(track, zone)
	if !almostEqual(got, 4.9) {
		t.Errorf("TrackToZoneClearance() = %v, want 4.9", got)
	}

	// Same net needs no clearance, for any geometry.
	sameNet := zone
	sameNet.Net = "SIG1"
	if got := TrackToZoneClearance(track, sameNet); !math.IsInf(got, 1) {
		t.Errorf("TrackToZoneClearance() same net = %v, want +Inf", got)
	}
}

func TestViaToComponentClearance(t *testing.T) {
	comp := board.Component{
		Refdes:   "U1",
		Position: &board.Point{X: 0, Y: 0},
		BBox:     &board.BoundingBox{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1},
	}

	via := board.Via{
		ID:       "v1",
		Position: &board.Point{X: 4, Y: 0},
		Size:     1.0,
	}

	// 3mm from bbox edge, minus the 0.5mm via radius.
	got := ViaToComponentClearance(via, &comp, DefaultPadExpansion)
	if !almostEqual(got, 2.5) {
		t.Errorf("ViaToComponentClearance() = %v, want 2.5", got)
	}

	noPos := board.Via{ID: "v2", Size: 1.0}
	if got := ViaToComponentClearance(noPos, &comp, DefaultPadExpansion); !math.IsInf(got, 1) {
		t.Errorf("ViaToComponentClearance() no position = %v, want +Inf", got)
	}
}
