// Package board defines the canonical, CAD-tool-independent PCB data model.
// External format bridges (KiCad, Eagle, Gerber, Altium) translate their
// native structures into this model; everything downstream of the bridges
// works exclusively in these types, with all coordinates in millimeters.
package board

// Units represents the measurement unit a board was authored in.
// The canonical model itself always stores millimeters; bridges convert.
type Units string

const (
	UnitsMM   Units = "mm"
	UnitsMil  Units = "mil"
	UnitsInch Units = "inch"
)

// LayerType classifies a stackup layer.
type LayerType string

const (
	LayerSignal     LayerType = "signal"
	LayerPower      LayerType = "power"
	LayerGround     LayerType = "ground"
	LayerMixed      LayerType = "mixed"
	LayerDielectric LayerType = "dielectric"
	LayerSoldermask LayerType = "soldermask"
	LayerSilkscreen LayerType = "silkscreen"
	LayerPaste      LayerType = "paste"
	LayerMechanical LayerType = "mechanical"
)

// Side is a component mounting side.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// NetClass classifies an electrical net.
type NetClass string

const (
	NetSignal       NetClass = "signal"
	NetPower        NetClass = "power"
	NetGround       NetClass = "ground"
	NetDifferential NetClass = "differential"
	NetHighSpeed    NetClass = "high_speed"
	NetHighVoltage  NetClass = "high_voltage"
)

// Point is a 2D coordinate in mm.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox is an axis-aligned rectangular boundary.
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the box.
func (bb BoundingBox) Width() float64 {
	return bb.MaxX - bb.MinX
}

// Height returns the vertical extent of the box.
func (bb BoundingBox) Height() float64 {
	return bb.MaxY - bb.MinY
}

// Center returns the center point of the box.
func (bb BoundingBox) Center() Point {
	return Point{
		X: (bb.MinX + bb.MaxX) / 2.0,
		Y: (bb.MinY + bb.MaxY) / 2.0,
	}
}

// Expand grows the box to include a point.
func (bb *BoundingBox) Expand(p Point) {
	if p.X < bb.MinX {
		bb.MinX = p.X
	}
	if p.Y < bb.MinY {
		bb.MinY = p.Y
	}
	if p.X > bb.MaxX {
		bb.MaxX = p.X
	}
	if p.Y > bb.MaxY {
		bb.MaxY = p.Y
	}
}

// Polygon is an ordered point sequence with optional holes.
// It is not guaranteed to be convex or to repeat its closing point.
type Polygon struct {
	Points []Point   `json:"points"`
	Holes  [][]Point `json:"holes,omitempty"`
}

// BoundingBox returns the axis-aligned bounds of the polygon outline,
// or false if the polygon has no points.
func (p Polygon) BoundingBox() (BoundingBox, bool) {
	if len(p.Points) == 0 {
		return BoundingBox{}, false
	}
	bb := BoundingBox{
		MinX: p.Points[0].X, MinY: p.Points[0].Y,
		MaxX: p.Points[0].X, MaxY: p.Points[0].Y,
	}
	for _, pt := range p.Points[1:] {
		bb.Expand(pt)
	}
	return bb, true
}
