package board

import (
	"math"
	"strings"
)

// Layer is one entry in the board stackup.
type Layer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         LayerType `json:"type"`
	Order        int       `json:"order"` // Stack order (0 = top)
	Thickness    float64   `json:"thickness,omitempty"`
	Material     string    `json:"material,omitempty"`
	CopperWeight float64   `json:"copper_weight,omitempty"` // oz per sq ft
	IsSignal     bool      `json:"is_signal,omitempty"`
	IsPlane      bool      `json:"is_plane,omitempty"`
}

// Stackup is the ordered layer structure of the board.
type Stackup struct {
	Layers         []Layer `json:"layers"`
	TotalThickness float64 `json:"total_thickness,omitempty"`
}

// LayerCount returns the number of copper routing layers (signal + power).
func (s Stackup) LayerCount() int {
	n := 0
	for _, l := range s.Layers {
		if l.Type == LayerSignal || l.Type == LayerPower {
			n++
		}
	}
	return n
}

// LayerByName retrieves a layer by name, or nil if absent.
func (s Stackup) LayerByName(name string) *Layer {
	for i := range s.Layers {
		if s.Layers[i].Name == name {
			return &s.Layers[i]
		}
	}
	return nil
}

// Pad is a single component pad.
type Pad struct {
	ID       string   `json:"id"`
	Net      string   `json:"net,omitempty"`
	Layer    string   `json:"layer,omitempty"`
	Position *Point   `json:"position,omitempty"`
	Shape    string   `json:"shape,omitempty"` // circle, rect, oval, polygon
	SizeX    float64  `json:"size_x,omitempty"`
	SizeY    float64  `json:"size_y,omitempty"`
	Drill    float64  `json:"drill,omitempty"` // 0 for SMD
	Polygon  *Polygon `json:"polygon,omitempty"`
}

// Component is a placed part, keyed by its reference designator.
type Component struct {
	Refdes       string  `json:"refdes"`
	Value        string  `json:"value,omitempty"`
	Footprint    string  `json:"footprint,omitempty"`
	Position     *Point  `json:"position,omitempty"`
	Rotation     float64 `json:"rotation,omitempty"` // degrees
	Side         Side    `json:"side,omitempty"`
	Layer        string  `json:"layer,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	MPN          string  `json:"mpn,omitempty"`
	Description  string  `json:"description,omitempty"`
	Package      string  `json:"package,omitempty"`

	Pads []Pad `json:"pads,omitempty"`

	BBox      *BoundingBox `json:"bbox,omitempty"`
	Courtyard *Polygon     `json:"courtyard,omitempty"`

	Properties map[string]string `json:"properties,omitempty"`
}

// Net is an electrical net. Pads holds "REFDES.PAD" references resolved
// by the format bridge; an empty list means the bridge found no
// connections, not that none exist on the board.
type Net struct {
	Name  string   `json:"name"`
	Class NetClass `json:"net_class,omitempty"`
	Pads  []string `json:"pads,omitempty"`

	IsPower        bool    `json:"is_power,omitempty"`
	IsGround       bool    `json:"is_ground,omitempty"`
	IsDifferential bool    `json:"is_differential,omitempty"`
	IsHighVoltage  bool    `json:"is_high_voltage,omitempty"`
	Voltage        float64 `json:"voltage,omitempty"` // nominal, volts
	Current        float64 `json:"current,omitempty"` // max, amps

	// Differential pair metadata
	PairName   string `json:"pair_name,omitempty"` // e.g. "USB_D"
	IsPositive *bool  `json:"is_positive,omitempty"`

	Impedance float64 `json:"impedance,omitempty"` // target, ohms
	MaxLength float64 `json:"max_length,omitempty"`
	MinLength float64 `json:"min_length,omitempty"`

	Width     float64 `json:"width,omitempty"` // default trace width
	Clearance float64 `json:"clearance,omitempty"`
}

// Track is a straight copper trace segment.
type Track struct {
	ID    string  `json:"id"`
	Net   string  `json:"net,omitempty"`
	Layer string  `json:"layer,omitempty"`
	Start *Point  `json:"start,omitempty"`
	End   *Point  `json:"end,omitempty"`
	Width float64 `json:"width"`
}

// Length returns the straight-line length of the track, 0 if endpoints
// are unknown.
func (t Track) Length() float64 {
	if t.Start == nil || t.End == nil {
		return 0
	}
	dx := t.End.X - t.Start.X
	dy := t.End.Y - t.Start.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Via is a drilled layer transition.
type Via struct {
	ID         string  `json:"id"`
	Net        string  `json:"net,omitempty"`
	Position   *Point  `json:"position,omitempty"`
	Size       float64 `json:"size"`  // outer diameter
	Drill      float64 `json:"drill"` // drill diameter
	StartLayer string  `json:"start_layer,omitempty"`
	EndLayer   string  `json:"end_layer,omitempty"`
	IsThrough  bool    `json:"is_through,omitempty"`
	IsBuried   bool    `json:"is_buried,omitempty"`
	IsBlind    bool    `json:"is_blind,omitempty"`
}

// AnnularRing returns the radial copper width around the drill,
// (size - drill) / 2. A via with no drill has no ring.
func (v Via) AnnularRing() float64 {
	if v.Drill > 0 {
		return (v.Size - v.Drill) / 2.0
	}
	return 0.0
}

// Zone is a filled copper pour.
type Zone struct {
	ID        string   `json:"id"`
	Net       string   `json:"net,omitempty"`
	Layer     string   `json:"layer,omitempty"`
	Polygon   *Polygon `json:"polygon,omitempty"`
	Clearance float64  `json:"clearance,omitempty"`
	MinWidth  float64  `json:"min_width,omitempty"`
	IsKeepout bool     `json:"is_keepout,omitempty"`
	Priority  int      `json:"priority,omitempty"` // pour-fill ordering
}

// Hole is a non-plated hole (mounting, tooling).
type Hole struct {
	ID          string  `json:"id"`
	Position    Point   `json:"position"`
	Diameter    float64 `json:"diameter"`
	IsPlated    bool    `json:"is_plated,omitempty"`
	IsSlot      bool    `json:"is_slot,omitempty"`
	EndPosition *Point  `json:"end_position,omitempty"` // for slots
}

// Rule is a single board-embedded design rule.
type Rule struct {
	Name     string  `json:"name"`
	Category string  `json:"category"` // clearance, width, drill, ...
	Layer    string  `json:"layer,omitempty"`
	NetClass string  `json:"net_class,omitempty"`
	Value    float64 `json:"value"`
	Enabled  bool    `json:"enabled"`
}

// RuleSet is a named collection of board-embedded rules.
type RuleSet struct {
	Name  string `json:"name"`
	Rules []Rule `json:"rules,omitempty"`
}

// Rule retrieves a rule by name, or nil if absent.
func (rs *RuleSet) Rule(name string) *Rule {
	for i := range rs.Rules {
		if rs.Rules[i].Name == name {
			return &rs.Rules[i]
		}
	}
	return nil
}

// BoardOutline is the physical outline of the board.
type BoardOutline struct {
	Polygon   Polygon   `json:"polygon"`
	Thickness float64   `json:"thickness,omitempty"` // mm
	Cutouts   []Polygon `json:"cutouts,omitempty"`
}

// Board is the root aggregate. It owns every entity by value and is
// treated as read-only once handed to a checker.
type Board struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Units Units  `json:"units,omitempty"`

	Outline *BoardOutline `json:"outline,omitempty"`
	Stackup *Stackup      `json:"stackup,omitempty"`

	Components []Component `json:"components,omitempty"`
	Nets       []Net       `json:"nets,omitempty"`
	Tracks     []Track     `json:"tracks,omitempty"`
	Vias       []Via       `json:"vias,omitempty"`
	Zones      []Zone      `json:"zones,omitempty"`
	Holes      []Hole      `json:"holes,omitempty"`

	Rules *RuleSet `json:"rules,omitempty"`
}

// Component retrieves a component by reference designator, or nil.
func (b *Board) Component(refdes string) *Component {
	for i := range b.Components {
		if b.Components[i].Refdes == refdes {
			return &b.Components[i]
		}
	}
	return nil
}

// Net retrieves a net by name, or nil.
func (b *Board) Net(name string) *Net {
	for i := range b.Nets {
		if b.Nets[i].Name == name {
			return &b.Nets[i]
		}
	}
	return nil
}

// NetComponents returns the components reachable through a net's pad
// references.
func (b *Board) NetComponents(netName string) []*Component {
	net := b.Net(netName)
	if net == nil {
		return nil
	}

	refs := make(map[string]bool)
	for _, pad := range net.Pads {
		if i := strings.Index(pad, "."); i > 0 {
			refs[pad[:i]] = true
		}
	}

	var comps []*Component
	for i := range b.Components {
		if refs[b.Components[i].Refdes] {
			comps = append(comps, &b.Components[i])
		}
	}
	return comps
}

// HighVoltageNets returns nets whose nominal voltage meets the threshold.
func (b *Board) HighVoltageNets(threshold float64) []*Net {
	var nets []*Net
	for i := range b.Nets {
		if b.Nets[i].Voltage != 0 && b.Nets[i].Voltage >= threshold {
			nets = append(nets, &b.Nets[i])
		}
	}
	return nets
}

// DifferentialPair holds the two sides of a named pair. Either side may
// be nil when its complement is missing from the board.
type DifferentialPair struct {
	Name     string
	Positive *Net
	Negative *Net
}

// DifferentialPairs groups differential nets by pair name. Pairs with a
// missing complement are included so checks can flag them.
func (b *Board) DifferentialPairs() []DifferentialPair {
	byName := make(map[string]*DifferentialPair)
	var order []string

	for i := range b.Nets {
		net := &b.Nets[i]
		if !net.IsDifferential || net.PairName == "" || net.IsPositive == nil {
			continue
		}
		pair, ok := byName[net.PairName]
		if !ok {
			pair = &DifferentialPair{Name: net.PairName}
			byName[net.PairName] = pair
			order = append(order, net.PairName)
		}
		if *net.IsPositive {
			pair.Positive = net
		} else {
			pair.Negative = net
		}
	}

	pairs := make([]DifferentialPair, 0, len(order))
	for _, name := range order {
		pairs = append(pairs, *byName[name])
	}
	return pairs
}

// BoundingBox returns the board outline bounds, or false when the board
// has no usable outline.
func (b *Board) BoundingBox() (BoundingBox, bool) {
	if b.Outline == nil {
		return BoundingBox{}, false
	}
	return b.Outline.Polygon.BoundingBox()
}

// LayerCount returns the copper layer count from the stackup, 0 if the
// stackup is unknown.
func (b *Board) LayerCount() int {
	if b.Stackup == nil {
		return 0
	}
	return b.Stackup.LayerCount()
}

// ComponentCount returns the total number of components.
func (b *Board) ComponentCount() int { return len(b.Components) }

// NetCount returns the total number of nets.
func (b *Board) NetCount() int { return len(b.Nets) }

// Summary is the compact board digest embedded in check reports.
type Summary struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Units          Units        `json:"units"`
	ComponentCount int          `json:"component_count"`
	NetCount       int          `json:"net_count"`
	LayerCount     int          `json:"layer_count"`
	BBox           *BoundingBox `json:"bbox,omitempty"`
}

// Summarize builds the report digest for the board.
func (b *Board) Summarize() Summary {
	s := Summary{
		ID:             b.ID,
		Name:           b.Name,
		Units:          b.Units,
		ComponentCount: b.ComponentCount(),
		NetCount:       b.NetCount(),
		LayerCount:     b.LayerCount(),
	}
	if bb, ok := b.BoundingBox(); ok {
		s.BBox = &bb
	}
	return s
}
