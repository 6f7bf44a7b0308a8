// Package profile provides named, versioned rule profiles: bundles of
// numeric fabrication and safety thresholds that design rule checks
// evaluate boards against. The built-in catalog covers common board
// technologies, compliance standards and manufacturer capabilities;
// custom profiles can be registered programmatically or loaded from
// YAML.
package profile

// Type classifies what a profile represents.
type Type string

const (
	TypeBoardTech    Type = "board_tech"
	TypeStandard     Type = "standard"
	TypeManufacturer Type = "manufacturer"
	TypeCustom       Type = "custom"
)

// Voltage tier keys for the clearance and creepage maps. The tier for a
// given net is chosen by the calling check, not by the profile: low is
// <48V, medium 48-300V, high >300V.
const (
	TierLV = "lv"
	TierMV = "mv"
	TierHV = "hv"
)

// Value is a single numeric threshold plus provenance.
type Value struct {
	Value     float64 `json:"value" yaml:"value"`
	Unit      string  `json:"unit" yaml:"unit"`
	Min       float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Tolerance float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
}

// MM builds a millimeter threshold.
func MM(v float64) Value {
	return Value{Value: v, Unit: "mm"}
}

// Profile is an immutable bundle of design-rule thresholds. Checks are
// only as strict as these numbers.
type Profile struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Type        Type   `json:"type" yaml:"type"`

	// Trace rules
	MinTraceWidth   Value `json:"min_trace_width" yaml:"min_trace_width"`
	MinTraceSpacing Value `json:"min_trace_spacing" yaml:"min_trace_spacing"`

	// Via rules
	MinViaDiameter Value   `json:"min_via_diameter" yaml:"min_via_diameter"`
	MinViaDrill    Value   `json:"min_via_drill" yaml:"min_via_drill"`
	MinAnnularRing Value   `json:"min_annular_ring" yaml:"min_annular_ring"`
	MaxAspectRatio float64 `json:"max_aspect_ratio,omitempty" yaml:"max_aspect_ratio,omitempty"` // depth/diameter

	// Drill rules
	MinHoleDiameter Value  `json:"min_hole_diameter" yaml:"min_hole_diameter"`
	MaxHoleDiameter *Value `json:"max_hole_diameter,omitempty" yaml:"max_hole_diameter,omitempty"`
	MinHoleSpacing  Value  `json:"min_hole_spacing" yaml:"min_hole_spacing"`

	// Voltage-tiered separation rules, keyed by TierLV/TierMV/TierHV.
	Clearance map[string]Value `json:"clearance" yaml:"clearance"`
	Creepage  map[string]Value `json:"creepage" yaml:"creepage"`

	// Solder mask
	MinMaskSliver Value `json:"min_mask_sliver" yaml:"min_mask_sliver"`
	MaskExpansion Value `json:"mask_expansion" yaml:"mask_expansion"`

	// Assembly rules
	MinComponentSpacing Value `json:"min_component_spacing" yaml:"min_component_spacing"`
	MinEdgeClearance    Value `json:"min_edge_clearance" yaml:"min_edge_clearance"`

	// Board constraints
	MaxLayers         int       `json:"max_layers,omitempty" yaml:"max_layers,omitempty"`
	MinLayers         int       `json:"min_layers,omitempty" yaml:"min_layers,omitempty"`
	StandardThickness []float64 `json:"standard_thickness,omitempty" yaml:"standard_thickness,omitempty"`

	CostLevel string   `json:"cost_level" yaml:"cost_level"` // low, medium, high
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ClearanceFor returns the clearance threshold for a tier, falling back
// one tier when the profile does not define the requested one.
func (p *Profile) ClearanceFor(tier string) Value {
	return tiered(p.Clearance, tier)
}

// CreepageFor returns the creepage threshold for a tier with the same
// fallback behavior as ClearanceFor.
func (p *Profile) CreepageFor(tier string) Value {
	return tiered(p.Creepage, tier)
}

func tiered(m map[string]Value, tier string) Value {
	if v, ok := m[tier]; ok {
		return v
	}
	// hv falls back to mv, mv to lv.
	switch tier {
	case TierHV:
		if v, ok := m[TierMV]; ok {
			return v
		}
	case TierMV:
		if v, ok := m[TierLV]; ok {
			return v
		}
	}
	return m[TierLV]
}

// HasTag reports whether the profile carries a tag.
func (p *Profile) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
