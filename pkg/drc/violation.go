// Package drc implements the design rule check engine: a fixed catalog
// of independent check functions evaluated concurrently against a
// canonical board and a rule profile, aggregated into a severity-ordered
// report.
package drc

import "math"

// Severity ranks a violation. The order is strict:
// critical > error > warning > info.
type Severity string

const (
	SeverityCritical Severity = "critical" // must fix - board won't work or is unsafe
	SeverityError    Severity = "error"    // should fix - functionality impaired
	SeverityWarning  Severity = "warning"  // review recommended - may cause issues
	SeverityInfo     Severity = "info"     // information / best practice
)

// Rank returns the severity's position in the total order; higher is
// worse. Unknown severities rank below info.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// Category is the closed violation taxonomy. Domain-specific checkers
// outside the core emit into the same categories rather than inventing
// ad hoc shapes.
type Category string

const (
	CategoryClearance        Category = "clearance"
	CategoryTraceWidth       Category = "trace_width"
	CategoryViaSize          Category = "via_size"
	CategoryDrill            Category = "drill"
	CategoryAnnularRing      Category = "annular_ring"
	CategoryCreepage         Category = "creepage"
	CategoryHighVoltage      Category = "high_voltage"
	CategoryDifferentialPair Category = "differential_pair"
	CategoryComponentSpacing Category = "component_spacing"
	CategorySolderMask       Category = "solder_mask"
	CategorySilkscreen       Category = "silkscreen"
	CategoryAssembly         Category = "assembly"
	CategoryConnectivity     Category = "connectivity"
	CategoryFabCapability    Category = "fab_capability"
)

// Location is a board coordinate attached to a violation.
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Violation is one design rule failure. It is pure data: produced once
// by a check function and never mutated. The ID is derived only from
// the offending entity ids, so the violation set for a given board and
// profile is reproducible regardless of check scheduling.
type Violation struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Rule        string   `json:"rule"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description"`

	Layer    string    `json:"layer,omitempty"`
	Location *Location `json:"location,omitempty"`

	Net1      string `json:"net1,omitempty"`
	Net2      string `json:"net2,omitempty"`
	Component string `json:"component,omitempty"`

	Actual   *float64 `json:"actual,omitempty"`
	Required *float64 `json:"required,omitempty"`
	Unit     string   `json:"unit,omitempty"`

	SuggestedFix string `json:"suggested_fix,omitempty"`
	StandardRef  string `json:"standard_reference,omitempty"`

	Details map[string]any `json:"details,omitempty"`
}

// measure boxes a measured value for the optional actual/required pair,
// rounded to 3 decimals (micron resolution is noise at board scale).
func measure(v float64) *float64 {
	r := round3(v)
	return &r
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
