package drc

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/board"
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/profile"
)

// hvThreshold is the voltage at which a net starts needing tiered
// clearance and creepage treatment, in volts.
const hvThreshold = 48.0

// checkFunc is a pure function of board and profile. Checks must not
// mutate either argument and must not share state with each other.
type checkFunc func(*board.Board, *profile.Profile) []Violation

type check struct {
	name string
	run  checkFunc
}

// catalog is the fixed set of checks the engine dispatches. Order here
// does not influence report order; violations are sorted after merge.
var catalog = []check{
	{"trace_width", checkTraceWidth},
	{"via_geometry", checkViaGeometry},
	{"component_spacing", checkComponentSpacing},
	{"edge_clearance", checkEdgeClearance},
	{"high_voltage_clearance", checkHighVoltageClearance},
	{"high_voltage_creepage", checkHighVoltageCreepage},
	{"differential_pairs", checkDifferentialPairs},
	{"net_connectivity", checkNetConnectivity},
}

// checkTraceWidth verifies every routed track against the profile's
// minimum width. Power nets get a stricter requirement: 1.5x above 12V,
// 1.2x otherwise.
func checkTraceWidth(b *board.Board, p *profile.Profile) []Violation {
	var violations []Violation
	minWidth := p.MinTraceWidth.Value

	requiredByNet := make(map[string]float64)
	for _, net := range b.Nets {
		if net.IsPower || net.Voltage != 0 {
			if net.Voltage > 12 {
				requiredByNet[net.Name] = minWidth * 1.5
			} else {
				requiredByNet[net.Name] = minWidth * 1.2
			}
		}
	}

	for _, track := range b.Tracks {
		if track.Net == "" {
			continue
		}

		required, isPower := requiredByNet[track.Net]
		if !isPower {
			required = minWidth
		}

		if track.Width >= required {
			continue
		}

		severity := SeverityWarning
		if track.Width < minWidth*0.8 {
			severity = SeverityError
		}

		v := Violation{
			ID:          "trace_width_" + track.ID,
			Category:    CategoryTraceWidth,
			Severity:    severity,
			Rule:        "min_trace_width",
			Title:       "Trace width below minimum",
			Description: fmt.Sprintf("Trace width too narrow on %s", track.Net),
			Layer:       track.Layer,
			Net1:        track.Net,
			Actual:      measure(track.Width),
			Required:    measure(required),
			Unit:        "mm",
			SuggestedFix: fmt.Sprintf("Increase trace width to at least %gmm", round3(required)),
			Details: map[string]any{
				"track_id":     track.ID,
				"track_length": round3(track.Length()),
				"is_power_net": isPower,
			},
		}
		if track.Start != nil {
			v.Location = &Location{X: track.Start.X, Y: track.Start.Y}
		}
		violations = append(violations, v)
	}

	return violations
}

// checkViaGeometry verifies each via's outer diameter, drill diameter
// and annular ring independently; one via can raise up to three
// violations.
func checkViaGeometry(b *board.Board, p *profile.Profile) []Violation {
	var violations []Violation

	minVia := p.MinViaDiameter.Value
	minDrill := p.MinViaDrill.Value
	minAnnular := p.MinAnnularRing.Value

	for _, via := range b.Vias {
		var loc *Location
		if via.Position != nil {
			loc = &Location{X: via.Position.X, Y: via.Position.Y}
		}

		if via.Size < minVia {
			violations = append(violations, Violation{
				ID:          "via_size_" + via.ID,
				Category:    CategoryViaSize,
				Severity:    SeverityError,
				Rule:        "min_via_diameter",
				Title:       "Via diameter below minimum",
				Description: fmt.Sprintf("Via diameter %gmm < minimum %gmm", via.Size, minVia),
				Location:    loc,
				Net1:        via.Net,
				Actual:      measure(via.Size),
				Required:    measure(minVia),
				Unit:        "mm",
			})
		}

		if via.Drill < minDrill {
			violations = append(violations, Violation{
				ID:          "via_drill_" + via.ID,
				Category:    CategoryDrill,
				Severity:    SeverityError,
				Rule:        "min_via_drill",
				Title:       "Via drill below minimum",
				Description: fmt.Sprintf("Via drill %gmm < minimum %gmm", via.Drill, minDrill),
				Location:    loc,
				Net1:        via.Net,
				Actual:      measure(via.Drill),
				Required:    measure(minDrill),
				Unit:        "mm",
			})
		}

		if annular := via.AnnularRing(); annular < minAnnular {
			violations = append(violations, Violation{
				ID:          "via_annular_" + via.ID,
				Category:    CategoryAnnularRing,
				Severity:    SeverityError,
				Rule:        "min_annular_ring",
				Title:       "Via annular ring too small",
				Description: fmt.Sprintf("Annular ring %.3fmm < minimum %gmm", annular, minAnnular),
				Location:    loc,
				Net1:        via.Net,
				Actual:      measure(annular),
				Required:    measure(minAnnular),
				Unit:        "mm",
				StandardRef: "IPC-2221A",
				Details: map[string]any{
					"via_size": via.Size,
					"drill":    via.Drill,
					"via_id":   via.ID,
				},
			})
		}
	}

	return violations
}

// pairDistance measures the separation between two placed components:
// bounding-box distance when both boxes resolve, center-to-center as a
// fallback.
func pairDistance(a, b *board.Component) float64 {
	bbA, okA := geometry.ComponentBoundingBox(a, geometry.DefaultPadExpansion)
	bbB, okB := geometry.ComponentBoundingBox(b, geometry.DefaultPadExpansion)
	if okA && okB {
		return geometry.BBoxDistance(bbA, bbB)
	}
	return geometry.PointDistance(*a.Position, *b.Position)
}

// checkComponentSpacing flags same-side component pairs placed closer
// than the profile's assembly spacing minimum.
func checkComponentSpacing(b *board.Board, p *profile.Profile) []Violation {
	var violations []Violation
	minSpacing := p.MinComponentSpacing.Value

	comps := b.Components
	for i := range comps {
		for j := i + 1; j < len(comps); j++ {
			c1, c2 := &comps[i], &comps[j]

			if c1.Side != c2.Side {
				continue
			}
			if c1.Position == nil || c2.Position == nil {
				continue
			}

			distance := pairDistance(c1, c2)
			if distance >= minSpacing {
				continue
			}

			violations = append(violations, Violation{
				ID:          fmt.Sprintf("comp_spacing_%s_%s", c1.Refdes, c2.Refdes),
				Category:    CategoryComponentSpacing,
				Severity:    SeverityWarning,
				Rule:        "min_component_spacing",
				Title:       "Components too close",
				Description: fmt.Sprintf("Components too close: %s and %s", c1.Refdes, c2.Refdes),
				Layer:       string(c1.Side),
				Location: &Location{
					X: (c1.Position.X + c2.Position.X) / 2,
					Y: (c1.Position.Y + c2.Position.Y) / 2,
				},
				Component: c1.Refdes + "," + c2.Refdes,
				Actual:    measure(distance),
				Required:  measure(minSpacing),
				Unit:      "mm",
				Details: map[string]any{
					"comp1": c1.Refdes,
					"comp2": c2.Refdes,
					"side":  string(c1.Side),
				},
			})
		}
	}

	return violations
}

// checkEdgeClearance flags components placed too close to the board's
// bounding edges, naming the nearest edge.
func checkEdgeClearance(b *board.Board, p *profile.Profile) []Violation {
	var violations []Violation
	minClearance := p.MinEdgeClearance.Value

	bbox, ok := b.BoundingBox()
	if !ok {
		return nil
	}

	for i := range b.Components {
		comp := &b.Components[i]
		if comp.Position == nil {
			continue
		}

		edges := []struct {
			name string
			dist float64
		}{
			{"left", comp.Position.X - bbox.MinX},
			{"right", bbox.MaxX - comp.Position.X},
			{"bottom", comp.Position.Y - bbox.MinY},
			{"top", bbox.MaxY - comp.Position.Y},
		}

		nearest := edges[0]
		for _, e := range edges[1:] {
			if e.dist < nearest.dist {
				nearest = e
			}
		}

		if nearest.dist >= minClearance {
			continue
		}

		violations = append(violations, Violation{
			ID:          "edge_clearance_" + comp.Refdes,
			Category:    CategoryAssembly,
			Severity:    SeverityWarning,
			Rule:        "min_edge_clearance",
			Title:       "Component too close to board edge",
			Description: fmt.Sprintf("Component %s too close to %s edge", comp.Refdes, nearest.name),
			Layer:       string(comp.Side),
			Location:    &Location{X: comp.Position.X, Y: comp.Position.Y},
			Component:   comp.Refdes,
			Actual:      measure(nearest.dist),
			Required:    measure(minClearance),
			Unit:        "mm",
			Details: map[string]any{
				"edge":  nearest.name,
				"value": comp.Value,
			},
		})
	}

	return violations
}

// voltageTier maps a net voltage to the profile tier key and the
// severity its violations carry.
func voltageTier(voltage float64) (string, Severity) {
	switch {
	case voltage >= 300:
		return profile.TierHV, SeverityCritical
	case voltage >= hvThreshold:
		return profile.TierMV, SeverityError
	default:
		return profile.TierLV, SeverityWarning
	}
}

// checkHighVoltageClearance verifies that components on high-voltage
// nets keep the tiered clearance distance from every other same-side
// component.
func checkHighVoltageClearance(b *board.Board, p *profile.Profile) []Violation {
	var violations []Violation

	for _, hvNet := range b.HighVoltageNets(hvThreshold) {
		tier, severity := voltageTier(hvNet.Voltage)
		required := p.ClearanceFor(tier).Value

		for _, hvComp := range b.NetComponents(hvNet.Name) {
			if hvComp.Position == nil {
				continue
			}

			for i := range b.Components {
				other := &b.Components[i]
				if other.Refdes == hvComp.Refdes {
					continue
				}
				if other.Side != hvComp.Side {
					continue
				}
				if other.Position == nil {
					continue
				}

				distance := pairDistance(hvComp, other)
				if distance >= required {
					continue
				}

				violations = append(violations, Violation{
					ID:       fmt.Sprintf("hv_clearance_%s_%s_%s", hvNet.Name, hvComp.Refdes, other.Refdes),
					Category: CategoryHighVoltage,
					Severity: severity,
					Rule:     "high_voltage_clearance",
					Title:    "High-voltage clearance violation",
					Description: fmt.Sprintf("HV net %s (%gV) too close to %s",
						hvNet.Name, hvNet.Voltage, other.Refdes),
					Layer: string(hvComp.Side),
					Location: &Location{
						X: (hvComp.Position.X + other.Position.X) / 2,
						Y: (hvComp.Position.Y + other.Position.Y) / 2,
					},
					Net1:      hvNet.Name,
					Component: other.Refdes,
					Actual:    measure(distance),
					Required:  measure(required),
					Unit:      "mm",
					Details: map[string]any{
						"voltage":          hvNet.Voltage,
						"hv_component":     hvComp.Refdes,
						"nearby_component": other.Refdes,
					},
				})
			}
		}
	}

	return violations
}

// checkHighVoltageCreepage verifies that components on high-voltage
// nets keep the tiered creepage distance from the board edge. This is
// a surface-path proxy: the measured value is the straight-line edge
// distance, not a routed path around cutouts.
func checkHighVoltageCreepage(b *board.Board, p *profile.Profile) []Violation {
	var violations []Violation

	bbox, ok := b.BoundingBox()
	if !ok {
		return nil
	}

	for _, hvNet := range b.HighVoltageNets(hvThreshold) {
		tier, severity := voltageTier(hvNet.Voltage)
		required := p.CreepageFor(tier).Value

		for _, hvComp := range b.NetComponents(hvNet.Name) {
			if hvComp.Position == nil {
				continue
			}

			minEdge := hvComp.Position.X - bbox.MinX
			for _, d := range []float64{
				bbox.MaxX - hvComp.Position.X,
				hvComp.Position.Y - bbox.MinY,
				bbox.MaxY - hvComp.Position.Y,
			} {
				if d < minEdge {
					minEdge = d
				}
			}

			if minEdge >= required {
				continue
			}

			violations = append(violations, Violation{
				ID:       fmt.Sprintf("hv_creepage_edge_%s_%s", hvNet.Name, hvComp.Refdes),
				Category: CategoryCreepage,
				Severity: severity,
				Rule:     "high_voltage_creepage_edge",
				Title:    "High-voltage creepage violation",
				Description: fmt.Sprintf("HV component %s (%gV) too close to board edge",
					hvComp.Refdes, hvNet.Voltage),
				Layer:       string(hvComp.Side),
				Location:    &Location{X: hvComp.Position.X, Y: hvComp.Position.Y},
				Net1:        hvNet.Name,
				Component:   hvComp.Refdes,
				Actual:      measure(minEdge),
				Required:    measure(required),
				Unit:        "mm",
				StandardRef: "IPC-2221",
				Details: map[string]any{
					"voltage": hvNet.Voltage,
				},
			})
		}
	}

	return violations
}

// widthMatchTolerance is the allowed width difference between the two
// sides of a differential pair, in mm.
const widthMatchTolerance = 0.01

// checkDifferentialPairs verifies that every named pair has both sides
// present and that their specified widths match.
func checkDifferentialPairs(b *board.Board, p *profile.Profile) []Violation {
	var violations []Violation

	for _, pair := range b.DifferentialPairs() {
		if pair.Positive == nil || pair.Negative == nil {
			present := pair.Positive
			if present == nil {
				present = pair.Negative
			}

			v := Violation{
				ID:          "diff_missing_" + present.Name,
				Category:    CategoryDifferentialPair,
				Severity:    SeverityError,
				Rule:        "differential_pair_complete",
				Title:       "Differential pair incomplete",
				Description: fmt.Sprintf("Differential pair incomplete: %s has no complement", present.Name),
				SuggestedFix: fmt.Sprintf("Define the missing side of pair %q", pair.Name),
				Details: map[string]any{
					"pair_name": pair.Name,
				},
			}
			if pair.Positive != nil {
				v.Net1 = pair.Positive.Name
			} else {
				v.Net2 = pair.Negative.Name
			}
			violations = append(violations, v)
			continue
		}

		pos, neg := pair.Positive, pair.Negative
		if pos.Width != 0 && neg.Width != 0 {
			diff := pos.Width - neg.Width
			if diff < 0 {
				diff = -diff
			}
			if diff > widthMatchTolerance {
				violations = append(violations, Violation{
					ID:          fmt.Sprintf("diff_width_%s_%s", pos.Name, neg.Name),
					Category:    CategoryDifferentialPair,
					Severity:    SeverityWarning,
					Rule:        "differential_pair_width_match",
					Title:       "Differential pair width mismatch",
					Description: fmt.Sprintf("Differential pair width mismatch: %s vs %s", pos.Name, neg.Name),
					Net1:        pos.Name,
					Net2:        neg.Name,
					Actual:      measure(diff),
					Required:    measure(widthMatchTolerance),
					Unit:        "mm",
					Details: map[string]any{
						"pos_width": pos.Width,
						"neg_width": neg.Width,
						"pair_name": pair.Name,
					},
				})
			}
		}
	}

	return violations
}

// checkNetConnectivity flags nets with no pads (unused) or a single pad
// (stub). Empty names and KiCad's intentional "unconnected-*" nets are
// skipped. A correct result depends on the format bridge having
// populated each net's pad list; an empty list here means the bridge
// reported no connections, which this check takes at face value.
func checkNetConnectivity(b *board.Board, p *profile.Profile) []Violation {
	var violations []Violation

	for i := range b.Nets {
		net := &b.Nets[i]

		if strings.TrimSpace(net.Name) == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(net.Name), "unconnected-") {
			continue
		}

		switch len(net.Pads) {
		case 0:
			violations = append(violations, Violation{
				ID:          "net_unused_" + net.Name,
				Category:    CategoryConnectivity,
				Severity:    SeverityInfo,
				Rule:        "net_connectivity",
				Title:       "Unused net",
				Description: fmt.Sprintf("Net %q is defined but has no connections", net.Name),
				Net1:        net.Name,
				Details: map[string]any{
					"net_name":   net.Name,
					"pad_count":  0,
					"issue_type": "unused_net",
				},
			})
		case 1:
			component := net.Pads[0]
			if dot := strings.Index(component, "."); dot > 0 {
				component = component[:dot]
			}

			violations = append(violations, Violation{
				ID:          "net_stub_" + net.Name,
				Category:    CategoryConnectivity,
				Severity:    SeverityWarning,
				Rule:        "net_connectivity",
				Title:       "Stub net",
				Description: fmt.Sprintf("Net %q only connects to one pad (%s)", net.Name, net.Pads[0]),
				Net1:        net.Name,
				Component:   component,
				Actual:      measure(1),
				Required:    measure(2),
				Unit:        "pads",
				Details: map[string]any{
					"net_name":   net.Name,
					"pad_count":  1,
					"pad":        net.Pads[0],
					"issue_type": "stub_net",
				},
			})
		}
	}

	return violations
}
