package profile

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a requested profile id is absent from
// the library.
var ErrNotFound = errors.New("profile not found")

// Library is a catalog of rule profiles keyed by id. It has no hidden
// process-wide state: callers construct one and pass it to whatever
// needs profile access.
type Library struct {
	profiles map[string]Profile
	order    []string
}

// NewLibrary builds a library pre-loaded with the built-in catalog.
func NewLibrary() *Library {
	lib := &Library{profiles: make(map[string]Profile)}
	for _, p := range builtinProfiles() {
		lib.Register(p)
	}
	return lib
}

// Register adds or replaces a profile. Registration order is preserved
// for listing.
func (l *Library) Register(p Profile) {
	if _, exists := l.profiles[p.ID]; !exists {
		l.order = append(l.order, p.ID)
	}
	l.profiles[p.ID] = p
}

// Get returns the profile with the given id.
func (l *Library) Get(id string) (*Profile, error) {
	p, ok := l.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return &p, nil
}

// List returns all profiles in registration order, optionally filtered
// by type. An empty type matches everything.
func (l *Library) List(t Type) []Profile {
	var out []Profile
	for _, id := range l.order {
		p := l.profiles[id]
		if t == "" || p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// ByTag returns all profiles carrying the given tag.
func (l *Library) ByTag(tag string) []Profile {
	var out []Profile
	for _, id := range l.order {
		p := l.profiles[id]
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// Recommend picks a profile from board characteristics. Voltage safety
// overrides layout-density defaults: any board over 100V gets the
// high-voltage profile no matter its layer count or budget.
func (l *Library) Recommend(layerCount int, voltage float64, budget string) (*Profile, error) {
	if voltage > 100 {
		return l.Get("hv_power")
	}

	switch {
	case layerCount == 2:
		if budget == "low" {
			return l.Get("2l_cheap_proto")
		}
		return l.Get("ipc2221_generic")
	case layerCount == 4:
		return l.Get("4l_iot")
	case layerCount >= 6:
		return l.Get("6l_hdi")
	}

	return l.Get("ipc2221_generic")
}

// Summary is a human-readable digest of a profile's key thresholds.
type Summary struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        Type              `json:"type"`
	KeySpecs    map[string]string `json:"key_specs"`
	Clearances  map[string]string `json:"voltage_clearances"`
	CostLevel   string            `json:"cost_level"`
	Tags        []string          `json:"tags"`
}

// Summarize builds a summary for the profile with the given id.
func (l *Library) Summarize(id string) (*Summary, error) {
	p, err := l.Get(id)
	if err != nil {
		return nil, err
	}

	clearances := make(map[string]string, len(p.Clearance))
	for tier, v := range p.Clearance {
		clearances[tier] = fmt.Sprintf("%g%s", v.Value, v.Unit)
	}

	return &Summary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		KeySpecs: map[string]string{
			"min_trace":   fmt.Sprintf("%g%s", p.MinTraceWidth.Value, p.MinTraceWidth.Unit),
			"min_spacing": fmt.Sprintf("%g%s", p.MinTraceSpacing.Value, p.MinTraceSpacing.Unit),
			"min_via":     fmt.Sprintf("%g%s", p.MinViaDiameter.Value, p.MinViaDiameter.Unit),
			"min_drill":   fmt.Sprintf("%g%s", p.MinViaDrill.Value, p.MinViaDrill.Unit),
		},
		Clearances: clearances,
		CostLevel:  p.CostLevel,
		Tags:       p.Tags,
	}, nil
}

// IDs returns the sorted profile ids currently registered.
func (l *Library) IDs() []string {
	ids := make([]string, len(l.order))
	copy(ids, l.order)
	sort.Strings(ids)
	return ids
}
