package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLibraryCatalog(t *testing.T) {
	lib := NewLibrary()

	ids := lib.IDs()
	assert.Len(t, ids, 8)

	// Spot-check thresholds across the catalog.
	proto, err := lib.Get("2l_cheap_proto")
	require.NoError(t, err)
	assert.Equal(t, TypeBoardTech, proto.Type)
	assert.Equal(t, 0.15, proto.MinTraceWidth.Value)
	assert.Equal(t, "mm", proto.MinTraceWidth.Unit)
	assert.Equal(t, 0.075, proto.MinAnnularRing.Value)
	assert.Equal(t, 1.5, proto.ClearanceFor(TierMV).Value)

	hv, err := lib.Get("hv_power")
	require.NoError(t, err)
	assert.Equal(t, 3.0, hv.MinEdgeClearance.Value)
	assert.Equal(t, 4.0, hv.ClearanceFor(TierHV).Value)
	assert.Equal(t, 3.0, hv.CreepageFor(TierMV).Value)

	jlc, err := lib.Get("jlc_standard")
	require.NoError(t, err)
	assert.Equal(t, TypeManufacturer, jlc.Type)
	assert.Equal(t, []float64{0.8, 1.0, 1.2, 1.6, 2.0}, jlc.StandardThickness)
}

func TestGetNotFound(t *testing.T) {
	lib := NewLibrary()

	p, err := lib.Get("does_not_exist")
	assert.Nil(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "does_not_exist")
}

func TestGetReturnsCopy(t *testing.T) {
	lib := NewLibrary()

	p1, err := lib.Get("4l_iot")
	require.NoError(t, err)
	p1.MinTraceWidth = MM(9.9)

	p2, err := lib.Get("4l_iot")
	require.NoError(t, err)
	assert.Equal(t, 0.127, p2.MinTraceWidth.Value, "mutating a returned profile must not affect the library")
}

func TestRegisterReplaces(t *testing.T) {
	lib := NewLibrary()
	before := len(lib.IDs())

	lib.Register(Profile{ID: "jlc_standard", Name: "patched", Type: TypeManufacturer})
	assert.Len(t, lib.IDs(), before, "re-registering an id must not grow the library")

	p, err := lib.Get("jlc_standard")
	require.NoError(t, err)
	assert.Equal(t, "patched", p.Name)
}

func TestListByType(t *testing.T) {
	lib := NewLibrary()

	assert.Len(t, lib.List(""), 8)
	assert.Len(t, lib.List(TypeBoardTech), 4)
	assert.Len(t, lib.List(TypeStandard), 2)
	assert.Len(t, lib.List(TypeManufacturer), 2)
	assert.Empty(t, lib.List(TypeCustom))
}

func TestByTag(t *testing.T) {
	lib := NewLibrary()

	cheap := lib.ByTag("cheap")
	require.Len(t, cheap, 2)
	assert.Equal(t, "2l_cheap_proto", cheap[0].ID)
	assert.Equal(t, "jlc_standard", cheap[1].ID)

	assert.Empty(t, lib.ByTag("nonexistent"))
}

func TestRecommend(t *testing.T) {
	lib := NewLibrary()

	tests := []struct {
		name    string
		layers  int
		voltage float64
		budget  string
		wantID  string
	}{
		{"two layer low budget", 2, 5, "low", "2l_cheap_proto"},
		{"two layer normal budget", 2, 5, "", "ipc2221_generic"},
		{"four layer", 4, 12, "low", "4l_iot"},
		{"six layer", 6, 3.3, "", "6l_hdi"},
		{"eight layer", 8, 3.3, "", "6l_hdi"},
		{"unknown layer count", 0, 5, "", "ipc2221_generic"},
		// Voltage safety beats layer count and budget.
		{"mains voltage two layer", 2, 150, "low", "hv_power"},
		{"mains voltage six layer", 6, 230, "", "hv_power"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := lib.Recommend(tt.layers, tt.voltage, tt.budget)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, p.ID)
		})
	}
}

func TestTieredFallback(t *testing.T) {
	p := Profile{Clearance: map[string]Value{
		TierLV: MM(0.2),
		TierMV: MM(1.5),
	}}

	assert.Equal(t, 0.2, p.ClearanceFor(TierLV).Value)
	assert.Equal(t, 1.5, p.ClearanceFor(TierMV).Value)
	// hv undefined falls back to mv.
	assert.Equal(t, 1.5, p.ClearanceFor(TierHV).Value)

	lvOnly := Profile{Clearance: map[string]Value{TierLV: MM(0.3)}}
	assert.Equal(t, 0.3, lvOnly.ClearanceFor(TierMV).Value)
}

func TestSummarize(t *testing.T) {
	lib := NewLibrary()

	s, err := lib.Summarize("hv_power")
	require.NoError(t, err)
	assert.Equal(t, "hv_power", s.ID)
	assert.Equal(t, "0.2mm", s.KeySpecs["min_trace"])
	assert.Equal(t, "2.5mm", s.Clearances[TierMV])
	assert.Contains(t, s.Tags, "mains")

	_, err = lib.Summarize("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
