package drc

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/board"
)

func TestBuildReportStatusLadder(t *testing.T) {
	critical := Violation{ID: "a", Category: CategoryHighVoltage, Severity: SeverityCritical}
	errorV := Violation{ID: "b", Category: CategoryViaSize, Severity: SeverityError}
	warning := Violation{ID: "c", Category: CategoryComponentSpacing, Severity: SeverityWarning}
	info := Violation{ID: "d", Category: CategoryConnectivity, Severity: SeverityInfo}

	tests := []struct {
		name       string
		violations []Violation
		want       Status
	}{
		{"no violations", nil, StatusPass},
		{"info only", []Violation{info}, StatusPass},
		{"warnings", []Violation{warning, info}, StatusPassWithWarnings},
		{"errors beat warnings", []Violation{errorV, warning, warning}, StatusFailErrors},
		{"one critical beats everything", []Violation{critical, errorV, warning, info}, StatusFailCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildReport(tt.violations, board.Summary{}, "ipc2221_generic", time.Millisecond)
			assert.Equal(t, tt.want, r.Status)
			assert.Equal(t, len(tt.violations), r.Summary.Total)
		})
	}
}

func TestBuildReportCounts(t *testing.T) {
	violations := []Violation{
		{ID: "a", Category: CategoryTraceWidth, Severity: SeverityError},
		{ID: "b", Category: CategoryTraceWidth, Severity: SeverityWarning},
		{ID: "c", Category: CategoryConnectivity, Severity: SeverityInfo},
	}

	r := buildReport(violations, board.Summary{}, "4l_iot", 2*time.Millisecond)
	assert.Equal(t, 1, r.Summary.Errors)
	assert.Equal(t, 1, r.Summary.Warnings)
	assert.Equal(t, 1, r.Summary.Info)
	assert.Equal(t, 0, r.Summary.Critical)
	assert.Equal(t, 2, r.ByCategory["trace_width"])
	assert.Equal(t, 1, r.ByCategory["connectivity"])
	assert.InDelta(t, 2.0, r.AnalysisTimeMS, 0.001)
}

func TestWorstSeverity(t *testing.T) {
	r := buildReport([]Violation{
		{ID: "a", Severity: SeverityWarning},
		{ID: "b", Severity: SeverityError},
		{ID: "c", Severity: SeverityInfo},
	}, board.Summary{}, "p", 0)

	assert.Equal(t, SeverityError, r.WorstSeverity())
	assert.False(t, r.Passed())

	clean := buildReport(nil, board.Summary{}, "p", 0)
	assert.Equal(t, Severity(""), clean.WorstSeverity())
	assert.True(t, clean.Passed())
}

func TestSeverityRank(t *testing.T) {
	assert.Greater(t, SeverityCritical.Rank(), SeverityError.Rank())
	assert.Greater(t, SeverityError.Rank(), SeverityWarning.Rank())
	assert.Greater(t, SeverityWarning.Rank(), SeverityInfo.Rank())
	assert.Greater(t, SeverityInfo.Rank(), Severity("bogus").Rank())
}

func TestWriteJSON(t *testing.T) {
	actual := 0.3
	required := 0.5
	r := buildReport([]Violation{
		{
			ID:       "comp_spacing_C1_C2",
			Category: CategoryComponentSpacing,
			Severity: SeverityWarning,
			Rule:     "min_component_spacing",
			Location: &Location{X: 10.1, Y: 10},
			Actual:   &actual,
			Required: &required,
			Unit:     "mm",
		},
	}, board.Summary{ID: "brd-1", Name: "demo", Units: board.UnitsMM}, "2l_cheap_proto", time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "PASS_WITH_WARNINGS", decoded["status"])
	assert.Equal(t, "2l_cheap_proto", decoded["profile_id"])

	summary := decoded["summary"].(map[string]any)
	assert.Equal(t, 1.0, summary["total"])
	assert.Equal(t, 1.0, summary["warnings"])

	violations := decoded["violations"].([]any)
	require.Len(t, violations, 1)
	v := violations[0].(map[string]any)
	assert.Equal(t, "component_spacing", v["category"])
	loc := v["location"].(map[string]any)
	assert.Equal(t, 10.1, loc["x"])

	info := decoded["board_info"].(map[string]any)
	assert.Equal(t, "demo", info["name"])
}

func TestWriteJSONEmptyViolations(t *testing.T) {
	r := buildReport(nil, board.Summary{}, "p", 0)

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	// An empty run serializes as [], never null.
	assert.Contains(t, buf.String(), `"violations": []`)
}

func TestMeasureRounding(t *testing.T) {
	v := measure(0.12345678)
	require.NotNil(t, v)
	assert.Equal(t, 0.123, *v)

	assert.Equal(t, 0.457, round3(0.4567))
}
