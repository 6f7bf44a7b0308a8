package drc

import (
	"encoding/json"
	"io"
	"time"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/board"
)

// Status is the overall verdict of a check run. It follows a strict
// priority ladder, not a count heuristic: one critical violation
// outweighs any number of warnings.
type Status string

const (
	StatusPass             Status = "PASS"
	StatusPassWithWarnings Status = "PASS_WITH_WARNINGS"
	StatusFailErrors       Status = "FAIL_ERRORS"
	StatusFailCritical     Status = "FAIL_CRITICAL"
)

// ReportSummary counts violations per severity.
type ReportSummary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Report is the complete result of one RunChecks call.
type Report struct {
	Status         Status         `json:"status"`
	Summary        ReportSummary  `json:"summary"`
	ByCategory     map[string]int `json:"by_category"`
	Violations     []Violation    `json:"violations"`
	ProfileID      string         `json:"profile_id"`
	AnalysisTimeMS float64        `json:"analysis_time_ms"`
	BoardInfo      board.Summary  `json:"board_info"`
}

// buildReport aggregates a sorted violation list into a report.
func buildReport(violations []Violation, info board.Summary, profileID string, elapsed time.Duration) *Report {
	summary := ReportSummary{Total: len(violations)}
	byCategory := make(map[string]int)

	for _, v := range violations {
		switch v.Severity {
		case SeverityCritical:
			summary.Critical++
		case SeverityError:
			summary.Errors++
		case SeverityWarning:
			summary.Warnings++
		case SeverityInfo:
			summary.Info++
		}
		byCategory[string(v.Category)]++
	}

	status := StatusPass
	switch {
	case summary.Critical > 0:
		status = StatusFailCritical
	case summary.Errors > 0:
		status = StatusFailErrors
	case summary.Warnings > 0:
		status = StatusPassWithWarnings
	}

	if violations == nil {
		violations = []Violation{}
	}

	return &Report{
		Status:         status,
		Summary:        summary,
		ByCategory:     byCategory,
		Violations:     violations,
		ProfileID:      profileID,
		AnalysisTimeMS: float64(elapsed.Microseconds()) / 1000.0,
		BoardInfo:      info,
	}
}

// WriteJSON serializes the report with indentation.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Passed reports whether the run produced no errors or criticals.
func (r *Report) Passed() bool {
	return r.Status == StatusPass || r.Status == StatusPassWithWarnings
}

// WorstSeverity returns the highest-ranked severity present, or "" for
// a clean report.
func (r *Report) WorstSeverity() Severity {
	worst := Severity("")
	for _, v := range r.Violations {
		if v.Severity.Rank() > worst.Rank() {
			worst = v.Severity
		}
	}
	return worst
}
