package drc

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/board"
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/profile"
)

// ErrProfileNotFound mirrors profile.ErrNotFound at the engine
// boundary so callers can test for it without importing the profile
// package's internals.
var ErrProfileNotFound = profile.ErrNotFound

// CheckError wraps a fault recovered from a single check. It never
// propagates out of RunChecks; the failed check simply contributes no
// violations.
type CheckError struct {
	Check string
	Cause any
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("check %s failed: %v", e.Check, e.Cause)
}

// Engine evaluates boards against rule profiles. It holds no mutable
// state across runs and is safe for concurrent use.
type Engine struct {
	library *profile.Library
	log     *zap.Logger
	workers int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithWorkers bounds check-level parallelism. The default is the
// available CPU parallelism.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New builds an engine backed by the given profile library.
func New(library *profile.Library, opts ...Option) *Engine {
	e := &Engine{
		library: library,
		log:     zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunChecks evaluates the board against the named profile and returns
// the aggregated report. The board is read-only for the duration of the
// run. A missing profile is a soft failure: the returned report is
// empty and the error wraps ErrProfileNotFound, so callers always get a
// usable report. Individual check faults are recovered, logged and
// contribute zero violations.
func (e *Engine) RunChecks(ctx context.Context, b *board.Board, profileID string) (*Report, error) {
	start := time.Now()

	prof, err := e.library.Get(profileID)
	if err != nil {
		e.log.Error("profile not found, returning empty report",
			zap.String("profile", profileID))
		report := buildReport(nil, b.Summarize(), profileID, time.Since(start))
		return report, fmt.Errorf("resolving profile: %w", err)
	}

	e.log.Info("running design rule checks",
		zap.String("board", b.Name),
		zap.String("profile", prof.Name),
		zap.Int("workers", e.workers))

	results := make([][]Violation, len(catalog))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, c := range catalog {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.runCheck(c, b, prof)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Only context cancellation reaches here; check faults are
		// swallowed inside runCheck.
		return buildReport(nil, b.Summarize(), profileID, time.Since(start)), err
	}

	var violations []Violation
	for _, r := range results {
		violations = append(violations, r...)
	}

	// Content is deterministic; make the order deterministic too.
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].Category != violations[j].Category {
			return violations[i].Category < violations[j].Category
		}
		return violations[i].ID < violations[j].ID
	})

	elapsed := time.Since(start)
	report := buildReport(violations, b.Summarize(), profileID, elapsed)

	e.log.Info("design rule checks complete",
		zap.Duration("elapsed", elapsed),
		zap.Int("violations", len(violations)),
		zap.String("status", string(report.Status)))

	return report, nil
}

// runCheck executes one check with fault isolation: a panicking check
// is logged and treated as having found nothing.
func (e *Engine) runCheck(c check, b *board.Board, p *profile.Profile) (violations []Violation) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			cerr := &CheckError{Check: c.name, Cause: r}
			e.log.Error("check failed", zap.String("check", c.name), zap.Error(cerr))
			checksTotal.WithLabelValues(c.name, "failed").Inc()
			violations = nil
		}
	}()

	violations = c.run(b, p)

	checkDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	checksTotal.WithLabelValues(c.name, "ok").Inc()
	for _, v := range violations {
		violationsTotal.WithLabelValues(string(v.Category), string(v.Severity)).Inc()
	}

	e.log.Debug("check complete",
		zap.String("check", c.name),
		zap.Int("violations", len(violations)))

	return violations
}

// CheckNames lists the checks the engine dispatches, in catalog order.
func CheckNames() []string {
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = c.name
	}
	return names
}
