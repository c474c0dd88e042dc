package driver

import (
	"errors"
	"time"

	"github.com/katalvlaran/dycsp/engine"
	"github.com/katalvlaran/dycsp/parse"
	"github.com/katalvlaran/dycsp/propagate"
	"github.com/katalvlaran/dycsp/report"
	"github.com/katalvlaran/dycsp/search"
)

// Run implements spec.md §4.7's time-step loop: for t = 0..maxT, apply
// every edit scheduled at t (in input order), restore arc-consistency
// via prop, then invoke Search and emit the outcome through w. A step
// with no scheduled edits does nothing at all — no propagation call, no
// search call, matching spec.md §4.7's explicit "if no edits are
// scheduled at t, the driver does nothing at that step."
//
// add(i,j,·) for an already-active pair and retract(i,j) for an
// inactive pair are spec.md §7's ReAdd/RetractInactive policies: both
// are skipped, optionally logged as a warning via opts.Verbose, never
// treated as fatal. Any other error from prop is returned to the
// caller, aborting the run.
func Run(p *engine.Problem, prop propagate.Propagator, inst *parse.Instance, w report.Writer, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()

	if err := w.Header(p.N(), originSnapshot(p)); err != nil {
		return err
	}

	for t := 0; t <= inst.MaxT; t++ {
		edits, ok := inst.Edits[t]
		if !ok || len(edits) == 0 {
			continue
		}

		if err := w.StepBanner(t); err != nil {
			return err
		}

		for _, e := range edits {
			switch e.Op {
			case 'a':
				err := prop.OnAdd(e.I, e.J, e.Pairs)
				if errors.Is(err, engine.ErrConstraintAlreadyActive) {
					o.warn("t=%d: add(%d,%d): already active, skipping (ReAdd)", t, e.I, e.J)
					continue
				}
				if err != nil {
					return err
				}
			case 'r':
				err := prop.OnRetract(e.I, e.J)
				if errors.Is(err, propagate.ErrNotActive) {
					o.warn("t=%d: retract(%d,%d): not active, skipping (RetractInactive)", t, e.I, e.J)
					continue
				}
				if err != nil {
					return err
				}
			}
			if err := w.LogEdit(e); err != nil {
				return err
			}
		}

		// Every edit at t has now been applied and its propagator has
		// settled to a fixed point, so I2/I3 must hold; panics in
		// debugAssertions builds only (spec.md §7).
		p.DebugCheckInvariants()

		if err := w.Domains(p.N(), liveSnapshot(p)); err != nil {
			return err
		}

		assignment, found := search.Search(p)
		if err := w.Assignment(p.N(), assignment, found); err != nil {
			return err
		}
	}

	if o.Timing {
		if err := w.Footer(time.Since(start)); err != nil {
			return err
		}
	}

	return nil
}

func originSnapshot(p *engine.Problem) map[int][]string {
	out := make(map[int][]string, p.N())
	for i := 1; i <= p.N(); i++ {
		out[i] = p.Origin(i)
	}
	return out
}

func liveSnapshot(p *engine.Problem) map[int][]string {
	out := make(map[int][]string, p.N())
	for i := 1; i <= p.N(); i++ {
		out[i] = p.Live(i)
	}
	return out
}

// warn logs msg via Logger when Verbose is set, a no-op otherwise.
func (o Options) warn(format string, args ...interface{}) {
	if o.Verbose && o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}
