package search

import "github.com/katalvlaran/dycsp/engine"

// walker encapsulates mutable search state, mirroring bfs's walker:
// the problem it reads from, the current partial assignment, the
// frontier of choice points still to explore, and the configured hooks.
type walker struct {
	p          *engine.Problem
	opts       Options
	assignment map[int]string
	fr         frontier
}

// Search performs the chronological backtracking search of spec.md
// §4.6 over p's current live domains and active constraints. It
// returns the first complete assignment found, trying values of each
// variable in present(i) order and visiting variables in index order
// 1..N; ok is false if the frontier empties with no assignment found.
//
// Search never mutates p: it only calls Live, IsActive, and Check.
func Search(p *engine.Problem, opts ...Option) (Assignment, bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := p.N()
	if n == 0 {
		return Assignment{}, true
	}

	w := &walker{
		p:          p,
		opts:       o,
		assignment: make(map[int]string, n),
	}
	w.fr.push(frame{Var: 1, Remaining: p.Live(1)})

	for {
		f := w.fr.top()
		if f == nil {
			return nil, false
		}

		v, ok := f.next()
		if !ok {
			// Exhausted this variable's candidates: backtrack.
			delete(w.assignment, f.Var)
			w.fr.pop()
			w.opts.OnBacktrack(f.Var)
			continue
		}

		if !w.consistent(f.Var, v) {
			continue
		}

		w.assignment[f.Var] = v
		w.opts.OnAssign(f.Var, v)
		if f.Var == n {
			out := make(Assignment, n)
			for i, val := range w.assignment {
				out[i] = val
			}
			return out, true
		}

		w.fr.push(frame{Var: f.Var + 1, Remaining: p.Live(f.Var + 1)})
	}
}

// consistent reports whether assigning value v to variable i is
// compatible with every already-assigned variable y < i across any
// active arc (y,i).
func (w *walker) consistent(i int, v string) bool {
	for y, wVal := range w.assignment {
		if y == i {
			continue
		}
		if !w.p.IsActive(y, i) {
			continue
		}
		if !w.p.Check(y, i, wVal, v) {
			return false
		}
	}
	return true
}
