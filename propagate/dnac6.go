// File: dnac6.go
// Role: DnAC-6 (Debruyne) — lazy, single-witness support, resuming scans
//       via the domain store's present(i) order (spec.md §4.5).
package propagate

import "github.com/katalvlaran/dycsp/engine"

// dnac6Item is one entry of DnAC-6's suppression queue: value A of
// variable I may need a new witness across arc (I,J). Find marks a
// "resume the scan" entry (re-search beyond LastTested, or from the
// start of present(J) when HasLast is false); an entry with
// Find == false is not searched at all — A is suppressed as unsupported.
type dnac6Item struct {
	I, J       int
	A          string
	Find       bool
	LastTested string
	HasLast    bool
}

// dnac6Stack is SL for DnAC-6: LIFO, per spec.md §9.
type dnac6Stack []dnac6Item

func (s *dnac6Stack) push(it dnac6Item) { *s = append(*s, it) }

func (s *dnac6Stack) pop() (dnac6Item, bool) {
	n := len(*s)
	if n == 0 {
		return dnac6Item{}, false
	}
	it := (*s)[n-1]
	*s = (*s)[:n-1]
	return it, true
}

// dnac6RL is one entry of DnAC-6's restoration queue: value A of
// variable I is being restored; Exclude is the neighbor whose arc caused
// the restoration (skipped when re-scanning I's other neighbors).
type dnac6RL struct {
	I, Exclude int
	A          string
}

// dnac6Queue is RL for DnAC-6: FIFO, per spec.md §9.
type dnac6Queue []dnac6RL

func (q *dnac6Queue) push(it dnac6RL) { *q = append(*q, it) }

func (q *dnac6Queue) pop() (dnac6RL, bool) {
	if len(*q) == 0 {
		return dnac6RL{}, false
	}
	it := (*q)[0]
	*q = (*q)[1:]
	return it, true
}

// witnessKey identifies the dependents list of a single witness value:
// every (DependentVar, value) pair that currently cites WitnessVal (a
// value of WitnessVar) as its chosen support. This is AC-6's classic
// S(i,a) structure, split per dependent variable for direct lookup by
// ActiveNeighbors.
type witnessKey struct {
	WitnessVar, DependentVar int
	WitnessVal               string
}

// DnAC6 implements Propagator using Debruyne's DnAC-6 algorithm: each
// value keeps at most one current witness, found lazily by resuming a
// scan over present(j) order rather than rebuilding a complete support
// set. dependents is the reverse index: for a witness value, the set of
// values (per dependent variable) currently relying on it.
type DnAC6 struct {
	p          *engine.Problem
	dependents map[witnessKey]map[string]bool
}

// NewDnAC6 returns a DnAC-6 propagator over p.
func NewDnAC6(p *engine.Problem) *DnAC6 {
	return &DnAC6{
		p:          p,
		dependents: make(map[witnessKey]map[string]bool),
	}
}

// Problem returns the engine.Problem this propagator is restoring
// arc-consistency over, for callers that need to inspect resulting
// domains (the driver, tests, reporting).
func (d *DnAC6) Problem() *engine.Problem { return d.p }

func (d *DnAC6) dependentsOf(witnessVar, dependentVar int, witnessVal string) map[string]bool {
	return d.dependents[witnessKey{WitnessVar: witnessVar, DependentVar: dependentVar, WitnessVal: witnessVal}]
}

// addDependent records that value a of dependentVar currently depends
// on witnessVal (a value of witnessVar) as its support.
func (d *DnAC6) addDependent(witnessVar, dependentVar int, witnessVal, a string) {
	key := witnessKey{WitnessVar: witnessVar, DependentVar: dependentVar, WitnessVal: witnessVal}
	if d.dependents[key] == nil {
		d.dependents[key] = make(map[string]bool)
	}
	d.dependents[key][a] = true
}

// nextSupport is spec.md §4.5's next_support helper: scan present(j)
// forward from b0 looking for the first b with (a,b) ∈ R(i,j); on
// success, record a (a value of i) as depending on witness b of j.
func (d *DnAC6) nextSupport(i, j int, a string, b0 string, hasB0 bool) bool {
	b, ok := b0, hasB0
	for ok {
		if d.p.Check(i, j, a, b) {
			d.addDependent(j, i, b, a)
			return true
		}
		b, ok = d.p.NextAfter(j, b)
	}
	return false
}

// initDirection clears stale dependents of i on witness variable j, then
// seeds SL with every value of i that starts out without a witness
// across (i,j).
func (d *DnAC6) initDirection(i, j int) dnac6Stack {
	for _, b := range d.p.Live(j) {
		delete(d.dependents, witnessKey{WitnessVar: j, DependentVar: i, WitnessVal: b})
	}

	var seeds dnac6Stack
	first, hasFirst := d.p.First(j)
	for _, a := range d.p.Live(i) {
		if !d.nextSupport(i, j, a, first, hasFirst) {
			seeds.push(dnac6Item{I: i, J: j, A: a, Find: false})
		}
	}
	return seeds
}

// OnAdd implements spec.md §4.5's on_add(i,j,R).
func (d *DnAC6) OnAdd(i, j int, pairs [][2]string) error {
	if err := d.p.Activate(i, j, pairs); err != nil {
		return err
	}

	sl := d.initDirection(i, j)
	sl = append(sl, d.initDirection(j, i)...)
	d.propagate(sl)
	return nil
}

// propagate drains SL to a fixed point, per spec.md §4.5's
// propagate(SL).
func (d *DnAC6) propagate(sl dnac6Stack) {
	for {
		item, ok := sl.pop()
		if !ok {
			return
		}
		if !d.p.Contains(item.I, item.A) {
			continue
		}

		found := false
		if item.Find {
			var b0 string
			var hasB0 bool
			if item.HasLast {
				b0, hasB0 = d.p.NextAfter(item.J, item.LastTested)
			} else {
				b0, hasB0 = d.p.First(item.J)
			}
			found = d.nextSupport(item.I, item.J, item.A, b0, hasB0)
		}
		if found {
			continue
		}

		// item.A loses its only witness: every still-active neighbor's
		// dependents on item.A must find a new witness or be suppressed.
		for _, k := range d.p.ActiveNeighbors(item.I) {
			for b := range d.dependentsOf(item.I, k, item.A) {
				if !d.p.Contains(k, b) {
					continue
				}
				nb, hasNb := d.p.NextAfter(item.I, item.A)
				if !d.nextSupport(k, item.I, b, nb, hasNb) {
					sl.push(dnac6Item{I: k, J: item.I, A: b, Find: false})
				}
			}
			delete(d.dependents, witnessKey{WitnessVar: item.I, DependentVar: k, WitnessVal: item.A})
		}

		d.p.Remove(item.I, item.A)
		d.p.Blame(item.I, item.A, item.J)
	}
}

// OnRetract implements spec.md §4.5's on_retract(k,m).
func (d *DnAC6) OnRetract(k, m int) error {
	if !d.p.IsActive(k, m) {
		return ErrNotActive
	}

	var rl dnac6Queue
	for _, a := range d.p.Absent(k) {
		if blamer, ok := d.p.Blamer(k, a); ok && blamer == m {
			rl.push(dnac6RL{I: k, Exclude: m, A: a})
			d.p.Clear(k, a)
		}
	}
	for _, b := range d.p.Absent(m) {
		if blamer, ok := d.p.Blamer(m, b); ok && blamer == k {
			rl.push(dnac6RL{I: m, Exclude: k, A: b})
			d.p.Clear(m, b)
		}
	}
	if err := d.p.Deactivate(k, m); err != nil {
		return err
	}

	var sl dnac6Stack
	for {
		item, ok := rl.pop()
		if !ok {
			break
		}
		d.p.Restore(item.I, item.A)

		for _, j := range d.p.ActiveNeighbors(item.I) {
			if j == item.Exclude {
				continue
			}

			first, hasFirst := d.p.First(j)
			found := d.nextSupport(item.I, j, item.A, first, hasFirst)

			// item.A is back: any value of j previously blamed on item.I
			// may now be restorable through it.
			for _, c := range d.p.Absent(j) {
				blamer, ok := d.p.Blamer(j, c)
				if !ok || blamer != item.I || !d.p.Check(item.I, j, item.A, c) {
					continue
				}
				d.p.Clear(j, c)
				rl.push(dnac6RL{I: j, Exclude: item.I, A: c})
				d.addDependent(item.I, j, item.A, c)
			}

			if !found {
				last, hasLast := d.p.Last(j)
				sl.push(dnac6Item{I: item.I, J: j, A: item.A, Find: true, LastTested: last, HasLast: hasLast})
			}
		}
	}

	d.propagate(sl)
	return nil
}
