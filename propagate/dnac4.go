// File: dnac4.go
// Role: DnAC-4 (Bessiere) — eager, complete support sets plus a live
//       support counter per arc value (spec.md §4.4).
package propagate

import "github.com/katalvlaran/dycsp/engine"

// DnAC4 implements Propagator using Bessiere's DnAC-4 algorithm: every
// arc value keeps a complete support set and a counter of currently-live
// supports, so a retraction only needs to walk the values that were
// justified by the retracted arc.
type DnAC4 struct {
	p       *engine.Problem
	counter map[arcKey]map[string]int
	support map[supportKey]map[string]bool
}

// NewDnAC4 returns a DnAC-4 propagator over p. p must already hold every
// variable's origin domain; DnAC4 installs no constraints itself until
// OnAdd is called.
func NewDnAC4(p *engine.Problem) *DnAC4 {
	return &DnAC4{
		p:       p,
		counter: make(map[arcKey]map[string]int),
		support: make(map[supportKey]map[string]bool),
	}
}

// Problem returns the engine.Problem this propagator is restoring
// arc-consistency over, for callers that need to inspect resulting
// domains (the driver, tests, reporting).
func (d *DnAC4) Problem() *engine.Problem { return d.p }

// Counter exposes the live support counter K((i,j),a) = |{b ∈ D(j) :
// (a,b) ∈ R(i,j)}| (spec.md §8, property P6), for callers outside this
// package that need to assert it directly (property tests).
func (d *DnAC4) Counter(i, j int, a string) int {
	return d.counterOf(i, j, a)
}

func (d *DnAC4) counterOf(i, j int, a string) int {
	return d.counter[arcKey{I: i, J: j}][a]
}

func (d *DnAC4) setCounter(i, j int, a string, v int) {
	m := d.counter[arcKey{I: i, J: j}]
	if m == nil {
		m = make(map[string]int)
		d.counter[arcKey{I: i, J: j}] = m
	}
	m[a] = v
}

func (d *DnAC4) addCounter(i, j int, a string, delta int) int {
	v := d.counterOf(i, j, a) + delta
	d.setCounter(i, j, a, v)
	return v
}

func (d *DnAC4) supportSet(supported, supporter int, value string) map[string]bool {
	return d.support[supportKey{Supported: supported, Supporter: supporter, Value: value}]
}

// initDirection builds S(j,i,b) for every b ∈ D0(j), K((i,j),a) for every
// a ∈ D0(i), and returns the suppression seeds for values of i with no
// live support across (i,j). It is run once per direction by OnAdd.
func (d *DnAC4) initDirection(i, j int) suppressStack {
	for _, b := range d.p.Origin(j) {
		d.support[supportKey{Supported: j, Supporter: i, Value: b}] = make(map[string]bool)
	}

	var seeds suppressStack
	for _, a := range d.p.Origin(i) {
		total := 0
		for _, b := range d.p.Origin(j) {
			if !d.p.Check(i, j, a, b) {
				continue
			}
			d.supportSet(j, i, b)[a] = true
			if d.p.Contains(j, b) {
				total++
			}
		}
		d.setCounter(i, j, a, total)
		if total == 0 {
			seeds.push(suppressItem{Var: i, Via: j, A: a})
		}
	}
	return seeds
}

// OnAdd implements spec.md §4.4's on_add(i,j,R).
func (d *DnAC4) OnAdd(i, j int, pairs [][2]string) error {
	if err := d.p.Activate(i, j, pairs); err != nil {
		return err
	}

	sl := d.initDirection(i, j)
	sl = append(sl, d.initDirection(j, i)...)
	d.propagate(sl)
	return nil
}

// propagate drains SL to a fixed point, per spec.md §4.4's
// propagate(SL).
func (d *DnAC4) propagate(sl suppressStack) {
	for {
		item, ok := sl.pop()
		if !ok {
			return
		}
		i, m, a := item.Var, item.Via, item.A
		if !d.p.Contains(i, a) || d.counterOf(i, m, a) != 0 {
			continue
		}

		d.p.Blame(i, a, m)
		d.p.Remove(i, a)

		for _, j := range d.p.ActiveNeighbors(i) {
			for aPrime := range d.supportSet(i, j, a) {
				if d.addCounter(j, i, aPrime, -1) == 0 {
					sl.push(suppressItem{Var: j, Via: i, A: aPrime})
				}
			}
		}
	}
}

// OnRetract implements spec.md §4.4's on_retract(k,m).
func (d *DnAC4) OnRetract(k, m int) error {
	if !d.p.IsActive(k, m) {
		return ErrNotActive
	}

	var rl restoreQueue
	for _, a := range d.p.Origin(k) {
		if blamer, ok := d.p.Blamer(k, a); ok && blamer == m {
			rl.push(restoreItem{Var: k, A: a})
			d.p.Clear(k, a)
		}
		delete(d.counter[arcKey{I: k, J: m}], a)
		delete(d.support, supportKey{Supported: k, Supporter: m, Value: a})
	}
	for _, b := range d.p.Origin(m) {
		if blamer, ok := d.p.Blamer(m, b); ok && blamer == k {
			rl.push(restoreItem{Var: m, A: b})
			d.p.Clear(m, b)
		}
		delete(d.counter[arcKey{I: m, J: k}], b)
		delete(d.support, supportKey{Supported: m, Supporter: k, Value: b})
	}

	if err := d.p.Deactivate(k, m); err != nil {
		return err
	}

	var sl suppressStack
	for {
		item, ok := rl.pop()
		if !ok {
			break
		}
		i, a := item.Var, item.A
		d.p.Restore(i, a)

		for _, j := range d.p.ActiveNeighbors(i) {
			for aPrime := range d.supportSet(i, j, a) {
				d.addCounter(j, i, aPrime, 1)
				if blamer, ok := d.p.Blamer(j, aPrime); ok && blamer == i {
					rl.push(restoreItem{Var: j, A: aPrime})
					d.p.Clear(j, aPrime)
				}
			}
			if d.counterOf(i, j, a) == 0 {
				sl.push(suppressItem{Var: i, Via: j, A: a})
			}
		}
	}

	d.propagate(sl)
	return nil
}
