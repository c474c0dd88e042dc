package genschedule

import (
	"fmt"

	"github.com/katalvlaran/dycsp/parse"
)

const (
	minPatients = 1
	minRooms    = 1
	minSlots    = 1
	probMin     = 0.0
	probMax     = 1.0
)

// Generate builds a synthetic patient-scheduling parse.Instance:
// patients 1..Patients as variables, each with the identical origin
// domain of "room,timeslot" tokens (every (room, slot) pair is a
// candidate appointment), and a non-overlap constraint for every pair
// of patients — forbidding the same token for both, i.e. two patients
// cannot share a room at the same timeslot — scheduled for addition at
// t=0 in ascending (i,j) order.
//
// When RetractFraction is non-zero, each pairwise constraint is
// independently chosen (via the configured RNG) for retraction
// RetractDelta steps after its addition, modeling a patient
// cancellation freeing up that pair's constraint.
//
// Generate validates parameters exactly as builder's RandomSparse does:
// fail fast on out-of-range sizes or probabilities, require an RNG only
// when randomness is actually exercised, and never panic.
func Generate(opts ...Option) (*parse.Instance, error) {
	cfg := newConfig(opts...)

	if cfg.patients < minPatients {
		return nil, fmt.Errorf("genschedule: patients=%d < min=%d: %w", cfg.patients, minPatients, ErrTooFewPatients)
	}
	if cfg.rooms < minRooms {
		return nil, fmt.Errorf("genschedule: rooms=%d < min=%d: %w", cfg.rooms, minRooms, ErrTooFewRooms)
	}
	if cfg.slots < minSlots {
		return nil, fmt.Errorf("genschedule: slots=%d < min=%d: %w", cfg.slots, minSlots, ErrTooFewSlots)
	}
	if cfg.retractFrac < probMin || cfg.retractFrac > probMax {
		return nil, fmt.Errorf("genschedule: retractFraction=%.6f not in [%.1f,%.1f]: %w",
			cfg.retractFrac, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.retractFrac > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("genschedule: retractFraction>0: %w", ErrNeedRandSource)
	}

	slots := appointmentSlots(cfg.rooms, cfg.slots)

	inst := &parse.Instance{
		N:      cfg.patients,
		Origin: make(map[int][]string, cfg.patients),
		Edits:  make(map[int][]parse.Edit),
	}
	for i := 1; i <= cfg.patients; i++ {
		inst.Origin[i] = append([]string(nil), slots...)
	}

	nonOverlap := nonOverlapPairs(slots)
	for i := 1; i <= cfg.patients; i++ {
		for j := i + 1; j <= cfg.patients; j++ {
			inst.Edits[0] = append(inst.Edits[0], parse.Edit{Op: 'a', I: i, J: j, Pairs: nonOverlap})

			if cfg.retractFrac > 0 && cfg.rng.Float64() < cfg.retractFrac {
				t := cfg.retractAtDelta
				inst.Edits[t] = append(inst.Edits[t], parse.Edit{Op: 'r', I: i, J: j})
				if t > inst.MaxT {
					inst.MaxT = t
				}
			}
		}
	}

	return inst, nil
}

// appointmentSlots enumerates every (room, timeslot) token in a stable
// room-major order: "r1s1", "r1s2", ..., "r2s1", ...
func appointmentSlots(rooms, slotsPerRoom int) []string {
	out := make([]string, 0, rooms*slotsPerRoom)
	for r := 1; r <= rooms; r++ {
		for s := 1; s <= slotsPerRoom; s++ {
			out = append(out, fmt.Sprintf("r%ds%d", r, s))
		}
	}
	return out
}

// nonOverlapPairs builds every ordered pair (v, w) with v != w over
// slots: two patients may hold any distinct appointment slots, but
// never the same one.
func nonOverlapPairs(slots []string) [][2]string {
	out := make([][2]string, 0, len(slots)*(len(slots)-1))
	for _, v := range slots {
		for _, w := range slots {
			if v != w {
				out = append(out, [2]string{v, w})
			}
		}
	}
	return out
}
