package genschedule

import "math/rand"

// config holds Generate's resolved parameters. Unexported: callers build
// one only through Generate(opts...), never directly.
type config struct {
	patients       int
	rooms          int
	slots          int
	retractFrac    float64
	rng            *rand.Rand
	retractAtDelta int
}

// newConfig returns a config with the package defaults, then applies
// opts in order (later options override earlier ones), exactly as
// builder.newBuilderConfig resolves BuilderOption.
func newConfig(opts ...Option) *config {
	cfg := &config{
		patients:       defaultPatients,
		rooms:          defaultRooms,
		slots:          defaultSlots,
		retractFrac:    0,
		rng:            nil,
		retractAtDelta: defaultRetractDelta,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Defaults mirror a small outpatient clinic: a handful of patients
// competing for a couple of rooms across a morning's worth of slots.
const (
	defaultPatients     = 4
	defaultRooms        = 2
	defaultSlots        = 3
	defaultRetractDelta = 1
)
