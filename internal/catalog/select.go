package catalog

import (
	"errors"
	"math/rand"
	"time"
)

// select.go - record selection policy.
//
// An explicit designation bypasses the plottable filter (listing and
// inspection can target any record); the random path draws uniformly
// from the plottable subset. The randomness source is injectable so
// tests can replay a selection.

// ErrEmptyPool is returned when a random pick is requested and the
// plottable subset is empty.
var ErrEmptyPool = errors.New("no plottable pulsars in catalog")

// Selector picks one record from a store.
type Selector struct {
	rng *rand.Rand
}

// NewSelector returns an entropy-seeded selector.
func NewSelector() *Selector {
	return NewSeededSelector(time.Now().UnixNano())
}

// NewSeededSelector returns a deterministic selector: the same seed over
// the same pool always yields the same record.
func NewSeededSelector(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns the record named by name when non-empty (ErrNotFound if
// it matches nothing), otherwise one plottable record chosen uniformly
// at random (ErrEmptyPool if none qualify). A single draw, no retries.
func (s *Selector) Pick(store *Store, name string) (Pulsar, error) {
	if name != "" {
		return store.Get(name)
	}
	pool := store.Plottable()
	if len(pool) == 0 {
		return Pulsar{}, ErrEmptyPool
	}
	return pool[s.rng.Intn(len(pool))], nil
}
