package vars

import (
	"math"
	"slices"
)

// Spec holds the default value and inclusive bounds of one variable.
type Spec struct {
	Default float64
	Min     float64
	Max     float64
}

func (s Spec) clamp(v float64) float64 {
	return math.Min(s.Max, math.Max(s.Min, v))
}

// Change is published to observers after a write. Clear asks observers to
// re-read every variable instead of looking at Key and Value.
type Change struct {
	Key   Key
	Value float64
	Clear bool
}

// Observer receives changes synchronously, inline with the write.
type Observer func(Change)

type subscription struct {
	id int
	fn Observer
}

// Store owns the current value of every tracked variable. It is meant for a
// single writer; all writes go through Set, which clamps.
type Store struct {
	specs     map[Key]Spec
	values    map[Key]float64
	observers []subscription
	nextID    int
}

// Option customizes the bounds a Store is built with.
type Option func(map[Key]Spec)

// WithLimits overrides the bounds of one key.
func WithLimits(k Key, min, max float64) Option {
	return func(specs map[Key]Spec) {
		s := specs[k]
		s.Min, s.Max = min, max
		s.Default = s.clamp(s.Default)
		specs[k] = s
	}
}

// WithCalendar sets the ranges of the month, semester and year counters.
func WithCalendar(monthsPerSemester, semestersPerYear, years int) Option {
	return func(specs map[Key]Spec) {
		specs[Month] = Spec{Default: 1, Min: 1, Max: float64(monthsPerSemester)}
		specs[Semester] = Spec{Default: 1, Min: 1, Max: float64(semestersPerYear)}
		specs[Year] = Spec{Default: 1, Min: 1, Max: float64(years)}
	}
}

// DefaultSpecs returns the bounds used when no option overrides them.
func DefaultSpecs() map[Key]Spec {
	specs := make(map[Key]Spec, len(allKeys))
	for _, k := range allKeys {
		specs[k] = Spec{Default: 0, Min: 0, Max: 100}
	}
	specs[GPA] = Spec{Default: 0, Min: 0, Max: 4}
	specs[Money] = Spec{Default: 0, Min: 0, Max: math.Inf(1)}
	specs[Offers] = Spec{Default: 0, Min: 0, Max: math.Inf(1)}
	WithCalendar(4, 2, 4)(specs)
	return specs
}

// NewStore returns an empty store. Every key reads as its default until set.
func NewStore(opts ...Option) *Store {
	specs := DefaultSpecs()
	for _, opt := range opts {
		opt(specs)
	}
	return &Store{
		specs:  specs,
		values: make(map[Key]float64, len(specs)),
	}
}

// Get returns the current value of k, or its default when unset.
func (s *Store) Get(k Key) float64 {
	if v, ok := s.values[k]; ok {
		return v
	}
	return s.specs[k].Default
}

// Set clamps v into the bounds of k and stores it. Observers are notified
// only when the stored value changes. NaN is ignored; infinities clamp to
// the nearest bound. Set returns the value held after the write.
func (s *Store) Set(k Key, v float64) float64 {
	prev := s.Get(k)
	if math.IsNaN(v) {
		return prev
	}
	next := s.specs[k].clamp(v)
	s.values[k] = next
	if next != prev {
		s.publish(Change{Key: k, Value: next})
	}
	return next
}

// Add is shorthand for Set(k, Get(k)+delta).
func (s *Store) Add(k Key, delta float64) float64 {
	return s.Set(k, s.Get(k)+delta)
}

// Limits returns the inclusive bounds of k.
func (s *Store) Limits(k Key) (min, max float64) {
	spec := s.specs[k]
	return spec.Min, spec.Max
}

// Reset drops every stored value, applies initial (clamped) and publishes a
// single Clear change instead of one change per key.
func (s *Store) Reset(initial map[Key]float64) {
	s.values = make(map[Key]float64, len(s.specs))
	for k, v := range initial {
		if math.IsNaN(v) {
			continue
		}
		s.values[k] = s.specs[k].clamp(v)
	}
	s.NotifyClear()
}

// NotifyClear tells observers to re-read everything.
func (s *Store) NotifyClear() {
	s.publish(Change{Clear: true})
}

// Snapshot copies the current value of every tracked key.
func (s *Store) Snapshot() map[Key]float64 {
	out := make(map[Key]float64, len(allKeys))
	for _, k := range allKeys {
		out[k] = s.Get(k)
	}
	return out
}

// Subscribe registers fn and returns a func that removes it again.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	return func() {
		s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

func (s *Store) publish(c Change) {
	// Copy so an observer may unsubscribe while being called.
	subs := slices.Clone(s.observers)
	for _, sub := range subs {
		sub.fn(c)
	}
}
