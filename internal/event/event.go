// Package event rolls and applies the random narrative events that can
// happen after any successful activity.
package event

import (
	"log/slog"
	"math"

	"github.com/tatianab/ece-life/internal/config"
	"github.com/tatianab/ece-life/internal/dice"
	"github.com/tatianab/ece-life/internal/vars"
)

// Event is a probabilistically triggered state change.
type Event struct {
	Name        string
	Description string
	Probability float64

	apply func(store *vars.Store, rng dice.Source)
}

// System holds the fixed event table for one session.
type System struct {
	store  *vars.Store
	rng    dice.Source
	events []Event
	logger *slog.Logger
}

// NewSystem builds the event table from the balance config.
func NewSystem(cfg config.Game, store *vars.Store, rng dice.Source, logger *slog.Logger) *System {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &System{
		store:  store,
		rng:    rng,
		events: table(cfg.Events),
		logger: logger,
	}
}

// Events returns a copy of the event table in roll order.
func (s *System) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Check runs one independent trial per event and returns those that fired,
// in table order. Several events may fire at once.
func (s *System) Check() []Event {
	var fired []Event
	for _, e := range s.events {
		if dice.Chance(s.rng, e.Probability) {
			fired = append(fired, e)
		}
	}
	return fired
}

// Execute applies e to the store.
func (s *System) Execute(e Event) {
	if e.apply == nil {
		return
	}
	s.logger.Debug("event", "name", e.Name)
	e.apply(s.store, s.rng)
}

func add(store *vars.Store, k vars.Key, delta, lo, hi float64) {
	store.Set(k, math.Max(lo, math.Min(hi, store.Get(k)+delta)))
}

func table(c config.EventChances) []Event {
	return []Event{
		{
			Name:        "Plagiarism Check",
			Description: "Your homework has been flagged for potential plagiarism!",
			Probability: c.Plagiarism,
			apply: func(store *vars.Store, _ dice.Source) {
				add(store, vars.GPA, -0.5, 0, 4)
				add(store, vars.Stress, 30, 0, 100)
			},
		},
		{
			Name:        "Research Opportunity",
			Description: "A professor has noticed your good work and offered you a research position!",
			Probability: c.ResearchOpportunity,
			apply: func(store *vars.Store, _ dice.Source) {
				add(store, vars.Research, 20, 0, 100)
				store.Add(vars.Money, 1000)
			},
		},
		{
			Name:        "Networking Event",
			Description: "You've been invited to a networking event with industry professionals!",
			Probability: c.Networking,
			apply: func(store *vars.Store, _ dice.Source) {
				add(store, vars.Internship, 15, 0, 100)
			},
		},
		{
			Name:        "Mentor Found",
			Description: "You've found a great mentor who can guide your career!",
			Probability: c.Mentor,
			apply: func(store *vars.Store, _ dice.Source) {
				add(store, vars.Research, 10, 0, 100)
				add(store, vars.Internship, 10, 0, 100)
			},
		},
		{
			Name:        "Midterm Exam",
			Description: "Time for midterm exams!",
			Probability: c.Midterm,
			apply: func(store *vars.Store, rng dice.Source) {
				add(store, vars.GPA, dice.Uniform(rng, -0.3, 0.3), 0, 4)
				add(store, vars.Stress, 20, 0, 100)
			},
		},
		{
			Name:        "Study Group",
			Description: "Your classmates invite you to join their study group!",
			Probability: c.StudyGroup,
			apply: func(store *vars.Store, _ dice.Source) {
				add(store, vars.GPA, 0.1, 0, 4)
				add(store, vars.Stress, -5, 0, 100)
			},
		},
	}
}
