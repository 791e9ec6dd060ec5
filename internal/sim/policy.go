// Package sim plays sessions without a human, for balance checks and
// reproducible reports.
package sim

import (
	"context"
	"fmt"

	"github.com/tatianab/ece-life/internal/activity"
	"github.com/tatianab/ece-life/internal/dice"
	"github.com/tatianab/ece-life/internal/engine"
	"github.com/tatianab/ece-life/internal/vars"
)

// Policy picks the next activity from the menu.
type Policy interface {
	Name() string
	Choose(ctx context.Context, s *engine.Session, menu []activity.Activity) (activity.Activity, error)
}

// NewPolicy returns a built-in policy by name. rng drives the random policy.
func NewPolicy(name string, rng dice.Source) (Policy, error) {
	switch name {
	case "greedy":
		return &Greedy{}, nil
	case "random":
		return Random{rng: rng}, nil
	}
	return nil, fmt.Errorf("unknown policy %q (want greedy or random)", name)
}

// Greedy rests when tired and otherwise takes each open course once, then
// works toward a job offer.
type Greedy struct {
	// LowEnergy is the level at or below which Greedy rests. Zero means 30.
	LowEnergy float64

	taken map[string]bool
}

func (*Greedy) Name() string { return "greedy" }

func (g *Greedy) Choose(_ context.Context, s *engine.Session, menu []activity.Activity) (activity.Activity, error) {
	low := g.LowEnergy
	if low == 0 {
		low = 30
	}
	if g.taken == nil {
		g.taken = make(map[string]bool)
	}
	energy := s.Store.Get(vars.Energy)
	rest, ok := byKind(menu, activity.Rest)
	if !ok {
		return activity.Activity{}, fmt.Errorf("menu has no rest option")
	}
	if energy <= low || s.Store.Get(vars.Stress) >= 90 {
		return rest, nil
	}
	affordable := func(a activity.Activity) bool { return a.Requirements.Energy <= energy }

	for _, a := range menu {
		if a.Category.IsCourse() && !g.taken[a.Name] && affordable(a) {
			g.taken[a.Name] = true
			return a, nil
		}
	}

	var plan []activity.Kind
	switch {
	case s.Store.Get(vars.Year) < 2:
		plan = append(plan, activity.Class)
	case s.Activities.ProblemsSolved() < 10:
		plan = append(plan, activity.Leetcode)
	case s.Activities.PrepSessions() < 5:
		plan = append(plan, activity.InterviewPrep)
	default:
		plan = append(plan, activity.ApplyJobs)
	}
	plan = append(plan, activity.Homework, activity.Research)

	for _, kind := range plan {
		if a, ok := byKind(menu, kind); ok && affordable(a) {
			return a, nil
		}
	}
	return rest, nil
}

// Random picks uniformly from the whole menu, affordable or not.
type Random struct {
	rng dice.Source
}

func (Random) Name() string { return "random" }

func (r Random) Choose(_ context.Context, _ *engine.Session, menu []activity.Activity) (activity.Activity, error) {
	if len(menu) == 0 {
		return activity.Activity{}, fmt.Errorf("empty menu")
	}
	i := int(r.rng.Float64() * float64(len(menu)))
	return menu[min(i, len(menu)-1)], nil
}

func byKind(menu []activity.Activity, kind activity.Kind) (activity.Activity, bool) {
	for _, a := range menu {
		if a.Category == activity.CategoryFixed && a.Kind == kind {
			return a, true
		}
	}
	return activity.Activity{}, false
}
