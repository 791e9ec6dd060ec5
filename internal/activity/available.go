package activity

import (
	"fmt"

	"github.com/tatianab/ece-life/internal/dice"
	"github.com/tatianab/ece-life/internal/vars"
)

// Fixed returns the everyday activities, in menu order.
func (s *System) Fixed() []Activity {
	plain := func(f func() error) func() (Result, error) {
		return func() (Result, error) { return Result{}, f() }
	}
	fixed := func(kind Kind, name, desc string, run func() (Result, error)) Activity {
		return Activity{
			Name:         name,
			Description:  desc,
			Category:     CategoryFixed,
			Kind:         kind,
			Requirements: Requirements{Energy: costOf(s.cfg.EnergyCost, kind)},
			run:          run,
		}
	}
	return []Activity{
		fixed(Class, "Attend Class", "Go to lecture and take notes.", plain(s.AttendClass)),
		fixed(Homework, "Do Homework", "Work through this week's problem set.", plain(s.DoHomework)),
		fixed(Leetcode, "Solve LeetCode", "Grind a coding problem for interview practice.", plain(s.SolveLeetcode)),
		fixed(InterviewPrep, "Prepare for Interviews", "Run mock interviews and polish your stories.", plain(s.PrepareForInterview)),
		fixed(ApplyJobs, "Apply for Jobs", "Send out applications and hope for an offer.", func() (Result, error) {
			rate, err := s.ApplyForJobs()
			if err != nil {
				return Result{}, err
			}
			return Result{SuccessRate: rate, Applied: true}, nil
		}),
		fixed(Research, "Do Research", "Put in paid hours at your lab.", plain(s.DoResearch)),
		fixed(Club, "Attend Club", "Show up to your club meeting.", plain(s.AttendClub)),
		fixed(Rest, "Rest", "Sleep in and recharge.", func() (Result, error) {
			s.Rest()
			return Result{}, nil
		}),
	}
}

// Available builds the catalog activities open to the student at the
// current year and semester. The list is rebuilt on every call.
func (s *System) Available() []Activity {
	year := int(s.store.Get(vars.Year))
	semester := int(s.store.Get(vars.Semester))

	var out []Activity
	for _, e := range s.catalog.Core {
		if e.Year == year && e.Semester == semester {
			out = append(out, s.catalogActivity(e, CategoryCore))
		}
	}
	if year >= 3 {
		for _, e := range s.catalog.Electives {
			if e.Year <= year {
				out = append(out, s.catalogActivity(e, CategoryElective))
			}
		}
	}
	if year >= 2 {
		for _, e := range s.catalog.Research {
			if e.Year <= year {
				out = append(out, s.catalogActivity(e, CategoryResearch))
			}
		}
		for _, e := range s.catalog.Internships {
			if e.Year <= year {
				out = append(out, s.catalogActivity(e, CategoryInternship))
			}
		}
	}
	for _, e := range s.catalog.Study {
		out = append(out, s.catalogActivity(e, CategoryStudy))
	}
	for _, e := range s.catalog.Social {
		out = append(out, s.catalogActivity(e, CategorySocial))
	}
	return out
}

func (s *System) catalogActivity(e Entry, cat Category) Activity {
	floor := s.cfg.Catalog.EnergyFloor
	return Activity{
		Name:        e.Name,
		Description: e.Description,
		Category:    cat,
		Requirements: Requirements{
			Energy:   floor,
			Year:     e.Year,
			Semester: e.Semester,
		},
		run: func() (Result, error) {
			if energy := s.store.Get(vars.Energy); energy < floor {
				s.logger.Debug("catalog activity refused", "activity", e.Name, "energy", energy, "floor", floor)
				if cat.IsCourse() {
					return Result{}, fmt.Errorf("%w: you're too tired to take this course", ErrInsufficientEnergy)
				}
				return Result{}, fmt.Errorf("%w: you're too tired for this activity", ErrInsufficientEnergy)
			}
			e.Effects.Apply(s.store)
			if cat.IsCourse() {
				rules := s.cfg.Catalog
				performance := dice.Uniform(s.rng, rules.PerformanceMin, rules.PerformanceMax)
				s.store.Set(vars.GPA, (s.store.Get(vars.GPA)+performance)/2)
			}
			return Result{}, nil
		},
	}
}

func (c Catalog) empty() bool {
	return len(c.Core)+len(c.Electives)+len(c.Research)+len(c.Internships)+len(c.Study)+len(c.Social) == 0
}
