package activity

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/tatianab/ece-life/internal/config"
	"github.com/tatianab/ece-life/internal/dice"
	"github.com/tatianab/ece-life/internal/vars"
)

// System executes activities against a store and builds the list of
// activities available at the current point of the program.
type System struct {
	cfg     config.Game
	store   *vars.Store
	rng     dice.Source
	catalog Catalog
	logger  *slog.Logger

	problemsSolved int
	prepSessions   int
}

// Option configures a System.
type Option func(*System)

// WithCatalog replaces the built-in catalog tables.
func WithCatalog(c Catalog) Option {
	return func(s *System) { s.catalog = c }
}

// WithLogger sets the logger; the default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *System) { s.logger = l }
}

// NewSystem returns a System bound to store.
func NewSystem(cfg config.Game, store *vars.Store, rng dice.Source, opts ...Option) (*System, error) {
	s := &System{
		cfg:    cfg,
		store:  store,
		rng:    rng,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog.empty() {
		c, err := DefaultCatalog()
		if err != nil {
			return nil, err
		}
		s.catalog = c
	}
	return s, nil
}

// ProblemsSolved is the number of LeetCode sessions completed.
func (s *System) ProblemsSolved() int { return s.problemsSolved }

// PrepSessions is the number of interview prep sessions completed.
func (s *System) PrepSessions() int { return s.prepSessions }

// spend debits the energy cost and credits the stress gain of kind, or
// fails without touching the store.
func (s *System) spend(kind Kind, doing string) error {
	cost := costOf(s.cfg.EnergyCost, kind)
	energy := s.store.Get(vars.Energy)
	if energy < cost {
		s.logger.Debug("activity refused", "activity", kind, "energy", energy, "cost", cost)
		return fmt.Errorf("%w to %s", ErrInsufficientEnergy, doing)
	}
	stress := s.store.Get(vars.Stress)
	s.store.Set(vars.Energy, energy-cost)
	s.store.Set(vars.Stress, stress+costOf(s.cfg.StressGain, kind))
	return nil
}

// AttendClass costs energy and nudges GPA up.
func (s *System) AttendClass() error {
	if err := s.spend(Class, "attend class"); err != nil {
		return err
	}
	s.store.Add(vars.GPA, s.cfg.GPAImpact.ClassAttendance)
	return nil
}

// DoHomework builds programming skill and nudges GPA up.
func (s *System) DoHomework() error {
	if err := s.spend(Homework, "do homework"); err != nil {
		return err
	}
	s.store.Add(vars.Programming, s.cfg.SkillGain.Programming)
	s.store.Add(vars.GPA, s.cfg.GPAImpact.HomeworkCompletion)
	return nil
}

// SolveLeetcode builds programming skill and counts toward job applications.
func (s *System) SolveLeetcode() error {
	if err := s.spend(Leetcode, "solve LeetCode problems"); err != nil {
		return err
	}
	s.store.Add(vars.Programming, s.cfg.SkillGain.Leetcode)
	s.problemsSolved++
	return nil
}

// PrepareForInterview counts toward job applications.
func (s *System) PrepareForInterview() error {
	if err := s.spend(InterviewPrep, "prepare for interviews"); err != nil {
		return err
	}
	s.prepSessions++
	return nil
}

// ApplyForJobs costs energy and returns the current success rate. Whether
// the application succeeds is left to the caller.
func (s *System) ApplyForJobs() (float64, error) {
	if err := s.spend(ApplyJobs, "apply for jobs"); err != nil {
		return 0, err
	}
	return s.SuccessRate(), nil
}

// SuccessRate is the probability that a job application succeeds, given
// the preparation done so far. It reads state only.
func (s *System) SuccessRate() float64 {
	in := s.cfg.Interview
	leetcode := math.Min(in.MaxBonus, float64(s.problemsSolved)/10*in.LeetcodeBonus)
	prep := math.Min(in.MaxBonus-leetcode, float64(s.prepSessions)*in.PrepBonus)
	return in.BaseRate + leetcode + prep
}

// DoResearch builds research skill and pays a stipend.
func (s *System) DoResearch() error {
	if err := s.spend(Research, "do research"); err != nil {
		return err
	}
	s.store.Add(vars.Research, s.cfg.SkillGain.Research)
	s.store.Add(vars.Money, s.cfg.MoneyGain.Research)
	return nil
}

// AttendClub builds time management.
func (s *System) AttendClub() error {
	if err := s.spend(Club, "attend club"); err != nil {
		return err
	}
	s.store.Add(vars.TimeManagement, s.cfg.SkillGain.TimeManagement)
	if s.cfg.MoneyGain.Club != 0 {
		s.store.Add(vars.Money, s.cfg.MoneyGain.Club)
	}
	return nil
}

// Rest restores energy and relieves stress. It never fails.
func (s *System) Rest() {
	energy := s.store.Get(vars.Energy)
	stress := s.store.Get(vars.Stress)
	s.store.Set(vars.Energy, math.Min(100, energy-s.cfg.EnergyCost.Rest))
	s.store.Set(vars.Stress, math.Max(0, stress+s.cfg.StressGain.Rest))
}

func costOf(c config.Costs, kind Kind) float64 {
	switch kind {
	case Class:
		return c.Class
	case Homework:
		return c.Homework
	case Leetcode:
		return c.Leetcode
	case InterviewPrep:
		return c.InterviewPrep
	case ApplyJobs:
		return c.ApplyJobs
	case Research:
		return c.Research
	case Club:
		return c.Club
	case Rest:
		return c.Rest
	default:
		return 0
	}
}
