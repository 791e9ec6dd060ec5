package config

import (
	"fmt"
	"strings"
)

// Game is the balance table every game component reads its costs, gains
// and chances from. It is a value; components keep their own copy.
type Game struct {
	Calendar   Calendar         `yaml:"calendar"`
	Start      Start            `yaml:"start"`
	SkillGain  SkillGain        `yaml:"skill_gain"`
	EnergyCost Costs            `yaml:"energy_cost"`
	StressGain Costs            `yaml:"stress_gain"`
	MoneyGain  MoneyGain        `yaml:"money_gain"`
	GPAImpact  GPAImpact        `yaml:"gpa_impact"`
	Interview  InterviewSuccess `yaml:"interview_success"`
	Events     EventChances     `yaml:"random_events"`
	Catalog    CatalogRules     `yaml:"catalog"`
}

// Calendar fixes the length of the program.
type Calendar struct {
	SemesterLength   int `yaml:"semester_length" validate:"min=1"`
	SemestersPerYear int `yaml:"semesters_per_year" validate:"min=1"`
	Years            int `yaml:"years" validate:"min=1"`
}

// Start holds the values a new session begins with.
type Start struct {
	Energy float64 `yaml:"energy" validate:"gte=0,lte=100"`
	Stress float64 `yaml:"stress" validate:"gte=0,lte=100"`
	GPA    float64 `yaml:"gpa" validate:"gte=0,lte=4"`
	Money  float64 `yaml:"money" validate:"gte=0"`
}

// SkillGain is the skill credited per fixed activity.
type SkillGain struct {
	Programming    float64 `yaml:"programming" validate:"gte=0"`
	Research       float64 `yaml:"research" validate:"gte=0"`
	TimeManagement float64 `yaml:"time_management" validate:"gte=0"`
	Leetcode       float64 `yaml:"leetcode" validate:"gte=0"`
}

// Costs is keyed by fixed activity. A negative value restores instead of
// spending; only Rest is expected to be negative.
type Costs struct {
	Class         float64 `yaml:"class"`
	Homework      float64 `yaml:"homework"`
	Research      float64 `yaml:"research"`
	Club          float64 `yaml:"club"`
	Leetcode      float64 `yaml:"leetcode"`
	InterviewPrep float64 `yaml:"interview_prep"`
	ApplyJobs     float64 `yaml:"apply_jobs"`
	Rest          float64 `yaml:"rest" validate:"lte=0"`
}

type MoneyGain struct {
	Research float64 `yaml:"research" validate:"gte=0"`
	Club     float64 `yaml:"club" validate:"gte=0"`
}

// GPAImpact is the GPA bump from the everyday academic activities.
type GPAImpact struct {
	ClassAttendance    float64 `yaml:"class_attendance" validate:"gte=0,lte=4"`
	HomeworkCompletion float64 `yaml:"homework_completion" validate:"gte=0,lte=4"`
}

// InterviewSuccess parameterises the job application success rate.
type InterviewSuccess struct {
	BaseRate      float64 `yaml:"base_rate" validate:"gte=0,lte=1"`
	LeetcodeBonus float64 `yaml:"leetcode_bonus" validate:"gte=0"` // per 10 problems
	PrepBonus     float64 `yaml:"interview_prep_bonus" validate:"gte=0"`
	MaxBonus      float64 `yaml:"max_bonus" validate:"gte=0,lte=1"`
}

// EventChances are independent per-turn trigger probabilities.
type EventChances struct {
	Plagiarism          float64 `yaml:"plagiarism" validate:"gte=0,lte=1"`
	ResearchOpportunity float64 `yaml:"research_opportunity" validate:"gte=0,lte=1"`
	Networking          float64 `yaml:"networking" validate:"gte=0,lte=1"`
	Mentor              float64 `yaml:"mentor" validate:"gte=0,lte=1"`
	Midterm             float64 `yaml:"midterm" validate:"gte=0,lte=1"`
	StudyGroup          float64 `yaml:"study_group" validate:"gte=0,lte=1"`
}

// CatalogRules apply to the long-form catalog activities. The energy floor
// is on the same 0-100 scale as the energy variable.
type CatalogRules struct {
	EnergyFloor    float64 `yaml:"energy_floor" validate:"gte=0,lte=100"`
	PerformanceMin float64 `yaml:"performance_min" validate:"gte=0,lte=4"`
	PerformanceMax float64 `yaml:"performance_max" validate:"gtefield=PerformanceMin,lte=4"`
}

// Default returns the standard balance table.
func Default() Game {
	return Game{
		Calendar: Calendar{SemesterLength: 4, SemestersPerYear: 2, Years: 4},
		Start:    Start{Energy: 100, Stress: 0, GPA: 3.0, Money: 0},
		SkillGain: SkillGain{
			Programming:    5,
			Research:       3,
			TimeManagement: 2,
			Leetcode:       8,
		},
		EnergyCost: Costs{
			Class:         10,
			Homework:      15,
			Research:      20,
			Club:          10,
			Leetcode:      12,
			InterviewPrep: 15,
			ApplyJobs:     8,
			Rest:          -20,
		},
		StressGain: Costs{
			Class:         5,
			Homework:      10,
			Research:      8,
			Club:          3,
			Leetcode:      8,
			InterviewPrep: 15,
			ApplyJobs:     10,
			Rest:          -10,
		},
		MoneyGain: MoneyGain{Research: 500, Club: 0},
		GPAImpact: GPAImpact{ClassAttendance: 0.01, HomeworkCompletion: 0.02},
		Interview: InterviewSuccess{
			BaseRate:      0.2,
			LeetcodeBonus: 0.1,
			PrepBonus:     0.15,
			MaxBonus:      0.5,
		},
		Events: EventChances{
			Plagiarism:          0.1,
			ResearchOpportunity: 0.05,
			Networking:          0.15,
			Mentor:              0.03,
			Midterm:             0.25,
			StudyGroup:          0.2,
		},
		Catalog: CatalogRules{EnergyFloor: 20, PerformanceMin: 0.6, PerformanceMax: 1.0},
	}
}

// Casual returns easier balance for casual difficulty.
func Casual() Game {
	cfg := Default()
	cfg.EnergyCost.Homework = 12
	cfg.EnergyCost.Research = 15
	cfg.EnergyCost.InterviewPrep = 12
	cfg.EnergyCost.Rest = -30
	cfg.StressGain.InterviewPrep = 10
	cfg.StressGain.Rest = -15
	cfg.Events.Plagiarism = 0.05
	cfg.Catalog.PerformanceMin = 0.7
	return cfg
}

// Hard returns harder balance for experienced players.
func Hard() Game {
	cfg := Default()
	cfg.Start.Energy = 80
	cfg.EnergyCost.Class = 12
	cfg.EnergyCost.Homework = 18
	cfg.EnergyCost.Rest = -15
	cfg.StressGain.Homework = 12
	cfg.StressGain.Rest = -8
	cfg.Interview.BaseRate = 0.1
	cfg.Events.Plagiarism = 0.15
	cfg.Events.Midterm = 0.35
	cfg.Catalog.PerformanceMin = 0.5
	return cfg
}

// Preset returns the balance table for a named difficulty.
func Preset(name string) (Game, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal", "default":
		return Default(), nil
	case "casual", "easy":
		return Casual(), nil
	case "hard":
		return Hard(), nil
	default:
		return Game{}, fmt.Errorf("unknown difficulty %q (want normal, casual or hard)", name)
	}
}

// CalendarLength returns months per semester, semesters per year and years.
func (g Game) CalendarLength() (int, int, int) {
	return g.Calendar.SemesterLength, g.Calendar.SemestersPerYear, g.Calendar.Years
}
