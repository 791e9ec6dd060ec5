// Package activity implements the player-chosen actions: the fixed-cost
// everyday activities and the catalog of courses and programs gated by the
// student's year and semester.
package activity

import "errors"

// ErrInsufficientEnergy is the only way an activity fails. State is left
// untouched when it is returned.
var ErrInsufficientEnergy = errors.New("not enough energy")

// Kind identifies a fixed-cost activity.
type Kind string

const (
	Class         Kind = "class"
	Homework      Kind = "homework"
	Leetcode      Kind = "leetcode"
	InterviewPrep Kind = "interview_prep"
	ApplyJobs     Kind = "apply_jobs"
	Research      Kind = "research"
	Club          Kind = "club"
	Rest          Kind = "rest"
)

// Category groups activities for display and filtering.
type Category string

const (
	CategoryFixed      Category = "everyday"
	CategoryCore       Category = "core course"
	CategoryElective   Category = "elective"
	CategoryResearch   Category = "research"
	CategoryInternship Category = "internship"
	CategoryStudy      Category = "study"
	CategorySocial     Category = "social"
)

// IsCourse reports whether activities in c recompute GPA when taken.
func (c Category) IsCourse() bool {
	return c == CategoryCore || c == CategoryElective
}

// Requirements describe what an activity needs before it can run.
type Requirements struct {
	Energy   float64
	Year     int
	Semester int
}

// Result carries what an activity reports back besides state changes.
type Result struct {
	// SuccessRate is the job application success probability. It is only
	// meaningful when Applied is true.
	SuccessRate float64
	Applied     bool
}

// Activity is a ready-to-run action. Activities are built fresh each time
// the list is requested; only their effects on the store persist.
type Activity struct {
	Name         string
	Description  string
	Category     Category
	Kind         Kind
	Requirements Requirements

	run func() (Result, error)
}

// Execute applies the activity. On ErrInsufficientEnergy nothing changes.
func (a Activity) Execute() (Result, error) {
	if a.run == nil {
		return Result{}, errors.New("activity has no effect bound")
	}
	return a.run()
}
