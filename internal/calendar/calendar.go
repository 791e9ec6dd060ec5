// Package calendar advances the month, semester and year counters kept in
// the variable store.
package calendar

import (
	"errors"
	"fmt"

	"github.com/tatianab/ece-life/internal/vars"
)

// ErrProgramComplete is returned once the last month of the last year has
// passed. The calendar stays where it was.
var ErrProgramComplete = errors.New("program complete")

// Position is a point in the program.
type Position struct {
	Month    int `yaml:"month"`
	Semester int `yaml:"semester"`
	Year     int `yaml:"year"`
}

func (p Position) String() string {
	return fmt.Sprintf("month %d of semester %d, year %d", p.Month, p.Semester, p.Year)
}

// Calendar knows the length of the program.
type Calendar struct {
	MonthsPerSemester int
	SemestersPerYear  int
	Years             int
}

// New returns a Calendar with the given lengths.
func New(monthsPerSemester, semestersPerYear, years int) Calendar {
	return Calendar{
		MonthsPerSemester: monthsPerSemester,
		SemestersPerYear:  semestersPerYear,
		Years:             years,
	}
}

// Next returns the position one month after p.
func (c Calendar) Next(p Position) (Position, error) {
	p.Month++
	if p.Month > c.MonthsPerSemester {
		p.Month = 1
		p.Semester++
		if p.Semester > c.SemestersPerYear {
			p.Semester = 1
			p.Year++
			if p.Year > c.Years {
				return Position{}, ErrProgramComplete
			}
		}
	}
	return p, nil
}

// Current reads the position from store.
func (c Calendar) Current(store *vars.Store) Position {
	return Position{
		Month:    int(store.Get(vars.Month)),
		Semester: int(store.Get(vars.Semester)),
		Year:     int(store.Get(vars.Year)),
	}
}

// Advance moves the stored position forward one month. On
// ErrProgramComplete nothing is written and the current position is
// returned.
func (c Calendar) Advance(store *vars.Store) (Position, error) {
	cur := c.Current(store)
	next, err := c.Next(cur)
	if err != nil {
		return cur, err
	}
	store.Set(vars.Month, float64(next.Month))
	store.Set(vars.Semester, float64(next.Semester))
	store.Set(vars.Year, float64(next.Year))
	return next, nil
}

// Finished reports whether p is the last month of the program.
func (c Calendar) Finished(p Position) bool {
	_, err := c.Next(p)
	return errors.Is(err, ErrProgramComplete)
}
