package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/ece-life/internal/vars"
)

func storeAt(p Position) *vars.Store {
	s := vars.NewStore(vars.WithCalendar(4, 2, 4))
	s.Set(vars.Month, float64(p.Month))
	s.Set(vars.Semester, float64(p.Semester))
	s.Set(vars.Year, float64(p.Year))
	return s
}

func TestAdvanceWithinSemester(t *testing.T) {
	cal := New(4, 2, 4)
	store := vars.NewStore(vars.WithCalendar(4, 2, 4))

	got, err := cal.Advance(store)
	require.NoError(t, err)
	assert.Equal(t, Position{Month: 2, Semester: 1, Year: 1}, got)
	assert.Equal(t, 2.0, store.Get(vars.Month))
}

func TestAdvanceRollsSemester(t *testing.T) {
	cal := New(4, 2, 4)
	store := storeAt(Position{Month: 4, Semester: 1, Year: 1})

	got, err := cal.Advance(store)
	require.NoError(t, err)
	assert.Equal(t, Position{Month: 1, Semester: 2, Year: 1}, got)
	assert.Equal(t, got, cal.Current(store))
}

func TestAdvanceRollsYear(t *testing.T) {
	cal := New(4, 2, 4)
	store := storeAt(Position{Month: 4, Semester: 2, Year: 2})

	got, err := cal.Advance(store)
	require.NoError(t, err)
	assert.Equal(t, Position{Month: 1, Semester: 1, Year: 3}, got)
}

func TestAdvancePastFinalYear(t *testing.T) {
	cal := New(4, 2, 4)
	last := Position{Month: 4, Semester: 2, Year: 4}
	store := storeAt(last)
	assert.True(t, cal.Finished(last))

	for range 3 {
		got, err := cal.Advance(store)
		assert.ErrorIs(t, err, ErrProgramComplete)
		assert.Equal(t, last, got)
		assert.Equal(t, last, cal.Current(store))
	}
}

func TestFullProgramLength(t *testing.T) {
	cal := New(4, 2, 4)
	store := vars.NewStore(vars.WithCalendar(4, 2, 4))

	months := 1
	for {
		if _, err := cal.Advance(store); err != nil {
			assert.ErrorIs(t, err, ErrProgramComplete)
			break
		}
		months++
	}
	assert.Equal(t, 32, months)
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "month 3 of semester 2, year 1", Position{Month: 3, Semester: 2, Year: 1}.String())
}
