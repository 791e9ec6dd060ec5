package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/ece-life/internal/config"
	"github.com/tatianab/ece-life/internal/dice"
	"github.com/tatianab/ece-life/internal/vars"
)

func names(acts []Activity) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = a.Name
	}
	return out
}

func countCategory(acts []Activity, cat Category) int {
	n := 0
	for _, a := range acts {
		if a.Category == cat {
			n++
		}
	}
	return n
}

func TestAvailableFirstSemester(t *testing.T) {
	sys, _ := newTestSystem(t, dice.NewSequence(0.5))

	got := sys.Available()

	assert.Equal(t, []string{
		"ECE 110 - Introduction to Electronics",
		"ECE 120 - Introduction to Computing",
		"Study for Exams",
		"Join Study Group",
		"Attend ECE Social Events",
		"Join ECE Student Organizations",
	}, names(got))
	assert.Zero(t, countCategory(got, CategoryElective))
	assert.Zero(t, countCategory(got, CategoryResearch))
	assert.Zero(t, countCategory(got, CategoryInternship))
}

func TestAvailableByYear(t *testing.T) {
	cases := []struct {
		year, semester                       int
		core, elective, research, internship int
	}{
		{1, 2, 2, 0, 0, 0},
		{2, 1, 2, 0, 2, 1},
		{2, 2, 2, 0, 2, 1},
		{3, 1, 0, 2, 2, 2},
		{4, 2, 0, 3, 2, 2},
	}
	for _, tc := range cases {
		sys, store := newTestSystem(t, dice.NewSequence(0.5))
		store.Set(vars.Year, float64(tc.year))
		store.Set(vars.Semester, float64(tc.semester))

		got := sys.Available()
		assert.Equal(t, tc.core, countCategory(got, CategoryCore), "core y%d s%d", tc.year, tc.semester)
		assert.Equal(t, tc.elective, countCategory(got, CategoryElective), "elective y%d s%d", tc.year, tc.semester)
		assert.Equal(t, tc.research, countCategory(got, CategoryResearch), "research y%d s%d", tc.year, tc.semester)
		assert.Equal(t, tc.internship, countCategory(got, CategoryInternship), "internship y%d s%d", tc.year, tc.semester)
		assert.Equal(t, 2, countCategory(got, CategoryStudy))
		assert.Equal(t, 2, countCategory(got, CategorySocial))
	}
}

func TestAvailableIsRebuiltEachCall(t *testing.T) {
	sys, store := newTestSystem(t, dice.NewSequence(0.5))
	first := names(sys.Available())
	assert.Equal(t, first, names(sys.Available()))

	store.Set(vars.Semester, 2)
	assert.Contains(t, names(sys.Available()), "ECE 210 - Analog Signal Processing")
}

func TestCourseRecomputesGPA(t *testing.T) {
	sys, store := newTestSystem(t, dice.NewSequence(0, 0.999999))

	course := sys.Available()[0]
	require.Equal(t, CategoryCore, course.Category)

	_, err := course.Execute()
	require.NoError(t, err)
	assert.Equal(t, 80.0, store.Get(vars.Energy))
	assert.Equal(t, 10.0, store.Get(vars.Stress))
	assert.Equal(t, 30.0, store.Get(vars.Hardware))
	// (3.0 + 0.6) / 2
	assert.InDelta(t, 1.8, store.Get(vars.GPA), 1e-9)

	_, err = course.Execute()
	require.NoError(t, err)
	// (1.8 + ~1.0) / 2
	assert.InDelta(t, 1.4, store.Get(vars.GPA), 1e-5)
}

func TestNonCourseLeavesGPAFormulaAlone(t *testing.T) {
	sys, store := newTestSystem(t, dice.NewSequence(0))

	var group Activity
	for _, a := range sys.Available() {
		if a.Name == "Join Study Group" {
			group = a
		}
	}
	store.Set(vars.Stress, 30)

	_, err := group.Execute()
	require.NoError(t, err)
	assert.InDelta(t, 3.15, store.Get(vars.GPA), 1e-9)
	assert.Equal(t, 80.0, store.Get(vars.Energy))
	assert.Equal(t, 20.0, store.Get(vars.Stress))
}

func TestCatalogEnergyFloor(t *testing.T) {
	sys, store := newTestSystem(t, dice.NewSequence(0.5))
	store.Set(vars.Energy, 19)
	before := store.Snapshot()

	for _, a := range sys.Available() {
		_, err := a.Execute()
		assert.ErrorIs(t, err, ErrInsufficientEnergy, a.Name)
	}
	assert.Equal(t, before, store.Snapshot())

	store.Set(vars.Energy, 20)
	_, err := sys.Available()[0].Execute()
	assert.NoError(t, err)
}

func TestParseCatalogRejectsUnknownVariable(t *testing.T) {
	_, err := ParseCatalog([]byte(`
study:
  - name: Cram
    effects: {gpaa: 0.1}
`))
	assert.ErrorIs(t, err, vars.ErrUnknownKey)

	_, err = ParseCatalog([]byte(`
core:
  - name: Orphan Course
    year: 1
    effects: {gpa: 0.1}
`))
	assert.Error(t, err)
}

func TestWithCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(`
social:
  - name: Board Games
    effects: {stress: -5}
`))
	require.NoError(t, err)

	store := vars.NewStore()
	sys, err := NewSystem(config.Default(), store, dice.NewSequence(0.5), WithCatalog(c))
	require.NoError(t, err)
	assert.Equal(t, []string{"Board Games"}, names(sys.Available()))
}
