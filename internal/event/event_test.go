package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/ece-life/internal/config"
	"github.com/tatianab/ece-life/internal/dice"
	"github.com/tatianab/ece-life/internal/vars"
)

func byName(t *testing.T, s *System, name string) Event {
	t.Helper()
	for _, e := range s.Events() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("no event named %q", name)
	return Event{}
}

func TestTableOrder(t *testing.T) {
	s := NewSystem(config.Default(), vars.NewStore(), dice.NewSequence(0.5), nil)
	var got []string
	for _, e := range s.Events() {
		got = append(got, e.Name)
	}
	assert.Equal(t, []string{
		"Plagiarism Check",
		"Research Opportunity",
		"Networking Event",
		"Mentor Found",
		"Midterm Exam",
		"Study Group",
	}, got)
}

func TestCheckIsIndependentPerEvent(t *testing.T) {
	// Draws line up with the table: fire, miss, fire, miss, fire, fire.
	rng := dice.NewSequence(0.01, 0.9, 0.14, 0.03, 0.2, 0.19)
	s := NewSystem(config.Default(), vars.NewStore(), rng, nil)

	var got []string
	for _, e := range s.Check() {
		got = append(got, e.Name)
	}
	assert.Equal(t, []string{"Plagiarism Check", "Networking Event", "Midterm Exam", "Study Group"}, got)
}

func TestCheckNothingFires(t *testing.T) {
	s := NewSystem(config.Default(), vars.NewStore(), dice.NewSequence(0.99), nil)
	assert.Empty(t, s.Check())
}

func TestCheckFrequencies(t *testing.T) {
	rng, _ := dice.New(12345)
	s := NewSystem(config.Default(), vars.NewStore(), rng, nil)

	const n = 10000
	counts := map[string]int{}
	for range n {
		for _, e := range s.Check() {
			counts[e.Name]++
		}
	}
	for _, e := range s.Events() {
		observed := float64(counts[e.Name]) / n
		assert.InDelta(t, e.Probability, observed, 0.02, e.Name)
	}
}

func TestPlagiarism(t *testing.T) {
	store := vars.NewStore()
	store.Set(vars.GPA, 0.3)
	store.Set(vars.Stress, 80)
	s := NewSystem(config.Default(), store, dice.NewSequence(0.5), nil)

	s.Execute(byName(t, s, "Plagiarism Check"))

	assert.Equal(t, 0.0, store.Get(vars.GPA))
	assert.Equal(t, 100.0, store.Get(vars.Stress))
}

func TestResearchOpportunityAndMentor(t *testing.T) {
	store := vars.NewStore()
	store.Set(vars.Research, 85)
	s := NewSystem(config.Default(), store, dice.NewSequence(0.5), nil)

	s.Execute(byName(t, s, "Research Opportunity"))
	assert.Equal(t, 100.0, store.Get(vars.Research))
	assert.Equal(t, 1000.0, store.Get(vars.Money))

	s.Execute(byName(t, s, "Mentor Found"))
	assert.Equal(t, 100.0, store.Get(vars.Research))
	assert.Equal(t, 10.0, store.Get(vars.Internship))

	s.Execute(byName(t, s, "Networking Event"))
	assert.Equal(t, 25.0, store.Get(vars.Internship))
}

func TestMidtermSamplesWithinRange(t *testing.T) {
	store := vars.NewStore()
	store.Set(vars.GPA, 3)
	s := NewSystem(config.Default(), store, dice.NewSequence(0, 0.5), nil)
	midterm := byName(t, s, "Midterm Exam")

	s.Execute(midterm)
	assert.InDelta(t, 2.7, store.Get(vars.GPA), 1e-9)
	assert.Equal(t, 20.0, store.Get(vars.Stress))

	s.Execute(midterm)
	assert.InDelta(t, 2.7, store.Get(vars.GPA), 1e-9)

	rng, _ := dice.New(99)
	s = NewSystem(config.Default(), store, rng, nil)
	for range 200 {
		before := store.Get(vars.GPA)
		s.Execute(midterm)
		after := store.Get(vars.GPA)
		require.GreaterOrEqual(t, after, 0.0)
		require.LessOrEqual(t, after, 4.0)
		if after > 0 && after < 4 {
			require.InDelta(t, before, after, 0.3+1e-9)
		}
	}
}

func TestStudyGroup(t *testing.T) {
	store := vars.NewStore()
	store.Set(vars.GPA, 3.95)
	store.Set(vars.Stress, 3)
	s := NewSystem(config.Default(), store, dice.NewSequence(0.5), nil)

	s.Execute(byName(t, s, "Study Group"))
	assert.Equal(t, 4.0, store.Get(vars.GPA))
	assert.Equal(t, 0.0, store.Get(vars.Stress))
}

func TestProbabilitiesFollowConfig(t *testing.T) {
	s := NewSystem(config.Hard(), vars.NewStore(), dice.NewSequence(0.5), nil)
	assert.Equal(t, 0.15, byName(t, s, "Plagiarism Check").Probability)
	assert.Equal(t, 0.35, byName(t, s, "Midterm Exam").Probability)
}
