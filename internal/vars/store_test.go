package vars

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGetDefaults(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 0.0, s.Get(Energy))
	assert.Equal(t, 0.0, s.Get(GPA))
	assert.Equal(t, 1.0, s.Get(Semester))
	assert.Equal(t, 1.0, s.Get(Month))
	assert.Equal(t, 1.0, s.Get(Year))
}

func TestSetClamps(t *testing.T) {
	cases := []struct {
		key  Key
		in   float64
		want float64
	}{
		{Energy, 150, 100},
		{Energy, -5, 0},
		{Energy, 42.5, 42.5},
		{GPA, 4.7, 4},
		{GPA, -1, 0},
		{Money, 1e9, 1e9},
		{Money, -20, 0},
		{Month, 9, 4},
		{Year, 0, 1},
		{Stress, math.Inf(1), 100},
		{Stress, math.Inf(-1), 0},
	}
	for _, tc := range cases {
		s := NewStore()
		got := s.Set(tc.key, tc.in)
		assert.Equal(t, tc.want, got, "Set(%s, %v)", tc.key, tc.in)
		assert.Equal(t, tc.want, s.Get(tc.key), "Get(%s) after Set(%v)", tc.key, tc.in)
	}
}

func TestSetNaNIsNoop(t *testing.T) {
	s := NewStore()
	s.Set(Energy, 30)

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	assert.Equal(t, 30.0, s.Set(Energy, math.NaN()))
	assert.Equal(t, 30.0, s.Get(Energy))
	assert.Empty(t, changes)
}

func TestObserversSeeOnlyRealChanges(t *testing.T) {
	s := NewStore()
	var first, second []Change
	s.Subscribe(func(c Change) { first = append(first, c) })
	unsubscribe := s.Subscribe(func(c Change) { second = append(second, c) })

	s.Set(Stress, 10)
	s.Set(Stress, 10)
	s.Set(Stress, 250) // clamps to 100
	s.Set(Stress, 300) // still 100, no change

	want := []Change{{Key: Stress, Value: 10}, {Key: Stress, Value: 100}}
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)

	unsubscribe()
	s.Set(Stress, 0)
	assert.Len(t, first, 3)
	assert.Len(t, second, 2)
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	s := NewStore()
	calls := 0
	var unsubscribe func()
	unsubscribe = s.Subscribe(func(Change) {
		calls++
		unsubscribe()
	})

	s.Set(Energy, 1)
	s.Set(Energy, 2)
	assert.Equal(t, 1, calls)
}

func TestResetPublishesClear(t *testing.T) {
	s := NewStore()
	s.Set(Programming, 40)

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.Reset(map[Key]float64{Energy: 120, GPA: 3})

	require.Equal(t, []Change{{Clear: true}}, changes)
	assert.Equal(t, 100.0, s.Get(Energy))
	assert.Equal(t, 3.0, s.Get(GPA))
	assert.Equal(t, 0.0, s.Get(Programming))
}

func TestLimitsAndOptions(t *testing.T) {
	s := NewStore(WithCalendar(5, 3, 6), WithLimits(Money, 0, 5000))

	min, max := s.Limits(Month)
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 5.0, max)

	_, max = s.Limits(Year)
	assert.Equal(t, 6.0, max)

	assert.Equal(t, 5000.0, s.Set(Money, 9000))

	min, max = s.Limits(GPA)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 4.0, max)
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("timeManagement")
	require.NoError(t, err)
	assert.Equal(t, TimeManagement, k)

	_, err = ParseKey("enrgy")
	assert.True(t, errors.Is(err, ErrUnknownKey))
}

func TestEffectsYAMLRejectsUnknownKey(t *testing.T) {
	var e Effects
	err := yaml.Unmarshal([]byte("energy: -20\nhardwar: 30\n"), &e)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)

	require.NoError(t, yaml.Unmarshal([]byte("energy: -20\nhardware: 30\n"), &e))
	assert.Equal(t, Effects{Energy: -20, Hardware: 30}, e)
}

func TestEffectsApply(t *testing.T) {
	s := NewStore()
	s.Set(Energy, 50)

	Effects{Energy: -20, Hardware: 30, Stress: 10}.Apply(s)

	assert.Equal(t, 30.0, s.Get(Energy))
	assert.Equal(t, 30.0, s.Get(Hardware))
	assert.Equal(t, 10.0, s.Get(Stress))
	assert.Error(t, Effects{Key("bogus"): 1}.Validate())
}

func TestFormatAndProgress(t *testing.T) {
	s := NewStore()
	s.Set(GPA, 3)
	s.Set(Money, 1234.9)

	assert.Equal(t, "$1234", Format(Money, s.Get(Money)))
	assert.Equal(t, "3.00", Format(GPA, s.Get(GPA)))
	assert.Equal(t, "2", Format(Semester, 2))
	assert.InDelta(t, 0.75, Progress(s, GPA), 1e-9)
	assert.Equal(t, 0.0, Progress(s, Money))
}
