package models

import (
	"github.com/tatianab/ece-life/internal/calendar"
	"github.com/tatianab/ece-life/internal/vars"
)

// Status is the state of the program as a whole.
type Status string

const (
	StatusPlaying   Status = "PLAYING"
	StatusGraduated Status = "GRADUATED"
)

// Application records the outcome of a job application turn.
type Application struct {
	SuccessRate float64 `yaml:"success_rate"`
	Offer       bool    `yaml:"offer"`
}

// HistoryEntry represents a single turn in the game.
type HistoryEntry struct {
	Turn        int                  `yaml:"turn"`
	Position    calendar.Position    `yaml:"position"` // where the turn was played
	Action      string               `yaml:"action"`
	Outcome     string               `yaml:"outcome"`
	Events      []string             `yaml:"events,omitempty"`
	Changes     map[vars.Key]float64 `yaml:"changes,omitempty"` // net change over the turn
	Application *Application         `yaml:"application,omitempty"`
	Status      Status               `yaml:"status"`
}

// GameHistory contains the turns played so far plus the recaps written at
// each semester boundary.
type GameHistory struct {
	Recaps  []string       `yaml:"recaps,omitempty"`
	Entries []HistoryEntry `yaml:"entries"`
}

// TurnResult is what the presentation layer shows after a turn.
type TurnResult struct {
	Entry    HistoryEntry
	Messages []string // plain log lines, oldest first
	Recap    string   // set when the turn closed a semester
}

// Report summarizes a finished or abandoned session.
type Report struct {
	Session    string               `yaml:"session"`
	Seed       uint64               `yaml:"seed"`
	Difficulty string               `yaml:"difficulty"`
	Policy     string               `yaml:"policy,omitempty"`
	Turns      int                  `yaml:"turns"`
	Refused    int                  `yaml:"refused"`
	Status     Status               `yaml:"status"`
	Position   calendar.Position    `yaml:"position"`
	Final      map[vars.Key]float64 `yaml:"final"`
	History    GameHistory          `yaml:"history"`
}
