package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tatianab/ece-life/internal/activity"
	"github.com/tatianab/ece-life/internal/calendar"
	"github.com/tatianab/ece-life/internal/dice"
	"github.com/tatianab/ece-life/internal/event"
	"github.com/tatianab/ece-life/internal/models"
	"github.com/tatianab/ece-life/internal/vars"
)

const graduationMessage = "Congratulations! You have completed your ECE degree!"

// Session is one playthrough. It is not safe for concurrent use; turns are
// played one at a time.
type Session struct {
	ID         string
	Seed       uint64
	Store      *vars.Store
	Activities *activity.System
	Events     *event.System
	Calendar   calendar.Calendar
	History    models.GameHistory
	Status     models.Status

	rng         dice.Source
	narrator    Narrator
	logger      *slog.Logger
	unsubscribe func()
	recapFrom   int
}

// Close detaches the session's own store observer.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Menu returns the everyday activities followed by the catalog activities
// open at the current point of the program.
func (s *Session) Menu() []activity.Activity {
	return append(s.Activities.Fixed(), s.Activities.Available()...)
}

// Position is where the session currently is in the program.
func (s *Session) Position() calendar.Position {
	return s.Calendar.Current(s.Store)
}

// Play runs one turn: the activity, a job application roll when the
// activity was one, random events, and a calendar advance. When the
// activity fails nothing else happens and its error is returned.
func (s *Session) Play(ctx context.Context, a activity.Activity) (models.TurnResult, error) {
	before := s.Store.Snapshot()
	start := s.Position()

	res, err := a.Execute()
	if err != nil {
		s.logger.Info("activity refused", "activity", a.Name, "error", err)
		return models.TurnResult{}, err
	}

	entry := models.HistoryEntry{
		Turn:     len(s.History.Entries) + 1,
		Position: start,
		Action:   a.Name,
	}
	messages := []string{fmt.Sprintf("You chose to %s.", strings.ToLower(a.Name))}

	if res.Applied {
		app := &models.Application{SuccessRate: res.SuccessRate, Offer: dice.Chance(s.rng, res.SuccessRate)}
		if app.Offer {
			s.Store.Add(vars.Offers, 1)
			messages = append(messages, "A company made you an offer!")
		} else {
			messages = append(messages, "No offers came back this time.")
		}
		entry.Application = app
		s.logger.Info("job application", "success_rate", app.SuccessRate, "offer", app.Offer)
	}

	for _, e := range s.Events.Check() {
		s.Events.Execute(e)
		entry.Events = append(entry.Events, e.Name)
		messages = append(messages, e.Description)
	}

	justGraduated := false
	next, err := s.Calendar.Advance(s.Store)
	switch {
	case errors.Is(err, calendar.ErrProgramComplete):
		if s.Status != models.StatusGraduated {
			justGraduated = true
			s.logger.Info("program complete", "turns", entry.Turn)
		}
		s.Status = models.StatusGraduated
		messages = append(messages, graduationMessage)
	case err != nil:
		return models.TurnResult{}, err
	default:
		messages = append(messages, fmt.Sprintf("Starting %s.", next))
	}
	entry.Status = s.Status
	entry.Changes = diff(before, s.Store.Snapshot())

	entry.Outcome = s.narrate(ctx, entry, messages)
	s.History.Entries = append(s.History.Entries, entry)

	result := models.TurnResult{Entry: entry, Messages: messages}
	if next.Semester != start.Semester || next.Year != start.Year || justGraduated {
		result.Recap = s.recap(ctx)
	}
	return result, nil
}

func (s *Session) narrate(ctx context.Context, entry models.HistoryEntry, messages []string) string {
	text, err := s.narrator.Narrate(ctx, entry, messages)
	if err != nil {
		s.logger.Warn("narration failed, using plain log", "error", err)
		text, _ = StaticNarrator{}.Narrate(ctx, entry, messages)
	}
	return text
}

func (s *Session) recap(ctx context.Context) string {
	entries := s.History.Entries[s.recapFrom:]
	standing := s.Store.Snapshot()
	text, err := s.narrator.Recap(ctx, s.History.Recaps, entries, standing)
	if err != nil {
		s.logger.Warn("recap failed, using plain summary", "error", err)
		text, _ = StaticNarrator{}.Recap(ctx, s.History.Recaps, entries, standing)
	}
	s.History.Recaps = append(s.History.Recaps, text)
	s.recapFrom = len(s.History.Entries)
	return text
}

// Report snapshots the session for export.
func (s *Session) Report() models.Report {
	return models.Report{
		Session:  s.ID,
		Seed:     s.Seed,
		Turns:    len(s.History.Entries),
		Status:   s.Status,
		Position: s.Position(),
		Final:    s.Store.Snapshot(),
		History:  s.History,
	}
}

func diff(before, after map[vars.Key]float64) map[vars.Key]float64 {
	out := make(map[vars.Key]float64)
	for k, v := range after {
		if d := v - before[k]; d != 0 {
			out[k] = d
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
