// Package engine runs game sessions: it wires the variable store, the
// activity and event systems and the calendar together and plays turns.
package engine

import (
	"context"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/tatianab/ece-life/internal/activity"
	"github.com/tatianab/ece-life/internal/calendar"
	"github.com/tatianab/ece-life/internal/config"
	"github.com/tatianab/ece-life/internal/dice"
	"github.com/tatianab/ece-life/internal/event"
	"github.com/tatianab/ece-life/internal/models"
	"github.com/tatianab/ece-life/internal/vars"
	"google.golang.org/api/option"
)

type Engine struct {
	game     config.Game
	narrator Narrator
	client   *genai.Client
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithNarrator overrides the narrator picked from the config.
func WithNarrator(n Narrator) Option {
	return func(e *Engine) { e.narrator = n }
}

// WithLogger sets the logger; the default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine returns an engine for the given balance table. When the config
// carries a Gemini API key, turns are narrated by Gemini.
func NewEngine(ctx context.Context, cfg *config.Config, game config.Game, opts ...Option) (*Engine, error) {
	e := &Engine{
		game:     game,
		narrator: StaticNarrator{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := game.Validate(); err != nil {
		return nil, err
	}

	if cfg != nil && cfg.NarrationEnabled() {
		if _, static := e.narrator.(StaticNarrator); static {
			client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
			if err != nil {
				return nil, err
			}
			e.client = client
			e.narrator = NewGeminiNarrator(client.GenerativeModel(cfg.GeminiModel))
			e.logger.Info("gemini narration enabled", "model", cfg.GeminiModel)
		}
	}
	return e, nil
}

// Close releases the Gemini client, if any.
func (e *Engine) Close() {
	if e.client != nil {
		e.client.Close()
	}
}

// Game returns the balance table sessions are built from.
func (e *Engine) Game() config.Game { return e.game }

// NewSession starts a fresh program. A zero seed picks one from the clock;
// Session.Seed reports the seed in use.
func (e *Engine) NewSession(seed uint64) (*Session, error) {
	rng, seed := dice.New(seed)
	return e.newSession(rng, seed)
}

func (e *Engine) newSession(rng dice.Source, seed uint64) (*Session, error) {
	months, semesters, years := e.game.CalendarLength()
	store := vars.NewStore(vars.WithCalendar(months, semesters, years))

	id := uuid.NewString()
	logger := e.logger.With("session", id)

	acts, err := activity.NewSystem(e.game, store, rng, activity.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:         id,
		Seed:       seed,
		Store:      store,
		Activities: acts,
		Events:     event.NewSystem(e.game, store, rng, logger),
		Calendar:   calendar.New(months, semesters, years),
		Status:     models.StatusPlaying,
		rng:        rng,
		narrator:   e.narrator,
		logger:     logger,
	}
	s.unsubscribe = store.Subscribe(func(c vars.Change) {
		if c.Clear {
			logger.Debug("state reset")
			return
		}
		logger.Debug("variable changed", "key", c.Key, "value", c.Value)
	})

	start := e.game.Start
	store.Reset(map[vars.Key]float64{
		vars.Energy: start.Energy,
		vars.Stress: start.Stress,
		vars.GPA:    start.GPA,
		vars.Money:  start.Money,
	})
	logger.Info("session started", "seed", seed)
	return s, nil
}
