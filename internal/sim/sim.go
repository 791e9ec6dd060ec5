package sim

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tatianab/ece-life/internal/activity"
	"github.com/tatianab/ece-life/internal/engine"
	"github.com/tatianab/ece-life/internal/models"
)

// Run lets p play up to turns attempts on s, stopping early at graduation.
// Refused activities use up an attempt and are counted in the report.
func Run(ctx context.Context, s *engine.Session, p Policy, turns int, logger *slog.Logger) (models.Report, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	refused := 0
	for attempt := 0; attempt < turns; attempt++ {
		if err := ctx.Err(); err != nil {
			return models.Report{}, err
		}
		if s.Status == models.StatusGraduated {
			break
		}

		a, err := p.Choose(ctx, s, s.Menu())
		if err != nil {
			return models.Report{}, err
		}
		if _, err := s.Play(ctx, a); err != nil {
			if errors.Is(err, activity.ErrInsufficientEnergy) {
				refused++
				continue
			}
			return models.Report{}, err
		}
	}

	r := s.Report()
	r.Policy = p.Name()
	r.Refused = refused
	logger.Info("simulation finished", "policy", r.Policy, "turns", r.Turns, "refused", refused, "status", r.Status)
	return r, nil
}
