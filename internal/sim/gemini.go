package sim

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/ece-life/internal/activity"
	"github.com/tatianab/ece-life/internal/engine"
	"github.com/tatianab/ece-life/internal/vars"
)

type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Player lets a Gemini model play the game. When the model fails or answers
// with something that is not a menu number, the player rests.
type Player struct {
	model generator
}

// NewPlayer wraps a generative model.
func NewPlayer(model generator) *Player {
	return &Player{model: model}
}

func (*Player) Name() string { return "gemini" }

var firstNumber = regexp.MustCompile(`\d+`)

func (p *Player) Choose(ctx context.Context, s *engine.Session, menu []activity.Activity) (activity.Activity, error) {
	rest, ok := byKind(menu, activity.Rest)
	if !ok {
		return activity.Activity{}, fmt.Errorf("menu has no rest option")
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(playerPrompt(s, menu)))
	if err != nil {
		return rest, nil
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return rest, nil
	}
	reply := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	n, err := strconv.Atoi(firstNumber.FindString(reply))
	if err != nil || n < 1 || n > len(menu) {
		return rest, nil
	}
	return menu[n-1], nil
}

func playerPrompt(s *engine.Session, menu []activity.Activity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an electrical and computer engineering student. It is %s.\n\nStats:\n", s.Position())
	for _, k := range vars.Keys() {
		fmt.Fprintf(&b, "- %s: %s\n", k.Label(), vars.Format(k, s.Store.Get(k)))
	}
	b.WriteString("\nRecent turns:\n")
	entries := s.History.Entries
	if len(entries) > 5 {
		entries = entries[len(entries)-5:]
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: %s\n", e.Action, e.Outcome)
	}
	b.WriteString("\nOptions:\n")
	for i, a := range menu {
		fmt.Fprintf(&b, "%d. %s (%s, needs %.0f energy)\n", i+1, a.Name, a.Category, max(a.Requirements.Energy, 0))
	}
	b.WriteString("\nAim to graduate with a good GPA and a job offer. Return ONLY the number of your choice.")
	return b.String()
}
