package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/ece-life/internal/models"
	"github.com/tatianab/ece-life/internal/vars"
)

//go:embed prompts/narrate_turn.txt
var narrateTurnPrompt string

//go:embed prompts/semester_recap.txt
var semesterRecapPrompt string

var (
	narrateTurnTmpl   = template.Must(template.New("narrate_turn").Parse(narrateTurnPrompt))
	semesterRecapTmpl = template.Must(template.New("semester_recap").Parse(semesterRecapPrompt))
)

// Narrator turns plain turn logs into the text shown to the player.
type Narrator interface {
	Narrate(ctx context.Context, entry models.HistoryEntry, messages []string) (string, error)
	Recap(ctx context.Context, previous []string, entries []models.HistoryEntry, standing map[vars.Key]float64) (string, error)
}

// StaticNarrator joins the plain log lines. It never fails.
type StaticNarrator struct{}

func (StaticNarrator) Narrate(_ context.Context, _ models.HistoryEntry, messages []string) (string, error) {
	return strings.Join(messages, " "), nil
}

func (StaticNarrator) Recap(_ context.Context, _ []string, entries []models.HistoryEntry, standing map[vars.Key]float64) (string, error) {
	return fmt.Sprintf("Semester wrapped up after %d turns. %s", len(entries), strings.Join(standingLines(standing), ", ")), nil
}

func standingLines(standing map[vars.Key]float64) []string {
	var lines []string
	for _, k := range []vars.Key{vars.GPA, vars.Energy, vars.Stress, vars.Money, vars.Programming, vars.Hardware, vars.Research, vars.Internship, vars.Offers} {
		v, ok := standing[k]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", k.Label(), vars.Format(k, v)))
	}
	return lines
}

// generator is the slice of *genai.GenerativeModel the narrator uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiNarrator asks a Gemini model to narrate turns and recap semesters.
type GeminiNarrator struct {
	model generator
}

// NewGeminiNarrator wraps a generative model.
func NewGeminiNarrator(model generator) *GeminiNarrator {
	return &GeminiNarrator{model: model}
}

func (g *GeminiNarrator) Narrate(ctx context.Context, entry models.HistoryEntry, messages []string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Position string
		Action   string
		Events   []string
		Changes  map[vars.Key]float64
		Messages []string
	}{
		Position: entry.Position.String(),
		Action:   entry.Action,
		Events:   entry.Events,
		Changes:  entry.Changes,
		Messages: messages,
	}
	if err := narrateTurnTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return g.generate(ctx, buf.String())
}

func (g *GeminiNarrator) Recap(ctx context.Context, previous []string, entries []models.HistoryEntry, standing map[vars.Key]float64) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Previous []string
		Entries  []models.HistoryEntry
		Stats    []string
	}{
		Previous: previous,
		Entries:  entries,
		Stats:    standingLines(standing),
	}
	if err := semesterRecapTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return g.generate(ctx, buf.String())
}

func (g *GeminiNarrator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	out := strings.TrimSpace(string(text))
	if out == "" {
		return "", fmt.Errorf("empty narration from Gemini")
	}
	return out, nil
}
