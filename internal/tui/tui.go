package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/ece-life/internal/activity"
	"github.com/tatianab/ece-life/internal/engine"
	"github.com/tatianab/ece-life/internal/models"
	"github.com/tatianab/ece-life/internal/vars"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateLoading
	stateError
)

// changeSet collects the keys the store reported as changed since the last
// turn started, so the status panel can highlight them.
type changeSet struct {
	keys map[vars.Key]bool
}

func (c *changeSet) observe(ch vars.Change) {
	if ch.Clear {
		c.keys = map[vars.Key]bool{}
		return
	}
	c.keys[ch.Key] = true
}

type model struct {
	state       sessionState
	engine      *engine.Engine
	session     *engine.Session
	seed        uint64
	menu        []activity.Activity
	cursor      int
	viewport    viewport.Model
	bar         progress.Model
	help        help.Model
	keys        keyMap
	changes     *changeSet
	unsubscribe func()
	err         error
	message     string
	gameLog     string
	width       int
	height      int
}

var (
	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	recapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87AFD7")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	changedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C6C6C"))
)

// NewModel builds the UI around a fresh session.
func NewModel(eng *engine.Engine, session *engine.Session, seed uint64) model {
	m := model{
		state:   statePlaying,
		engine:  eng,
		seed:    seed,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(16), progress.WithoutPercentage()),
		help:    help.New(),
		keys:    defaultKeyMap(),
		changes: &changeSet{keys: map[vars.Key]bool{}},
	}
	m.attach(session)
	return m
}

func (m *model) attach(session *engine.Session) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.session = session
	m.unsubscribe = session.Store.Subscribe(m.changes.observe)
	m.changes.keys = map[vars.Key]bool{}
	m.menu = session.Menu()
	m.cursor = 0
	m.message = ""
	m.gameLog = gameStyle.Bold(true).Render("Welcome to ECE Life!") + "\n" +
		gameStyle.Render(fmt.Sprintf("Starting %s. Pick an activity to begin.", session.Position())) + "\n\n"
	m.viewport.SetContent(m.gameLog)
}

func (m model) Init() tea.Cmd {
	return nil
}

type turnProcessedMsg struct {
	activity string
	result   models.TurnResult
	err      error
}

type sessionStartedMsg struct {
	session *engine.Session
	err     error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case m.state != statePlaying:
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.menu)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Restart):
			m.state = stateLoading
			return m, m.newSession()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Play):
			if len(m.menu) == 0 {
				return m, nil
			}
			chosen := m.menu[m.cursor]
			m.changes.keys = map[vars.Key]bool{}
			m.message = ""
			m.state = stateLoading
			return m, m.processTurn(chosen)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth := int(float64(msg.Width) * 0.72)
		logHeight := max(msg.Height-len(m.menu)-10, 5)
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(logWidth, logHeight)
		} else {
			m.viewport.Width = logWidth
			m.viewport.Height = logHeight
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
		return m, nil

	case turnProcessedMsg:
		m.state = statePlaying
		if msg.err != nil {
			if errors.Is(msg.err, activity.ErrInsufficientEnergy) {
				m.message = msg.err.Error()
				return m, nil
			}
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.appendTurn(msg.activity, msg.result)
		m.menu = m.session.Menu()
		if m.cursor >= len(m.menu) {
			m.cursor = len(m.menu) - 1
		}
		return m, nil

	case sessionStartedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.session.Close()
		m.attach(msg.session)
		m.state = statePlaying
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) appendTurn(name string, res models.TurnResult) {
	logWidth := m.viewport.Width
	if logWidth == 0 {
		logWidth = 80
	}
	m.gameLog += actionStyle.Width(logWidth).Render("> "+name) + "\n"
	m.gameLog += gameStyle.Width(logWidth).Render(res.Entry.Outcome) + "\n"
	if res.Recap != "" {
		m.gameLog += recapStyle.Width(logWidth).Render(res.Recap) + "\n"
	}
	if res.Entry.Status == models.StatusGraduated {
		m.message = "You have graduated. The calendar no longer advances; press r for a new program."
	}
	m.gameLog += "\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateLoading:
		s = "\n  Working on it... please wait.\n"

	case statePlaying:
		left := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(strings.ToUpper(m.session.Position().String())),
			"",
			m.renderMenu(),
			m.renderMessage(),
			m.viewport.View(),
		)
		mainView := lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderState())
		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+helpStyle.Render(m.help.View(m.keys)),
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderMenu() string {
	var b strings.Builder
	for i, a := range m.menu {
		cursor := "  "
		name := a.Name
		if i == m.cursor {
			cursor = "> "
			name = selectedStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, name, categoryStyle.Render(requirementText(a)))
	}
	if m.cursor < len(m.menu) {
		b.WriteString(helpStyle.Render(m.menu[m.cursor].Description))
		b.WriteString("\n")
	}
	return b.String()
}

func requirementText(a activity.Activity) string {
	switch {
	case a.Kind == activity.Rest:
		return "(" + string(a.Category) + ", restores energy)"
	case a.Requirements.Energy > 0:
		return fmt.Sprintf("(%s, needs %.0f energy)", a.Category, a.Requirements.Energy)
	default:
		return "(" + string(a.Category) + ")"
	}
}

func (m model) renderMessage() string {
	if m.message == "" {
		return ""
	}
	return warnStyle.Render(m.message) + "\n"
}

func (m model) renderState() string {
	if m.session == nil {
		return ""
	}
	store := m.session.Store

	var b strings.Builder
	b.WriteString(titleStyle.Render("STATUS") + "\n")
	for _, k := range vars.Keys() {
		line := fmt.Sprintf("%-11s %s", k.Label(), vars.Format(k, store.Get(k)))
		if m.changes.keys[k] {
			line = changedStyle.Render(line)
		}
		b.WriteString(line + "\n")
		if lo, hi := store.Limits(k); k != vars.Month && k != vars.Semester && k != vars.Year && hi > lo && !math.IsInf(hi, 1) {
			b.WriteString(m.bar.ViewAs(vars.Progress(store, k)) + "\n")
		}
	}
	b.WriteString("\n" + titleStyle.Render("JOB SEARCH") + "\n")
	fmt.Fprintf(&b, "Problems   %d\nPrep       %d\nOdds       %.0f%%\n",
		m.session.Activities.ProblemsSolved(),
		m.session.Activities.PrepSessions(),
		m.session.Activities.SuccessRate()*100)

	stateWidth := int(float64(m.width) * 0.25)
	return stateStyle.Width(stateWidth).Render(b.String())
}

func (m model) processTurn(a activity.Activity) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		res, err := session.Play(context.Background(), a)
		return turnProcessedMsg{activity: a.Name, result: res, err: err}
	}
}

func (m model) newSession() tea.Cmd {
	return func() tea.Msg {
		session, err := m.engine.NewSession(m.seed)
		return sessionStartedMsg{session: session, err: err}
	}
}

// Run starts a session and blocks until the player quits.
func Run(eng *engine.Engine, seed uint64) error {
	session, err := eng.NewSession(seed)
	if err != nil {
		return err
	}
	m := NewModel(eng, session, seed)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(model); ok && fm.session != nil {
		fm.session.Close()
	} else {
		session.Close()
	}
	return err
}
