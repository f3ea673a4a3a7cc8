// Package tui provides the interactive Bubble Tea quiz screen.
package tui

import (
	"fmt"
	"strings"
	"time"

	"moneyquest/internal/cli"
	"moneyquest/internal/model"
	"moneyquest/internal/quiz"
	"moneyquest/internal/tui/components"
	"moneyquest/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tickMsg drives the on-screen clock while a question is open.
type tickMsg time.Time

const (
	minTerminalWidth = 60
	maxContentWidth  = 100
)

// App is the root Bubble Tea model for one daily quiz run.
type App struct {
	session *quiz.Session
	profile *model.QuizSaveState

	input  textinput.Model
	choice int // cursor into Current().Choices for choice questions

	outcome  *quiz.Outcome
	hint     string
	inputErr string

	width   int
	height  int
	aborted bool
}

// NewApp builds the quiz screen for an in-flight session. The profile
// is read-only here; recording happens after the program exits.
func NewApp(session *quiz.Session, profile *model.QuizSaveState) App {
	ti := textinput.New()
	ti.Placeholder = "your answer"
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	return App{
		session: session,
		profile: profile,
		input:   ti,
		width:   80,
		height:  24,
	}
}

// Session exposes the underlying session to the caller after Run.
func (a App) Session() *quiz.Session { return a.session }

// Aborted reports whether the player quit before finishing the set.
func (a App) Aborted() bool { return a.aborted }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// choices returns the selectable options for the current question, or
// nil when the question takes typed input.
func (a App) choices() []string {
	q := a.session.Current()
	switch q.Type {
	case model.TypeMultipleChoice:
		return q.Choices
	case model.TypeTrueFalse:
		return []string{"True", "False"}
	default:
		return nil
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		if a.session.Completed() {
			return a, nil
		}
		return a, tick()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.session.State() == quiz.StateAwaitingAnswer && a.choices() == nil {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		if !a.session.Completed() {
			a.aborted = true
		}
		return a, tea.Quit
	}

	switch a.session.State() {
	case quiz.StateCompleted:
		switch msg.String() {
		case "enter", "q", "esc":
			return a, tea.Quit
		}
		return a, nil

	case quiz.StateAnswered:
		if msg.String() == "enter" {
			a.outcome = nil
			a.hint = ""
			a.inputErr = ""
			a.choice = 0
			a.input.Reset()
			_ = a.session.Next()
		}
		return a, nil
	}

	// Awaiting an answer.
	opts := a.choices()
	if opts != nil {
		switch msg.String() {
		case "up", "k":
			if a.choice > 0 {
				a.choice--
			}
		case "down", "j":
			if a.choice < len(opts)-1 {
				a.choice++
			}
		case "h":
			a.hint = a.session.RequestHint()
		case "enter":
			a.submit(opts[a.choice])
		}
		return a, nil
	}

	// Typed input questions route keys to the text field, except the
	// hint request which only fires on an empty field so typing an "h"
	// still works.
	switch msg.String() {
	case "enter":
		a.submit(a.input.Value())
		return a, nil
	case "h":
		if strings.TrimSpace(a.input.Value()) == "" {
			a.hint = a.session.RequestHint()
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) submit(answer string) {
	out, err := a.session.Submit(answer)
	switch err {
	case nil:
		a.outcome = &out
		a.inputErr = ""
	case quiz.ErrEmptyAnswer:
		a.inputErr = "Type an answer first."
	case quiz.ErrInvalidNumber:
		a.inputErr = "That is not a number. Try again."
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.width < minTerminalWidth {
		return "\n  Terminal too narrow. Please widen to at least 60 columns.\n"
	}

	width := a.width
	if width > maxContentWidth {
		width = maxContentWidth
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.renderMetrics(width))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(components.ProgressMeter(a.session.Progress, a.session.Combo, width-10))
	b.WriteString("\n\n")

	if a.session.Completed() {
		b.WriteString(a.renderSummary(width))
	} else {
		b.WriteString(a.renderQuestion(width))
	}

	return b.String()
}

func (a App) renderMetrics(width int) string {
	s := a.session
	cards := []struct{ Label, Value, Sub string }{
		{"Score", cli.FormatNumber(int64(s.Score)), ""},
		{"Question", fmt.Sprintf("%d of %d", s.Idx+1, len(s.Questions)), ""},
		{"Streak", fmt.Sprintf("%d days", a.profile.Streak), ""},
		{"Time", cli.FormatDuration(int64(s.ElapsedSecs())), ""},
	}
	if badge := components.ComboBadge(s.Combo); badge != "" {
		cards[0].Sub = badge
	}
	return components.MetricCardRow(cards, width)
}

func (a App) renderQuestion(width int) string {
	t := theme.Active
	s := a.session
	q := s.Current()

	promptStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var body strings.Builder
	body.WriteString(mutedStyle.Render(fmt.Sprintf("[%s]", q.Category)))
	body.WriteString("\n")
	body.WriteString(promptStyle.Render(q.Prompt))
	body.WriteString("\n\n")

	if opts := a.choices(); opts != nil {
		for i, opt := range opts {
			if i == a.choice {
				body.WriteString(accentStyle.Render(fmt.Sprintf("  (o) %s", opt)))
			} else {
				body.WriteString(mutedStyle.Render(fmt.Sprintf("  ( ) %s", opt)))
			}
			body.WriteString("\n")
		}
	} else {
		body.WriteString("  ")
		body.WriteString(a.input.View())
		body.WriteString("\n")
	}

	if a.inputErr != "" {
		body.WriteString("\n")
		body.WriteString(errStyle.Render("  " + a.inputErr))
		body.WriteString("\n")
	}
	if a.hint != "" {
		body.WriteString("\n")
		body.WriteString(mutedStyle.Render("  Hint: " + a.hint))
		body.WriteString("\n")
	}

	if a.outcome != nil {
		body.WriteString("\n")
		body.WriteString(a.renderOutcome())
	}

	card := components.ContentCard("", body.String(), width)

	help := "  j/k select, Enter answer, h hint, Ctrl+C quit"
	if a.session.State() == quiz.StateAnswered {
		help = "  Enter for the next question"
	}
	return card + "\n" + mutedStyle.Render(help) + "\n"
}

func (a App) renderOutcome() string {
	t := theme.Active
	out := a.outcome

	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	badStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	if out.Correct {
		b.WriteString(goodStyle.Render(fmt.Sprintf("  Correct! +%d points", out.Points)))
	} else {
		b.WriteString(badStyle.Render("  Not quite."))
	}
	b.WriteString("\n")
	if out.Explain != "" {
		b.WriteString(mutedStyle.Render("  " + out.Explain))
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderSummary(width int) string {
	t := theme.Active
	s := a.session

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	var body strings.Builder
	if s.FinishedByProgress {
		body.WriteString(titleStyle.Render("Progress bar filled! Day complete."))
	} else if s.CorrectCount() == len(s.Questions) {
		body.WriteString(greenStyle.Render("Perfect day!"))
	} else {
		body.WriteString(titleStyle.Render("Day complete."))
	}
	body.WriteString("\n\n")

	body.WriteString(valueStyle.Render(fmt.Sprintf("Score: %d", s.Score)))
	body.WriteString("\n")
	body.WriteString(valueStyle.Render(fmt.Sprintf("Correct: %d of %d", s.CorrectCount(), len(s.Questions))))
	body.WriteString("\n")
	body.WriteString(valueStyle.Render("Time: " + cli.FormatDuration(int64(s.ElapsedSecs()))))
	body.WriteString("\n\n")
	body.WriteString(mutedStyle.Render("Press Enter to record the day"))

	return components.ContentCard("Daily Quiz", body.String(), width) + "\n"
}
