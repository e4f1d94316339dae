package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/rootnav/internal/shell"
	"github.com/Cyclone1070/rootnav/internal/ui/models"
	"github.com/Cyclone1070/rootnav/internal/ui/views"
)

// Rows taken by the input bar (border + line) and the status bar.
const chromeHeight = 3

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	ctx         context.Context
	dispatcher  *shell.Dispatcher
	historySize int
}

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// DefaultSpinner is the spinner shown while a command runs.
func DefaultSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = views.StatusRunningStyle
	return sp
}

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(
	ctx context.Context,
	dispatcher *shell.Dispatcher,
	historySize int,
	spinnerFactory SpinnerFactory,
) BubbleTeaModel {
	session := dispatcher.Session()

	ti := textinput.New()
	ti.Placeholder = "Type 'help' for available commands"
	ti.Prompt = views.PromptStyle.Render(session.Prompt())
	ti.Focus()

	vp := viewport.New(80, 20)
	banner := session.Banner()
	vp.SetContent(views.FormatTranscript(banner, nil))

	return BubbleTeaModel{
		state: models.State{
			Input:     ti,
			Viewport:  vp,
			Spinner:   spinnerFactory(),
			Banner:    banner,
			RootLabel: session.Backend().RootLabel(),
			Prompt:    session.Prompt(),
			Entries:   []models.Entry{},
			History:   []string{},
		},
		ctx:         ctx,
		dispatcher:  dispatcher,
		historySize: historySize,
	}
}

// outcomeMsg is delivered when a command finishes. prompt is read after the
// command ran so that it reflects a directory change.
type outcomeMsg struct {
	outcome shell.Outcome
	prompt  string
}

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	return textinput.Blink
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Input.Width = max(msg.Width-len(m.state.Prompt)-1, 1)
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = max(msg.Height-chromeHeight, 1)
		m.updateViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Running {
			return m, nil
		}
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case outcomeMsg:
		return m.handleOutcome(msg)
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// One command at a time.
	if m.state.Running {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		return m.submit()
	case "up":
		m.historyBack()
		return m, nil
	case "down":
		m.historyForward()
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// submit starts the command typed in the input bar.
func (m BubbleTeaModel) submit() (tea.Model, tea.Cmd) {
	line := m.state.Input.Value()
	m.remember(line)

	m.state.Entries = append(m.state.Entries, models.Entry{Prompt: m.state.Prompt, Line: line})
	m.state.Input.SetValue("")
	m.state.Running = true
	m.updateViewport()

	return m, tea.Batch(m.state.Spinner.Tick, m.execute(line))
}

func (m BubbleTeaModel) execute(line string) tea.Cmd {
	ctx, dispatcher := m.ctx, m.dispatcher
	return func() tea.Msg {
		outcome := dispatcher.Execute(ctx, line)
		return outcomeMsg{outcome: outcome, prompt: dispatcher.Session().Prompt()}
	}
}

func (m BubbleTeaModel) handleOutcome(msg outcomeMsg) (tea.Model, tea.Cmd) {
	m.state.Running = false

	cont, ok := msg.outcome.(shell.Continue)
	if !ok {
		return m, tea.Quit
	}

	if n := len(m.state.Entries); n > 0 {
		result := cont.Result
		m.state.Entries[n-1].Result = &result
	}
	m.state.Prompt = msg.prompt
	m.state.Input.Prompt = views.PromptStyle.Render(msg.prompt)
	m.updateViewport()
	return m, nil
}

// remember appends line to the history, skipping blanks and repeats of the
// newest entry, and drops the oldest entries beyond historySize.
func (m *BubbleTeaModel) remember(line string) {
	h := m.state.History
	if line != "" && (len(h) == 0 || h[len(h)-1] != line) {
		h = append(h, line)
	}
	if m.historySize > 0 && len(h) > m.historySize {
		h = h[len(h)-m.historySize:]
	}
	m.state.History = h
	m.state.HistoryIndex = len(h)
	m.state.Draft = ""
}

func (m *BubbleTeaModel) historyBack() {
	if m.state.HistoryIndex == 0 {
		return
	}
	if m.state.HistoryIndex == len(m.state.History) {
		m.state.Draft = m.state.Input.Value()
	}
	m.state.HistoryIndex--
	m.setInput(m.state.History[m.state.HistoryIndex])
}

func (m *BubbleTeaModel) historyForward() {
	if m.state.HistoryIndex >= len(m.state.History) {
		return
	}
	m.state.HistoryIndex++
	if m.state.HistoryIndex == len(m.state.History) {
		m.setInput(m.state.Draft)
		return
	}
	m.setInput(m.state.History[m.state.HistoryIndex])
}

func (m *BubbleTeaModel) setInput(value string) {
	m.state.Input.SetValue(value)
	m.state.Input.CursorEnd()
}

// updateViewport updates the viewport content
func (m *BubbleTeaModel) updateViewport() {
	m.state.Viewport.SetContent(views.FormatTranscript(m.state.Banner, m.state.Entries))
	m.state.Viewport.GotoBottom()
}
