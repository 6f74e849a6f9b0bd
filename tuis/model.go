package tuis

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/crepe/automata"
	"github.com/reusee/crepe/consoles"
	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/results"
	"github.com/reusee/crepe/stages"
	"github.com/reusee/crepe/theories"
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusResult
)

const splitStep = 5

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("33"))
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("238"))
	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("33")).
			Bold(true)
	runStyle = tabStyle.
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("28"))
	statusStyle = lipgloss.NewStyle().
			Faint(true)
)

type Config struct {
	SourceFile   string
	SplitPercent int
	Highlighter  *Highlighter
	// Events delivers external edits of the source file, nil when not watching
	Events <-chan tea.Msg
}

// Model is the two-pane console: the source editor on the left, the stage tabs and the
// result on the right.
type Model struct {
	ctx         context.Context
	session     *consoles.Session
	panel       *theories.Panel
	logger      logs.Logger
	highlighter *Highlighter
	sourceFile  string
	events      <-chan tea.Msg

	keys    KeyMap
	help    help.Model
	editor  textarea.Model
	result  viewport.Model
	spinner spinner.Model

	focus  focusArea
	width  int
	height int
	split  int
	zoom   int
	status string
}

func NewModel(
	ctx context.Context,
	session *consoles.Session,
	panel *theories.Panel,
	logger logs.Logger,
	config Config,
) Model {
	editor := textarea.New()
	editor.ShowLineNumbers = true
	editor.Prompt = ""
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetValue(session.Buffer().Text())
	editor.Focus()

	highlighter := config.Highlighter
	if highlighter == nil {
		highlighter = NewHighlighter("")
	}

	split := config.SplitPercent
	if split == 0 {
		split = 50
	}

	m := Model{
		ctx:         ctx,
		session:     session,
		panel:       panel,
		logger:      logger,
		highlighter: highlighter,
		sourceFile:  config.SourceFile,
		events:      config.Events,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		editor:      editor,
		result:      viewport.New(40, 10),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		focus:       focusEditor,
		split:       split,
		zoom:        automata.ZoomDefault,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		m.loadTheory(),
		m.waitForEvent(),
	}
	return tea.Batch(cmds...)
}

func (m Model) loadTheory() tea.Cmd {
	load := m.panel.Load()
	if load == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		document, err := load(ctx)
		return theoryMsg{
			document: document,
			err:      err,
		}
	}
}

func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// run turns a session job into a command whose message re-enters Update
func (m Model) run(job consoles.Job) tea.Cmd {
	if job == nil {
		return nil
	}
	ctx := m.ctx
	return tea.Batch(
		func() tea.Msg {
			return resolvedMsg{
				resolution: job(ctx),
			}
		},
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case resolvedMsg:
		if m.session.Apply(msg.resolution) {
			m.result.GotoTop()
		}
		m.refresh()
		return m, nil

	case theoryMsg:
		m.panel.Apply(m.ctx, msg.document, msg.err)
		m.refresh()
		return m, nil

	case sourceChangedMsg:
		if msg.text != m.editor.Value() {
			m.editor.SetValue(msg.text)
			m.session.Buffer().SetText(msg.text)
			m.status = "reloaded " + m.sourceFile
		}
		return m, m.waitForEvent()

	case watchErrMsg:
		m.logger.Warn("watch source file", "error", msg.err)
		m.status = "watch: " + msg.err.Error()
		return m, m.waitForEvent()

	case savedMsg:
		if msg.err != nil {
			m.logger.Error("save source file", "path", msg.path, "error", msg.err)
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.status = "saved " + msg.path
		}
		return m, nil

	case spinner.TickMsg:
		if !m.session.Controller().Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	}

	return m.delegate(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Execute):
		m.status = ""
		cmd := m.run(m.session.Execute())
		m.refresh()
		return m, cmd

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusEditor {
			m.focus = focusResult
			m.editor.Blur()
			return m, nil
		}
		m.focus = focusEditor
		return m, m.editor.Focus()

	case key.Matches(msg, m.keys.Shrink):
		m.split = max(20, m.split-splitStep)
		m.layout()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Grow):
		m.split = min(80, m.split+splitStep)
		m.layout()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m, m.save()

	case m.focus == focusResult && key.Matches(msg, m.keys.ZoomIn):
		m.zoom = min(automata.ZoomIn, m.zoom+1)
		m.refresh()
		return m, nil

	case m.focus == focusResult && key.Matches(msg, m.keys.ZoomOut):
		m.zoom = max(automata.ZoomOut, m.zoom-1)
		m.refresh()
		return m, nil

	}

	for stage, binding := range m.keys.stageKeys() {
		if key.Matches(msg, binding) {
			m.status = ""
			cmd := m.run(m.session.Select(stage))
			m.result.GotoTop()
			m.refresh()
			return m, cmd
		}
	}

	return m.delegate(msg)
}

// delegate passes msg to the focused pane
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
		m.session.Buffer().SetText(m.editor.Value())
	case focusResult:
		m.result, cmd = m.result.Update(msg)
	}
	return m, cmd
}

func (m Model) save() tea.Cmd {
	path := m.sourceFile
	if path == "" {
		return func() tea.Msg {
			return savedMsg{
				err: fmt.Errorf("no source file"),
			}
		}
	}
	buffer := m.session.Buffer()
	return func() tea.Msg {
		return savedMsg{
			path: path,
			err:  buffer.Save(path),
		}
	}
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	// borders take two cells in each direction
	leftWidth := m.width * m.split / 100
	rightWidth := m.width - leftWidth
	bodyHeight := max(1, m.height-1-2)

	m.editor.SetWidth(max(1, leftWidth-2))
	m.editor.SetHeight(bodyHeight)

	m.result.Width = max(1, rightWidth-2)
	m.result.Height = max(1, bodyHeight-1)

	m.help.Width = m.width
}

// refresh recomputes the result pane content
func (m *Model) refresh() {
	m.result.SetContent(m.resultContent())
}

func (m Model) resultContent() string {
	controller := m.session.Controller()
	selected := controller.Selected()

	if selected == stages.Theory {
		return m.panel.Render(automata.Options{
			Width: m.result.Width,
			Zoom:  m.zoom,
		})
	}

	displayed := controller.Displayed()
	if displayed == nil && controller.Pending() {
		return m.spinner.View() + " " + selected.Title() + "..."
	}
	text := results.Render(displayed)
	if results.IsStructured(displayed) {
		text = m.highlighter.Highlight(text)
	}
	return text
}

func (m Model) tabBar() string {
	selected := m.session.Controller().Selected()
	var tabs []string
	for _, stage := range stages.Tabs {
		style := tabStyle
		switch {
		case stage == selected:
			style = activeTabStyle
		case stage == stages.Execute:
			style = runStyle
		}
		title := stage.Title()
		if stage == stages.Execute {
			title = "▶ " + title
		}
		tabs = append(tabs, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) View() string {
	leftStyle, rightStyle := paneStyle, paneStyle
	if m.focus == focusEditor {
		leftStyle = focusedPaneStyle
	} else {
		rightStyle = focusedPaneStyle
	}

	left := leftStyle.Render(m.editor.View())
	right := rightStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.tabBar(),
		m.result.View(),
	))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}

	return strings.Join([]string{body, footer}, "\n")
}
