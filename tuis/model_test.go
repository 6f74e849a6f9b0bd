package tuis

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reusee/crepe/buffers"
	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/consoles"
	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/modes"
	"github.com/reusee/crepe/remotes"
	"github.com/reusee/crepe/results"
	"github.com/reusee/crepe/stages"
	"github.com/reusee/crepe/theories"
	"github.com/reusee/dscope"
)

type counters struct {
	analyze atomic.Int64
	fetch   atomic.Int64
}

func testModel(t *testing.T, sourceFile string) (Model, *counters) {
	c := new(counters)

	analyze := remotes.Analyze(func(ctx context.Context, stage stages.Stage, source string) results.Result {
		c.analyze.Add(1)
		switch stage {
		case stages.Semantic:
			return results.Decode(stage, []byte(`{"intermediate_code":{"op":"PRINT"},"target_code":"LOAD x\nPRINT x"}`))
		case stages.Execute:
			return results.Decode(stage, []byte(`{"output":"10"}`))
		}
		return results.Decode(stage, []byte(`{"tokens":[{"type":"KEYWORD","value":"main"}]}`))
	})

	fetch := theories.Fetch(func(ctx context.Context) (*theories.Document, error) {
		c.fetch.Add(1)
		return &theories.Document{
			Automaton: "digraph { S -> A [label=\"letter\"]; }",
			Grammar:   "programme -> main { instructions }",
		}, nil
	})

	var model Model
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
		dscope.Provide(buffers.New(buffers.Sample)),
		dscope.Provide(analyze),
		dscope.Provide(fetch),
	).Call(func(
		session *consoles.Session,
		panel *theories.Panel,
		logger logs.Logger,
	) {
		model = NewModel(context.Background(), session, panel, logger, Config{
			SourceFile: sourceFile,
		})
	})

	model, _ = update(model, tea.WindowSizeMsg{Width: 120, Height: 40})
	return model, c
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// collect runs cmd and its batched commands, returning the messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var ret []tea.Msg
		for _, c := range batch {
			ret = append(ret, collect(c)...)
		}
		return ret
	}
	return []tea.Msg{msg}
}

// settle feeds the messages of interest produced by cmd back to the model
func settle(m Model, cmd tea.Cmd) Model {
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case resolvedMsg, theoryMsg, savedMsg:
			m, _ = update(m, msg)
		}
	}
	return m
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	return update(m, msg)
}

var (
	keyF1 = tea.KeyMsg{Type: tea.KeyF1}
	keyF3 = tea.KeyMsg{Type: tea.KeyF3}
	keyF4 = tea.KeyMsg{Type: tea.KeyF4}
	keyF5 = tea.KeyMsg{Type: tea.KeyF5}
)

func TestSelectStage(t *testing.T) {
	m, c := testModel(t, "")
	if m.resultContent() != results.Placeholder {
		t.Fatalf("got %q", m.resultContent())
	}

	m, cmd := press(m, keyF1)
	if cmd == nil {
		t.Fatal("expecting a call")
	}
	m = settle(m, cmd)
	if c.analyze.Load() != 1 {
		t.Fatalf("got %d", c.analyze.Load())
	}
	if !strings.Contains(m.resultContent(), "KEYWORD") {
		t.Fatalf("got %q", m.resultContent())
	}

	// already shown
	m, cmd = press(m, keyF1)
	if cmd != nil {
		t.Fatal("should not call again")
	}
	if c.analyze.Load() != 1 {
		t.Fatalf("got %d", c.analyze.Load())
	}
}

func TestExecuteKey(t *testing.T) {
	m, c := testModel(t, "")
	for i := range 2 {
		var cmd tea.Cmd
		m, cmd = press(m, keyF5)
		m = settle(m, cmd)
		if c.analyze.Load() != int64(i+1) {
			t.Fatalf("got %d", c.analyze.Load())
		}
		if m.resultContent() != "10" {
			t.Fatalf("got %q", m.resultContent())
		}
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	settle(m, cmd)
	if c.analyze.Load() != 3 {
		t.Fatalf("got %d", c.analyze.Load())
	}
}

func TestTheoryTab(t *testing.T) {
	m, c := testModel(t, "")
	m = settle(m, m.Init())
	if c.fetch.Load() != 1 {
		t.Fatalf("got %d", c.fetch.Load())
	}

	m, cmd := press(m, keyF3)
	m = settle(m, cmd)
	if !strings.HasPrefix(m.resultContent(), "Intermediate code:") {
		t.Fatalf("got %q", m.resultContent())
	}

	m, cmd = press(m, keyF4)
	if cmd != nil {
		t.Fatal("theory should not call the backend")
	}
	content := m.resultContent()
	if !strings.Contains(content, "== Language grammar ==") ||
		!strings.Contains(content, "programme -> main { instructions }") {
		t.Fatalf("got %q", content)
	}
	if m.session.Controller().Displayed() != nil {
		t.Fatal("theory should clear the result")
	}

	// switching around keeps the document and never fetches again
	m, cmd = press(m, keyF1)
	m = settle(m, cmd)
	m, _ = press(m, keyF4)
	if !strings.Contains(m.resultContent(), "== Language grammar ==") {
		t.Fatalf("got %q", m.resultContent())
	}
	m = settle(m, m.Init())
	if c.fetch.Load() != 1 {
		t.Fatalf("got %d", c.fetch.Load())
	}
}

func TestStaleResult(t *testing.T) {
	m, _ := testModel(t, "")
	m, lexical := press(m, keyF1)
	m, semantic := press(m, keyF3)

	m = settle(m, lexical)
	if strings.Contains(m.resultContent(), "KEYWORD") {
		t.Fatal("stale result shown")
	}
	m = settle(m, semantic)
	if !strings.Contains(m.resultContent(), "LOAD x\nPRINT x") {
		t.Fatalf("got %q", m.resultContent())
	}
}

func TestAutomatonZoom(t *testing.T) {
	m, _ := testModel(t, "")
	m = settle(m, m.Init())
	m, _ = press(m, keyF4)
	if !strings.Contains(m.resultContent(), "--[letter]--> A") {
		t.Fatalf("got %q", m.resultContent())
	}

	// zoom keys go to the editor while it has focus
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if m.zoom != 0 {
		t.Fatalf("got %d", m.zoom)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if strings.Contains(m.resultContent(), "--[letter]--> A") {
		t.Fatal("transitions should be folded")
	}
	if !strings.Contains(m.resultContent(), "Transitions: 1") {
		t.Fatalf("got %q", m.resultContent())
	}
}

func TestEditorUpdatesBuffer(t *testing.T) {
	m, c := testModel(t, "")
	m, cmd := press(m, keyF1)
	m = settle(m, cmd)

	buffer := m.session.Buffer()
	revision := buffer.Revision()
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if buffer.Revision() == revision {
		t.Fatal("buffer should follow the editor")
	}
	if buffer.Text() != m.editor.Value() {
		t.Fatal()
	}

	// edited source is analyzed again
	m, cmd = press(m, keyF1)
	settle(m, cmd)
	if c.analyze.Load() != 2 {
		t.Fatalf("got %d", c.analyze.Load())
	}
}

func TestResizeSplit(t *testing.T) {
	m, _ := testModel(t, "")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlRight})
	if m.split != 55 {
		t.Fatalf("got %d", m.split)
	}
	for range 20 {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
	}
	if m.split != 20 {
		t.Fatalf("got %d", m.split)
	}
	if m.View() == "" {
		t.Fatal()
	}
}

func TestSourceFileEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.txt")
	m, _ := testModel(t, path)

	m, _ = update(m, sourceChangedMsg{text: "main { }"})
	if m.editor.Value() != "main { }" {
		t.Fatalf("got %q", m.editor.Value())
	}
	if m.session.Buffer().Text() != "main { }" {
		t.Fatal()
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = settle(m, cmd)
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "main { }" {
		t.Fatalf("got %q", content)
	}
	if !strings.HasPrefix(m.status, "saved") {
		t.Fatalf("got %q", m.status)
	}
}
