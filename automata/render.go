package automata

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const Placeholder = "no automaton data available"

const (
	ZoomOut = -1
	// ZoomDefault shows states and transitions
	ZoomDefault = 0
	ZoomIn      = 1
)

type Options struct {
	// Width of the container; lines are cut to fit. Zero means unbounded.
	Width int
	Zoom  int
}

// Render draws the diagram described by source as text. It has no side effects.
func Render(source string, opts Options) string {
	if strings.TrimSpace(source) == "" {
		return Placeholder
	}
	zoom := max(ZoomOut, min(ZoomIn, opts.Zoom))

	diagram, err := Parse(source)
	if err != nil {
		return fit("unable to parse automaton: "+err.Error()+"\n\n"+source, opts.Width)
	}

	var b strings.Builder

	if zoom >= ZoomIn {
		fmt.Fprintf(&b, "graph %q", diagram.Name)
		if diagram.Direction != "" {
			fmt.Fprintf(&b, " rankdir=%s", diagram.Direction)
		}
		b.WriteString("\n\n")
	}

	idWidth := 0
	for _, state := range diagram.States {
		idWidth = max(idWidth, runewidth.StringWidth(state.ID))
	}
	fmt.Fprintf(&b, "States (%d):\n", len(diagram.States))
	for _, state := range diagram.States {
		marker := "( )"
		if state.Accepting {
			marker = "(◎)"
		}
		fmt.Fprintf(&b, "  %s %s  %s", marker, runewidth.FillRight(state.ID, idWidth), state.Label)
		if zoom >= ZoomIn && len(state.Attrs) > 0 {
			var attrs []string
			for _, attr := range state.Attrs {
				attrs = append(attrs, attr.Key+"="+attr.Value)
			}
			b.WriteString("  [" + strings.Join(attrs, " ") + "]")
		}
		b.WriteString("\n")
	}

	if zoom <= ZoomOut {
		fmt.Fprintf(&b, "Transitions: %d\n", len(diagram.Transitions))
		return fit(b.String(), opts.Width)
	}

	fmt.Fprintf(&b, "\nTransitions (%d):\n", len(diagram.Transitions))
	for _, id := range sources(diagram) {
		fmt.Fprintf(&b, "  %s\n", id)
		for _, t := range diagram.Outgoing(id) {
			arrow := "------>"
			if t.Label != "" {
				arrow = "--[" + t.Label + "]-->"
			}
			line := "    " + arrow + " " + t.To
			if t.To == t.From {
				line += " (loop)"
			}
			b.WriteString(line + "\n")
		}
	}

	return fit(b.String(), opts.Width)
}

// sources lists states with outgoing transitions: declared states first, then undeclared ones
func sources(diagram *Diagram) []string {
	seen := make(map[string]bool)
	var ret []string
	add := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		if len(diagram.Outgoing(id)) > 0 {
			ret = append(ret, id)
		}
	}
	for _, state := range diagram.States {
		add(state.ID)
	}
	for _, t := range diagram.Transitions {
		add(t.From)
	}
	return ret
}

func fit(text string, width int) string {
	text = strings.TrimRight(text, "\n")
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if runewidth.StringWidth(line) > width {
			lines[i] = runewidth.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
