package automata

import (
	"slices"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
)

type Diagram struct {
	Name        string
	Direction   string
	States      []State
	Transitions []Transition
}

type State struct {
	ID        string
	Label     string
	Accepting bool
	Attrs     []Attr
}

type Attr struct {
	Key   string
	Value string
}

type Transition struct {
	From  string
	To    string
	Label string
}

// Parse reads graph-description (DOT) text
func Parse(source string) (*Diagram, error) {
	graph, err := gographviz.Read([]byte(stripComments(source)))
	if err != nil {
		return nil, err
	}

	diagram := &Diagram{
		Name:      unquote(graph.Name),
		Direction: unquote(graph.Attrs[gographviz.Attr("rankdir")]),
	}

	for _, node := range graph.Nodes.Nodes {
		state := State{
			ID:    unquote(node.Name),
			Label: unquote(node.Attrs[gographviz.Attr("label")]),
		}
		if state.Label == "" {
			state.Label = state.ID
		}
		for key, value := range node.Attrs {
			if key == "label" {
				continue
			}
			state.Attrs = append(state.Attrs, Attr{
				Key:   string(key),
				Value: unquote(value),
			})
		}
		slices.SortFunc(state.Attrs, func(a, b Attr) int {
			return strings.Compare(a.Key, b.Key)
		})
		state.Accepting = unquote(node.Attrs[gographviz.Attr("shape")]) == "doublecircle"
		diagram.States = append(diagram.States, state)
	}

	for _, edge := range graph.Edges.Edges {
		diagram.Transitions = append(diagram.Transitions, Transition{
			From:  unquote(edge.Src),
			To:    unquote(edge.Dst),
			Label: unquote(edge.Attrs[gographviz.Attr("label")]),
		})
	}

	return diagram, nil
}

// Outgoing returns the transitions leaving id, in declaration order
func (d *Diagram) Outgoing(id string) []Transition {
	var ret []Transition
	for _, t := range d.Transitions {
		if t.From == id {
			ret = append(ret, t)
		}
	}
	return ret
}

func stripComments(source string) string {
	lines := strings.Split(source, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if ret, err := strconv.Unquote(s); err == nil {
			return ret
		}
		return s[1 : len(s)-1]
	}
	return s
}
