package stages

import (
	"fmt"
	"strings"
)

// Stage is one phase of the remote pipeline, or the static theory reference.
// The zero value None only appears as "nothing executed yet".
type Stage uint8

const (
	None Stage = iota
	Lexical
	Syntactic
	Semantic
	Theory
	Execute
)

// Tabs lists the stages in tab bar order
var Tabs = []Stage{Lexical, Syntactic, Semantic, Theory, Execute}

var names = map[Stage]string{
	None:      "none",
	Lexical:   "lexical",
	Syntactic: "syntactic",
	Semantic:  "semantic",
	Theory:    "theory",
	Execute:   "execute",
}

func (s Stage) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// Title is the label shown on the tab
func (s Stage) Title() string {
	switch s {
	case Lexical:
		return "Lexical analysis"
	case Syntactic:
		return "Syntax analysis"
	case Semantic:
		return "Semantic analysis"
	case Theory:
		return "Theory"
	case Execute:
		return "Run"
	}
	return s.String()
}

// Endpoint is the backend path serving the stage, empty for stages without a remote call
func (s Stage) Endpoint() string {
	switch s {
	case Lexical:
		return "/api/analyze/lexer"
	case Syntactic:
		return "/api/analyze/parser"
	case Semantic:
		return "/api/analyze/semantic"
	case Execute:
		return "/api/run"
	}
	return ""
}

// IsAnalysis reports whether selecting the stage may issue a remote call
func (s Stage) IsAnalysis() bool {
	return s.Endpoint() != ""
}

func (s Stage) FailurePrefix() string {
	switch s {
	case Lexical:
		return "lexical analysis error"
	case Syntactic:
		return "syntax analysis error"
	case Semantic:
		return "semantic analysis error"
	case Execute:
		return "execution error"
	case Theory:
		return "theory error"
	}
	return "error"
}

var aliases = map[string]Stage{
	"lexical":   Lexical,
	"lexer":     Lexical,
	"syntactic": Syntactic,
	"syntax":    Syntactic,
	"parser":    Syntactic,
	"semantic":  Semantic,
	"theory":    Theory,
	"execute":   Execute,
	"run":       Execute,
}

func Parse(name string) (Stage, error) {
	if s, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return None, fmt.Errorf("unknown stage: %q", name)
}
