package tuis

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter colors JSON dumps for a 256-color terminal
type Highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

func NewHighlighter(style string) *Highlighter {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     styles.Get(style),
		formatter: formatters.Get("terminal256"),
	}
}

// Highlight returns text unchanged when it cannot be tokenised
func (h *Highlighter) Highlight(text string) string {
	iterator, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return text
	}
	return b.String()
}
