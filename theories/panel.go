package theories

import (
	"context"
	"strings"

	"github.com/reusee/crepe/automata"
	"github.com/reusee/crepe/logs"
)

const LoadingPlaceholder = "loading language theory..."

// Panel shows the theory reference. It requests the Document at most once; a failed fetch
// leaves it on the loading placeholder.
// Panel is driven from a single event loop and is not safe for concurrent use.
type Panel struct {
	fetch     Fetch
	logger    logs.Logger
	requested bool
	document  *Document
}

func NewPanel(fetch Fetch, logger logs.Logger) *Panel {
	return &Panel{
		fetch:  fetch,
		logger: logger,
	}
}

// Load returns the fetch to run, or nil when the document was already requested
func (p *Panel) Load() func(ctx context.Context) (*Document, error) {
	if p.requested {
		return nil
	}
	p.requested = true
	return p.fetch
}

func (p *Panel) Apply(ctx context.Context, document *Document, err error) {
	if err != nil {
		p.logger.ErrorContext(ctx, "fetch language theory",
			"error", logs.WrapSpan(ctx, err),
		)
		return
	}
	if document == nil || p.document != nil {
		return
	}
	p.document = document
	p.logger.InfoContext(ctx, "language theory loaded",
		"categories", len(document.TokenTypes),
	)
}

func (p *Panel) Document() *Document {
	return p.document
}

func (p *Panel) Render(opts automata.Options) string {
	if p.document == nil {
		return LoadingPlaceholder
	}
	return RenderDocument(p.document, opts)
}

func RenderDocument(document *Document, opts automata.Options) string {
	var b strings.Builder

	section := func(title string) {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("== ")
		b.WriteString(title)
		b.WriteString(" ==\n")
	}

	section("Deterministic finite automaton")
	b.WriteString(automata.Render(document.Automaton, opts))

	section("Language grammar")
	b.WriteString(document.Grammar)

	section("Semantic translation")
	b.WriteString(SemanticActions)

	section("Token types")
	for i, category := range document.TokenTypes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(category.Name)
		b.WriteString(":\n")
		if category.IsList {
			for _, token := range category.Tokens {
				b.WriteString("  • ")
				b.WriteString(token)
				b.WriteString("\n")
			}
		} else {
			b.WriteString("  ")
			b.WriteString(category.Description)
			b.WriteString("\n")
		}
	}

	return b.String()
}
