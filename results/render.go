package results

import (
	"bytes"
	"encoding/json"
	"strings"
)

const Placeholder = "analysis results will appear here..."

// Render formats a result for the result pane. It is total over every variant and nil.
func Render(result Result) string {
	switch r := result.(type) {

	case nil:
		return Placeholder

	case TokenReport:
		return indent(r.Payload)

	case ParseReport:
		return indent(r.Payload)

	case SemanticReport:
		var b strings.Builder
		b.WriteString("Intermediate code:\n")
		b.WriteString(indent(r.IntermediateCode))
		b.WriteString("\n\nGenerated code:\n")
		b.WriteString(r.TargetCode)
		return b.String()

	case ExecutionReport:
		if r.HasOutput {
			return r.Output
		}
		return indent(r.Payload)

	case Failure:
		return r.Error()

	}
	return Placeholder
}

// IsStructured reports whether Render produces a JSON dump
func IsStructured(result Result) bool {
	switch r := result.(type) {
	case TokenReport, ParseReport:
		return true
	case ExecutionReport:
		return !r.HasOutput
	}
	return false
}

func indent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	buf := new(bytes.Buffer)
	if err := json.Indent(buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
