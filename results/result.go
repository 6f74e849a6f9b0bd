package results

import (
	"encoding/json"

	"github.com/reusee/crepe/stages"
)

// Result is the outcome of one stage call. The variant set is closed.
type Result interface {
	ForStage() stages.Stage
	isResult()
}

type TokenReport struct {
	Payload json.RawMessage
}

type ParseReport struct {
	Payload json.RawMessage
}

type SemanticReport struct {
	IntermediateCode json.RawMessage
	TargetCode       string
	Payload          json.RawMessage
}

type ExecutionReport struct {
	// Output is set only when the response carried a non-empty output string
	Output    string
	HasOutput bool
	Payload   json.RawMessage
}

type Failure struct {
	Stage   stages.Stage
	Message string
}

var (
	_ Result = TokenReport{}
	_ Result = ParseReport{}
	_ Result = SemanticReport{}
	_ Result = ExecutionReport{}
	_ Result = Failure{}
)

func (TokenReport) ForStage() stages.Stage     { return stages.Lexical }
func (ParseReport) ForStage() stages.Stage     { return stages.Syntactic }
func (SemanticReport) ForStage() stages.Stage  { return stages.Semantic }
func (ExecutionReport) ForStage() stages.Stage { return stages.Execute }
func (f Failure) ForStage() stages.Stage       { return f.Stage }

func (TokenReport) isResult()     {}
func (ParseReport) isResult()     {}
func (SemanticReport) isResult()  {}
func (ExecutionReport) isResult() {}
func (Failure) isResult()         {}

func (f Failure) Error() string {
	return f.Stage.FailurePrefix() + ": " + f.Message
}

// Payload returns the raw response body behind result, nil for failures
func Payload(result Result) json.RawMessage {
	switch r := result.(type) {
	case TokenReport:
		return r.Payload
	case ParseReport:
		return r.Payload
	case SemanticReport:
		return r.Payload
	case ExecutionReport:
		return r.Payload
	}
	return nil
}
