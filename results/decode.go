package results

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/reusee/crepe/stages"
)

// Decode turns a successful response body into the variant for stage.
// Malformed bodies and bodies reporting an analysis error become a Failure.
func Decode(stage stages.Stage, body []byte) (ret Result) {
	defer func() {
		if p := recover(); p != nil {
			ret = Failure{
				Stage:   stage,
				Message: fmt.Sprintf("decode response: %v", p),
			}
		}
	}()

	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return Failure{
			Stage:   stage,
			Message: "malformed response: " + abbreviate(body),
		}
	}
	payload := json.RawMessage(body)

	var members map[string]json.RawMessage
	isObject := json.Unmarshal(body, &members) == nil
	if isObject {
		if msg, ok := ErrorMessage(members); ok {
			return Failure{
				Stage:   stage,
				Message: msg,
			}
		}
	}

	switch stage {

	case stages.Lexical:
		return TokenReport{
			Payload: payload,
		}

	case stages.Syntactic:
		return ParseReport{
			Payload: payload,
		}

	case stages.Semantic:
		if !isObject {
			return Failure{
				Stage:   stage,
				Message: "malformed response: expecting an object",
			}
		}
		report := SemanticReport{
			IntermediateCode: members["intermediate_code"],
			Payload:          payload,
		}
		if raw, ok := members["target_code"]; ok {
			var target string
			if err := json.Unmarshal(raw, &target); err != nil {
				// keep non-string target code visible instead of dropping it
				target = string(raw)
			}
			report.TargetCode = target
		}
		return report

	case stages.Execute:
		report := ExecutionReport{
			Payload: payload,
		}
		if isObject {
			var output string
			if raw, ok := members["output"]; ok && json.Unmarshal(raw, &output) == nil && output != "" {
				report.Output = output
				report.HasOutput = true
			}
		}
		return report

	}

	return Failure{
		Stage:   stage,
		Message: fmt.Sprintf("stage %v has no analysis result", stage),
	}
}

// ErrorMessage extracts the message of a body that only reports an error
func ErrorMessage(members map[string]json.RawMessage) (string, bool) {
	raw, ok := members["error"]
	if !ok || len(members) != 1 {
		return "", false
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return string(raw), true
	}
	return msg, true
}

func abbreviate(body []byte) string {
	const max = 200
	if len(body) == 0 {
		return "empty body"
	}
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
