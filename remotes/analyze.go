package remotes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/nets"
	"github.com/reusee/crepe/results"
	"github.com/reusee/crepe/stages"
)

// Analyze submits source to the backend endpoint of stage.
// Every failure comes back as a results.Failure value.
type Analyze func(ctx context.Context, stage stages.Stage, source string) results.Result

type analyzeRequest struct {
	Code string `json:"code"`
}

func (Module) Analyze(
	client nets.HTTPClient,
	baseURL BaseURL,
	headers Headers,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Analyze {
	return func(ctx context.Context, stage stages.Stage, source string) (ret results.Result) {
		fail := func(format string, args ...any) results.Result {
			return results.Failure{
				Stage:   stage,
				Message: fmt.Sprintf(format, args...),
			}
		}

		defer func() {
			if p := recover(); p != nil {
				logger.ErrorContext(ctx, "analyze panic", "stage", stage, "panic", p)
				ret = fail("%v", p)
			}
		}()

		if !stage.IsAnalysis() {
			return fail("stage %v is not served by the backend", stage)
		}

		ctx, _ = newSpan(ctx, "analyze "+stage.String(), "")
		begin := time.Now()
		logger.InfoContext(ctx, "analyze",
			"stage", stage,
			"bytes", len(source),
		)
		defer func() {
			args := []any{
				"stage", stage,
				"duration", time.Since(begin),
			}
			if failure, ok := ret.(results.Failure); ok {
				args = append(args, "failure", failure.Message)
			}
			logger.InfoContext(ctx, "analyzed", args...)
		}()

		body, err := json.Marshal(analyzeRequest{
			Code: source,
		})
		if err != nil {
			return fail("encode request: %v", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, string(baseURL)+stage.Endpoint(), bytes.NewReader(body))
		if err != nil {
			return fail("%v", err)
		}
		headers.apply(req)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return fail("%v", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fail("read response: %v", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fail("%s", statusMessage(resp, respBody))
		}

		return results.Decode(stage, respBody)
	}
}

// statusMessage prefers the error reported by the backend over the bare status
func statusMessage(resp *http.Response, body []byte) string {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err == nil {
		if raw, ok := members["error"]; ok {
			var msg string
			if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
				return msg
			}
			return string(raw)
		}
	}
	msg := "bad status: " + resp.Status
	if body = bytes.TrimSpace(body); len(body) > 0 {
		const max = 200
		if len(body) > max {
			body = append(body[:max:max], "..."...)
		}
		msg += ", body: " + string(body)
	}
	return msg
}
