package remotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/nets"
	"github.com/reusee/crepe/results"
	"github.com/reusee/crepe/theories"
)

const TheoryEndpoint = "/api/language/theory"

func (Module) FetchTheory(
	client nets.HTTPClient,
	baseURL BaseURL,
	headers Headers,
	logger logs.Logger,
	newSpan logs.NewSpan,
) theories.Fetch {
	return func(ctx context.Context) (*theories.Document, error) {
		ctx, _ = newSpan(ctx, "theory", "")
		logger.InfoContext(ctx, "fetch theory")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, string(baseURL)+TheoryEndpoint, nil)
		if err != nil {
			return nil, err
		}
		headers.apply(req)
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch theory: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read theory: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, errors.New(statusMessage(resp, body))
		}

		var members map[string]json.RawMessage
		if err := json.Unmarshal(body, &members); err != nil {
			return nil, fmt.Errorf("decode theory: %w", err)
		}
		if msg, ok := results.ErrorMessage(members); ok {
			return nil, errors.New(msg)
		}

		document := new(theories.Document)
		if err := json.Unmarshal(body, document); err != nil {
			return nil, fmt.Errorf("decode theory: %w", err)
		}
		return document, nil
	}
}
