package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/schemas"
)

// CallWithRetry runs one structured-output call with a single automatic
// retry. The first attempt uses initialBudget output tokens; when the
// response comes back truncated or fails validation, the call repeats once
// with retryBudget. JSON mode is always enabled. Outputs are validated
// against the embedded schema named by req.Schema, or for bare syntax when
// no schema is named.
//
// The returned bool reports whether the retry attempt was used. Provider and
// transport failures propagate immediately and are never retried here.
func CallWithRetry(ctx context.Context, client Client, req CompletionRequest, initialBudget, retryBudget int32, label string) (string, bool, error) {
	req.JSONMode = true

	var last *attemptResult
	for i, budget := range [2]int32{initialBudget, retryBudget} {
		req.MaxTokens = budget
		res, err := attempt(ctx, client, req)
		if err != nil {
			return "", i > 0, err
		}
		if !res.truncated && res.invalid == nil {
			return res.content, i > 0, nil
		}
		last = res
		if i == 0 {
			slog.WarnContext(ctx, "stage output unusable, retrying once",
				"stage", label,
				"reason", res.reason(),
				"retry_budget", retryBudget)
		}
	}

	if last.truncated {
		return "", true, &TruncatedOutputError{Label: label, MaxTokens: retryBudget}
	}
	return "", true, &MalformedOutputError{Label: label, Message: "output failed validation after retry", Cause: last.invalid}
}

type attemptResult struct {
	content   string
	truncated bool
	invalid   error
}

func (r *attemptResult) reason() string {
	if r.truncated {
		return "truncated output"
	}
	return "malformed output"
}

func attempt(ctx context.Context, client Client, req CompletionRequest) (*attemptResult, error) {
	resp, err := client.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	res := &attemptResult{content: resp.Content, truncated: resp.Truncated}
	if res.truncated {
		// Truncated output is incomplete by definition; skip validation.
		return res, nil
	}
	res.invalid = validateOutput(resp.Content, req.Schema)
	return res, nil
}

func validateOutput(content, schema string) error {
	if schema != "" {
		return schemas.Validate(schema, content)
	}
	if !json.Valid([]byte(content)) {
		return fmt.Errorf("response is not valid JSON")
	}
	return nil
}
