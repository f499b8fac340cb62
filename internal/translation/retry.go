package translation

import (
	"context"
	"errors"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// RetryPolicy wraps a single model invocation with bounded backoff on
// rate-limit signals. Any other failure propagates immediately: a saturated
// model is worth waiting for, a rejected request is not.
type RetryPolicy struct {
	backoff []time.Duration
}

// DefaultRetryPolicy retries rate-limited calls up to three total attempts,
// waiting 2s then 4s between them (the 8s step only matters if the attempt
// budget is ever raised).
func DefaultRetryPolicy() RetryPolicy {
	return NewRetryPolicy(2*time.Second, 4*time.Second, 8*time.Second)
}

// NewRetryPolicy builds a policy whose attempt budget is len(backoff):
// one initial attempt plus one retry per backoff step, capped at three
// total attempts.
func NewRetryPolicy(backoff ...time.Duration) RetryPolicy {
	return RetryPolicy{backoff: backoff}
}

const maxAttempts = 3

// Generate runs one generation request under the policy.
func (p RetryPolicy) Generate(ctx context.Context, gen Generator, prompt string) (string, error) {
	attempts := maxAttempts
	if len(p.backoff)+1 < attempts {
		attempts = len(p.backoff) + 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		out, err := gen.GenerateText(ctx, prompt)
		if err == nil {
			return out, nil
		}
		if !isRateLimited(err) {
			return "", err
		}
		lastErr = err
		if attempt < attempts-1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(p.backoff[attempt]):
			}
		}
	}
	return "", lastErr
}

// isRateLimited recognizes the model's "temporarily saturated" signal.
func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests
	}
	return false
}
