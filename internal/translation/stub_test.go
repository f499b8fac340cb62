package translation

import (
	"context"
	"net/http"

	"google.golang.org/genai"
)

// stubGenerator is a deterministic Generator for tests. Responses are
// consumed in order; once exhausted the last entry repeats.
type stubGenerator struct {
	configured bool
	responses  []string
	errs       []error
	calls      int
	prompts    []string
}

func (s *stubGenerator) Configured() bool { return s.configured }

func (s *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)

	idx := s.calls - 1
	if len(s.errs) > 0 {
		if idx >= len(s.errs) {
			idx = len(s.errs) - 1
		}
		if err := s.errs[idx]; err != nil {
			return "", err
		}
	}

	if len(s.responses) == 0 {
		return "", nil
	}
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

// rateLimitErr is the saturation signal the retry policy reacts to.
func rateLimitErr() error {
	return genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}
}

// noWait is a retry policy with three attempts and zero backoff.
func noWait() RetryPolicy {
	return NewRetryPolicy(0, 0)
}
