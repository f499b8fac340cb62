package translation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lingualeads_backend/platform/logger"
)

func newTestDetector(gen Generator) *Detector {
	return NewDetector(gen, noWait(), logger.New("development"))
}

func TestDetectEmptyTextShortCircuits(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"spanish"}}
	det := newTestDetector(gen)

	for _, text := range []string{"", "   ", "\n\t "} {
		result := det.Detect(context.Background(), text)
		if result.Language != English || result.Confidence != ConfidenceLow {
			t.Fatalf("Detect(%q) = %+v, want low-confidence english", text, result)
		}
	}

	if gen.calls != 0 {
		t.Fatalf("expected no model calls for blank input, got %d", gen.calls)
	}
}

func TestDetectUnconfiguredShortCircuits(t *testing.T) {
	gen := &stubGenerator{configured: false, responses: []string{"spanish"}}
	det := newTestDetector(gen)

	result := det.Detect(context.Background(), "¿Cuál es el precio?")
	if result.Language != English || result.Confidence != ConfidenceLow {
		t.Fatalf("Detect without credential = %+v, want low-confidence english", result)
	}
	if gen.calls != 0 {
		t.Fatalf("expected no model calls when unconfigured, got %d", gen.calls)
	}
}

func TestDetectNonEnglishIsHighConfidence(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"spanish"}}
	det := newTestDetector(gen)

	result := det.Detect(context.Background(), "¿Cuál es el precio?")
	if result.Language.Name != "spanish" || result.Language.Code != "es" {
		t.Fatalf("expected spanish/es, got %+v", result.Language)
	}
	if result.Confidence != ConfidenceHigh {
		t.Fatalf("expected high confidence, got %q", result.Confidence)
	}
}

func TestDetectNormalizesModelOutput(t *testing.T) {
	// Trailing period and mixed case come straight from real model output.
	gen := &stubGenerator{configured: true, responses: []string{" French.\n"}}
	det := newTestDetector(gen)

	result := det.Detect(context.Background(), "Bonjour, combien ça coûte ?")
	if result.Language.Name != "french" {
		t.Fatalf("expected french, got %+v", result.Language)
	}
}

func TestDetectOutOfCatalogFallsBackToEnglish(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"japanese"}}
	det := newTestDetector(gen)

	result := det.Detect(context.Background(), "こんにちは")
	if result.Language != English {
		t.Fatalf("expected english fallback, got %+v", result.Language)
	}
	// English answer for non-ASCII script: the model defaulted, not detected.
	if result.Confidence != ConfidenceMedium {
		t.Fatalf("expected medium confidence, got %q", result.Confidence)
	}
}

func TestDetectEnglishASCIIIsHighConfidence(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"english"}}
	det := newTestDetector(gen)

	result := det.Detect(context.Background(), "What does the enterprise plan cost?")
	if result.Language != English || result.Confidence != ConfidenceHigh {
		t.Fatalf("expected high-confidence english, got %+v", result)
	}
}

func TestDetectFailureDegradesToLowEnglish(t *testing.T) {
	gen := &stubGenerator{configured: true, errs: []error{errors.New("connection refused")}}
	det := newTestDetector(gen)

	result := det.Detect(context.Background(), "Hola")
	if result.Language != English || result.Confidence != ConfidenceLow {
		t.Fatalf("expected low-confidence english on failure, got %+v", result)
	}
}

func TestDetectPromptConstrainsToCatalog(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"hindi"}}
	det := newTestDetector(gen)

	det.Detect(context.Background(), "नमस्ते")

	if len(gen.prompts) != 1 {
		t.Fatalf("expected one prompt, got %d", len(gen.prompts))
	}
	for _, name := range names() {
		if !strings.Contains(gen.prompts[0], name) {
			t.Fatalf("prompt missing catalog language %q", name)
		}
	}
}

func TestLooksEnglish(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Hello there, how much does it cost?", true},
		{"¿Cuál es el precio?", false},
		{"नमस्ते, मुझे मदद चाहिए", false},
		{"12345 !!!", true}, // no alphabetic runes
		{"", true},
	}
	for _, tc := range cases {
		if got := looksEnglish(tc.text); got != tc.want {
			t.Errorf("looksEnglish(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestApplyHint(t *testing.T) {
	spanish, _ := ByName("spanish")
	french, _ := ByName("french")

	lowEnglish := Detection{Language: English, Confidence: ConfidenceLow}

	// Hint applies only to a low-confidence English detection.
	result := ApplyHint(lowEnglish, "spanish")
	if result.Language != spanish || result.Confidence != ConfidenceHint {
		t.Fatalf("expected spanish hint override, got %+v", result)
	}

	// Short codes work too.
	result = ApplyHint(lowEnglish, "fr")
	if result.Language != french || result.Confidence != ConfidenceHint {
		t.Fatalf("expected french hint override via code, got %+v", result)
	}

	// A confident non-English detection is never overridden.
	confident := Detection{Language: spanish, Confidence: ConfidenceHigh}
	if got := ApplyHint(confident, "french"); got != confident {
		t.Fatalf("hint must not override non-English detection, got %+v", got)
	}
	lowSpanish := Detection{Language: spanish, Confidence: ConfidenceLow}
	if got := ApplyHint(lowSpanish, "french"); got != lowSpanish {
		t.Fatalf("hint must not override non-English detection, got %+v", got)
	}

	// Medium-confidence English stays as detected.
	mediumEnglish := Detection{Language: English, Confidence: ConfidenceMedium}
	if got := ApplyHint(mediumEnglish, "spanish"); got != mediumEnglish {
		t.Fatalf("hint must only apply to low confidence, got %+v", got)
	}

	// An English or unsupported hint changes nothing.
	if got := ApplyHint(lowEnglish, "english"); got != lowEnglish {
		t.Fatalf("english hint must be ignored, got %+v", got)
	}
	if got := ApplyHint(lowEnglish, "klingon"); got != lowEnglish {
		t.Fatalf("unsupported hint must be ignored, got %+v", got)
	}
	if got := ApplyHint(lowEnglish, ""); got != lowEnglish {
		t.Fatalf("empty hint must be ignored, got %+v", got)
	}
}
