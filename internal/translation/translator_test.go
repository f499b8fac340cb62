package translation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lingualeads_backend/platform/logger"
)

func newTestTranslator(gen Generator) *Translator {
	return NewTranslator(gen, noWait(), logger.New("development"))
}

func TestToEnglishShortCircuitsEnglishSource(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"should not be used"}}
	tr := newTestTranslator(gen)

	for _, source := range []string{"english", "English", "ENGLISH", " english "} {
		result := tr.ToEnglish(context.Background(), "Hello there", source)
		if result.TranslatedText != "Hello there" {
			t.Fatalf("ToEnglish with source %q = %q, want input unchanged", source, result.TranslatedText)
		}
		if result.Language != "english" {
			t.Fatalf("expected language english, got %q", result.Language)
		}
	}

	if gen.calls != 0 {
		t.Fatalf("expected no model calls for English source, got %d", gen.calls)
	}
}

func TestToEnglishUnconfiguredReturnsInput(t *testing.T) {
	gen := &stubGenerator{configured: false}
	tr := newTestTranslator(gen)

	result := tr.ToEnglish(context.Background(), "¿Cuál es el precio?", "spanish")
	if result.TranslatedText != "¿Cuál es el precio?" {
		t.Fatalf("expected input unchanged, got %q", result.TranslatedText)
	}
	if result.Language != "spanish" {
		t.Fatalf("expected source recorded as given, got %q", result.Language)
	}

	result = tr.ToEnglish(context.Background(), "¿Cuál es el precio?", "")
	if result.Language != "unknown" {
		t.Fatalf("expected unknown source, got %q", result.Language)
	}
	if gen.calls != 0 {
		t.Fatalf("expected no model calls when unconfigured, got %d", gen.calls)
	}
}

func TestToEnglishTranslates(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"What is the price?"}}
	tr := newTestTranslator(gen)

	result := tr.ToEnglish(context.Background(), "¿Cuál es el precio?", "spanish")
	if result.TranslatedText != "What is the price?" {
		t.Fatalf("expected translation, got %q", result.TranslatedText)
	}
	if result.OriginalText != "¿Cuál es el precio?" {
		t.Fatalf("original text must be preserved, got %q", result.OriginalText)
	}
	if !strings.Contains(gen.prompts[0], " from spanish") {
		t.Fatalf("prompt missing source-language hint: %q", gen.prompts[0])
	}
}

func TestToEnglishStripsEnclosingQuotes(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"\"What is the price?\"\n"}}
	tr := newTestTranslator(gen)

	result := tr.ToEnglish(context.Background(), "¿Cuál es el precio?", "spanish")
	if result.TranslatedText != "What is the price?" {
		t.Fatalf("expected quotes stripped, got %q", result.TranslatedText)
	}
}

func TestToEnglishFailureReturnsOriginal(t *testing.T) {
	gen := &stubGenerator{configured: true, errs: []error{errors.New("boom")}}
	tr := newTestTranslator(gen)

	result := tr.ToEnglish(context.Background(), "नमस्ते", "hindi")
	if result.TranslatedText != "नमस्ते" {
		t.Fatalf("expected original text on failure, got %q", result.TranslatedText)
	}
}

func TestToEnglishRateLimitExhaustionReturnsOriginal(t *testing.T) {
	gen := &stubGenerator{configured: true, errs: []error{rateLimitErr(), rateLimitErr(), rateLimitErr()}}
	tr := newTestTranslator(gen)

	result := tr.ToEnglish(context.Background(), "Guten Tag", "german")
	if result.TranslatedText != "Guten Tag" {
		t.Fatalf("expected original text after exhausted retries, got %q", result.TranslatedText)
	}
	if gen.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", gen.calls)
	}
}

func TestFromEnglishShortCircuits(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"unused"}}
	tr := newTestTranslator(gen)

	for _, target := range []string{"", "english", "English"} {
		result := tr.FromEnglish(context.Background(), "Thanks for reaching out", target)
		if result.TranslatedText != "Thanks for reaching out" {
			t.Fatalf("FromEnglish target %q = %q, want input unchanged", target, result.TranslatedText)
		}
	}
	if gen.calls != 0 {
		t.Fatalf("expected no model calls, got %d", gen.calls)
	}
}

func TestFromEnglishTranslates(t *testing.T) {
	gen := &stubGenerator{configured: true, responses: []string{"Gracias por escribirnos"}}
	tr := newTestTranslator(gen)

	result := tr.FromEnglish(context.Background(), "Thanks for reaching out", "spanish")
	if result.TranslatedText != "Gracias por escribirnos" {
		t.Fatalf("expected translation, got %q", result.TranslatedText)
	}
	if result.Language != "spanish" {
		t.Fatalf("expected target language recorded, got %q", result.Language)
	}
	if !strings.Contains(gen.prompts[0], "from English to spanish") {
		t.Fatalf("prompt missing target language: %q", gen.prompts[0])
	}
}

func TestFromEnglishFailureReturnsOriginal(t *testing.T) {
	gen := &stubGenerator{configured: true, errs: []error{errors.New("boom")}}
	tr := newTestTranslator(gen)

	result := tr.FromEnglish(context.Background(), "We can help", "arabic")
	if result.TranslatedText != "We can help" {
		t.Fatalf("expected original text on failure, got %q", result.TranslatedText)
	}
}

func TestRoundTripIdentityWhenUnconfigured(t *testing.T) {
	gen := &stubGenerator{configured: false}
	tr := newTestTranslator(gen)

	original := "Bonjour, je voudrais une démo"
	toEn := tr.ToEnglish(context.Background(), original, "french")
	backOut := tr.FromEnglish(context.Background(), toEn.TranslatedText, "french")

	if toEn.TranslatedText != original || backOut.TranslatedText != original {
		t.Fatalf("round trip must be identity when unconfigured: %q -> %q -> %q",
			original, toEn.TranslatedText, backOut.TranslatedText)
	}
	if gen.calls != 0 {
		t.Fatalf("expected no model calls, got %d", gen.calls)
	}
}

func TestStripEnclosingQuotes(t *testing.T) {
	cases := []struct{ in, want string }{
		{`"hello"`, "hello"},
		{`hello`, "hello"},
		{`"hello`, `"hello`},
		{`""`, ""},
		{`"`, `"`},
		{`"say "hi" now"`, `say "hi" now`}, // only the outer pair
	}
	for _, tc := range cases {
		if got := stripEnclosingQuotes(tc.in); got != tc.want {
			t.Errorf("stripEnclosingQuotes(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
