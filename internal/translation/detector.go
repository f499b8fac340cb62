package translation

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"lingualeads_backend/platform/logger"
)

// Confidence is the qualitative trust tier attached to a detection result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	// ConfidenceHint marks a result taken from the caller's language hint
	// rather than the model.
	ConfidenceHint Confidence = "hint"
)

// Detection is the outcome of one language-detection request.
type Detection struct {
	Language   Language
	Confidence Confidence
}

const detectPrompt = "Detect the language of the following text. " +
	"Respond with ONLY the language name in lowercase. " +
	"Supported languages: %s. " +
	"If the language is not in the list, respond with 'english'.\n\n" +
	"Text: \"%s\""

// Detector wraps a single call to the model's text-classification capability
// and normalizes its output to a catalog entry plus confidence tier.
type Detector struct {
	gen   Generator
	retry RetryPolicy
	log   *logger.Logger
}

// NewDetector creates a detector over the given generator.
func NewDetector(gen Generator, retry RetryPolicy, log *logger.Logger) *Detector {
	return &Detector{gen: gen, retry: retry, log: log}
}

// Detect classifies the language of text. It never returns an error: empty
// input, a missing credential, or any model failure all degrade to
// low-confidence English so detection can never block lead creation.
func (d *Detector) Detect(ctx context.Context, text string) Detection {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !d.gen.Configured() {
		return fallbackDetection()
	}

	prompt := fmt.Sprintf(detectPrompt, strings.Join(names(), ", "), trimmed)

	raw, err := d.retry.Generate(ctx, d.gen, prompt)
	if err != nil {
		d.log.AIFallback("detect_language", err)
		return fallbackDetection()
	}

	// Models occasionally answer with a trailing period.
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), ".")

	lang, ok := ByName(name)
	if !ok {
		lang = English
	}

	confidence := ConfidenceMedium
	if lang != English || looksEnglish(text) {
		confidence = ConfidenceHigh
	}

	return Detection{Language: lang, Confidence: confidence}
}

// ApplyHint overrides a low-confidence English detection with the caller's
// language hint. This covers the common case where the model cannot identify
// a language and defaults to English; a confident non-English detection is
// never overridden. The hint may be a catalog name or code.
func ApplyHint(det Detection, hint string) Detection {
	trimmed := strings.ToLower(strings.TrimSpace(hint))
	if trimmed == "" || det.Confidence != ConfidenceLow || det.Language != English {
		return det
	}

	lang, ok := ByName(trimmed)
	if !ok {
		lang, ok = ByCode(trimmed)
	}
	if !ok || lang == English {
		return det
	}

	return Detection{Language: lang, Confidence: ConfidenceHint}
}

func fallbackDetection() Detection {
	return Detection{Language: English, Confidence: ConfidenceLow}
}

// looksEnglish reports whether more than 80% of the text's alphabetic runes
// are ASCII letters. It distinguishes "genuinely English" from "the model
// defaulted to English because it did not recognize the script". Text with
// no alphabetic runes counts as English.
func looksEnglish(text string) bool {
	var asciiLetters, letters int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if r < 128 {
			asciiLetters++
		}
	}
	if letters == 0 {
		return true
	}
	return float64(asciiLetters)/float64(letters) > 0.8
}
