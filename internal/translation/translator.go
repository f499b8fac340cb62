package translation

import (
	"context"
	"fmt"
	"strings"

	"lingualeads_backend/platform/logger"
)

// Translation is the immutable outcome of one translation call. Language is
// the source language for ToEnglish (or "unknown" when the caller gave none)
// and the target language for FromEnglish.
type Translation struct {
	OriginalText   string
	TranslatedText string
	Language       string
}

const (
	toEnglishPrompt = "Translate the following text%s to English. " +
		"Respond with ONLY the translated text, nothing else.\n\n" +
		"Text: \"%s\""

	fromEnglishPrompt = "Translate the following text from English to %s. " +
		"Respond with ONLY the translated text, nothing else.\n\n" +
		"Text: \"%s\""
)

// Translator provides the two directional translation operations of the
// intake pipeline.
type Translator struct {
	gen   Generator
	retry RetryPolicy
	log   *logger.Logger
}

// NewTranslator creates a translator over the given generator.
func NewTranslator(gen Generator, retry RetryPolicy, log *logger.Logger) *Translator {
	return &Translator{gen: gen, retry: retry, log: log}
}

// ToEnglish translates text into English. sourceLanguage is an optional hint;
// when it already names English (case-insensitive) the text is returned
// unchanged without a model call. A missing credential, empty text, or any
// model failure returns the original text unchanged: translation is
// best-effort, lead capture is not.
func (t *Translator) ToEnglish(ctx context.Context, text, sourceLanguage string) Translation {
	source := strings.TrimSpace(sourceLanguage)
	if strings.EqualFold(source, English.Name) {
		return Translation{OriginalText: text, TranslatedText: text, Language: English.Name}
	}

	if !t.gen.Configured() || strings.TrimSpace(text) == "" {
		return fallbackTranslation(text, source)
	}

	var langHint string
	if source != "" {
		langHint = " from " + source
	}
	prompt := fmt.Sprintf(toEnglishPrompt, langHint, strings.TrimSpace(text))

	out, err := t.retry.Generate(ctx, t.gen, prompt)
	if err != nil {
		t.log.AIFallback("translate_to_english", err)
		return fallbackTranslation(text, source)
	}

	return Translation{
		OriginalText:   text,
		TranslatedText: stripEnclosingQuotes(strings.TrimSpace(out)),
		Language:       orUnknown(source),
	}
}

// FromEnglish translates an English text into targetLanguage. An absent or
// English target returns the text unchanged; failures degrade to the
// original text so an outbound reply is never dropped.
func (t *Translator) FromEnglish(ctx context.Context, text, targetLanguage string) Translation {
	target := strings.TrimSpace(targetLanguage)
	if target == "" || strings.EqualFold(target, English.Name) {
		return Translation{OriginalText: text, TranslatedText: text, Language: English.Name}
	}

	if !t.gen.Configured() || strings.TrimSpace(text) == "" {
		return Translation{OriginalText: text, TranslatedText: text, Language: target}
	}

	prompt := fmt.Sprintf(fromEnglishPrompt, target, strings.TrimSpace(text))

	out, err := t.retry.Generate(ctx, t.gen, prompt)
	if err != nil {
		t.log.AIFallback("translate_from_english", err)
		return Translation{OriginalText: text, TranslatedText: text, Language: target}
	}

	return Translation{
		OriginalText:   text,
		TranslatedText: stripEnclosingQuotes(strings.TrimSpace(out)),
		Language:       target,
	}
}

func fallbackTranslation(text, source string) Translation {
	return Translation{OriginalText: text, TranslatedText: text, Language: orUnknown(source)}
}

func orUnknown(source string) string {
	if source == "" {
		return "unknown"
	}
	return source
}

// stripEnclosingQuotes removes a single pair of wrapping double quotes.
// Models often echo the prompt's quoting around their output.
func stripEnclosingQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
