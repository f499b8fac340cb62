// Package translation provides the language catalog, Gemini-backed language
// detection and bidirectional translation for the lead intake pipeline.
//
// Every external model failure in this package is absorbed into a defined
// fallback value: detection degrades to low-confidence English, translation
// degrades to the untranslated input. Callers never see an AI error.
package translation

// Language is one entry of the fixed language catalog.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// English is the catalog's fallback entry.
var English = Language{Name: "english", Code: "en"}

// catalog is the full supported set. It is a bijection between names and
// codes and is never mutated after initialization.
var catalog = []Language{
	English,
	{Name: "hindi", Code: "hi"},
	{Name: "spanish", Code: "es"},
	{Name: "french", Code: "fr"},
	{Name: "german", Code: "de"},
	{Name: "arabic", Code: "ar"},
	{Name: "portuguese", Code: "pt"},
	{Name: "chinese", Code: "zh"},
}

// Supported returns a copy of the catalog.
func Supported() []Language {
	out := make([]Language, len(catalog))
	copy(out, catalog)
	return out
}

// ByName looks up a catalog entry by its lowercase language name.
func ByName(name string) (Language, bool) {
	for _, lang := range catalog {
		if lang.Name == name {
			return lang, true
		}
	}
	return Language{}, false
}

// ByCode looks up a catalog entry by its short code.
func ByCode(code string) (Language, bool) {
	for _, lang := range catalog {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}

// names returns the catalog names joined for use in prompts.
func names() []string {
	out := make([]string, len(catalog))
	for i, lang := range catalog {
		out[i] = lang.Name
	}
	return out
}
