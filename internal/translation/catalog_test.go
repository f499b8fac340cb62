package translation

import "testing"

func TestCatalogBijection(t *testing.T) {
	langs := Supported()
	if len(langs) != 8 {
		t.Fatalf("expected 8 catalog entries, got %d", len(langs))
	}

	seenNames := make(map[string]bool)
	seenCodes := make(map[string]bool)
	for _, lang := range langs {
		if seenNames[lang.Name] {
			t.Fatalf("duplicate name %q", lang.Name)
		}
		if seenCodes[lang.Code] {
			t.Fatalf("duplicate code %q", lang.Code)
		}
		seenNames[lang.Name] = true
		seenCodes[lang.Code] = true

		byName, ok := ByName(lang.Name)
		if !ok || byName != lang {
			t.Fatalf("ByName(%q) = %v, %v", lang.Name, byName, ok)
		}
		byCode, ok := ByCode(lang.Code)
		if !ok || byCode != lang {
			t.Fatalf("ByCode(%q) = %v, %v", lang.Code, byCode, ok)
		}
	}
}

func TestCatalogUnknownLanguage(t *testing.T) {
	if _, ok := ByName("klingon"); ok {
		t.Fatal("expected klingon to be unsupported")
	}
	if _, ok := ByCode("xx"); ok {
		t.Fatal("expected code xx to be unsupported")
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	langs := Supported()
	langs[0] = Language{Name: "mutated", Code: "mu"}

	if _, ok := ByName("mutated"); ok {
		t.Fatal("mutating the Supported slice must not affect the catalog")
	}
	if english, ok := ByName("english"); !ok || english.Code != "en" {
		t.Fatalf("catalog corrupted: %v, %v", english, ok)
	}
}
