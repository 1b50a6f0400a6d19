package bot

import (
	"strings"
	"testing"
)

func TestIsAppropriateDenylist(t *testing.T) {
	cases := []string{
		"siento mucho odio hoy",
		"I HATE mondays",
		"la VIOLENCIA no es la respuesta",
		"das ist Gewalt",
		"não quero violência",
	}
	for _, text := range cases {
		if IsAppropriate(text) {
			t.Errorf("IsAppropriate(%q) = true, want false", text)
		}
		if got := FilterContent(text); got != RefusalMessage {
			t.Errorf("FilterContent(%q) = %q, want refusal message", text, got)
		}
	}
}

func TestIsAppropriateStructuralPatterns(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"special char run", "mira esto !!!!!?"},
		{"long digit run", "llámame al 5512345678 ya"},
		{"url", "entra a https://example.com ahora"},
		{"mention", "hola @pedro cómo estás"},
		{"too long", strings.Repeat("a", MaxMessageLength+1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if IsAppropriate(tc.text) {
				t.Errorf("IsAppropriate(%q) = true, want false", tc.text)
			}
		})
	}
}

func TestLengthLimitCountsCharacters(t *testing.T) {
	// 600 characters but 1200 bytes; must pass untouched.
	accented := strings.Repeat("á", 600)
	if !IsAppropriate(accented) {
		t.Errorf("IsAppropriate rejected a %d-character message (%d bytes)",
			len([]rune(accented)), len(accented))
	}
	if got := FilterContent(accented); got != accented {
		t.Errorf("FilterContent altered a valid accented message: %q", got[:20])
	}

	if !IsAppropriate(strings.Repeat("ñ", MaxMessageLength)) {
		t.Error("IsAppropriate rejected a message exactly at the character limit")
	}
	if IsAppropriate(strings.Repeat("ñ", MaxMessageLength+1)) {
		t.Error("IsAppropriate accepted a message over the character limit")
	}
}

func TestFilterContentCleanInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hola, ¿cómo estás?", "Hola, ¿cómo estás?"},
		{"  me gusta viajar  ", "me gusta viajar"},
		{"qué bien!!! me alegro", "qué bien me alegro"},
	}
	for _, tc := range cases {
		got := FilterContent(tc.in)
		if got != tc.want {
			t.Errorf("FilterContent(%q) = %q, want %q", tc.in, got, tc.want)
		}
		// Filtering must be idempotent on accepted input.
		if again := FilterContent(got); again != got {
			t.Errorf("FilterContent not idempotent: %q -> %q", got, again)
		}
	}
}

func TestAppropriateSuggestionsFallback(t *testing.T) {
	for _, language := range AvailableLanguages() {
		for _, level := range AvailableLevels() {
			if len(AppropriateSuggestions(language, level)) == 0 {
				t.Errorf("no suggestions for %s/%s", language, level)
			}
		}
	}

	got := AppropriateSuggestions(French, Beginner)
	want := appropriateSuggestions[Spanish][Beginner]
	if &got[0] != &want[0] {
		t.Errorf("AppropriateSuggestions(francés) should fall back to Spanish beginner")
	}
}
