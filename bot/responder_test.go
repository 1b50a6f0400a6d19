package bot

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newTestResponder() *Responder {
	return NewResponder(rand.NewSource(1))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestContextualResponseAlwaysValid(t *testing.T) {
	r := newTestResponder()
	for _, language := range AvailableLanguages() {
		for _, level := range AvailableLevels() {
			got := r.ContextualResponse("me gusta practicar", language, level, nil)
			if got == "" {
				t.Errorf("empty response for %s/%s", language, level)
			}
			if len(got) > MaxMessageLength {
				t.Errorf("response for %s/%s exceeds %d chars", language, level, MaxMessageLength)
			}
		}
	}
}

func TestContextualResponseMisspellingCorrection(t *testing.T) {
	r := newTestResponder()
	got := r.ContextualResponse("Quiero aprender fraces", English, Beginner, nil)
	if !strings.Contains(got, `"francés"`) {
		t.Errorf("response %q does not reference the corrected term", got)
	}
	if !strings.Contains(got, string(English)) {
		t.Errorf("response %q does not name the session language", got)
	}
}

func TestContextualResponseElaborationPrompt(t *testing.T) {
	history := []ConversationTurn{
		{Role: RoleUser, Text: "hablemos de viajes", Timestamp: time.Now().Add(-2 * time.Minute)},
		{Role: RoleBot, Text: "¿Te gusta viajar?", Timestamp: time.Now().Add(-time.Minute)},
	}

	r := newTestResponder()
	for _, answer := range []string{"sí", "no", "YES", " ok "} {
		if got := r.ContextualResponse(answer, Spanish, Beginner, history); got != ElaborationPrompt {
			t.Errorf("ContextualResponse(%q) = %q, want elaboration prompt", answer, got)
		}
	}

	// A full sentence after a question goes through the normal flow.
	if got := r.ContextualResponse("me encanta conocer lugares nuevos", Spanish, Beginner, history); got == ElaborationPrompt {
		t.Error("long answer should not trigger the elaboration prompt")
	}

	// No bot question, no prompt.
	statement := []ConversationTurn{{Role: RoleBot, Text: "Me gusta mucho practicar contigo."}}
	if got := r.ContextualResponse("sí", Spanish, Beginner, statement); got == ElaborationPrompt {
		t.Error("short answer without a preceding question should not trigger the prompt")
	}
}

func TestContextualResponseGratitude(t *testing.T) {
	r := newTestResponder()
	got := r.ContextualResponse("gracias", Spanish, Intermediate, nil)
	if !contains(gratitudeResponses[Spanish][Intermediate], got) {
		t.Errorf("response %q not in the Spanish intermediate gratitude set", got)
	}

	// Languages without a gratitude table fall through to the canned set.
	got = r.ContextualResponse("merci", French, Beginner, nil)
	if !contains(cannedResponses[French][Beginner], got) {
		t.Errorf("response %q not in the French beginner canned set", got)
	}
}

func TestContextualResponseFarewell(t *testing.T) {
	r := newTestResponder()
	got := r.ContextualResponse("adiós", Spanish, Beginner, nil)
	if !contains(farewellResponses[Spanish][Beginner], got) {
		t.Errorf("response %q not in the Spanish beginner farewell set", got)
	}
}

func TestContextualResponseGreeting(t *testing.T) {
	r := newTestResponder()
	got := r.ContextualResponse("hola", Spanish, Beginner, nil)
	if !contains(cannedResponses[Spanish][Beginner], got) {
		t.Errorf("response %q not in the Spanish beginner canned set", got)
	}
}

func TestContextualResponseFilteredInput(t *testing.T) {
	r := newTestResponder()
	got := r.ContextualResponse("te odio", Spanish, Beginner, nil)
	if !contains(appropriateSuggestions[Spanish][Beginner], got) {
		t.Errorf("filtered input should yield a suggestion, got %q", got)
	}
}

func TestRandomResponse(t *testing.T) {
	r := newTestResponder()

	if got := r.RandomResponse(Spanish, Beginner, "viajes"); !contains(topicResponses["viajes"][Spanish][Beginner], got) {
		t.Errorf("topic response %q not in viajes table", got)
	}

	// Topic exists but has no table for the language: plain canned reply.
	if got := r.RandomResponse(German, Beginner, "viajes"); !contains(cannedResponses[German][Beginner], got) {
		t.Errorf("response %q not in the German beginner canned set", got)
	}

	// Unknown combination falls back to Spanish beginner.
	if got := r.RandomResponse(Language("klingon"), Beginner, ""); !contains(cannedResponses[Spanish][Beginner], got) {
		t.Errorf("fallback response %q not in the Spanish beginner set", got)
	}
}

func TestAvailableSets(t *testing.T) {
	if got := len(AvailableLanguages()); got != 6 {
		t.Errorf("AvailableLanguages() returned %d languages, want 6", got)
	}
	if got := len(AvailableLevels()); got != 3 {
		t.Errorf("AvailableLevels() returned %d levels, want 3", got)
	}
	for _, topic := range AvailableTopics() {
		if _, ok := topicResponses[topic]; !ok {
			t.Errorf("topic %q has no response table", topic)
		}
	}
}
