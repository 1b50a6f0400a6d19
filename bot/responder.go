package bot

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// ElaborationPrompt is returned when the bot asked a question and the user
// answered with a bare yes/no, to push the conversation forward.
const ElaborationPrompt = "Cuéntame un poco más, por favor. ¿Por qué piensas eso?"

// languageMisspellings are frequent misspellings of language names. Feedback
// is always given in Spanish, the platform's base language. Kept as an
// ordered list so a message with several typos always gets the same reply.
var languageMisspellings = []struct{ wrong, correction string }{
	{"ingles", "inglés"},
	{"fraces", "francés"},
	{"aléman", "alemán"},
	{"portugez", "portugués"},
}

// shortAnswer matches one-word affirmative/negative replies.
var shortAnswer = regexp.MustCompile(`^(?i:yes|no|sí|nope|ajá|ok)$`)

// Per-intent keyword sets checked as substrings of the lowered message.
var (
	greetingWords  = []string{"hola", "hello", "bonjour"}
	gratitudeWords = []string{"gracias", "thank", "merci"}
	farewellWords  = []string{"adiós", "bye", "au revoir"}
)

// Responder is the deterministic/randomized canned-response engine.
// The zero source makes selection time-seeded; tests pass their own.
type Responder struct {
	rng *rand.Rand
}

// NewResponder returns a Responder drawing from src, or a time-seeded
// source when src is nil.
func NewResponder(src rand.Source) *Responder {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Responder{rng: rand.New(src)}
}

func (r *Responder) pick(list []string) string {
	return list[r.rng.Intn(len(list))]
}

// RandomResponse returns a uniformly random canned reply for the language and
// level, scoped to topic when a topic table exists. Unknown combinations fall
// back to Spanish beginner: the engine never returns empty.
func (r *Responder) RandomResponse(language Language, level Level, topic string) string {
	if topic != "" {
		if byLang, ok := topicResponses[topic]; ok {
			if byLevel, ok := byLang[language]; ok {
				if list, ok := byLevel[level]; ok {
					return r.pick(list)
				}
			}
		}
	}

	if byLevel, ok := cannedResponses[language]; ok {
		if list, ok := byLevel[level]; ok {
			return r.pick(list)
		}
	}

	return r.pick(cannedResponses[Spanish][Beginner])
}

// ContextualResponse produces a reply for userMessage given the session
// language, level and recent history. Check order is load-bearing:
// filter → misspelling correction → continuity → intent keywords → default.
func (r *Responder) ContextualResponse(userMessage string, language Language, level Level, history []ConversationTurn) string {
	// Inappropriate content never reaches the heuristics; offer a
	// suggestion instead.
	if !IsAppropriate(userMessage) {
		return r.pick(AppropriateSuggestions(language, level))
	}
	filtered := FilterContent(userMessage)

	message := strings.ToLower(filtered)

	for _, m := range languageMisspellings {
		if strings.Contains(message, m.wrong) {
			return fmt.Sprintf("Creo que quisiste decir %q. ¡Sigamos practicando en %s!", m.correction, language)
		}
	}

	// If the bot's last turn was a question and the user answered in one
	// word, ask for elaboration instead of changing topic.
	if lastBot := lastBotTurn(history); lastBot != nil {
		if strings.ContainsAny(lastBot.Text, "?¿") && shortAnswer.MatchString(strings.TrimSpace(message)) {
			return ElaborationPrompt
		}
	}

	if containsAny(message, greetingWords) {
		return r.RandomResponse(language, level, "")
	}

	if containsAny(message, gratitudeWords) {
		if byLevel, ok := gratitudeResponses[language]; ok {
			if list, ok := byLevel[level]; ok {
				return r.pick(list)
			}
		}
	}

	if containsAny(message, farewellWords) {
		if byLevel, ok := farewellResponses[language]; ok {
			if list, ok := byLevel[level]; ok {
				return r.pick(list)
			}
		}
	}

	return r.RandomResponse(language, level, "")
}

func lastBotTurn(history []ConversationTurn) *ConversationTurn {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleBot {
			return &history[i]
		}
	}
	return nil
}

func containsAny(message string, words []string) bool {
	for _, w := range words {
		if strings.Contains(message, w) {
			return true
		}
	}
	return false
}

// AvailableLanguages lists the supported practice languages.
func AvailableLanguages() []Language {
	return []Language{Spanish, English, French, Portuguese, German, Italian}
}

// AvailableLevels lists the supported proficiency tiers.
func AvailableLevels() []Level {
	return []Level{Beginner, Intermediate, Advanced}
}

// AvailableTopics lists the topics with dedicated starter tables.
func AvailableTopics() []string {
	return []string{"viajes", "trabajo"}
}
