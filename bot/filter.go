package bot

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// RefusalMessage replaces any message that fails the appropriateness check.
const RefusalMessage = "Lo siento, no puedo procesar ese tipo de contenido. " +
	"Por favor, mantén la conversación educativa y respetuosa."

// inappropriateWords is the multilingual denylist. A single case-insensitive
// substring hit rejects the whole message, there is no partial redaction.
var inappropriateWords = []string{
	"odio", "violencia", "agresión", "discriminación",
	"hate", "violence", "discrimination", "racism",
	"haine", "racisme",
	"hass", "gewalt", "diskriminierung", "rassismus",
	"violenza", "discriminazione", "razzismo",
	"ódio", "violência", "discriminação", "racismo",
}

// Structural red flags: runs of special characters, long digit runs
// (possible phone numbers), URLs and @-mentions.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[!@#$%^&*()_+=\[\]{};':"\\|,.<>/?]{5,}`),
	regexp.MustCompile(`\b\d{10,}\b`),
	regexp.MustCompile(`https?://\S+`),
	regexp.MustCompile(`@\w+`),
}

// specialCharRuns matches shorter runs that FilterContent strips from
// otherwise acceptable text.
var specialCharRuns = regexp.MustCompile(`[!@#$%^&*()_+=\[\]{};':"\\|,.<>/?]{3,}`)

// IsAppropriate reports whether text may influence a bot reply.
func IsAppropriate(text string) bool {
	if text == "" {
		return false
	}

	lower := strings.ToLower(text)
	for _, word := range inappropriateWords {
		if strings.Contains(lower, word) {
			return false
		}
	}

	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(text) {
			return false
		}
	}

	// The limit counts characters, not bytes: accented text is longer in
	// bytes than in characters.
	return utf8.RuneCountInString(text) <= MaxMessageLength
}

// FilterContent returns the fixed refusal string for inappropriate input;
// otherwise the input trimmed, with special-character runs stripped and
// truncated to MaxMessageLength.
func FilterContent(text string) string {
	if !IsAppropriate(text) {
		return RefusalMessage
	}

	clean := strings.TrimSpace(text)
	clean = specialCharRuns.ReplaceAllString(clean, "")

	if runes := []rune(clean); len(runes) > MaxMessageLength {
		clean = string(runes[:MaxMessageLength]) + "..."
	}

	return clean
}

// appropriateSuggestions are offered instead of a reply when the user's
// message was filtered out.
var appropriateSuggestions = map[Language]map[Level][]string{
	Spanish: {
		Beginner: {
			"Hablemos sobre tu día",
			"¿Qué te gusta hacer en tu tiempo libre?",
			"Cuéntame sobre tu familia",
			"¿Cuál es tu comida favorita?",
			"¿Tienes alguna mascota?",
		},
		Intermediate: {
			"¿Qué opinas sobre la tecnología actual?",
			"Cuéntame sobre un viaje que hayas hecho",
			"¿Cuál es tu libro favorito?",
			"¿Qué haces para relajarte?",
			"¿Tienes algún hobby interesante?",
		},
		Advanced: {
			"¿Cuál es tu perspectiva sobre el cambio climático?",
			"Hablemos sobre la importancia de la educación",
			"¿Qué opinas sobre la globalización?",
			"Cuéntame sobre una experiencia que te haya marcado",
			"¿Cuál es tu filosofía de vida?",
		},
	},
	English: {
		Beginner: {
			"Tell me about your day",
			"What do you like to do in your free time?",
			"Tell me about your family",
			"What's your favorite food?",
			"Do you have any pets?",
		},
		Intermediate: {
			"What do you think about current technology?",
			"Tell me about a trip you've taken",
			"What's your favorite book?",
			"What do you do to relax?",
			"Do you have any interesting hobbies?",
		},
		Advanced: {
			"What's your perspective on climate change?",
			"Let's talk about the importance of education",
			"What do you think about globalization?",
			"Tell me about an experience that marked you",
			"What's your life philosophy?",
		},
	},
}

// AppropriateSuggestions returns the suggestion list for the given language
// and level, defaulting to Spanish beginner when no list exists.
func AppropriateSuggestions(language Language, level Level) []string {
	if byLevel, ok := appropriateSuggestions[language]; ok {
		if list, ok := byLevel[level]; ok {
			return list
		}
	}
	return appropriateSuggestions[Spanish][Beginner]
}
