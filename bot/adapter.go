package bot

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"
)

const (
	// Bounded output: enough room for a bilingual correction-first reply.
	adapterMaxTokens   = 200
	adapterTemperature = 0.7
	adapterPenalty     = 0.1
)

// spanishWords are common Spanish function words and pronouns used by the
// base-language detection heuristic. Single words match whole tokens only;
// entries with spaces match as substrings.
var spanishWords = []string{
	"hola", "gracias", "por favor", "sí", "no", "buenos", "días", "tarde", "noche",
	"cómo", "estás", "qué", "cuándo", "dónde", "por qué", "quién", "cuál",
	"me", "te", "le", "nos", "os", "les", "mi", "tu", "su", "nuestro", "vuestro",
	"soy", "eres", "es", "somos", "sois", "son", "tengo", "tienes", "tiene",
	"quiero", "quieres", "quiere", "puedo", "puedes", "puede", "voy", "vas", "va",
	"estoy", "está", "estamos", "estáis", "están", "hago", "haces", "hace",
	"gusta", "gustan", "mejor", "peor", "bueno", "malo", "grande", "pequeño",
	"mucho", "poco", "más", "menos", "muy", "bastante", "demasiado",
}

// isSpanishMessage classifies free text as Spanish when matched function
// words make up more than 30% of its tokens (and at least one matched).
func isSpanishMessage(message string) bool {
	lower := strings.ToLower(message)

	tokens := strings.Fields(lower)
	if len(tokens) == 0 {
		return false
	}

	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		seen[strings.Trim(tok, ".,;:!?¿¡\"'()")] = true
	}

	matches := 0
	for _, word := range spanishWords {
		if strings.Contains(word, " ") {
			if strings.Contains(lower, word) {
				matches++
			}
		} else if seen[word] {
			matches++
		}
	}

	return matches > 0 && float64(matches)/float64(len(tokens)) > 0.3
}

// languageNames and levelNames map the internal Spanish enums to the English
// vocabulary the completion model is prompted with.
var languageNames = map[Language]string{
	Spanish:    "Spanish",
	English:    "English",
	French:     "French",
	German:     "German",
	Italian:    "Italian",
	Portuguese: "Portuguese",
}

var levelNames = map[Level]string{
	Beginner:     "beginner",
	Intermediate: "intermediate",
	Advanced:     "advanced",
}

// Adapter wraps the completion client behind the pipeline's never-fails
// contract: any internal error resolves to an embedded fallback reply.
type Adapter struct {
	client CompletionClient
	rng    *rand.Rand
}

// NewAdapter wraps client. A nil src yields time-seeded fallback selection.
func NewAdapter(client CompletionClient, src rand.Source) *Adapter {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Adapter{client: client, rng: rand.New(src)}
}

// Configured reports whether the underlying client holds a credential.
func (a *Adapter) Configured() bool {
	return a.client != nil && a.client.Configured()
}

// GenerateResponse asks the completion model for a tutor reply. It never
// returns an error: failures are logged and answered from the fallback table.
func (a *Adapter) GenerateResponse(ctx context.Context, userMessage string, language Language, level Level, history []ConversationTurn) string {
	messages := make([]ChatMessage, 0, historyWindow+2)
	messages = append(messages, ChatMessage{Role: "system", Content: buildSystemPrompt(language, level)})

	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	for _, turn := range history[start:] {
		role := "user"
		if turn.Role == RoleBot {
			role = "assistant"
		}
		messages = append(messages, ChatMessage{Role: role, Content: turn.Text})
	}

	content := userMessage
	// Flag base-language input so the model leads with the correction.
	if isSpanishMessage(userMessage) {
		content = "[USUARIO ESCRIBIÓ EN ESPAÑOL] " + userMessage
	}
	messages = append(messages, ChatMessage{Role: "user", Content: content})

	text, err := a.client.ChatCompletion(ctx, ChatCompletionRequest{
		Messages:         messages,
		MaxTokens:        adapterMaxTokens,
		Temperature:      adapterTemperature,
		PresencePenalty:  adapterPenalty,
		FrequencyPenalty: adapterPenalty,
	})
	if err != nil {
		log.Printf("completion failed, using fallback response: %v", err)
		return a.fallbackResponse(language, level)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("completion returned empty text, using fallback response")
		return a.fallbackResponse(language, level)
	}
	if runes := []rune(text); len(runes) > MaxMessageLength {
		text = string(runes[:MaxMessageLength])
	}

	return text
}

// buildSystemPrompt encodes the fixed pedagogy: corrections in Spanish first,
// then the corrected form in the practice language, nothing off topic.
func buildSystemPrompt(language Language, level Level) string {
	targetLanguage, ok := languageNames[language]
	if !ok {
		targetLanguage = "English"
	}
	proficiency, ok := levelNames[level]
	if !ok {
		proficiency = "intermediate"
	}

	return fmt.Sprintf(`Eres un chatbot profesor de idiomas especializado en la práctica conversacional y corrección lingüística. Tu función es ayudar a los usuarios a practicar seis idiomas: español, inglés, alemán, francés, portugués e italiano.

Reglas de comportamiento:
1. Siempre inicia la conversación en español, explicando brevemente la práctica o actividad que realizará el usuario.
2. Cuando el usuario responda, analiza su respuesta y:
   - Corrige sus errores primero en español.
   - Luego, da la versión corregida o explicada en el idioma que se está practicando.
3. No debes responder ni dar información sobre temas fuera del aprendizaje y práctica de idiomas.
4. No debes hablar sobre ti mismo, sobre tecnología, ni sobre otros temas distintos a la práctica.
5. Mantén un tono educativo, amable y paciente, como un profesor nativo que motiva al estudiante.
6. Si el usuario no especifica el idioma de práctica, asume que es español y sugiere escoger uno de los seis idiomas disponibles.
7. Usa ejemplos cortos y naturales, evitando tecnicismos innecesarios.

Objetivo: ser un asistente que corrige, guía y enseña únicamente dentro del contexto de práctica de idiomas. Nada fuera de ese propósito.

Sesión actual: Practicando %s nivel %s.`, targetLanguage, proficiency)
}

// fallbackTable is deliberately independent from the rule engine's tables so
// the adapter has no dependency on the Responder.
var fallbackTable = map[Language]map[Level][]string{
	Spanish: {
		Beginner:     {"¡Hola! ¿Cómo estás hoy?", "¿Qué te gusta hacer en tu tiempo libre?", "¿Tienes mascotas?"},
		Intermediate: {"¿Has viajado a algún país hispanohablante?", "¿Cuál es tu comida española favorita?", "¿Qué opinas del clima hoy?"},
		Advanced:     {"¿Crees que la tecnología está cambiando la forma de comunicarnos?", "¿Cuál es tu perspectiva sobre la globalización?", "¿Qué desafíos enfrenta la sociedad moderna?"},
	},
	English: {
		Beginner:     {"Hello! How are you today?", "What do you like to do?", "Do you have any pets?"},
		Intermediate: {"Have you traveled to any English-speaking countries?", "What's your favorite English food?", "What do you think about today's weather?"},
		Advanced:     {"Do you think technology is changing how we communicate?", "What's your perspective on globalization?", "What challenges does modern society face?"},
	},
	French: {
		Beginner:     {"Bonjour! Comment allez-vous?", "Qu'est-ce que vous aimez faire?", "Avez-vous des animaux?"},
		Intermediate: {"Avez-vous voyagé dans des pays francophones?", "Quel est votre plat français préféré?", "Que pensez-vous du temps aujourd'hui?"},
		Advanced:     {"Pensez-vous que la technologie change notre façon de communiquer?", "Quelle est votre perspective sur la mondialisation?", "Quels défis la société moderne affronte-t-elle?"},
	},
}

func (a *Adapter) fallbackResponse(language Language, level Level) string {
	byLevel, ok := fallbackTable[language]
	if !ok {
		byLevel = fallbackTable[English]
	}
	list, ok := byLevel[level]
	if !ok {
		list = byLevel[Intermediate]
	}
	return list[a.rng.Intn(len(list))]
}

// commonErrors holds frequent misspellings per practice language for the
// fast-path correction helper.
var commonErrors = map[Language]map[string]string{
	Spanish: {
		"fraces":  "frases",
		"aléman":  "alemán",
		"grasias": "gracias",
		"kiero":   "quiero",
		"ablamos": "hablamos",
	},
	English: {
		"helo":     "hello",
		"thaks":    "thanks",
		"writting": "writing",
		"speking":  "speaking",
		"recieve":  "receive",
		"occured":  "occurred",
	},
	French: {
		"bonjoure": "bonjour",
		"ecrire":   "écrire",
	},
	Portuguese: {
		"ola":  "olá",
		"voce": "você",
	},
}

// DetectAndCorrect scans userMessage for common misspellings in the target
// language and returns a standalone correction suggestion. It lets callers
// offer a fast correction without invoking the model.
func DetectAndCorrect(userMessage string, targetLanguage Language) (string, bool) {
	message := strings.ToLower(userMessage)
	for wrong, correction := range commonErrors[targetLanguage] {
		if strings.Contains(message, wrong) {
			return fmt.Sprintf("Creo que quisiste decir %q. ¡Sigue practicando!", correction), true
		}
	}
	return "", false
}
