package bot

import (
	"context"
	"fmt"
)

// Pipeline orchestrates filter, rule engine and model adapter. Exactly one
// strategy is active per deployment: the model when a credential is
// configured, the rule engine otherwise. The adapter already degrades to its
// own fallback table on failure, so Respond never returns an error.
type Pipeline struct {
	adapter   *Adapter
	responder *Responder
}

// NewPipeline wires the two strategies together. adapter may be nil for
// rule-based-only deployments.
func NewPipeline(adapter *Adapter, responder *Responder) *Pipeline {
	return &Pipeline{adapter: adapter, responder: responder}
}

// Respond produces the bot reply for userMessage. The result text is always
// non-empty and at most MaxMessageLength characters.
func (p *Pipeline) Respond(ctx context.Context, userMessage string, sc SessionContext, history []ConversationTurn) Result {
	if p.adapter != nil && p.adapter.Configured() {
		text := p.adapter.GenerateResponse(ctx, userMessage, sc.Language, sc.Level, history)
		return Result{Text: text, Strategy: StrategyModel}
	}

	text := p.responder.ContextualResponse(userMessage, sc.Language, sc.Level, history)
	return Result{Text: text, Strategy: StrategyRules}
}

// Welcome produces the opening bot message of a fresh session.
func (p *Pipeline) Welcome(ctx context.Context, userName string, sc SessionContext) string {
	if p.adapter != nil && p.adapter.Configured() {
		instruction := fmt.Sprintf(
			"Inicia una conversación de práctica de %s nivel %s con el usuario %s. "+
				"Saluda de forma amable y explica brevemente que practicaremos conversación en %s. "+
				"Mantén un tono educativo y motivador, sin mencionar las correcciones.",
			sc.Language, sc.Level, userName, sc.Language,
		)
		return p.adapter.GenerateResponse(ctx, instruction, sc.Language, sc.Level, nil)
	}

	return fmt.Sprintf(`Hola %s! Soy tu compañero de práctica.
Idioma seleccionado: %s. Nivel: %s.
- Te saludaré y mantendré una conversación coherente y relacionada a lo que digas.
- Si escribes una palabra mal en el idioma, te corregiré brevemente en español.
- Puedes pedirme temas (viajes, trabajo, etc.). ¡Empecemos!`, userName, sc.Language, sc.Level)
}
