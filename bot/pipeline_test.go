package bot

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func newTestPipeline(client CompletionClient) *Pipeline {
	var adapter *Adapter
	if client != nil {
		adapter = NewAdapter(client, rand.NewSource(1))
	}
	return NewPipeline(adapter, NewResponder(rand.NewSource(1)))
}

func TestRespondUsesModelWhenConfigured(t *testing.T) {
	p := newTestPipeline(&fakeClient{configured: true, text: "Very good! ¡Muy bien!"})

	got := p.Respond(context.Background(), "I like travel", SessionContext{English, Intermediate}, nil)
	if got.Strategy != StrategyModel {
		t.Errorf("strategy = %q, want %q", got.Strategy, StrategyModel)
	}
	if got.Text != "Very good! ¡Muy bien!" {
		t.Errorf("text = %q, want the model completion", got.Text)
	}
}

func TestRespondFallsBackToRules(t *testing.T) {
	for name, p := range map[string]*Pipeline{
		"no adapter":          newTestPipeline(nil),
		"unconfigured client": newTestPipeline(&fakeClient{configured: false}),
	} {
		got := p.Respond(context.Background(), "hola", SessionContext{Spanish, Beginner}, nil)
		if got.Strategy != StrategyRules {
			t.Errorf("%s: strategy = %q, want %q", name, got.Strategy, StrategyRules)
		}
		if got.Text == "" {
			t.Errorf("%s: empty response", name)
		}
	}
}

func TestRespondNeverFailsOnModelError(t *testing.T) {
	p := newTestPipeline(&fakeClient{configured: true, err: errors.New("connection refused")})

	got := p.Respond(context.Background(), "hello", SessionContext{English, Beginner}, nil)
	if got.Strategy != StrategyModel {
		t.Errorf("strategy = %q, want %q (adapter degrades internally)", got.Strategy, StrategyModel)
	}
	if got.Text == "" || len(got.Text) > MaxMessageLength {
		t.Errorf("invalid degraded response %q", got.Text)
	}
}

func TestRespondMisspellingScenario(t *testing.T) {
	p := newTestPipeline(nil)

	got := p.Respond(context.Background(), "Quiero aprender fraces", SessionContext{English, Beginner}, nil)
	if !strings.Contains(got.Text, `"francés"`) {
		t.Errorf("response %q does not reference the corrected term", got.Text)
	}
}

func TestRespondGratitudeScenario(t *testing.T) {
	p := newTestPipeline(nil)

	history := []ConversationTurn{{Role: RoleBot, Text: "Me gusta mucho practicar contigo."}}
	got := p.Respond(context.Background(), "gracias", SessionContext{Spanish, Intermediate}, history)
	if !contains(gratitudeResponses[Spanish][Intermediate], got.Text) {
		t.Errorf("response %q not in the Spanish intermediate gratitude set", got.Text)
	}
}

func TestWelcome(t *testing.T) {
	p := newTestPipeline(nil)
	got := p.Welcome(context.Background(), "Ana", SessionContext{French, Beginner})
	if !strings.Contains(got, "Ana") || !strings.Contains(got, string(French)) {
		t.Errorf("welcome message %q misses the user or the language", got)
	}

	client := &fakeClient{configured: true, text: "Bonjour Ana!"}
	p = newTestPipeline(client)
	if got := p.Welcome(context.Background(), "Ana", SessionContext{French, Beginner}); got != "Bonjour Ana!" {
		t.Errorf("welcome = %q, want the model completion", got)
	}
}
