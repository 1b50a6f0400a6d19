package bot

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

// fakeClient records the last request and returns a scripted result.
type fakeClient struct {
	configured bool
	text       string
	err        error
	lastReq    ChatCompletionRequest
}

func (f *fakeClient) Configured() bool { return f.configured }

func (f *fakeClient) ChatCompletion(_ context.Context, req ChatCompletionRequest) (string, error) {
	f.lastReq = req
	return f.text, f.err
}

func newTestAdapter(client CompletionClient) *Adapter {
	return NewAdapter(client, rand.NewSource(1))
}

func TestIsSpanishMessage(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"hola cómo estás hoy", true},
		{"quiero practicar mucho", true},
		{"bonjour comment allez-vous", false},
		{"the quick brown fox jumps", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isSpanishMessage(tc.text); got != tc.want {
			t.Errorf("isSpanishMessage(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestGenerateResponseAnnotatesSpanish(t *testing.T) {
	client := &fakeClient{configured: true, text: "¡Muy bien!"}
	a := newTestAdapter(client)

	a.GenerateResponse(context.Background(), "hola cómo estás hoy", English, Beginner, nil)

	last := client.lastReq.Messages[len(client.lastReq.Messages)-1]
	if !strings.HasPrefix(last.Content, "[USUARIO ESCRIBIÓ EN ESPAÑOL] ") {
		t.Errorf("Spanish input not annotated: %q", last.Content)
	}

	a.GenerateResponse(context.Background(), "bonjour comment allez-vous", French, Beginner, nil)
	last = client.lastReq.Messages[len(client.lastReq.Messages)-1]
	if strings.HasPrefix(last.Content, "[USUARIO ESCRIBIÓ EN ESPAÑOL]") {
		t.Errorf("non-Spanish input annotated: %q", last.Content)
	}
}

func TestGenerateResponseRequestShape(t *testing.T) {
	client := &fakeClient{configured: true, text: "ok"}
	a := newTestAdapter(client)

	history := make([]ConversationTurn, 15)
	for i := range history {
		role := RoleUser
		if i%2 == 1 {
			role = RoleBot
		}
		history[i] = ConversationTurn{Role: role, Text: "turno"}
	}

	a.GenerateResponse(context.Background(), "what do you like", English, Advanced, history)

	req := client.lastReq
	// system + last 10 turns + current message
	if len(req.Messages) != 12 {
		t.Fatalf("request carries %d messages, want 12", len(req.Messages))
	}
	if req.Messages[0].Role != "system" {
		t.Errorf("first message role = %q, want system", req.Messages[0].Role)
	}
	if !strings.Contains(req.Messages[0].Content, "Practicando English nivel advanced") {
		t.Errorf("system prompt misses the session line: %q", req.Messages[0].Content)
	}
	if req.MaxTokens != adapterMaxTokens || req.Temperature != adapterTemperature {
		t.Errorf("sampling parameters = (%d, %v), want (%d, %v)",
			req.MaxTokens, req.Temperature, adapterMaxTokens, adapterTemperature)
	}
	// The window keeps turns 5..14, so the first forwarded turn is a bot one.
	for i, msg := range req.Messages[1:11] {
		want := "assistant"
		if i%2 == 1 {
			want = "user"
		}
		if msg.Role != want {
			t.Errorf("history message %d role = %q, want %q", i, msg.Role, want)
		}
	}
}

func TestGenerateResponseFallback(t *testing.T) {
	client := &fakeClient{configured: true, err: errors.New("quota exceeded")}
	a := newTestAdapter(client)

	got := a.GenerateResponse(context.Background(), "hello", English, Beginner, nil)
	if !contains(fallbackTable[English][Beginner], got) {
		t.Errorf("fallback response %q not in the English beginner table", got)
	}

	// Languages and levels without a table entry degrade further.
	got = a.GenerateResponse(context.Background(), "hallo", German, Level("experto"), nil)
	if !contains(fallbackTable[English][Intermediate], got) {
		t.Errorf("fallback response %q not in the English intermediate table", got)
	}
}

func TestGenerateResponseEmptyCompletion(t *testing.T) {
	client := &fakeClient{configured: true, text: "   "}
	a := newTestAdapter(client)

	got := a.GenerateResponse(context.Background(), "hello", English, Beginner, nil)
	if got == "" {
		t.Fatal("adapter returned empty text")
	}
	if !contains(fallbackTable[English][Beginner], got) {
		t.Errorf("empty completion should use the fallback table, got %q", got)
	}
}

func TestGenerateResponseTrimsOutput(t *testing.T) {
	client := &fakeClient{configured: true, text: "  Bonjour!  \n"}
	a := newTestAdapter(client)

	if got := a.GenerateResponse(context.Background(), "hi", French, Beginner, nil); got != "Bonjour!" {
		t.Errorf("GenerateResponse = %q, want trimmed completion", got)
	}

	client.text = strings.Repeat("x", MaxMessageLength+100)
	got := a.GenerateResponse(context.Background(), "hi", French, Beginner, nil)
	if utf8.RuneCountInString(got) != MaxMessageLength {
		t.Errorf("oversized completion not truncated: %d chars", utf8.RuneCountInString(got))
	}

	// Truncation must land on a rune boundary, not mid-character.
	client.text = strings.Repeat("€", MaxMessageLength+100)
	got = a.GenerateResponse(context.Background(), "hi", French, Beginner, nil)
	if utf8.RuneCountInString(got) != MaxMessageLength {
		t.Errorf("oversized multibyte completion not truncated: %d chars", utf8.RuneCountInString(got))
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncated completion is not valid UTF-8 (last byte %#x)", got[len(got)-1])
	}
}

func TestDetectAndCorrect(t *testing.T) {
	cases := []struct {
		message  string
		language Language
		want     string
		ok       bool
	}{
		{"muchas grasias por todo", Spanish, "gracias", true},
		{"helo my friend", English, "hello", true},
		{"bonjoure madame", French, "bonjour", true},
		{"todo está bien", Spanish, "", false},
		{"hallo zusammen", German, "", false},
	}
	for _, tc := range cases {
		got, ok := DetectAndCorrect(tc.message, tc.language)
		if ok != tc.ok {
			t.Errorf("DetectAndCorrect(%q, %s) ok = %v, want %v", tc.message, tc.language, ok, tc.ok)
			continue
		}
		if tc.ok && !strings.Contains(got, tc.want) {
			t.Errorf("DetectAndCorrect(%q) = %q, want mention of %q", tc.message, got, tc.want)
		}
	}
}
