package llm

import (
	"context"
	"testing"

	"aichat/aichat/utils/logging"
)

func TestRespondEchoesWithoutKey(t *testing.T) {
	logging.InitLogger()
	r := NewResponder("")
	got := r.Respond(context.Background(), "gpt-4o", "hello")
	want := `You said: "hello"`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRespondPrefixesModelTagWithKey(t *testing.T) {
	logging.InitLogger()
	r := NewResponder("sk-test")
	got := r.Respond(context.Background(), "claude-3-5-sonnet", "hello")
	want := `AI Response (claude-3-5-sonnet): You said: "hello"`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRespondPreservesQuotesAndBackslashes(t *testing.T) {
	logging.InitLogger()
	r := NewResponder("")
	got := r.Respond(context.Background(), "gpt-4o", `say "hi" to C:\tmp`)
	want := `You said: "say "hi" to C:\tmp"`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	r = NewResponder("sk-test")
	got = r.Respond(context.Background(), "gpt-4o", `say "hi" to C:\tmp`)
	want = `AI Response (gpt-4o): You said: "say "hi" to C:\tmp"`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
