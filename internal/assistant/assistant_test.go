package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
)

type stubGenerator struct {
	lastReq GenerateRequest
	reply   string
}

func (s *stubGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	s.lastReq = req
	if s.reply == "" {
		return "stub reply", nil
	}
	return s.reply, nil
}

func (s *stubGenerator) Close() error { return nil }

func newTestAssistant(t *testing.T) (*Assistant, *stubGenerator) {
	t.Helper()
	gen := &stubGenerator{}
	cat := catalog.NewService(docstore.NewMemoryStore(), nil)
	return New(gen, cat, nil, nil), gen
}

func TestAskPrefixesLanguageInstruction(t *testing.T) {
	a, gen := newTestAssistant(t)

	if _, err := a.Ask(context.Background(), "s1", "How much is hijama?", i18n.Arabic); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if !strings.HasPrefix(gen.lastReq.Prompt, "Please respond in Arabic. ") {
		t.Errorf("prompt missing language instruction: %q", gen.lastReq.Prompt)
	}
	if !strings.Contains(gen.lastReq.Prompt, "How much is hijama?") {
		t.Errorf("prompt missing the visitor message: %q", gen.lastReq.Prompt)
	}
}

func TestHistoryAccumulatesWithinLanguage(t *testing.T) {
	a, gen := newTestAssistant(t)
	ctx := context.Background()

	if _, err := a.Ask(ctx, "s1", "first", i18n.English); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if _, err := a.Ask(ctx, "s1", "second", i18n.English); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if len(gen.lastReq.History) != 2 {
		t.Fatalf("second turn should carry two history entries, got %d", len(gen.lastReq.History))
	}
	if gen.lastReq.History[1].Role != RoleModel {
		t.Errorf("second history entry should be the model reply, got %s", gen.lastReq.History[1].Role)
	}
}

func TestLanguageSwitchResetsHistory(t *testing.T) {
	a, gen := newTestAssistant(t)
	ctx := context.Background()

	if _, err := a.Ask(ctx, "s1", "bonjour", i18n.French); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if _, err := a.Ask(ctx, "s1", "hola", i18n.Spanish); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if len(gen.lastReq.History) != 0 {
		t.Errorf("language switch must drop history, got %d entries", len(gen.lastReq.History))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a, gen := newTestAssistant(t)
	ctx := context.Background()

	if _, err := a.Ask(ctx, "s1", "first", i18n.English); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if _, err := a.Ask(ctx, "s2", "other visitor", i18n.English); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if len(gen.lastReq.History) != 0 {
		t.Errorf("a new session must start with empty history, got %d entries", len(gen.lastReq.History))
	}
}

func TestSystemPromptListsOfferings(t *testing.T) {
	a, gen := newTestAssistant(t)

	if _, err := a.Ask(context.Background(), "s1", "what do you offer?", i18n.English); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if !strings.Contains(gen.lastReq.System, "Wet Cupping (Standard)") {
		t.Errorf("system prompt should list catalog offerings:\n%s", gen.lastReq.System)
	}
	if !strings.Contains(gen.lastReq.System, "$130") {
		t.Errorf("system prompt should quote real prices:\n%s", gen.lastReq.System)
	}
}

func TestHistoryIsCapped(t *testing.T) {
	a, _ := newTestAssistant(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		if _, err := a.Ask(ctx, "s1", "ping", i18n.English); err != nil {
			t.Fatalf("Ask returned error: %v", err)
		}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if got := len(a.sessions["s1"].turns); got > maxHistoryTurns {
		t.Errorf("history length %d exceeds cap %d", got, maxHistoryTurns)
	}
}

func TestAskRejectsEmptyMessage(t *testing.T) {
	a, _ := newTestAssistant(t)
	if _, err := a.Ask(context.Background(), "s1", "   ", i18n.English); err == nil {
		t.Error("blank message must be rejected")
	}
}
