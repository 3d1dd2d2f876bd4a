package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
	"github.com/prophetsmedicine/clinic-platform/internal/observability/metrics"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// maxHistoryTurns caps how much of a conversation is replayed to the
// model. Oldest turns fall off first.
const maxHistoryTurns = 20

var languageNames = map[i18n.Language]string{
	i18n.English: "English",
	i18n.French:  "French",
	i18n.Arabic:  "Arabic",
	i18n.Spanish: "Spanish",
}

// chatSession is one visitor's running conversation. History is keyed to
// the language it was held in; switching languages starts fresh.
type chatSession struct {
	language i18n.Language
	turns    []Turn
}

// Assistant answers visitor questions about the clinic, grounded in the
// live catalog.
type Assistant struct {
	generator TextGenerator
	catalog   *catalog.Service
	logger    *logging.Logger
	metrics   *metrics.Metrics

	mu       sync.Mutex
	sessions map[string]*chatSession
}

// New constructs the assistant.
func New(generator TextGenerator, cat *catalog.Service, logger *logging.Logger, m *metrics.Metrics) *Assistant {
	if generator == nil {
		panic("assistant: generator required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Assistant{
		generator: generator,
		catalog:   cat,
		logger:    logger,
		metrics:   m,
		sessions:  make(map[string]*chatSession),
	}
}

// Ask sends one visitor message and returns the reply. The model is told
// which language to answer in on every turn, and a language switch drops
// the accumulated history for that session.
func (a *Assistant) Ask(ctx context.Context, sessionID, message string, lang i18n.Language) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("assistant: message is required")
	}

	a.mu.Lock()
	session, ok := a.sessions[sessionID]
	if !ok || session.language != lang {
		session = &chatSession{language: lang}
		a.sessions[sessionID] = session
	}
	history := make([]Turn, len(session.turns))
	copy(history, session.turns)
	a.mu.Unlock()

	prompt := fmt.Sprintf("Please respond in %s. %s", languageNames[lang], message)
	reply, err := a.generator.Generate(ctx, GenerateRequest{
		System:  a.systemPrompt(ctx, lang),
		History: history,
		Prompt:  prompt,
	})
	if err != nil {
		a.logger.Error("assistant: generation failed", "session_id", sessionID, "error", err)
		return "", err
	}

	a.mu.Lock()
	// A concurrent language switch wins; only append when the session is
	// still the one we read.
	if current := a.sessions[sessionID]; current == session {
		session.turns = append(session.turns, Turn{Role: RoleUser, Text: prompt}, Turn{Role: RoleModel, Text: reply})
		if len(session.turns) > maxHistoryTurns {
			session.turns = session.turns[len(session.turns)-maxHistoryTurns:]
		}
	}
	a.mu.Unlock()

	a.metrics.ObserveAssistantTurn(string(lang))
	return reply, nil
}

// Reset drops a session's history.
func (a *Assistant) Reset(sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.sessions, sessionID)
}

// systemPrompt grounds the model in the current catalog so answers quote
// real prices and offerings.
func (a *Assistant) systemPrompt(ctx context.Context, lang i18n.Language) string {
	var b strings.Builder
	b.WriteString("You are the booking assistant for The Prophet's Medicine, a cupping therapy (hijama) clinic. ")
	b.WriteString("Answer questions about treatments, pricing and booking. ")
	b.WriteString("If asked about medical conditions, recommend consulting a qualified practitioner. ")
	b.WriteString("Current offerings:\n")

	if a.catalog != nil {
		for _, offering := range a.catalog.PublicServices(ctx, catalog.AudienceUnset) {
			loc := offering.Localize(lang)
			fmt.Fprintf(&b, "- %s: %s, %s (%s)\n", loc.Title, loc.Price, loc.Duration, loc.Description)
		}
	}
	return b.String()
}
