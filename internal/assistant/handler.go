package assistant

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

var fallbackReplies = i18n.LocalizedString{
	EN: "I'm sorry, I couldn't answer that just now. Please try again in a moment.",
	FR: "Désolé, je n'ai pas pu répondre pour le moment. Veuillez réessayer dans un instant.",
	AR: "عذراً، لم أتمكن من الإجابة الآن. يرجى المحاولة مرة أخرى بعد قليل.",
	ES: "Lo siento, no pude responder en este momento. Inténtelo de nuevo en un momento.",
}

// Handler exposes the chat assistant over HTTP.
type Handler struct {
	assistant *Assistant
	logger    *logging.Logger
}

// NewHandler constructs the assistant handler.
func NewHandler(a *Assistant, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{assistant: a, logger: logger}
}

// Routes mounts the chat endpoint.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/chat", h.chat)
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
		Language  string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	lang := i18n.Parse(req.Language)
	reply, err := h.assistant.Ask(r.Context(), req.SessionID, req.Message, lang)
	if err != nil {
		// Failures read as a polite in-chat reply, never a broken widget.
		reply = fallbackReplies.Get(lang)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"sessionId": req.SessionID,
		"reply":     reply,
	}); err != nil {
		h.logger.Error("assistant: encode response", "error", err)
	}
}
