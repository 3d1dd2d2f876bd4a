package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Handler exposes the wizard over HTTP. Each session is a server-side
// wizard; the client only ever sends field edits and navigation verbs.
type Handler struct {
	sessions *SessionStore
	catalog  *catalog.Service
	gateway  *Gateway
	logger   *logging.Logger
}

// NewHandler constructs the booking handler.
func NewHandler(sessions *SessionStore, cat *catalog.Service, gw *Gateway, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{sessions: sessions, catalog: cat, gateway: gw, logger: logger}
}

// Routes mounts the wizard endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/sessions", h.createSession)
	r.Get("/sessions/{sessionID}", h.getSession)
	r.Post("/sessions/{sessionID}/service", h.selectService)
	r.Patch("/sessions/{sessionID}/datetime", h.patchDateTime)
	r.Patch("/sessions/{sessionID}/contact", h.patchContact)
	r.Post("/sessions/{sessionID}/next", h.next)
	r.Post("/sessions/{sessionID}/prev", h.prev)
	r.Post("/sessions/{sessionID}/submit", h.submit)
}

// sessionView is the wizard state as rendered to the client after every
// request.
type sessionView struct {
	SessionID    string           `json:"sessionId"`
	Step         Step             `json:"step"`
	Service      *SelectedService `json:"service,omitempty"`
	Day          string           `json:"day"`
	Month        string           `json:"month"`
	Year         int              `json:"year"`
	Hour         string           `json:"hour"`
	Minute       string           `json:"minute"`
	Period       string           `json:"period"`
	ComposedDate string           `json:"composedDate"`
	ComposedTime string           `json:"composedTime"`
	Contact      ContactForm      `json:"contact"`
	Submitting   bool             `json:"submitting"`
	Record       *Record          `json:"record,omitempty"`
}

func viewOf(s *Session) sessionView {
	w := s.Wizard
	dt := w.DateTime()
	return sessionView{
		SessionID:    s.ID,
		Step:         w.Step(),
		Service:      w.Service(),
		Day:          dt.Day(),
		Month:        dt.Month(),
		Year:         dt.Year(),
		Hour:         dt.Hour(),
		Minute:       dt.Minute(),
		Period:       dt.Period(),
		ComposedDate: dt.ComposedDate(),
		ComposedTime: dt.ComposedTime(),
		Contact:      w.Contact(),
		Submitting:   w.Submitting(),
		Record:       w.Record(),
	}
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Create()
	session.Lock()
	defer session.Unlock()
	h.logger.Info("booking: session started", "session_id", session.ID)
	writeJSON(w, http.StatusCreated, viewOf(session))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	writeJSON(w, http.StatusOK, viewOf(session))
}

func (h *Handler) selectService(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req struct {
		ServiceID string `json:"serviceId"`
		Language  string `json:"language"`
		Audience  string `json:"audience"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	lang := i18n.Parse(req.Language)
	var selected *SelectedService
	for _, offering := range h.catalog.PublicServices(r.Context(), catalog.Audience(req.Audience)) {
		if offering.ID == req.ServiceID {
			selected = &SelectedService{ID: offering.ID, Title: offering.Localize(lang).Title}
			break
		}
	}
	if selected == nil {
		http.Error(w, "unknown service", http.StatusNotFound)
		return
	}

	session.Lock()
	defer session.Unlock()
	if err := session.Wizard.SelectService(*selected); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(session))
}

// patchDateTime applies field edits. Masked fields never error: a rejected
// keystroke simply leaves the previous value, and the response shows the
// surviving state.
func (h *Handler) patchDateTime(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req struct {
		Day    *string `json:"day"`
		Month  *string `json:"month"`
		Hour   *string `json:"hour"`
		Minute *string `json:"minute"`
		Period *string `json:"period"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session.Lock()
	defer session.Unlock()
	dt := session.Wizard.DateTime()
	if req.Day != nil {
		dt.SetDay(*req.Day)
	}
	if req.Month != nil {
		if err := dt.SetMonth(*req.Month); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.Hour != nil {
		dt.SetHour(*req.Hour)
	}
	if req.Minute != nil {
		dt.SetMinute(*req.Minute)
	}
	if req.Period != nil {
		if err := dt.SetPeriod(*req.Period); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	writeJSON(w, http.StatusOK, viewOf(session))
}

func (h *Handler) patchContact(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req ContactForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session.Lock()
	defer session.Unlock()
	if err := session.Wizard.SetContact(req); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(session))
}

func (h *Handler) next(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	if err := session.Wizard.Next(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(session))
}

func (h *Handler) prev(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	if err := session.Wizard.Prev(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(session))
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()

	record, err := session.Wizard.Submit(r.Context(), h.gateway)
	if err != nil {
		h.logger.Error("booking: submit rejected", "session_id", session.ID, "error", err)
		// The wizard stays at the contact step with fields intact.
		if errors.Is(err, ErrInvalidSubmission) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not save the booking, please try again", http.StatusBadGateway)
		return
	}
	h.logger.Info("booking: confirmed", "session_id", session.ID, "booking_id", record.ID)
	writeJSON(w, http.StatusCreated, viewOf(session))
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := chi.URLParam(r, "sessionID")
	session, err := h.sessions.Get(id)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Default().Error("booking: encode response", "error", err)
	}
}
