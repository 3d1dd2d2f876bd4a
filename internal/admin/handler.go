package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prophetsmedicine/clinic-platform/internal/booking"
	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
	"github.com/prophetsmedicine/clinic-platform/internal/inquiries"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Handler exposes the admin console over HTTP. Everything except Login is
// mounted behind the admin JWT middleware.
type Handler struct {
	console  *Console
	verifier CredentialVerifier
	issuer   *TokenIssuer
	logger   *logging.Logger
}

// NewHandler constructs the admin handler.
func NewHandler(console *Console, verifier CredentialVerifier, issuer *TokenIssuer, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{console: console, verifier: verifier, issuer: issuer, logger: logger}
}

// Login exchanges the admin secret for a session token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Secret string `json:"secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !h.verifier.Verify(req.Secret) {
		h.logger.Warn("admin: login rejected")
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	token, err := h.issuer.Issue()
	if err != nil {
		h.logger.Error("admin: token issue failed", "error", err)
		http.Error(w, "could not start a session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Routes mounts the protected console endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/bookings", h.listBookings)
	r.Patch("/bookings/{id}/status", h.setBookingStatus)
	r.Post("/bookings/{id}/confirm", h.confirmBooking)
	r.Delete("/bookings/{id}", h.deleteBooking)

	r.Put("/services/{id}", h.saveService)
	r.Delete("/services/{id}", h.deleteService)
	r.Put("/faqs/{id}", h.saveFAQ)
	r.Delete("/faqs/{id}", h.deleteFAQ)
	r.Post("/catalog/reset", h.resetCatalog)

	r.Post("/email", h.sendEmail)

	r.Get("/inquiries", h.listInquiries)
	r.Patch("/inquiries/{id}/status", h.setInquiryStatus)
	r.Delete("/inquiries/{id}", h.deleteInquiry)
	r.Post("/inquiries/{id}/promote", h.promoteInquiry)
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	records, err := h.console.SearchBookings(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("admin: list bookings", "error", err)
		http.Error(w, "could not load bookings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) setBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status booking.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	err := h.console.SetBookingStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	h.respondMutation(w, err)
}

func (h *Handler) confirmBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	err := h.console.ConfirmBooking(r.Context(), chi.URLParam(r, "id"), i18n.Parse(req.Language))
	h.respondMutation(w, err)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	err := h.console.DeleteBooking(r.Context(), chi.URLParam(r, "id"), confirmed(r))
	h.respondMutation(w, err)
}

func (h *Handler) saveService(w http.ResponseWriter, r *http.Request) {
	var offering catalog.ServiceOffering
	if err := json.NewDecoder(r.Body).Decode(&offering); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	offering.ID = chi.URLParam(r, "id")
	h.respondMutation(w, h.console.SaveService(r.Context(), offering))
}

func (h *Handler) deleteService(w http.ResponseWriter, r *http.Request) {
	err := h.console.DeleteService(r.Context(), chi.URLParam(r, "id"), confirmed(r))
	h.respondMutation(w, err)
}

func (h *Handler) saveFAQ(w http.ResponseWriter, r *http.Request) {
	var entry catalog.FAQEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	entry.ID = chi.URLParam(r, "id")
	h.respondMutation(w, h.console.SaveFAQ(r.Context(), entry))
}

func (h *Handler) deleteFAQ(w http.ResponseWriter, r *http.Request) {
	err := h.console.DeleteFAQ(r.Context(), chi.URLParam(r, "id"), confirmed(r))
	h.respondMutation(w, err)
}

func (h *Handler) resetCatalog(w http.ResponseWriter, r *http.Request) {
	h.respondMutation(w, h.console.ResetCatalog(r.Context()))
}

func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		To      string `json:"to"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.respondMutation(w, h.console.SendEmail(r.Context(), req.To, req.Subject, req.Body))
}

func (h *Handler) listInquiries(w http.ResponseWriter, r *http.Request) {
	listed, err := h.console.inquiries.List(r.Context())
	if err != nil {
		h.logger.Error("admin: list inquiries", "error", err)
		http.Error(w, "could not load inquiries", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, listed)
}

func (h *Handler) setInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status inquiries.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	err := h.console.inquiries.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	h.respondMutation(w, err)
}

func (h *Handler) deleteInquiry(w http.ResponseWriter, r *http.Request) {
	err := h.console.DeleteInquiry(r.Context(), chi.URLParam(r, "id"), confirmed(r))
	h.respondMutation(w, err)
}

func (h *Handler) promoteInquiry(w http.ResponseWriter, r *http.Request) {
	draft, err := h.console.PromoteInquiry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondMutation(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

// respondMutation maps mutation outcomes onto status codes.
func (h *Handler) respondMutation(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, docstore.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Default().Error("admin: encode response", "error", err)
	}
}
