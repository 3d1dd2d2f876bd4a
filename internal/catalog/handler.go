package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Handler serves the public, localized catalog.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler constructs the public catalog handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Routes mounts the public catalog endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/services", h.listServices)
	r.Get("/faqs", h.listFAQs)
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Parse(r.URL.Query().Get("lang"))
	aud := Audience(r.URL.Query().Get("audience"))

	offerings := h.service.PublicServices(r.Context(), aud)
	localized := make([]LocalizedService, 0, len(offerings))
	for _, offering := range offerings {
		localized = append(localized, offering.Localize(lang))
	}
	h.writeJSON(w, localized)
}

func (h *Handler) listFAQs(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Parse(r.URL.Query().Get("lang"))

	faqs := h.service.PublicFAQs(r.Context())
	localized := make([]LocalizedFAQ, 0, len(faqs))
	for _, entry := range faqs {
		localized = append(localized, entry.Localize(lang))
	}
	h.writeJSON(w, localized)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("catalog: encode response", "error", err)
	}
}
