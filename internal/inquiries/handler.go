package inquiries

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Handler exposes the public contact-form endpoint.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler constructs the inquiry handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Routes mounts the public inquiry endpoint.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	inquiry, err := h.service.Record(r.Context(), req.Name, req.Email, req.Question)
	if err != nil {
		if req.Email == "" || req.Question == "" {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not save the question, please try again", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(inquiry); err != nil {
		h.logger.Error("inquiries: encode response", "error", err)
	}
}
