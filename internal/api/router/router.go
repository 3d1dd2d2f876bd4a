package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/prophetsmedicine/clinic-platform/internal/admin"
	"github.com/prophetsmedicine/clinic-platform/internal/assistant"
	"github.com/prophetsmedicine/clinic-platform/internal/booking"
	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	httpmiddleware "github.com/prophetsmedicine/clinic-platform/internal/http/middleware"
	"github.com/prophetsmedicine/clinic-platform/internal/inquiries"
	"github.com/prophetsmedicine/clinic-platform/internal/realtime"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	CatalogHandler     *catalog.Handler
	BookingHandler     *booking.Handler
	InquiryHandler     *inquiries.Handler
	AssistantHandler   *assistant.Handler
	AdminHandler       *admin.Handler
	RealtimeHandler    *realtime.Handler
	MetricsHandler     http.Handler
	AdminJWTSecret     string
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.CatalogHandler != nil {
			public.Route("/api/catalog", cfg.CatalogHandler.Routes)
		}
		if cfg.BookingHandler != nil {
			public.Route("/api/bookings", cfg.BookingHandler.Routes)
		}
		if cfg.InquiryHandler != nil {
			public.Route("/api/inquiries", cfg.InquiryHandler.Routes)
		}
		if cfg.AssistantHandler != nil {
			public.Route("/api/assistant", cfg.AssistantHandler.Routes)
		}
	})

	// Admin endpoints; everything except login sits behind the JWT check.
	if cfg.AdminHandler != nil {
		r.Route("/api/admin", func(ar chi.Router) {
			ar.Post("/login", cfg.AdminHandler.Login)
			ar.Group(func(protected chi.Router) {
				protected.Use(httpmiddleware.AdminJWT(cfg.AdminJWTSecret))
				cfg.AdminHandler.Routes(protected)
				if cfg.RealtimeHandler != nil {
					protected.Get("/ws", cfg.RealtimeHandler.HandleWebSocket)
				}
			})
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
