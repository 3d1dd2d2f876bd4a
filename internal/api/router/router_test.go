package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prophetsmedicine/clinic-platform/internal/admin"
	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/internal/inquiries"
)

func newRouterServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := docstore.NewMemoryStore()
	cat := catalog.NewService(store, nil)
	console := admin.NewConsole(store, cat, inquiries.NewService(store, nil, nil), nil, nil)

	handler := New(&Config{
		CatalogHandler: catalog.NewHandler(cat, nil),
		AdminHandler: admin.NewHandler(console, admin.NewStaticVerifier("open-sesame"),
			admin.NewTokenIssuer("signing-key", time.Hour), nil),
		AdminJWTSecret: "signing-key",
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthEndpoint(t *testing.T) {
	srv := newRouterServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d, want 200", resp.StatusCode)
	}
}

func TestPublicCatalogIsOpen(t *testing.T) {
	srv := newRouterServer(t)
	resp, err := http.Get(srv.URL + "/api/catalog/services?lang=en")
	if err != nil {
		t.Fatalf("GET services: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d, want 200", resp.StatusCode)
	}
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	srv := newRouterServer(t)

	resp, err := http.Get(srv.URL + "/api/admin/bookings")
	if err != nil {
		t.Fatalf("GET bookings: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated: status %d, want 401", resp.StatusCode)
	}

	// Login is reachable without a token.
	loginResp, err := http.Post(srv.URL+"/api/admin/login", "application/json",
		strings.NewReader(`{"secret":"open-sesame"}`))
	if err != nil {
		t.Fatalf("POST login: %v", err)
	}
	defer loginResp.Body.Close()
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d, want 200", loginResp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(loginResp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET bookings with token: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("authenticated: status %d, want 200", resp.StatusCode)
	}
}
