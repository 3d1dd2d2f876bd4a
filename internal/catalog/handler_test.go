package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := NewHandler(NewService(docstore.NewMemoryStore(), nil), nil)
	r := chi.NewRouter()
	r.Route("/api/catalog", h.Routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func getLocalizedServices(t *testing.T, url string) []LocalizedService {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
	var out []LocalizedService
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return out
}

func TestPublicServicesEndpointLocalizes(t *testing.T) {
	srv := newCatalogServer(t)

	french := getLocalizedServices(t, srv.URL+"/api/catalog/services?lang=fr")
	if len(french) == 0 {
		t.Fatal("empty store should still serve the default catalog")
	}
	var hijama *LocalizedService
	for i := range french {
		if french[i].ID == "wet-cupping-standard" {
			hijama = &french[i]
		}
	}
	if hijama == nil {
		t.Fatal("wet-cupping-standard missing from public catalog")
	}
	if hijama.Title != "Hijama (Standard)" {
		t.Errorf("French title = %q", hijama.Title)
	}

	// Unknown language falls back to English.
	english := getLocalizedServices(t, srv.URL+"/api/catalog/services?lang=de")
	for _, svc := range english {
		if svc.ID == "wet-cupping-standard" && svc.Title != "Wet Cupping (Standard)" {
			t.Errorf("fallback title = %q", svc.Title)
		}
	}
}

func TestPublicFAQsEndpoint(t *testing.T) {
	srv := newCatalogServer(t)

	resp, err := http.Get(srv.URL + "/api/catalog/faqs?lang=es")
	if err != nil {
		t.Fatalf("GET faqs: %v", err)
	}
	defer resp.Body.Close()
	var faqs []LocalizedFAQ
	if err := json.NewDecoder(resp.Body).Decode(&faqs); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(faqs) != len(DefaultFAQs) {
		t.Fatalf("expected default faqs, got %d", len(faqs))
	}
	for _, f := range faqs {
		if f.Question == "" || f.Answer == "" {
			t.Errorf("faq %s has empty localized content", f.ID)
		}
	}
}
