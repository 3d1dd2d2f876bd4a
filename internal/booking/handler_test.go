package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
)

func newTestServer(t *testing.T) (*httptest.Server, *docstore.MemoryStore) {
	t.Helper()
	store := docstore.NewMemoryStore()
	cat := catalog.NewService(store, nil)
	gw := NewGateway(store, nil, nil)
	h := NewHandler(NewSessionStore(time.Hour), cat, gw, nil)

	r := chi.NewRouter()
	r.Route("/api/bookings", h.Routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func doJSON(t *testing.T, method, url, body string) (int, sessionView) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var view sessionView
	if resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
	}
	return resp.StatusCode, view
}

func TestWizardEndToEnd(t *testing.T) {
	srv, store := newTestServer(t)
	base := srv.URL + "/api/bookings/sessions"

	status, view := doJSON(t, http.MethodPost, base, "")
	if status != http.StatusCreated {
		t.Fatalf("create session: status %d", status)
	}
	if view.Step != StepService {
		t.Fatalf("new session step = %d, want service", view.Step)
	}
	id := view.SessionID

	status, view = doJSON(t, http.MethodPost, base+"/"+id+"/service",
		`{"serviceId":"wet-cupping-standard","language":"en"}`)
	if status != http.StatusOK {
		t.Fatalf("select service: status %d", status)
	}
	if view.Step != StepDateTime || view.Service.Title != "Wet Cupping (Standard)" {
		t.Fatalf("after selection: step=%d service=%+v", view.Step, view.Service)
	}

	// Next is gated until the date and time compose.
	if status, _ = doJSON(t, http.MethodPost, base+"/"+id+"/next", ""); status != http.StatusConflict {
		t.Fatalf("gated next: status %d, want 409", status)
	}

	status, view = doJSON(t, http.MethodPatch, base+"/"+id+"/datetime",
		`{"day":"5","hour":"9","minute":"5"}`)
	if status != http.StatusOK {
		t.Fatalf("patch datetime: status %d", status)
	}
	if view.ComposedTime != "9:05 AM" {
		t.Fatalf("composed time = %q", view.ComposedTime)
	}

	// An out-of-range keystroke is absorbed, not an error.
	status, view = doJSON(t, http.MethodPatch, base+"/"+id+"/datetime", `{"day":"52"}`)
	if status != http.StatusOK || view.Day != "5" {
		t.Fatalf("masked edit: status %d day %q", status, view.Day)
	}

	if status, view = doJSON(t, http.MethodPost, base+"/"+id+"/next", ""); status != http.StatusOK || view.Step != StepContact {
		t.Fatalf("next to contact: status %d step %d", status, view.Step)
	}

	status, _ = doJSON(t, http.MethodPatch, base+"/"+id+"/contact",
		`{"name":"Amina Yusuf","email":"amina@example.com","phone":"555-0101"}`)
	if status != http.StatusOK {
		t.Fatalf("patch contact: status %d", status)
	}

	status, view = doJSON(t, http.MethodPost, base+"/"+id+"/submit", "")
	if status != http.StatusCreated {
		t.Fatalf("submit: status %d", status)
	}
	if view.Step != StepDone || view.Record == nil || view.Record.Status != StatusPending {
		t.Fatalf("after submit: step=%d record=%+v", view.Step, view.Record)
	}

	docs, _ := store.List(t.Context(), docstore.CollectionBookings)
	if len(docs) != 1 {
		t.Fatalf("expected one stored booking, got %d", len(docs))
	}
}

func TestSubmitEndpointRejectsMalformedEmail(t *testing.T) {
	srv, store := newTestServer(t)
	base := srv.URL + "/api/bookings/sessions"

	_, view := doJSON(t, http.MethodPost, base, "")
	id := view.SessionID
	doJSON(t, http.MethodPost, base+"/"+id+"/service", `{"serviceId":"wet-cupping-standard","language":"en"}`)
	doJSON(t, http.MethodPatch, base+"/"+id+"/datetime", `{"day":"5","hour":"9","minute":"5"}`)
	doJSON(t, http.MethodPost, base+"/"+id+"/next", "")
	doJSON(t, http.MethodPatch, base+"/"+id+"/contact",
		`{"name":"Amina Yusuf","email":"not-an-email","phone":"555-0101"}`)

	status, _ := doJSON(t, http.MethodPost, base+"/"+id+"/submit", "")
	if status != http.StatusBadRequest {
		t.Fatalf("submit with bad email: status %d, want 400", status)
	}
	if docs, _ := store.List(t.Context(), docstore.CollectionBookings); len(docs) != 0 {
		t.Fatalf("rejected submit must not store a booking, got %d", len(docs))
	}

	// The session stays at the contact step for a corrected retry.
	status, view = doJSON(t, http.MethodGet, base+"/"+id, "")
	if status != http.StatusOK || view.Step != StepContact {
		t.Fatalf("after rejection: status %d step %d", status, view.Step)
	}
	doJSON(t, http.MethodPatch, base+"/"+id+"/contact",
		`{"name":"Amina Yusuf","email":"amina@example.com","phone":"555-0101"}`)
	if status, _ = doJSON(t, http.MethodPost, base+"/"+id+"/submit", ""); status != http.StatusCreated {
		t.Fatalf("corrected submit: status %d, want 201", status)
	}
}

func TestSelectUnknownService(t *testing.T) {
	srv, _ := newTestServer(t)
	base := srv.URL + "/api/bookings/sessions"

	_, view := doJSON(t, http.MethodPost, base, "")
	status, _ := doJSON(t, http.MethodPost, base+"/"+view.SessionID+"/service",
		`{"serviceId":"no-such-treatment","language":"en"}`)
	if status != http.StatusNotFound {
		t.Errorf("unknown service: status %d, want 404", status)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	srv, _ := newTestServer(t)
	status, _ := doJSON(t, http.MethodGet, srv.URL+"/api/bookings/sessions/nope", "")
	if status != http.StatusNotFound {
		t.Errorf("status %d, want 404", status)
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	current := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	session := store.Create()
	if _, err := store.Get(session.ID); err != nil {
		t.Fatalf("fresh session lookup failed: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := store.Get(session.ID); err == nil {
		t.Error("expired session must not be returned")
	}
	if removed := store.Sweep(); removed != 0 {
		t.Errorf("expired session already dropped on access, sweep removed %d", removed)
	}

	// Access refreshes expiry.
	current = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	refreshed := store.Create()
	current = current.Add(30 * time.Second)
	if _, err := store.Get(refreshed.ID); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	current = current.Add(45 * time.Second)
	if _, err := store.Get(refreshed.ID); err != nil {
		t.Error("access should have pushed the expiry forward")
	}
}
