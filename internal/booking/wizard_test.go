package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
)

func testWizard(t *testing.T) *Wizard {
	t.Helper()
	return NewWizard(time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC))
}

func advanceToContact(t *testing.T, w *Wizard) {
	t.Helper()
	if err := w.SelectService(SelectedService{ID: "wet-cupping-standard", Title: "Hijama (Standard)"}); err != nil {
		t.Fatalf("SelectService returned error: %v", err)
	}
	w.DateTime().SetDay("5")
	w.DateTime().SetHour("9")
	w.DateTime().SetMinute("5")
	if err := w.Next(); err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
}

func TestSelectServiceAdvances(t *testing.T) {
	w := testWizard(t)
	if w.Step() != StepService {
		t.Fatalf("new wizard should start at the service step, got %d", w.Step())
	}
	if err := w.SelectService(SelectedService{ID: "sunnah-cupping", Title: "Sunnah Cupping"}); err != nil {
		t.Fatalf("SelectService returned error: %v", err)
	}
	if w.Step() != StepDateTime {
		t.Errorf("selection should advance to the date step, got %d", w.Step())
	}
	if w.Service().ID != "sunnah-cupping" {
		t.Errorf("selection not recorded: %+v", w.Service())
	}
}

func TestNextGatedOnComposedDateAndTime(t *testing.T) {
	w := testWizard(t)
	if err := w.SelectService(SelectedService{ID: "sports-cupping", Title: "Sports Cupping"}); err != nil {
		t.Fatalf("SelectService returned error: %v", err)
	}

	if err := w.Next(); err == nil {
		t.Fatal("Next must be gated while day, hour and minute are empty")
	}
	w.DateTime().SetDay("12")
	if err := w.Next(); err == nil {
		t.Fatal("Next must stay gated until the time is complete")
	}
	w.DateTime().SetHour("2")
	w.DateTime().SetMinute("30")
	if err := w.Next(); err != nil {
		t.Fatalf("Next returned error with a complete form: %v", err)
	}
	if w.Step() != StepContact {
		t.Errorf("step = %d, want contact", w.Step())
	}
}

func TestPrevFlooredAtServiceStep(t *testing.T) {
	w := testWizard(t)
	if err := w.Prev(); err != nil {
		t.Fatalf("Prev at step one should be a no-op, got error: %v", err)
	}
	if w.Step() != StepService {
		t.Errorf("step = %d, want service", w.Step())
	}

	advanceToContact(t, w)
	if err := w.Prev(); err != nil {
		t.Fatalf("Prev returned error: %v", err)
	}
	if w.Step() != StepDateTime {
		t.Errorf("step = %d, want date step", w.Step())
	}
	// Going back does not lose the entered fields.
	if w.DateTime().ComposedTime() != "9:05 AM" {
		t.Errorf("time lost on back-navigation: %q", w.DateTime().ComposedTime())
	}
}

func TestSubmitHappyPath(t *testing.T) {
	store := docstore.NewMemoryStore()
	gw := NewGateway(store, nil, nil)
	w := testWizard(t)
	advanceToContact(t, w)
	if err := w.SetContact(ContactForm{Name: "Amina Yusuf", Email: "amina@example.com", Phone: "555-0101"}); err != nil {
		t.Fatalf("SetContact returned error: %v", err)
	}

	record, err := w.Submit(context.Background(), gw)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if w.Step() != StepDone {
		t.Errorf("step after success = %d, want done", w.Step())
	}
	if record.Status != StatusPending {
		t.Errorf("status = %s, want pending", record.Status)
	}
	if record.Date != "March 5, 2026" || record.Time != "9:05 AM" {
		t.Errorf("composed strings wrong: %s / %s", record.Date, record.Time)
	}

	docs, _ := store.List(context.Background(), docstore.CollectionBookings)
	if len(docs) != 1 {
		t.Fatalf("expected exactly one stored booking, got %d", len(docs))
	}
	if docs[0].Fields["serviceTitle"] != "Hijama (Standard)" {
		t.Errorf("stored title = %v", docs[0].Fields["serviceTitle"])
	}
}

type failingBookingStore struct {
	docstore.Store
}

func (failingBookingStore) CreateWithGeneratedID(ctx context.Context, col docstore.Collection, fields map[string]any) (string, error) {
	return "", errors.New("store unreachable")
}

func TestSubmitFailureKeepsFieldsAndStep(t *testing.T) {
	gw := NewGateway(failingBookingStore{Store: docstore.NewMemoryStore()}, nil, nil)
	w := testWizard(t)
	advanceToContact(t, w)
	contact := ContactForm{Name: "Omar Hassan", Email: "omar@example.com", Phone: "555-0202"}
	if err := w.SetContact(contact); err != nil {
		t.Fatalf("SetContact returned error: %v", err)
	}

	if _, err := w.Submit(context.Background(), gw); err == nil {
		t.Fatal("expected submit to fail")
	}
	if w.Step() != StepContact {
		t.Errorf("failed submit must stay at the contact step, got %d", w.Step())
	}
	if w.Submitting() {
		t.Error("submitting flag must clear after failure")
	}
	if w.Contact() != contact {
		t.Errorf("contact fields must survive a failed submit: %+v", w.Contact())
	}

	// The visitor can retry once the store recovers.
	ok := NewGateway(docstore.NewMemoryStore(), nil, nil)
	if _, err := w.Submit(context.Background(), ok); err != nil {
		t.Fatalf("retry after failure returned error: %v", err)
	}
	if w.Step() != StepDone {
		t.Errorf("step after retry = %d, want done", w.Step())
	}
}

func TestSubmitRequiresContactFields(t *testing.T) {
	gw := NewGateway(docstore.NewMemoryStore(), nil, nil)
	w := testWizard(t)
	advanceToContact(t, w)

	if _, err := w.Submit(context.Background(), gw); err == nil {
		t.Fatal("submit with empty contact fields must be rejected")
	}
	if w.Step() != StepContact {
		t.Errorf("rejected submit must not move the step, got %d", w.Step())
	}
}

func TestSubmitRejectsMalformedEmail(t *testing.T) {
	store := docstore.NewMemoryStore()
	gw := NewGateway(store, nil, nil)
	w := testWizard(t)
	advanceToContact(t, w)
	if err := w.SetContact(ContactForm{Name: "Amina Yusuf", Email: "not-an-email", Phone: "555-0101"}); err != nil {
		t.Fatalf("SetContact returned error: %v", err)
	}

	if _, err := w.Submit(context.Background(), gw); err == nil {
		t.Fatal("submit with a malformed email must be rejected")
	}
	if w.Step() != StepContact {
		t.Errorf("rejected submit must not move the step, got %d", w.Step())
	}
	if docs, _ := store.List(context.Background(), docstore.CollectionBookings); len(docs) != 0 {
		t.Errorf("rejected submit must not store a booking, got %d docs", len(docs))
	}

	// Correcting the address makes the same wizard submittable.
	if err := w.SetContact(ContactForm{Name: "Amina Yusuf", Email: "amina@example.com", Phone: "555-0101"}); err != nil {
		t.Fatalf("SetContact returned error: %v", err)
	}
	if _, err := w.Submit(context.Background(), gw); err != nil {
		t.Fatalf("submit after correcting the email returned error: %v", err)
	}
}

func TestSubmitOnlyAtContactStep(t *testing.T) {
	gw := NewGateway(docstore.NewMemoryStore(), nil, nil)
	w := testWizard(t)
	if _, err := w.Submit(context.Background(), gw); err == nil {
		t.Fatal("submit before the contact step must be rejected")
	}
}

func TestPrevBlockedAfterCompletion(t *testing.T) {
	gw := NewGateway(docstore.NewMemoryStore(), nil, nil)
	w := testWizard(t)
	advanceToContact(t, w)
	if err := w.SetContact(ContactForm{Name: "A", Email: "a@b.c", Phone: "1"}); err != nil {
		t.Fatalf("SetContact returned error: %v", err)
	}
	if _, err := w.Submit(context.Background(), gw); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if err := w.Prev(); err == nil {
		t.Error("backward navigation from the confirmation step must be blocked")
	}
}
