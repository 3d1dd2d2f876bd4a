package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prophetsmedicine/clinic-platform/internal/booking"
	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
)

type recordingSender struct {
	sent []EmailMessage
	err  error
}

func (r *recordingSender) Send(ctx context.Context, msg EmailMessage) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func sampleRecord() booking.Record {
	return booking.Record{
		ID:           "bk-1",
		ServiceTitle: "Wet Cupping (Standard)",
		Date:         "March 5, 2026",
		Time:         "9:05 AM",
		ClientName:   "Amina Yusuf",
		ClientEmail:  "amina@example.com",
	}
}

func TestDispatcherSendsLocalizedConfirmation(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, "test", nil, nil)

	if err := d.SendBookingConfirmation(context.Background(), sampleRecord(), i18n.French); err != nil {
		t.Fatalf("SendBookingConfirmation returned error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.To != "amina@example.com" {
		t.Errorf("to = %s", msg.To)
	}
	if msg.Subject != "Votre rendez-vous est confirmé" {
		t.Errorf("subject not localized: %s", msg.Subject)
	}
	if !strings.Contains(msg.Body, "March 5, 2026") || !strings.Contains(msg.Body, "9:05 AM") {
		t.Errorf("body missing appointment details: %s", msg.Body)
	}
}

func TestDispatcherPropagatesSendFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("provider down")}
	d := NewDispatcher(sender, "test", nil, nil)

	if err := d.SendBookingConfirmation(context.Background(), sampleRecord(), i18n.English); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestSendDirect(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, "test", nil, nil)

	if err := d.SendDirect(context.Background(), "omar@example.com", "Eid hours", "We close early on Friday."); err != nil {
		t.Fatalf("SendDirect returned error: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0].Subject != "Eid hours" {
		t.Fatalf("unexpected messages: %+v", sender.sent)
	}
}

func TestSimulatedSenderAlwaysSucceeds(t *testing.T) {
	s := NewSimulatedSender(nil)
	s.delay = 10 * time.Millisecond

	if err := s.Send(context.Background(), EmailMessage{To: "x@y.z", Subject: "hi"}); err != nil {
		t.Fatalf("simulated send returned error: %v", err)
	}
}

func TestSimulatedSenderHonorsCancellation(t *testing.T) {
	s := NewSimulatedSender(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Send(ctx, EmailMessage{To: "x@y.z"}); err == nil {
		t.Fatal("cancelled context must abort the simulated send")
	}
}

func TestNewSendGridSenderRequiresKey(t *testing.T) {
	if s := NewSendGridSender(SendGridConfig{}, nil); s != nil {
		t.Error("missing API key should yield a nil sender")
	}
}

func TestNewSESSenderRequiresClient(t *testing.T) {
	if s := NewSESSender(nil, SESConfig{FromEmail: "a@b.c"}, nil); s != nil {
		t.Error("missing client should yield a nil sender")
	}
}
