package notify

import (
	"context"
	"fmt"

	"github.com/prophetsmedicine/clinic-platform/internal/booking"
	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
	"github.com/prophetsmedicine/clinic-platform/internal/observability/metrics"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Dispatcher builds and sends the clinic's outbound emails through
// whichever provider is configured.
type Dispatcher struct {
	sender   EmailSender
	provider string
	logger   *logging.Logger
	metrics  *metrics.Metrics
}

// NewDispatcher constructs a dispatcher. provider names the configured
// backend for logs and counters.
func NewDispatcher(sender EmailSender, provider string, logger *logging.Logger, m *metrics.Metrics) *Dispatcher {
	if sender == nil {
		panic("notify: sender required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{sender: sender, provider: provider, logger: logger, metrics: m}
}

// SendBookingConfirmation emails the client that their booking is
// confirmed, in the language they browsed in.
func (d *Dispatcher) SendBookingConfirmation(ctx context.Context, rec booking.Record, lang i18n.Language) error {
	msg := confirmationMessage(rec, lang)
	if err := d.sender.Send(ctx, msg); err != nil {
		d.metrics.ObserveEmailFailed(d.provider)
		return fmt.Errorf("notify: booking confirmation: %w", err)
	}
	d.metrics.ObserveEmailSent(d.provider)
	d.logger.Info("booking confirmation sent", "booking_id", rec.ID, "provider", d.provider, "language", string(lang))
	return nil
}

// SendDirect sends a free-form message, used by the admin compose form.
func (d *Dispatcher) SendDirect(ctx context.Context, to, subject, body string) error {
	if err := d.sender.Send(ctx, EmailMessage{To: to, Subject: subject, Body: body}); err != nil {
		d.metrics.ObserveEmailFailed(d.provider)
		return fmt.Errorf("notify: direct send: %w", err)
	}
	d.metrics.ObserveEmailSent(d.provider)
	d.logger.Info("email sent", "to", to, "provider", d.provider)
	return nil
}

var confirmationSubjects = i18n.LocalizedString{
	EN: "Your appointment is confirmed",
	FR: "Votre rendez-vous est confirmé",
	AR: "تم تأكيد موعدك",
	ES: "Su cita está confirmada",
}

var confirmationBodies = i18n.LocalizedString{
	EN: "Assalamu alaikum %s,\n\nYour %s session is confirmed for %s at %s.\n\nThe Prophet's Medicine",
	FR: "Assalamu alaikum %s,\n\nVotre séance %s est confirmée pour le %s à %s.\n\nThe Prophet's Medicine",
	AR: "السلام عليكم %s،\n\nتم تأكيد جلسة %s الخاصة بك في %s الساعة %s.\n\nThe Prophet's Medicine",
	ES: "Assalamu alaikum %s:\n\nSu sesión de %s está confirmada para el %s a las %s.\n\nThe Prophet's Medicine",
}

func confirmationMessage(rec booking.Record, lang i18n.Language) EmailMessage {
	return EmailMessage{
		To:      rec.ClientEmail,
		ToName:  rec.ClientName,
		Subject: confirmationSubjects.Get(lang),
		Body:    fmt.Sprintf(confirmationBodies.Get(lang), rec.ClientName, rec.ServiceTitle, rec.Date, rec.Time),
	}
}
