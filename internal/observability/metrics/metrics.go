package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "clinic"

// Metrics holds the counters for the visitor-facing flows. A nil *Metrics
// is valid and makes every Observe method a no-op, so wiring is optional
// in tests.
type Metrics struct {
	bookingsCreated prometheus.Counter
	bookingsFailed  prometheus.Counter
	inquiries       prometheus.Counter
	emailsSent      *prometheus.CounterVec
	emailsFailed    *prometheus.CounterVec
	assistantTurns  *prometheus.CounterVec
}

// New registers the counter set on reg and returns it.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings successfully written to the document store.",
		}),
		bookingsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_failed_total",
			Help:      "Booking submissions rejected or failed to persist.",
		}),
		inquiries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inquiries_received_total",
			Help:      "Visitor questions recorded from the contact form.",
		}),
		emailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Emails handed off to the configured provider.",
		}, []string{"provider"}),
		emailsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_failed_total",
			Help:      "Email sends the provider rejected.",
		}, []string{"provider"}),
		assistantTurns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_turns_total",
			Help:      "Chat assistant exchanges by reply language.",
		}, []string{"language"}),
	}
	reg.MustRegister(
		m.bookingsCreated,
		m.bookingsFailed,
		m.inquiries,
		m.emailsSent,
		m.emailsFailed,
		m.assistantTurns,
	)
	return m
}

func (m *Metrics) ObserveBookingCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

func (m *Metrics) ObserveBookingFailed() {
	if m == nil {
		return
	}
	m.bookingsFailed.Inc()
}

func (m *Metrics) ObserveInquiry() {
	if m == nil {
		return
	}
	m.inquiries.Inc()
}

func (m *Metrics) ObserveEmailSent(provider string) {
	if m == nil {
		return
	}
	m.emailsSent.WithLabelValues(provider).Inc()
}

func (m *Metrics) ObserveEmailFailed(provider string) {
	if m == nil {
		return
	}
	m.emailsFailed.WithLabelValues(provider).Inc()
}

func (m *Metrics) ObserveAssistantTurn(language string) {
	if m == nil {
		return
	}
	m.assistantTurns.WithLabelValues(language).Inc()
}
