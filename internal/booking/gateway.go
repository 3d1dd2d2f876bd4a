package booking

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/internal/observability/metrics"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Status is the lifecycle state of a stored booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Submission is the exact field set a completed wizard hands to the
// gateway. Date and time are the composed display strings, never parsed
// back apart.
type Submission struct {
	ServiceID    string `json:"serviceId"`
	ServiceTitle string `json:"serviceTitle"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	ClientName   string `json:"clientName"`
	ClientEmail  string `json:"clientEmail"`
	ClientPhone  string `json:"clientPhone"`
}

// Record is a stored booking as the admin console sees it.
type Record struct {
	ID           string `json:"id"`
	ServiceID    string `json:"serviceId"`
	ServiceTitle string `json:"serviceTitle"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	ClientName   string `json:"clientName"`
	ClientEmail  string `json:"clientEmail"`
	ClientPhone  string `json:"clientPhone"`
	Status       Status `json:"status"`
	CreatedAt    int64  `json:"createdAt"`
}

// Gateway persists wizard submissions. Each submit is exactly one create;
// there is no retry and no idempotency key, so a client-side resubmit
// after a timeout can produce a duplicate record.
type Gateway struct {
	store   docstore.Store
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewGateway constructs the submission gateway.
func NewGateway(store docstore.Store, logger *logging.Logger, m *metrics.Metrics) *Gateway {
	if store == nil {
		panic("booking: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Gateway{store: store, logger: logger, metrics: m}
}

// Submit writes the submission as a new pending booking and returns the
// stored record.
func (g *Gateway) Submit(ctx context.Context, sub Submission) (*Record, error) {
	if err := sub.validate(); err != nil {
		g.metrics.ObserveBookingFailed()
		return nil, err
	}

	fields := map[string]any{
		"serviceId":    sub.ServiceID,
		"serviceTitle": sub.ServiceTitle,
		"date":         sub.Date,
		"time":         sub.Time,
		"clientName":   sub.ClientName,
		"clientEmail":  sub.ClientEmail,
		"clientPhone":  sub.ClientPhone,
		"status":       string(StatusPending),
	}
	id, err := g.store.CreateWithGeneratedID(ctx, docstore.CollectionBookings, fields)
	if err != nil {
		g.metrics.ObserveBookingFailed()
		g.logger.Error("booking: submit failed", "service_id", sub.ServiceID, "error", err)
		return nil, fmt.Errorf("booking: submit: %w", err)
	}

	docs, err := g.store.List(ctx, docstore.CollectionBookings)
	var createdAt int64
	if err == nil {
		for _, doc := range docs {
			if doc.ID == id {
				createdAt = docstore.CreatedAt(doc)
			}
		}
	}

	g.metrics.ObserveBookingCreated()
	g.logger.Info("booking: created", "booking_id", id, "service_id", sub.ServiceID)
	return &Record{
		ID:           id,
		ServiceID:    sub.ServiceID,
		ServiceTitle: sub.ServiceTitle,
		Date:         sub.Date,
		Time:         sub.Time,
		ClientName:   sub.ClientName,
		ClientEmail:  sub.ClientEmail,
		ClientPhone:  sub.ClientPhone,
		Status:       StatusPending,
		CreatedAt:    createdAt,
	}, nil
}

func (s Submission) validate() error {
	switch {
	case s.ServiceID == "" || s.ServiceTitle == "":
		return fmt.Errorf("%w: a service is required", ErrInvalidSubmission)
	case s.Date == "" || s.Time == "":
		return fmt.Errorf("%w: a date and time are required", ErrInvalidSubmission)
	case s.ClientName == "" || s.ClientEmail == "" || s.ClientPhone == "":
		return fmt.Errorf("%w: contact details are required", ErrInvalidSubmission)
	case !ValidEmail(s.ClientEmail):
		return fmt.Errorf("%w: client email is malformed", ErrInvalidSubmission)
	}
	return nil
}

// ValidEmail is a loose well-formedness check on the address; actual
// deliverability is only proven by the confirmation send.
func ValidEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

// DecodeRecords converts raw booking documents for the admin console.
func DecodeRecords(docs []docstore.Document) ([]Record, error) {
	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		var rec Record
		if err := docstore.Decode(doc.Fields, &rec); err != nil {
			return nil, fmt.Errorf("booking: record %s: %w", doc.ID, err)
		}
		rec.ID = doc.ID
		rec.CreatedAt = docstore.CreatedAt(doc)
		records = append(records, rec)
	}
	return records, nil
}
