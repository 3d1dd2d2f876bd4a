package inquiries

import (
	"context"
	"fmt"

	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/internal/observability/metrics"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Status of a visitor question as the admin console tracks it.
type Status string

const (
	StatusNew      Status = "new"
	StatusAnswered Status = "answered"
	StatusArchived Status = "archived"
)

// ValidStatus reports whether s is a known inquiry state.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusAnswered, StatusArchived:
		return true
	}
	return false
}

// Inquiry is a question submitted through the public contact form. The
// form only asks for an email and the question; Name is kept for records
// created elsewhere and may be empty.
type Inquiry struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email"`
	Question  string `json:"question"`
	Status    Status `json:"status"`
	CreatedAt int64  `json:"createdAt"`
}

// Service records and lists visitor inquiries.
type Service struct {
	store   docstore.Store
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewService constructs the inquiry service.
func NewService(store docstore.Store, logger *logging.Logger, m *metrics.Metrics) *Service {
	if store == nil {
		panic("inquiries: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, logger: logger, metrics: m}
}

// Record stores a new inquiry with status "new" and returns it. Name is
// optional.
func (s *Service) Record(ctx context.Context, name, email, question string) (*Inquiry, error) {
	if email == "" || question == "" {
		return nil, fmt.Errorf("inquiries: email and question are required")
	}

	fields := map[string]any{
		"email":    email,
		"question": question,
		"status":   string(StatusNew),
	}
	if name != "" {
		fields["name"] = name
	}
	id, err := s.store.CreateWithGeneratedID(ctx, docstore.CollectionInquiries, fields)
	if err != nil {
		s.logger.Error("inquiries: record failed", "error", err)
		return nil, fmt.Errorf("inquiries: record: %w", err)
	}
	s.metrics.ObserveInquiry()
	s.logger.Info("inquiries: recorded", "inquiry_id", id)
	return &Inquiry{ID: id, Name: name, Email: email, Question: question, Status: StatusNew}, nil
}

// List returns every stored inquiry.
func (s *Service) List(ctx context.Context) ([]Inquiry, error) {
	docs, err := s.store.List(ctx, docstore.CollectionInquiries)
	if err != nil {
		return nil, err
	}
	return Decode(docs)
}

// SetStatus patches just the status field of an existing inquiry.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) error {
	if !ValidStatus(status) {
		return fmt.Errorf("inquiries: invalid status %q", status)
	}
	return s.store.Patch(ctx, docstore.CollectionInquiries, id, map[string]any{"status": string(status)})
}

// Delete removes an inquiry.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, docstore.CollectionInquiries, id)
}

// Decode converts raw inquiry documents.
func Decode(docs []docstore.Document) ([]Inquiry, error) {
	items := make([]Inquiry, 0, len(docs))
	for _, doc := range docs {
		var inq Inquiry
		if err := docstore.Decode(doc.Fields, &inq); err != nil {
			return nil, fmt.Errorf("inquiries: %s: %w", doc.ID, err)
		}
		inq.ID = doc.ID
		inq.CreatedAt = docstore.CreatedAt(doc)
		items = append(items, inq)
	}
	return items, nil
}
