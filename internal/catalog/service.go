package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Service reads and writes the treatment and FAQ catalog.
type Service struct {
	store  docstore.Store
	logger *logging.Logger

	now func() time.Time
}

// NewService constructs a catalog service.
func NewService(store docstore.Store, logger *logging.Logger) *Service {
	if store == nil {
		panic("catalog: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// PublicServices returns the offerings visible to the given audience. When
// the store errors or holds nothing, the canonical defaults keep the site
// usable.
func (s *Service) PublicServices(ctx context.Context, aud Audience) []ServiceOffering {
	offerings, err := s.ListServices(ctx)
	if err != nil {
		s.logger.Warn("catalog: using default services", "error", err)
		offerings = DefaultServices
	} else if len(offerings) == 0 {
		offerings = DefaultServices
	}

	visible := make([]ServiceOffering, 0, len(offerings))
	for _, offering := range offerings {
		if offering.VisibleTo(aud) {
			visible = append(visible, offering)
		}
	}
	return visible
}

// PublicFAQs returns every FAQ entry, defaulting when the store errors or is
// empty.
func (s *Service) PublicFAQs(ctx context.Context) []FAQEntry {
	faqs, err := s.ListFAQs(ctx)
	if err != nil {
		s.logger.Warn("catalog: using default faqs", "error", err)
		return DefaultFAQs
	}
	if len(faqs) == 0 {
		return DefaultFAQs
	}
	return faqs
}

// ListServices reads the live offering collection. No default fallback: the
// admin console must see the store as it is.
func (s *Service) ListServices(ctx context.Context) ([]ServiceOffering, error) {
	docs, err := s.store.List(ctx, docstore.CollectionServices)
	if err != nil {
		return nil, err
	}
	return DecodeServices(docs)
}

// ListFAQs reads the live FAQ collection.
func (s *Service) ListFAQs(ctx context.Context) ([]FAQEntry, error) {
	docs, err := s.store.List(ctx, docstore.CollectionFAQs)
	if err != nil {
		return nil, err
	}
	return DecodeFAQs(docs)
}

// SaveService upserts a whole offering by id. Edits resubmit the entire
// record; there is no partial patch for offerings.
func (s *Service) SaveService(ctx context.Context, offering ServiceOffering) error {
	if err := offering.Validate(); err != nil {
		return err
	}
	fields, err := docstore.Encode(offering)
	if err != nil {
		return err
	}
	delete(fields, "id")
	return s.store.CreateOrReplace(ctx, docstore.CollectionServices, offering.ID, fields)
}

// SaveFAQ upserts a whole FAQ entry by id.
func (s *Service) SaveFAQ(ctx context.Context, entry FAQEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	fields, err := docstore.Encode(entry)
	if err != nil {
		return err
	}
	delete(fields, "id")
	return s.store.CreateOrReplace(ctx, docstore.CollectionFAQs, entry.ID, fields)
}

// ResetDefaults overwrites every default-catalog id with its canonical value
// in one atomic batch. Ids outside the default set, bookings, and inquiries
// are untouched.
func (s *Service) ResetDefaults(ctx context.Context) error {
	ops, err := DefaultWriteOps()
	if err != nil {
		return err
	}
	if err := s.store.BatchWrite(ctx, ops); err != nil {
		return fmt.Errorf("catalog: reset defaults: %w", err)
	}
	s.logger.Info("catalog: defaults restored", "services", len(DefaultServices), "faqs", len(DefaultFAQs))
	return nil
}

// PromoteInquiry drafts a new FAQ entry from an inquiry's question text. The
// question is copied to every language as placeholder content pending
// translation; the id is derived from the current time in milliseconds.
func (s *Service) PromoteInquiry(question string) FAQEntry {
	return FAQEntry{
		ID:       strconv.FormatInt(s.now().UnixMilli(), 10),
		Question: i18n.Uniform(question),
	}
}

// DefaultWriteOps builds the batch that seeds or resets the default catalog.
func DefaultWriteOps() ([]docstore.WriteOp, error) {
	ops := make([]docstore.WriteOp, 0, len(DefaultServices)+len(DefaultFAQs))
	for _, offering := range DefaultServices {
		fields, err := docstore.Encode(offering)
		if err != nil {
			return nil, err
		}
		delete(fields, "id")
		ops = append(ops, docstore.WriteOp{Collection: docstore.CollectionServices, ID: offering.ID, Fields: fields})
	}
	for _, entry := range DefaultFAQs {
		fields, err := docstore.Encode(entry)
		if err != nil {
			return nil, err
		}
		delete(fields, "id")
		ops = append(ops, docstore.WriteOp{Collection: docstore.CollectionFAQs, ID: entry.ID, Fields: fields})
	}
	return ops, nil
}

// DecodeServices converts raw documents into offerings.
func DecodeServices(docs []docstore.Document) ([]ServiceOffering, error) {
	offerings := make([]ServiceOffering, 0, len(docs))
	for _, doc := range docs {
		var offering ServiceOffering
		if err := docstore.Decode(doc.Fields, &offering); err != nil {
			return nil, fmt.Errorf("catalog: service %s: %w", doc.ID, err)
		}
		offering.ID = doc.ID
		offerings = append(offerings, offering)
	}
	return offerings, nil
}

// DecodeFAQs converts raw documents into FAQ entries.
func DecodeFAQs(docs []docstore.Document) ([]FAQEntry, error) {
	faqs := make([]FAQEntry, 0, len(docs))
	for _, doc := range docs {
		var entry FAQEntry
		if err := docstore.Decode(doc.Fields, &entry); err != nil {
			return nil, fmt.Errorf("catalog: faq %s: %w", doc.ID, err)
		}
		entry.ID = doc.ID
		faqs = append(faqs, entry)
	}
	return faqs, nil
}
