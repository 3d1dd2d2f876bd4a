package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/prophetsmedicine/clinic-platform/internal/booking"
	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
	"github.com/prophetsmedicine/clinic-platform/internal/inquiries"
	"github.com/prophetsmedicine/clinic-platform/internal/notify"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Console is the authenticated management surface: it watches all four
// collections live and performs every admin mutation.
type Console struct {
	store      docstore.Store
	catalog    *catalog.Service
	inquiries  *inquiries.Service
	dispatcher *notify.Dispatcher
	logger     *logging.Logger
}

// NewConsole constructs the admin console.
func NewConsole(store docstore.Store, cat *catalog.Service, inq *inquiries.Service, dispatcher *notify.Dispatcher, logger *logging.Logger) *Console {
	if store == nil {
		panic("admin: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Console{store: store, catalog: cat, inquiries: inq, dispatcher: dispatcher, logger: logger}
}

// Feed bundles the four live collection streams an open console session
// receives. Closing the feed cancels all of them.
type Feed struct {
	Services  <-chan []docstore.Document
	FAQs      <-chan []docstore.Document
	Bookings  <-chan []docstore.Document
	Inquiries <-chan []docstore.Document

	subs []*docstore.Subscription
}

// Close cancels every underlying subscription.
func (f *Feed) Close() {
	for _, sub := range f.subs {
		sub.Cancel()
	}
}

// Watch opens one subscription per collection. Each stream starts with
// the current snapshot and then re-delivers the full collection after
// every change.
func (c *Console) Watch(ctx context.Context) (*Feed, error) {
	collections := []docstore.Collection{
		docstore.CollectionServices,
		docstore.CollectionFAQs,
		docstore.CollectionBookings,
		docstore.CollectionInquiries,
	}
	subs := make([]*docstore.Subscription, 0, len(collections))
	for _, col := range collections {
		sub, err := c.store.Subscribe(ctx, col)
		if err != nil {
			for _, opened := range subs {
				opened.Cancel()
			}
			return nil, fmt.Errorf("admin: watch %s: %w", col, err)
		}
		subs = append(subs, sub)
	}
	return &Feed{
		Services:  subs[0].C,
		FAQs:      subs[1].C,
		Bookings:  subs[2].C,
		Inquiries: subs[3].C,
		subs:      subs,
	}, nil
}

// Bookings lists every booking, newest first. Records without a creation
// timestamp sort last.
func (c *Console) Bookings(ctx context.Context) ([]booking.Record, error) {
	docs, err := c.store.List(ctx, docstore.CollectionBookings)
	if err != nil {
		return nil, err
	}
	records, err := booking.DecodeRecords(docs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records, nil
}

// SearchBookings filters by client name or email, case-insensitively. An
// empty query returns everything.
func (c *Console) SearchBookings(ctx context.Context, query string) ([]booking.Record, error) {
	records, err := c.Bookings(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records, nil
	}
	matched := records[:0]
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.ClientName), query) ||
			strings.Contains(strings.ToLower(rec.ClientEmail), query) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// SetBookingStatus patches just the status of an existing booking.
func (c *Console) SetBookingStatus(ctx context.Context, id string, status booking.Status) error {
	if !booking.ValidStatus(status) {
		return fmt.Errorf("admin: invalid booking status %q", status)
	}
	if err := c.store.Patch(ctx, docstore.CollectionBookings, id, map[string]any{"status": string(status)}); err != nil {
		return err
	}
	c.logger.Info("admin: booking status updated", "booking_id", id, "status", string(status))
	return nil
}

// ConfirmBooking marks the booking confirmed and emails the client in the
// given language. The status change stands even if the email fails; the
// error tells the operator to retry the send.
func (c *Console) ConfirmBooking(ctx context.Context, id string, lang i18n.Language) error {
	if err := c.SetBookingStatus(ctx, id, booking.StatusConfirmed); err != nil {
		return err
	}
	if c.dispatcher == nil {
		return nil
	}

	docs, err := c.store.List(ctx, docstore.CollectionBookings)
	if err != nil {
		return fmt.Errorf("admin: confirmation email: %w", err)
	}
	for _, doc := range docs {
		if doc.ID != id {
			continue
		}
		records, err := booking.DecodeRecords([]docstore.Document{doc})
		if err != nil {
			return fmt.Errorf("admin: confirmation email: %w", err)
		}
		return c.dispatcher.SendBookingConfirmation(ctx, records[0], lang)
	}
	return docstore.ErrNotFound
}

// DeleteBooking removes a booking. The confirmed flag is the server-side
// half of the delete dialog; an unconfirmed request never reaches the
// store.
func (c *Console) DeleteBooking(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("admin: delete requires confirmation")
	}
	if err := c.store.Delete(ctx, docstore.CollectionBookings, id); err != nil {
		return err
	}
	c.logger.Info("admin: booking deleted", "booking_id", id)
	return nil
}

// SaveService stores a full offering document.
func (c *Console) SaveService(ctx context.Context, offering catalog.ServiceOffering) error {
	return c.catalog.SaveService(ctx, offering)
}

// SaveFAQ stores a full FAQ document.
func (c *Console) SaveFAQ(ctx context.Context, entry catalog.FAQEntry) error {
	return c.catalog.SaveFAQ(ctx, entry)
}

// DeleteService removes an offering.
func (c *Console) DeleteService(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("admin: delete requires confirmation")
	}
	return c.store.Delete(ctx, docstore.CollectionServices, id)
}

// DeleteFAQ removes a FAQ entry.
func (c *Console) DeleteFAQ(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("admin: delete requires confirmation")
	}
	return c.store.Delete(ctx, docstore.CollectionFAQs, id)
}

// DeleteInquiry removes a visitor question.
func (c *Console) DeleteInquiry(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("admin: delete requires confirmation")
	}
	if err := c.inquiries.Delete(ctx, id); err != nil {
		return err
	}
	c.logger.Info("admin: inquiry deleted", "inquiry_id", id)
	return nil
}

// ResetCatalog restores every default offering and FAQ to its canonical
// content.
func (c *Console) ResetCatalog(ctx context.Context) error {
	return c.catalog.ResetDefaults(ctx)
}

// PromoteInquiry turns a visitor question into a FAQ draft. The question
// text fills every language as placeholder copy and the answer starts
// empty, so the draft is stored directly rather than through the
// completeness validation that published edits go through. The source
// inquiry is left untouched; archiving it is a separate decision.
func (c *Console) PromoteInquiry(ctx context.Context, inquiryID string) (catalog.FAQEntry, error) {
	listed, err := c.inquiries.List(ctx)
	if err != nil {
		return catalog.FAQEntry{}, err
	}
	var source *inquiries.Inquiry
	for i := range listed {
		if listed[i].ID == inquiryID {
			source = &listed[i]
		}
	}
	if source == nil {
		return catalog.FAQEntry{}, docstore.ErrNotFound
	}

	draft := c.catalog.PromoteInquiry(source.Question)
	fields, err := docstore.Encode(draft)
	if err != nil {
		return catalog.FAQEntry{}, err
	}
	delete(fields, "id")
	if err := c.store.CreateOrReplace(ctx, docstore.CollectionFAQs, draft.ID, fields); err != nil {
		return catalog.FAQEntry{}, err
	}

	c.logger.Info("admin: inquiry promoted to faq", "inquiry_id", inquiryID, "faq_id", draft.ID)
	return draft, nil
}

// SendEmail sends a free-form message through the configured provider,
// backing the console's compose form.
func (c *Console) SendEmail(ctx context.Context, to, subject, body string) error {
	if c.dispatcher == nil {
		return fmt.Errorf("admin: no email provider configured")
	}
	if to == "" || subject == "" || body == "" {
		return fmt.Errorf("admin: recipient, subject and body are required")
	}
	return c.dispatcher.SendDirect(ctx, to, subject, body)
}
