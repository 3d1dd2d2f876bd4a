package booking

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSubmission marks submit rejections caused by the visitor's
// own input rather than by the store.
var ErrInvalidSubmission = errors.New("booking: invalid submission")

// Step is the wizard's position. Steps advance one at a time except for
// service selection, which both records the choice and moves forward.
type Step int

const (
	StepService  Step = 1
	StepDateTime Step = 2
	StepContact  Step = 3
	StepDone     Step = 4
)

// SelectedService is the minimal slice of an offering the wizard carries
// into the submission.
type SelectedService struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ContactForm holds the free-text identity fields collected at step three.
// Presence and a well-formed email are checked at submit time, nothing
// stricter.
type ContactForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Wizard is the four-step booking flow for one visitor session. It is not
// safe for concurrent use; the session store serializes access per session.
type Wizard struct {
	step       Step
	service    *SelectedService
	dateTime   DateTimeForm
	contact    ContactForm
	submitting bool
	record     *Record
}

// NewWizard starts a flow at the service step with the date form seeded
// from the given time.
func NewWizard(now time.Time) *Wizard {
	return &Wizard{
		step:     StepService,
		dateTime: NewDateTimeForm(now),
	}
}

// Step returns the wizard's current position.
func (w *Wizard) Step() Step { return w.step }

// Service returns the current selection, nil before one is made.
func (w *Wizard) Service() *SelectedService { return w.service }

// DateTime exposes the date/time form for field edits.
func (w *Wizard) DateTime() *DateTimeForm { return &w.dateTime }

// Contact returns the contact fields as entered so far.
func (w *Wizard) Contact() ContactForm { return w.contact }

// Submitting reports whether a submission is in flight.
func (w *Wizard) Submitting() bool { return w.submitting }

// Record returns the stored booking after a successful submit, nil before.
func (w *Wizard) Record() *Record { return w.record }

// SelectService records the choice and advances from the service step.
// Re-selecting at step one simply replaces the previous choice.
func (w *Wizard) SelectService(svc SelectedService) error {
	if w.step != StepService {
		return fmt.Errorf("booking: cannot select a service at step %d", w.step)
	}
	if svc.ID == "" {
		return fmt.Errorf("booking: service id is required")
	}
	selected := svc
	w.service = &selected
	w.step = StepDateTime
	return nil
}

// SetContact stores the step-three fields. Edits are allowed at any step
// before completion so that a failed submit keeps everything editable.
func (w *Wizard) SetContact(c ContactForm) error {
	if w.submitting || w.step == StepDone {
		return fmt.Errorf("booking: contact fields are locked")
	}
	w.contact = c
	return nil
}

// Next advances one step. At the date step it is gated on both the composed
// date and the composed time being available.
func (w *Wizard) Next() error {
	if w.submitting {
		return fmt.Errorf("booking: navigation is locked during submit")
	}
	switch w.step {
	case StepService:
		return fmt.Errorf("booking: select a service to continue")
	case StepDateTime:
		if !w.dateTime.Complete() {
			return fmt.Errorf("booking: date and time are incomplete")
		}
		w.step = StepContact
		return nil
	case StepContact:
		return fmt.Errorf("booking: the contact step completes by submitting")
	default:
		return fmt.Errorf("booking: flow already complete")
	}
}

// Prev steps back, floored at the service step. Backward navigation is
// blocked during submit and after completion.
func (w *Wizard) Prev() error {
	if w.submitting {
		return fmt.Errorf("booking: navigation is locked during submit")
	}
	if w.step == StepDone {
		return fmt.Errorf("booking: flow already complete")
	}
	if w.step > StepService {
		w.step--
	}
	return nil
}

// Submit sends the gathered fields through the gateway. Only valid at the
// contact step. On failure the wizard stays at step three with every field
// intact so the visitor can retry.
func (w *Wizard) Submit(ctx context.Context, gw *Gateway) (*Record, error) {
	if w.step != StepContact {
		return nil, fmt.Errorf("booking: submit is only valid at the contact step")
	}
	if w.submitting {
		return nil, fmt.Errorf("booking: submit already in progress")
	}
	if w.contact.Name == "" || w.contact.Email == "" || w.contact.Phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrInvalidSubmission)
	}
	if !ValidEmail(w.contact.Email) {
		return nil, fmt.Errorf("%w: a valid email address is required", ErrInvalidSubmission)
	}

	w.submitting = true
	record, err := gw.Submit(ctx, Submission{
		ServiceID:    w.service.ID,
		ServiceTitle: w.service.Title,
		Date:         w.dateTime.ComposedDate(),
		Time:         w.dateTime.ComposedTime(),
		ClientName:   w.contact.Name,
		ClientEmail:  w.contact.Email,
		ClientPhone:  w.contact.Phone,
	})
	w.submitting = false
	if err != nil {
		return nil, err
	}
	w.record = record
	w.step = StepDone
	return record, nil
}
