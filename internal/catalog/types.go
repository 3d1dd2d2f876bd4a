package catalog

import (
	"fmt"

	"github.com/prophetsmedicine/clinic-platform/internal/i18n"
)

// Audience is the session-level choice made before the catalog is shown.
type Audience string

const (
	AudienceUnset  Audience = ""
	AudienceMale   Audience = "male"
	AudienceFemale Audience = "female"
)

// ServiceOffering is a bookable treatment. Price and duration are display
// strings and are never parsed arithmetically.
type ServiceOffering struct {
	ID             string               `json:"id"`
	Title          i18n.LocalizedString `json:"title"`
	Description    i18n.LocalizedString `json:"description"`
	Price          string               `json:"price"`
	Duration       string               `json:"duration"`
	Benefits       i18n.LocalizedList   `json:"benefits"`
	Recommended    bool                 `json:"recommended,omitempty"`
	GenderSpecific Audience             `json:"genderSpecific,omitempty"`
}

// VisibleTo reports whether the offering is shown to the given audience.
// Offerings without a gender restriction are visible to everyone.
func (s ServiceOffering) VisibleTo(aud Audience) bool {
	return s.GenderSpecific == AudienceUnset || s.GenderSpecific == aud
}

// Validate checks the data-integrity invariants for an offering.
func (s ServiceOffering) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("catalog: offering id is required")
	}
	if !s.Title.Complete() || !s.Description.Complete() {
		return fmt.Errorf("catalog: offering %s is missing a translation", s.ID)
	}
	if s.Price == "" || s.Duration == "" {
		return fmt.Errorf("catalog: offering %s needs price and duration", s.ID)
	}
	switch s.GenderSpecific {
	case AudienceUnset, AudienceMale, AudienceFemale:
	default:
		return fmt.Errorf("catalog: offering %s has invalid gender restriction %q", s.ID, s.GenderSpecific)
	}
	return nil
}

// FAQEntry is one question/answer pair shown on the public site.
type FAQEntry struct {
	ID       string               `json:"id"`
	Question i18n.LocalizedString `json:"question"`
	Answer   i18n.LocalizedString `json:"answer"`
}

// Validate checks the data-integrity invariants for a FAQ entry.
func (f FAQEntry) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("catalog: faq id is required")
	}
	if !f.Question.Complete() || !f.Answer.Complete() {
		return fmt.Errorf("catalog: faq %s is missing a translation", f.ID)
	}
	return nil
}

// LocalizedService is an offering flattened to one display language.
type LocalizedService struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Price          string   `json:"price"`
	Duration       string   `json:"duration"`
	Benefits       []string `json:"benefits"`
	Recommended    bool     `json:"recommended,omitempty"`
	GenderSpecific Audience `json:"genderSpecific,omitempty"`
}

// Localize flattens the offering for one language.
func (s ServiceOffering) Localize(lang i18n.Language) LocalizedService {
	return LocalizedService{
		ID:             s.ID,
		Title:          s.Title.Get(lang),
		Description:    s.Description.Get(lang),
		Price:          s.Price,
		Duration:       s.Duration,
		Benefits:       s.Benefits.Get(lang),
		Recommended:    s.Recommended,
		GenderSpecific: s.GenderSpecific,
	}
}

// LocalizedFAQ is a FAQ entry flattened to one display language.
type LocalizedFAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Localize flattens the FAQ entry for one language.
func (f FAQEntry) Localize(lang i18n.Language) LocalizedFAQ {
	return LocalizedFAQ{
		ID:       f.ID,
		Question: f.Question.Get(lang),
		Answer:   f.Answer.Get(lang),
	}
}
