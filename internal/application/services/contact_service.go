package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/email"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/i18n"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
)

// ErrInvalidInquiry marks a contact form that failed validation.
var ErrInvalidInquiry = errors.New("invalid inquiry")

const maxInquiryMessage = 5000

// ContactForm is the visitor contact form.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactService validates contact inquiries and forwards them by email.
// Without an email service inquiries are only logged.
type ContactService struct {
	mailer      email.Service
	catalog     *i18n.Catalog
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewContactService creates a contact service. mailer may be nil.
func NewContactService(mailer email.Service, catalog *i18n.Catalog, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContactService {
	return &ContactService{mailer: mailer, catalog: catalog, logger: logger, perfTracker: perfTracker}
}

// Validate trims form in place and checks the required fields.
func (s *ContactService) Validate(form *ContactForm) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Subject = strings.TrimSpace(form.Subject)
	form.Message = strings.TrimSpace(form.Message)

	switch {
	case form.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInquiry)
	case form.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidInquiry)
	case form.Message == "":
		return fmt.Errorf("%w: message is required", ErrInvalidInquiry)
	case len(form.Message) > maxInquiryMessage:
		return fmt.Errorf("%w: message is too long", ErrInvalidInquiry)
	}
	addr, err := mail.ParseAddress(form.Email)
	if err != nil || addr.Address != form.Email {
		return fmt.Errorf("%w: email is not valid", ErrInvalidInquiry)
	}
	return nil
}

// Submit validates and delivers form. It returns the thank-you message in lang.
func (s *ContactService) Submit(form ContactForm, lang content.Language) (string, error) {
	start := time.Now()
	marker := s.perfTracker.StartOperation("contact_submit", "email")
	defer marker.Complete()

	if err := s.Validate(&form); err != nil {
		marker.SetError(err)
		return "", err
	}

	if s.mailer == nil {
		s.logger.Email().Info("Contact inquiry received without email delivery",
			"subject", form.Subject, "lang", lang, "messageLength", len(form.Message))
	} else {
		inquiry := email.Inquiry{
			Name:      form.Name,
			Email:     form.Email,
			Subject:   form.Subject,
			Message:   form.Message,
			Language:  string(lang),
			Direction: string(s.catalog.Direction(lang)),
		}
		if err := s.mailer.SendInquiry(inquiry); err != nil {
			marker.SetError(err)
			s.logger.Email().Error("Failed to deliver contact inquiry", "error", err, "duration", time.Since(start))
			return "", fmt.Errorf("failed to deliver inquiry: %w", err)
		}
	}

	marker.SetSuccess(true)
	s.logger.Email().Info("Contact inquiry processed", "lang", lang, "duration", time.Since(start))
	return s.catalog.T(lang, "contact_form_alert"), nil
}
