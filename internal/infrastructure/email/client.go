// Package email delivers contact inquiries through the Resend API.
package email

import (
	"errors"
	"fmt"

	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/email/templates"
	"github.com/resendlabs/resend-go"
)

// ErrNotConfigured is returned by NewService when credentials are missing.
var ErrNotConfigured = errors.New("email delivery is not configured")

// Inquiry is a visitor message from the contact form.
type Inquiry struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	Language  string
	Direction string
}

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendInquiry(inquiry Inquiry) error
}

// Sender is the part of the Resend emails API the client uses.
type Sender interface {
	Send(params *resend.SendEmailRequest) (resend.SendEmailResponse, error)
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	sender Sender
	from   string
	to     string
}

// NewService creates a Resend-backed email service.
func NewService(apiKey, from, to string) (*ResendClient, error) {
	if apiKey == "" || to == "" {
		return nil, ErrNotConfigured
	}
	return NewServiceWithSender(resend.NewClient(apiKey).Emails, from, to), nil
}

// NewServiceWithSender builds a client around an existing sender.
func NewServiceWithSender(sender Sender, from, to string) *ResendClient {
	return &ResendClient{sender: sender, from: from, to: to}
}

// SendInquiry composes and sends a contact inquiry to the company inbox.
// Replies go to the visitor.
func (c *ResendClient) SendInquiry(inquiry Inquiry) error {
	props := templates.InquiryProps{
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Subject:   inquiry.Subject,
		Message:   inquiry.Message,
		Language:  inquiry.Language,
		Direction: inquiry.Direction,
	}
	html, err := templates.RenderInquiry(props)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{c.to},
		ReplyTo: inquiry.Email,
		Subject: fmt.Sprintf("Website inquiry: %s", inquiry.Subject),
		Html:    html,
		Text:    templates.RenderInquiryText(props),
	}

	if _, err := c.sender.Send(params); err != nil {
		return fmt.Errorf("failed to send inquiry email via Resend: %w", err)
	}
	return nil
}
